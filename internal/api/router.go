package api

import (
	"context"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/omotenashi/partner-crm/internal/api/handler"
	"github.com/omotenashi/partner-crm/internal/core/ports"
	"github.com/omotenashi/partner-crm/internal/core/service"
	"github.com/omotenashi/partner-crm/internal/importer"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// store is the backend chosen at startup; ping probes the hosted store for
// readiness and is nil in demo mode.
func NewRouter(store ports.Store, ping func(ctx context.Context) error, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("partnercrm"))

	// --- Dependencies ---
	clientService := service.NewClientService(store.Clients, store.History, store.Memos, log)
	planService := service.NewPlanService(store.Plans, log)
	memoService := service.NewMemoService(store.Memos, log)
	historyService := service.NewHistoryService(store.History, log)
	countryService := service.NewCountryService(store.Countries, log)
	csvImporter := importer.New(clientService, log)

	clientHandler := handler.NewClientHandler(clientService)
	planHandler := handler.NewPlanHandler(planService)
	memoHandler := handler.NewMemoHandler(memoService)
	historyHandler := handler.NewHistoryHandler(historyService)
	countryHandler := handler.NewCountryHandler(countryService)
	importHandler := handler.NewImportHandler(csvImporter)
	metaHandler := handler.NewMetaHandler(store.Demo, store.MissingConfig, ping)

	// --- Client routes ---
	e.GET("/v1/clients", clientHandler.List)
	e.POST("/v1/clients", clientHandler.Create)
	e.PUT("/v1/clients/:id", clientHandler.Update)
	e.DELETE("/v1/clients/:id", clientHandler.Delete)
	e.POST("/v1/clients/import", importHandler.Import)
	e.GET("/v1/clients/import/template", importHandler.Template)

	// --- Per-client subresources ---
	e.GET("/v1/clients/:id/history", historyHandler.ListByClient)
	e.POST("/v1/clients/:id/history", historyHandler.Create)
	e.GET("/v1/clients/:id/memos", memoHandler.ListByClient)
	e.POST("/v1/clients/:id/memos", memoHandler.Create)
	e.PUT("/v1/clients/:id/memos/:memoId", memoHandler.Update)
	e.DELETE("/v1/clients/:id/memos/:memoId", memoHandler.Delete)

	// --- Catalogs ---
	e.GET("/v1/plans", planHandler.List)
	e.POST("/v1/plans", planHandler.Create)
	e.PUT("/v1/plans/:id", planHandler.Update)
	e.GET("/v1/countries", countryHandler.List)
	e.POST("/v1/countries", countryHandler.Add)

	// --- Cross-client memo feed ---
	e.GET("/v1/memos", memoHandler.ListAll)

	// --- Meta, health probes and metrics ---
	e.GET("/v1/meta", metaHandler.Meta)
	e.GET("/health", metaHandler.Health)
	e.GET("/health/ready", metaHandler.Ready)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
