package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/omotenashi/partner-crm/internal/api/metrics"
	"github.com/omotenashi/partner-crm/internal/core/ports"
)

// HistoryHandler handles HTTP requests for booking history.
type HistoryHandler struct {
	service ports.HistoryService
}

func NewHistoryHandler(service ports.HistoryService) *HistoryHandler {
	return &HistoryHandler{service: service}
}

// ListByClient handles GET /v1/clients/:id/history — newest date first.
//
// @Summary      List a client's booking history
// @Tags         history
// @Produce      json
// @Param        id  path      string  true  "Client id"
// @Success      200  {array}   domain.HistoryItem
// @Router       /v1/clients/{id}/history [get]
func (h *HistoryHandler) ListByClient(c echo.Context) error {
	items, err := h.service.ListByClient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Create handles POST /v1/clients/:id/history. History is append-only.
//
// @Summary      Record a booking for a client
// @Tags         history
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Client id"
// @Param        body  body      historyRequest  true  "Booking details; planId may be a plan id or \"other\""
// @Success      201   {object}  domain.HistoryItem
// @Failure      422   {object}  errorResponse
// @Router       /v1/clients/{id}/history [post]
func (h *HistoryHandler) Create(c echo.Context) error {
	var req historyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	created, err := h.service.Add(c.Request().Context(), c.Param("id"), ports.HistoryInput{
		PlanID:           req.PlanID,
		OtherDescription: req.OtherPlanDescription,
		Date:             date,
		GroupSize:        req.GroupSize,
		Country:          req.Country,
	})
	if err != nil {
		return err
	}
	metrics.HistoryEntriesTotal.Inc()
	return c.JSON(http.StatusCreated, created)
}
