package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type metaResponse struct {
	Demo          bool     `json:"demo"`
	MissingConfig []string `json:"missingConfig,omitempty"`
}

// MetaHandler reports which backend the server selected at startup.
type MetaHandler struct {
	demo          bool
	missingConfig []string
	ping          func(ctx context.Context) error
}

// NewMetaHandler builds the meta and health endpoints. ping is nil in demo
// mode; otherwise it checks the hosted store's reachability.
func NewMetaHandler(demo bool, missingConfig []string, ping func(ctx context.Context) error) *MetaHandler {
	return &MetaHandler{demo: demo, missingConfig: missingConfig, ping: ping}
}

// Meta handles GET /v1/meta.
//
// @Summary      Report backend mode
// @Tags         meta
// @Produce      json
// @Success      200  {object}  metaResponse
// @Router       /v1/meta [get]
func (h *MetaHandler) Meta(c echo.Context) error {
	return c.JSON(http.StatusOK, metaResponse{
		Demo:          h.demo,
		MissingConfig: h.missingConfig,
	})
}

// Health handles GET /health (liveness).
func (h *MetaHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Ready handles GET /ready. The in-memory store is always ready; the hosted
// store is probed with a short ping.
func (h *MetaHandler) Ready(c echo.Context) error {
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()
		if err := h.ping(ctx); err != nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		}
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ready"})
}
