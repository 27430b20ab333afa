package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/omotenashi/partner-crm/internal/api/metrics"
	"github.com/omotenashi/partner-crm/internal/core/ports"
)

// ClientHandler handles HTTP requests for client operations.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// List handles GET /v1/clients.
//
// @Summary      List all clients
// @Tags         clients
// @Produce      json
// @Param        include  query     string  false  "Set to latest_memo to attach each client's newest memo"
// @Success      200      {array}   domain.Client
// @Failure      500      {object}  errorResponse
// @Router       /v1/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	if c.QueryParam("include") == "latest_memo" {
		clients, err := h.service.ListWithLatestMemo(ctx)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, clients)
	}

	clients, err := h.service.List(ctx)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// Create handles POST /v1/clients.
//
// @Summary      Create a new client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        body  body      clientRequest  true  "Client details"
// @Success      201   {object}  domain.Client
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	created, err := h.service.Save(c.Request().Context(), toClientInput("", req))
	if err != nil {
		return err
	}
	metrics.ClientsWrittenTotal.WithLabelValues("created", "form").Inc()
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /v1/clients/:id. Optional contact fields omitted from
// the payload are erased from the stored record, not preserved.
//
// @Summary      Update a client (replace semantics)
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id    path      string         true  "Client id"
// @Param        body  body      clientRequest  true  "Client details"
// @Success      200   {object}  domain.Client
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/clients/{id} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	updated, err := h.service.Save(c.Request().Context(), toClientInput(c.Param("id"), req))
	if err != nil {
		return err
	}
	metrics.ClientsWrittenTotal.WithLabelValues("updated", "form").Inc()
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /v1/clients/:id, cascading to the client's history
// and memos before the client record itself.
//
// @Summary      Delete a client and its history and memos
// @Tags         clients
// @Param        id  path  string  true  "Client id"
// @Success      204
// @Failure      500  {object}  errorResponse
// @Router       /v1/clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.ClientsWrittenTotal.WithLabelValues("deleted", "form").Inc()
	return c.NoContent(http.StatusNoContent)
}

func toClientInput(id string, req clientRequest) ports.ClientInput {
	return ports.ClientInput{
		ID:               id,
		NameEN:           req.Name.EN,
		NameJA:           req.Name.JA,
		Types:            req.Type,
		CountryStrengths: req.CountryStrengths,
		ContactName:      req.ContactName,
		ContactEmail:     req.ContactEmail,
		ContactPhone:     req.ContactPhone,
		Website:          req.Website,
	}
}
