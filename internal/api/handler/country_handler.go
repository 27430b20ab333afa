package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/omotenashi/partner-crm/internal/core/ports"
)

// CountryHandler handles HTTP requests for the shared country vocabulary.
type CountryHandler struct {
	service ports.CountryService
}

func NewCountryHandler(service ports.CountryService) *CountryHandler {
	return &CountryHandler{service: service}
}

// List handles GET /v1/countries.
//
// @Summary      List country tags
// @Tags         countries
// @Produce      json
// @Success      200  {array}  string
// @Router       /v1/countries [get]
func (h *CountryHandler) List(c echo.Context) error {
	countries, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, countries)
}

// Add handles POST /v1/countries. Adding an existing name is a no-op.
//
// @Summary      Add a country tag
// @Tags         countries
// @Accept       json
// @Produce      json
// @Param        body  body      countryRequest  true  "Country name"
// @Success      201   {object}  countryRequest
// @Failure      422   {object}  errorResponse
// @Router       /v1/countries [post]
func (h *CountryHandler) Add(c echo.Context) error {
	var req countryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	stored, err := h.service.Add(c.Request().Context(), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, countryRequest{Name: stored})
}
