package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/omotenashi/partner-crm/internal/core/ports"
)

// PlanHandler handles HTTP requests for the service-plan catalog.
type PlanHandler struct {
	service ports.PlanService
}

func NewPlanHandler(service ports.PlanService) *PlanHandler {
	return &PlanHandler{service: service}
}

// List handles GET /v1/plans.
//
// @Summary      List service plans
// @Tags         plans
// @Produce      json
// @Success      200  {array}  domain.Plan
// @Router       /v1/plans [get]
func (h *PlanHandler) List(c echo.Context) error {
	plans, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, plans)
}

// Create handles POST /v1/plans.
//
// @Summary      Create a service plan
// @Tags         plans
// @Accept       json
// @Produce      json
// @Param        body  body      planRequest  true  "Plan details"
// @Success      201   {object}  domain.Plan
// @Failure      422   {object}  errorResponse
// @Router       /v1/plans [post]
func (h *PlanHandler) Create(c echo.Context) error {
	req, err := bindPlan(c)
	if err != nil {
		return err
	}
	created, err := h.service.Save(c.Request().Context(), toPlanInput("", req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /v1/plans/:id.
//
// @Summary      Update a service plan
// @Tags         plans
// @Accept       json
// @Produce      json
// @Param        id    path      string       true  "Plan id"
// @Param        body  body      planRequest  true  "Plan details"
// @Success      200   {object}  domain.Plan
// @Failure      404   {object}  errorResponse
// @Router       /v1/plans/{id} [put]
func (h *PlanHandler) Update(c echo.Context) error {
	req, err := bindPlan(c)
	if err != nil {
		return err
	}
	updated, err := h.service.Save(c.Request().Context(), toPlanInput(c.Param("id"), req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

func bindPlan(c echo.Context) (planRequest, error) {
	var req planRequest
	if err := c.Bind(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return req, echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return req, nil
}

func toPlanInput(id string, req planRequest) ports.PlanInput {
	return ports.PlanInput{
		ID:            id,
		NameEN:        req.Name.EN,
		NameJA:        req.Name.JA,
		DescriptionEN: req.Description.EN,
		DescriptionJA: req.Description.JA,
		Type:          req.Type,
		Price:         req.Price,
		Season:        req.Season,
	}
}
