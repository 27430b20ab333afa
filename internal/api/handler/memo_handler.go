package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/omotenashi/partner-crm/internal/api/metrics"
	"github.com/omotenashi/partner-crm/internal/core/ports"
)

// MemoHandler handles HTTP requests for sales memos.
type MemoHandler struct {
	service ports.MemoService
}

func NewMemoHandler(service ports.MemoService) *MemoHandler {
	return &MemoHandler{service: service}
}

// ListByClient handles GET /v1/clients/:id/memos — newest created first.
//
// @Summary      List a client's memos
// @Tags         memos
// @Produce      json
// @Param        id  path      string  true  "Client id"
// @Success      200  {array}   domain.Memo
// @Router       /v1/clients/{id}/memos [get]
func (h *MemoHandler) ListByClient(c echo.Context) error {
	memos, err := h.service.ListByClient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, memos)
}

// ListAll handles GET /v1/memos — every memo across all clients, newest
// created first. Used by the latest-memo aggregation on the client list.
//
// @Summary      List all memos
// @Tags         memos
// @Produce      json
// @Success      200  {array}  domain.Memo
// @Router       /v1/memos [get]
func (h *MemoHandler) ListAll(c echo.Context) error {
	memos, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, memos)
}

// Create handles POST /v1/clients/:id/memos.
//
// @Summary      Add a memo to a client
// @Tags         memos
// @Accept       json
// @Produce      json
// @Param        id    path      string       true  "Client id"
// @Param        body  body      memoRequest  true  "Memo"
// @Success      201   {object}  domain.Memo
// @Failure      422   {object}  errorResponse
// @Router       /v1/clients/{id}/memos [post]
func (h *MemoHandler) Create(c echo.Context) error {
	in, err := bindMemo(c)
	if err != nil {
		return err
	}

	created, err := h.service.Add(c.Request().Context(), c.Param("id"), in)
	if err != nil {
		return err
	}
	metrics.MemosWrittenTotal.WithLabelValues("added").Inc()
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /v1/clients/:id/memos/:memoId — replaces text and
// memoDate only; author and createdAt are immutable.
//
// @Summary      Update a memo's text and date
// @Tags         memos
// @Accept       json
// @Produce      json
// @Param        id      path      string       true  "Client id"
// @Param        memoId  path      string       true  "Memo id"
// @Param        body    body      memoRequest  true  "Memo"
// @Success      200     {object}  domain.Memo
// @Failure      404     {object}  errorResponse
// @Failure      422     {object}  errorResponse
// @Router       /v1/clients/{id}/memos/{memoId} [put]
func (h *MemoHandler) Update(c echo.Context) error {
	in, err := bindMemo(c)
	if err != nil {
		return err
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), c.Param("memoId"), in)
	if err != nil {
		return err
	}
	metrics.MemosWrittenTotal.WithLabelValues("updated").Inc()
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /v1/clients/:id/memos/:memoId. Deleting an absent
// memo succeeds.
//
// @Summary      Delete a memo
// @Tags         memos
// @Param        id      path  string  true  "Client id"
// @Param        memoId  path  string  true  "Memo id"
// @Success      204
// @Router       /v1/clients/{id}/memos/{memoId} [delete]
func (h *MemoHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id"), c.Param("memoId")); err != nil {
		return err
	}
	metrics.MemosWrittenTotal.WithLabelValues("deleted").Inc()
	return c.NoContent(http.StatusNoContent)
}

func bindMemo(c echo.Context) (ports.MemoInput, error) {
	var req memoRequest
	if err := c.Bind(&req); err != nil {
		return ports.MemoInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.MemoInput{}, echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	memoDate, err := parseDate(req.MemoDate)
	if err != nil {
		return ports.MemoInput{}, echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return ports.MemoInput{Text: req.Text, Author: req.Author, MemoDate: memoDate}, nil
}
