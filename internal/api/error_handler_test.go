package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/omotenashi/partner-crm/internal/core/domain"
	"github.com/omotenashi/partner-crm/internal/importer"
)

func render(t *testing.T, err error) (int, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return rec.Code, body
}

func TestHTTPErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"client not found", domain.ErrClientNotFound, http.StatusNotFound},
		{"plan not found", domain.ErrPlanNotFound, http.StatusNotFound},
		{"memo not found", fmt.Errorf("update: %w", domain.ErrMemoNotFound), http.StatusNotFound},
		{"validation", fmt.Errorf("%w: name is required", domain.ErrValidation), http.StatusUnprocessableEntity},
		{"import header", importer.ErrMissingHeader, http.StatusBadRequest},
		{"import empty", importer.ErrNoValidClients, http.StatusUnprocessableEntity},
		{"backend unavailable", domain.ErrBackendUnavailable, http.StatusServiceUnavailable},
		{"echo error", echo.NewHTTPError(http.StatusTeapot, "teapot"), http.StatusTeapot},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := render(t, tc.err)
			if code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, code)
			}
			if body.Error == "" {
				t.Fatalf("empty error message")
			}
		})
	}
}

func TestHTTPErrorHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	code, body := render(t, errors.New("mongo: topology closed, secret=abc"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if body.Error != "internal server error" {
		t.Fatalf("internal detail leaked: %q", body.Error)
	}
}
