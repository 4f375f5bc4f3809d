package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hamstery/hamstery-api/internal/core/domain"
)

func TestResolveError_DomainMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{name: "invalid email", err: domain.ErrInvalidEmail, code: http.StatusBadRequest},
		{name: "weak password", err: domain.ErrWeakPassword, code: http.StatusBadRequest},
		{name: "short name", err: domain.ErrNameTooShort, code: http.StatusBadRequest},
		{name: "same hamster", err: domain.ErrSameHamster, code: http.StatusBadRequest},
		{name: "invalid days", err: domain.ErrInvalidDays, code: http.StatusBadRequest},
		{name: "bad credentials", err: domain.ErrInvalidCredentials, code: http.StatusUnauthorized},
		{name: "forbidden", err: domain.ErrForbidden, code: http.StatusForbidden},
		{name: "user missing", err: domain.ErrUserNotFound, code: http.StatusNotFound},
		{name: "hamster missing", err: domain.ErrHamsterNotFound, code: http.StatusNotFound},
		{name: "duplicate email", err: domain.ErrUserExists, code: http.StatusConflict},
		{name: "inactive hamster", err: domain.ErrHamsterInactive, code: http.StatusUnprocessableEntity},
		{name: "already full", err: domain.ErrHamsterFull, code: http.StatusUnprocessableEntity},
		{name: "insufficient gold", err: domain.ErrInsufficientGold, code: http.StatusUnprocessableEntity},
		{name: "wrapped domain error", err: errors.Join(errors.New("ctx"), domain.ErrForbidden), code: http.StatusForbidden},
		{name: "unknown error", err: errors.New("boom"), code: http.StatusInternalServerError},
	}

	e := echo.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			code, _ := resolveError(tt.err, zerolog.Nop(), c)
			if code != tt.code {
				t.Errorf("resolveError(%v) = %d, want %d", tt.err, code, tt.code)
			}
		})
	}
}

func TestHTTPErrorHandler_Envelope(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewHTTPErrorHandler(zerolog.Nop())
	h(domain.ErrHamsterNotFound, c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if body := rec.Body.String(); body == "" || body[0] != '{' {
		t.Fatalf("expected JSON envelope, got %q", body)
	}
}
