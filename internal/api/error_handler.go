package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hamstery/hamstery-api/internal/core/domain"
)

// errorResponse is the single error envelope every endpoint renders.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns the central echo.HTTPErrorHandler. Handlers
// and services return domain sentinels; this is the only place they are
// translated into status codes, so every endpoint fails the same way.
// Unexpected errors are logged with their cause and surface as an opaque 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo already classified these: bind failures, router 404s, middleware.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	// Invalid input.
	case errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrWeakPassword),
		errors.Is(err, domain.ErrNameTooShort),
		errors.Is(err, domain.ErrSameHamster),
		errors.Is(err, domain.ErrInvalidDays):
		return http.StatusBadRequest, err.Error()

	// Authentication and authorization.
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"

	// Missing entities.
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, domain.ErrHamsterNotFound):
		return http.StatusNotFound, "hamster not found"

	// Business-rule conflicts with otherwise-valid input.
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrHamsterInactive),
		errors.Is(err, domain.ErrHamsterFull),
		errors.Is(err, domain.ErrInsufficientGold):
		return http.StatusUnprocessableEntity, err.Error()
	}

	// Anything else is a bug or an infrastructure failure. Keep the cause
	// in the log, not in the response body.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
