package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxActor extracts the acting user's id from the claims injected by the
// Auth middleware. Presence of a non-empty id proves the middleware ran;
// every protected handler fast-fails here before touching a service.
func ctxActor(c echo.Context) (string, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
