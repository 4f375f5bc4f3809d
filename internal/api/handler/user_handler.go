package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hamstery/hamstery-api/internal/core/ports"
)

// UserHandler handles HTTP requests for account operations.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Current handles GET /api/user.
//
// @Summary      Get the current user's profile and hamsters
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/user [get]
func (h *UserHandler) Current(c echo.Context) error {
	actorID, err := ctxActor(c)
	if err != nil {
		return err
	}

	profile, err := h.service.Profile(c.Request().Context(), actorID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(profile.User, profile.Hamsters))
}

// Delete handles DELETE /api/users/:id. Admin only (enforced by RBAC
// middleware on the route, re-checked in the service).
//
// @Summary      Delete a user and all their hamsters
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	actorID, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actorID, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "user and hamsters deleted"})
}
