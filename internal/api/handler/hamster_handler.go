package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/hamstery/hamstery-api/internal/core/domain"
	"github.com/hamstery/hamstery-api/internal/core/ports"
)

// HamsterHandler handles HTTP requests for hamster operations.
type HamsterHandler struct {
	service ports.HamsterService
}

func NewHamsterHandler(service ports.HamsterService) *HamsterHandler {
	return &HamsterHandler{service: service}
}

type reproduceRequest struct {
	ParentID1 string `json:"id_hamster_1" validate:"required"`
	ParentID2 string `json:"id_hamster_2" validate:"required"`
}

type renameRequest struct {
	Name string `json:"name" validate:"required"`
}

type feedResponse struct {
	Gold    int             `json:"gold"`
	Hamster hamsterResponse `json:"hamster"`
}

type sellResponse struct {
	Message string `json:"message"`
	Gold    int    `json:"gold"`
}

type sleepResponse struct {
	Message string `json:"message"`
}

// List handles GET /api/hamsters.
//
// @Summary      List the hamsters owned by the current user
// @Tags         hamsters
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   hamsterResponse
// @Failure      401  {object}  map[string]string
// @Router       /api/hamsters [get]
func (h *HamsterHandler) List(c echo.Context) error {
	actorID, err := ctxActor(c)
	if err != nil {
		return err
	}

	owned, err := h.service.ListOwned(c.Request().Context(), actorID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toHamsterResponses(owned))
}

// Get handles GET /api/hamsters/:id.
//
// @Summary      Get a hamster by id
// @Tags         hamsters
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Hamster id"
// @Success      200  {object}  hamsterResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/hamsters/{id} [get]
func (h *HamsterHandler) Get(c echo.Context) error {
	actorID, err := ctxActor(c)
	if err != nil {
		return err
	}

	hamster, err := h.service.Get(c.Request().Context(), actorID, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toHamsterResponse(hamster))
}

// Reproduce handles POST /api/hamsters/reproduce.
//
// @Summary      Create an offspring from two active hamsters
// @Tags         hamsters
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      reproduceRequest  true  "Parent hamster ids"
// @Success      201   {object}  hamsterResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/hamsters/reproduce [post]
func (h *HamsterHandler) Reproduce(c echo.Context) error {
	actorID, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req reproduceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	baby, err := h.service.Reproduce(c.Request().Context(), actorID, req.ParentID1, req.ParentID2)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toHamsterResponse(baby))
}

// Feed handles POST /api/hamsters/:id/feed.
//
// @Summary      Feed a hamster back to full hunger
// @Tags         hamsters
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Hamster id"
// @Success      200  {object}  feedResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /api/hamsters/{id}/feed [post]
func (h *HamsterHandler) Feed(c echo.Context) error {
	actorID, err := ctxActor(c)
	if err != nil {
		return err
	}

	result, err := h.service.Feed(c.Request().Context(), actorID, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, feedResponse{
		Gold:    result.Gold,
		Hamster: toHamsterResponse(result.Hamster),
	})
}

// Sell handles POST /api/hamsters/:id/sell.
//
// @Summary      Sell a hamster for the fixed payout
// @Tags         hamsters
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Hamster id"
// @Success      200  {object}  sellResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/hamsters/{id}/sell [post]
func (h *HamsterHandler) Sell(c echo.Context) error {
	actorID, err := ctxActor(c)
	if err != nil {
		return err
	}

	result, err := h.service.Sell(c.Request().Context(), actorID, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sellResponse{Message: "hamster sold", Gold: result.Gold})
}

// Sleep handles POST /api/hamsters/sleep/:days.
//
// @Summary      Age all owned hamsters by a number of days
// @Tags         hamsters
// @Produce      json
// @Security     BearerAuth
// @Param        days  path      int  true  "Number of days"
// @Success      200   {object}  sleepResponse
// @Failure      400   {object}  map[string]string
// @Router       /api/hamsters/sleep/{days} [post]
func (h *HamsterHandler) Sleep(c echo.Context) error {
	actorID, err := ctxActor(c)
	if err != nil {
		return err
	}

	days, err := strconv.Atoi(c.Param("days"))
	if err != nil {
		return domain.ErrInvalidDays
	}

	if err := h.service.SleepAll(c.Request().Context(), actorID, days); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, sleepResponse{
		Message: "all hamsters slept " + strconv.Itoa(days) + " days",
	})
}

// Rename handles PUT /api/hamsters/:id/rename.
//
// @Summary      Rename a hamster
// @Tags         hamsters
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Hamster id"
// @Param        body  body      renameRequest  true  "New name"
// @Success      200   {object}  hamsterResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/hamsters/{id}/rename [put]
func (h *HamsterHandler) Rename(c echo.Context) error {
	actorID, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req renameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hamster, err := h.service.Rename(c.Request().Context(), actorID, c.Param("id"), req.Name)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toHamsterResponse(hamster))
}
