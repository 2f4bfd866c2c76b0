package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/goaltracker/goal-tracker-api/internal/api/metrics"
	"github.com/goaltracker/goal-tracker-api/internal/core/domain"
	"github.com/goaltracker/goal-tracker-api/internal/core/ports"
)

// GoalHandler serves goal CRUD. Every route sits behind the access guard; the
// owner id always comes from the resolved user, never from the payload.
type GoalHandler struct {
	goalService ports.GoalService
}

func NewGoalHandler(goalService ports.GoalService) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

type goalRequest struct {
	Text string `json:"text" validate:"required"`
}

// List returns the authenticated user's goals.
//
// @Summary      List own goals
// @Tags         goals
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Goal
// @Failure      401  {object}  errorResponse
// @Router       /api/goals [get]
func (h *GoalHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	goals, err := h.goalService.List(c.Request().Context(), user.ID)
	if err != nil {
		metrics.GoalOperationsTotal.WithLabelValues("list", goalResult(err)).Inc()
		return err
	}

	metrics.GoalOperationsTotal.WithLabelValues("list", "success").Inc()
	return c.JSON(http.StatusOK, goals)
}

// Create adds a goal owned by the authenticated user.
//
// @Summary      Create a goal
// @Tags         goals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      goalRequest  true  "Goal text"
// @Success      201   {object}  domain.Goal
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/goals [post]
func (h *GoalHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req goalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.GoalOperationsTotal.WithLabelValues("create", "invalid").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	goal, err := h.goalService.Create(c.Request().Context(), user.ID, req.Text)
	if err != nil {
		metrics.GoalOperationsTotal.WithLabelValues("create", goalResult(err)).Inc()
		return err
	}

	metrics.GoalOperationsTotal.WithLabelValues("create", "success").Inc()
	return c.JSON(http.StatusCreated, goal)
}

// Get returns a single goal owned by the authenticated user.
//
// @Summary      Get a goal
// @Tags         goals
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Goal id"
// @Success      200  {object}  domain.Goal
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/goals/{id} [get]
func (h *GoalHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	goal, err := h.goalService.Get(c.Request().Context(), user.ID, c.Param("id"))
	if err != nil {
		metrics.GoalOperationsTotal.WithLabelValues("get", goalResult(err)).Inc()
		return err
	}

	metrics.GoalOperationsTotal.WithLabelValues("get", "success").Inc()
	return c.JSON(http.StatusOK, goal)
}

// Update replaces the text of an owned goal. The ownership check runs inside
// the service before any store write.
//
// @Summary      Update a goal
// @Tags         goals
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Goal id"
// @Param        body  body      goalRequest  true  "New text"
// @Success      200   {object}  domain.Goal
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/goals/{id} [put]
func (h *GoalHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req goalRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.GoalOperationsTotal.WithLabelValues("update", "invalid").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	goal, err := h.goalService.Update(c.Request().Context(), user.ID, c.Param("id"), req.Text)
	if err != nil {
		metrics.GoalOperationsTotal.WithLabelValues("update", goalResult(err)).Inc()
		return err
	}

	metrics.GoalOperationsTotal.WithLabelValues("update", "success").Inc()
	return c.JSON(http.StatusOK, goal)
}

// Delete removes an owned goal.
//
// @Summary      Delete a goal
// @Tags         goals
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Goal id"
// @Success      200  {object}  deletedResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/goals/{id} [delete]
func (h *GoalHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.goalService.Delete(c.Request().Context(), user.ID, id); err != nil {
		metrics.GoalOperationsTotal.WithLabelValues("delete", goalResult(err)).Inc()
		return err
	}

	metrics.GoalOperationsTotal.WithLabelValues("delete", "success").Inc()
	return c.JSON(http.StatusOK, deletedResponse{ID: id})
}

func goalResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrGoalNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrNotAuthorized):
		return "denied"
	case errors.Is(err, domain.ErrMissingFields):
		return "invalid"
	default:
		return "error"
	}
}
