package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/goaltracker/goal-tracker-api/internal/api/middleware"
	"github.com/goaltracker/goal-tracker-api/internal/core/domain"
)

// currentUser extracts the user injected by the access guard. Its presence
// proves the guard ran; a protected handler reached without it is a routing
// mistake and fails closed with 401.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := c.Get(middleware.UserKey).(*domain.User)
	if !ok || user == nil || user.ID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "not authorized")
	}
	return user, nil
}
