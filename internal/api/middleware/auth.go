package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/goaltracker/goal-tracker-api/internal/api/metrics"
	"github.com/goaltracker/goal-tracker-api/internal/core/domain"
	"github.com/goaltracker/goal-tracker-api/internal/core/ports"
)

// UserKey is the echo context key under which the guard stores the resolved
// user (public fields only).
const UserKey = "authUser"

// UserResolver turns a verified token subject into a live account.
type UserResolver interface {
	Resolve(ctx context.Context, id string) (*domain.User, error)
}

// Auth is the access guard: it extracts the bearer token, verifies it, and
// resolves the subject to a live user before the handler runs. Every failure
// mode returns the same 401 so a caller cannot tell which check tripped.
// The guard has no side effects beyond context mutation and rejection.
func Auth(tokens ports.TokenService, users UserResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized")
			}

			start := time.Now()

			userID, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized")
			}

			// A structurally valid token may outlive its account; a
			// deleted subject must not pass the gate.
			user, err := users.Resolve(c.Request().Context(), userID)
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("unresolved").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "not authorized")
			}

			metrics.TokenResolveDuration.Observe(time.Since(start).Seconds())
			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()

			c.Set(UserKey, user.Public())
			return next(c)
		}
	}
}
