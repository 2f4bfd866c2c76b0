package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/goaltracker/goal-tracker-api/internal/core/domain"
	"github.com/goaltracker/goal-tracker-api/internal/core/service"
)

type stubResolver struct {
	users map[string]*domain.User
}

func (r *stubResolver) Resolve(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func newGuard(secret string, users map[string]*domain.User) echo.MiddlewareFunc {
	return Auth(service.NewJWTTokenService(secret, time.Hour), &stubResolver{users: users})
}

func invoke(t *testing.T, mw echo.MiddlewareFunc, header string) (*httptest.ResponseRecorder, bool, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	return rec, called, handler(c)
}

func assertUnauthorized(t *testing.T, called bool, err error) {
	t.Helper()
	if called {
		t.Fatalf("handler must not run")
	}
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
	if he.Message != "not authorized" {
		t.Fatalf("rejection must not leak which check failed, got %v", he.Message)
	}
}

func TestAuthGuard_ValidToken(t *testing.T) {
	users := map[string]*domain.User{
		"u1": {ID: "u1", Name: "alice", Email: "a@x.com", PasswordHash: "$2a$digest"},
	}
	tokens := service.NewJWTTokenService("secret", time.Hour)
	token, err := tokens.Issue("u1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := newGuard("secret", users)(func(c echo.Context) error {
		called = true
		user, ok := c.Get(UserKey).(*domain.User)
		if !ok || user.ID != "u1" {
			t.Fatalf("resolved user not in context: %v", c.Get(UserKey))
		}
		if user.PasswordHash != "" {
			t.Fatalf("context user carries password digest")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthGuard_MissingHeader(t *testing.T) {
	_, called, err := invoke(t, newGuard("secret", nil), "")
	assertUnauthorized(t, called, err)
}

func TestAuthGuard_MalformedHeader(t *testing.T) {
	for _, header := range []string{"Bearer", "Basic abc", "token-without-scheme"} {
		_, called, err := invoke(t, newGuard("secret", nil), header)
		assertUnauthorized(t, called, err)
	}
}

func TestAuthGuard_BadSignature(t *testing.T) {
	other := service.NewJWTTokenService("other-secret", time.Hour)
	token, err := other.Issue("u1")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	_, called, guardErr := invoke(t, newGuard("secret", nil), "Bearer "+token)
	assertUnauthorized(t, called, guardErr)
}

func TestAuthGuard_ExpiredToken(t *testing.T) {
	now := time.Now()
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "u1",
		"iat": now.Add(-31 * 24 * time.Hour).Unix(),
		"exp": now.Add(-time.Second).Unix(),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	users := map[string]*domain.User{"u1": {ID: "u1"}}
	_, called, guardErr := invoke(t, newGuard("secret", users), "Bearer "+expired)
	assertUnauthorized(t, called, guardErr)
}

func TestAuthGuard_DeletedSubject(t *testing.T) {
	tokens := service.NewJWTTokenService("secret", time.Hour)
	token, err := tokens.Issue("gone")
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	// Signature and expiry are fine, but the account no longer exists.
	_, called, guardErr := invoke(t, newGuard("secret", map[string]*domain.User{}), "Bearer "+token)
	assertUnauthorized(t, called, guardErr)
}
