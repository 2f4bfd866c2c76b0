package ports

import (
	"context"

	"github.com/goaltracker/goal-tracker-api/internal/core/domain"
)

// AuthResult is returned on successful registration or login. User carries
// public fields only; the digest never leaves the service layer.
type AuthResult struct {
	User  *domain.User
	Token string
}

// AuthService implements registration and login.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}
