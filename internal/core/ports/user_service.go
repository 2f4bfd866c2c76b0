package ports

import (
	"context"

	"github.com/goaltracker/goal-tracker-api/internal/core/domain"
)

// UserService exposes account reads and plain CRUD on user records.
// Resolve is the hot path: the access guard calls it on every authenticated
// request to turn a token subject back into a live account.
type UserService interface {
	Resolve(ctx context.Context, id string) (*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id, name, email string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
