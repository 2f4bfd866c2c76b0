package ports

import (
	"context"

	"github.com/goaltracker/goal-tracker-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Create must surface a storage-level uniqueness violation on the display
// name as domain.ErrUserExists so concurrent duplicate registrations collapse
// into the same conflict as the pre-check.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByName(ctx context.Context, name string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, name, email string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
