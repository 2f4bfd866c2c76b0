package ports

import (
	"context"

	"github.com/goaltracker/goal-tracker-api/internal/core/domain"
)

// GoalRepository defines persistence operations for goals.
// FindByID returns the goal regardless of owner; owner checks belong to the
// service layer. ListByOwner is always scoped to a single user.
type GoalRepository interface {
	Create(ctx context.Context, goal *domain.Goal) (*domain.Goal, error)
	FindByID(ctx context.Context, id string) (*domain.Goal, error)
	ListByOwner(ctx context.Context, userID string) ([]*domain.Goal, error)
	UpdateText(ctx context.Context, id, text string) (*domain.Goal, error)
	Delete(ctx context.Context, id string) error
}
