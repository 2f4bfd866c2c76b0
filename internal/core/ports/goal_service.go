package ports

import (
	"context"

	"github.com/goaltracker/goal-tracker-api/internal/core/domain"
)

// GoalService defines use-case operations on goals. The owner id always comes
// from the authenticated request context, never from the payload. Update and
// Delete assert ownership before touching the store: a goal owned by someone
// else yields domain.ErrNotAuthorized, distinct from domain.ErrGoalNotFound.
type GoalService interface {
	Create(ctx context.Context, ownerID, text string) (*domain.Goal, error)
	Get(ctx context.Context, ownerID, goalID string) (*domain.Goal, error)
	List(ctx context.Context, ownerID string) ([]*domain.Goal, error)
	Update(ctx context.Context, ownerID, goalID, text string) (*domain.Goal, error)
	Delete(ctx context.Context, ownerID, goalID string) error
}
