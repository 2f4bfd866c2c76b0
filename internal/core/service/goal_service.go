package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/goaltracker/goal-tracker-api/internal/core/domain"
	"github.com/goaltracker/goal-tracker-api/internal/core/ports"
)

// GoalService implements goal CRUD with per-owner authorization. Mutations go
// through loadOwned, which must succeed before the store is touched.
type GoalService struct {
	repo ports.GoalRepository
	log  zerolog.Logger
}

func NewGoalService(repo ports.GoalRepository, log zerolog.Logger) *GoalService {
	return &GoalService{repo: repo, log: log}
}

func (s *GoalService) Create(ctx context.Context, ownerID, text string) (*domain.Goal, error) {
	if text == "" {
		return nil, domain.ErrMissingFields
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Goal{
		UserID:    ownerID,
		Text:      text,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("goal_id", created.ID).Str("user_id", ownerID).Msg("goal created")
	return created, nil
}

// Get fetches a single goal. On read paths an ownership mismatch is reported
// as not-found so existence of other tenants' goals is never revealed.
func (s *GoalService) Get(ctx context.Context, ownerID, goalID string) (*domain.Goal, error) {
	goal, err := s.loadOwned(ctx, ownerID, goalID)
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthorized) {
			return nil, domain.ErrGoalNotFound
		}
		return nil, err
	}
	return goal, nil
}

func (s *GoalService) List(ctx context.Context, ownerID string) ([]*domain.Goal, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *GoalService) Update(ctx context.Context, ownerID, goalID, text string) (*domain.Goal, error) {
	if text == "" {
		return nil, domain.ErrMissingFields
	}

	if _, err := s.loadOwned(ctx, ownerID, goalID); err != nil {
		return nil, err
	}
	return s.repo.UpdateText(ctx, goalID, text)
}

func (s *GoalService) Delete(ctx context.Context, ownerID, goalID string) error {
	if _, err := s.loadOwned(ctx, ownerID, goalID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, goalID); err != nil {
		return err
	}

	s.log.Info().Str("goal_id", goalID).Str("user_id", ownerID).Msg("goal deleted")
	return nil
}

// loadOwned resolves a goal id against an authenticated owner. Malformed ids
// fail fast in the repository before the store is queried; an absent goal is
// ErrGoalNotFound; a goal owned by someone else is ErrNotAuthorized, distinct
// from not-found because the resource does exist.
func (s *GoalService) loadOwned(ctx context.Context, ownerID, goalID string) (*domain.Goal, error) {
	goal, err := s.repo.FindByID(ctx, goalID)
	if err != nil {
		return nil, err
	}
	if !goal.OwnedBy(ownerID) {
		s.log.Warn().Str("goal_id", goalID).Str("user_id", ownerID).Str("owner_id", goal.UserID).Msg("ownership check failed")
		return nil, domain.ErrNotAuthorized
	}
	return goal, nil
}
