package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/goaltracker/goal-tracker-api/internal/core/domain"
	"github.com/goaltracker/goal-tracker-api/internal/core/ports"
)

// UserCache abstracts the short-lived user lookup cache (Redis). Only public
// user fields are ever cached; the digest stays in the primary store.
type UserCache interface {
	Get(ctx context.Context, id string) (*domain.User, bool, error)
	Set(ctx context.Context, user *domain.User) error
	Invalidate(ctx context.Context, id string) error
}

// UserService implements ports.UserService. The cache is optional: a nil
// cache degrades to direct repository lookups.
type UserService struct {
	repo  ports.UserRepository
	cache UserCache
	log   zerolog.Logger
}

func NewUserService(repo ports.UserRepository, cache UserCache, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, cache: cache, log: log}
}

// Resolve turns a token subject into a live account. Cache failures are
// logged and treated as misses so Redis outages never block authentication.
func (s *UserService) Resolve(ctx context.Context, id string) (*domain.User, error) {
	if s.cache != nil {
		user, ok, err := s.cache.Get(ctx, id)
		if err != nil {
			s.log.Warn().Err(err).Str("user_id", id).Msg("user cache read failed")
		} else if ok {
			return user, nil
		}
	}

	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	public := user.Public()
	if s.cache != nil {
		if err := s.cache.Set(ctx, public); err != nil {
			s.log.Warn().Err(err).Str("user_id", id).Msg("user cache write failed")
		}
	}
	return public, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out, nil
}

func (s *UserService) Update(ctx context.Context, id, name, email string) (*domain.User, error) {
	if name == "" && email == "" {
		return nil, domain.ErrMissingFields
	}

	updated, err := s.repo.Update(ctx, id, name, email)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	return updated.Public(), nil
}

// Delete removes the account and drops its cache entry so a still-valid
// token for the deleted user stops resolving immediately.
func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *UserService) invalidate(ctx context.Context, id string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.log.Warn().Err(err).Str("user_id", id).Msg("user cache invalidation failed")
	}
}
