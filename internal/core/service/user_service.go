package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hamstery/hamstery-api/internal/core/domain"
	"github.com/hamstery/hamstery-api/internal/core/ports"
)

// UserService implements account-level use cases.
type UserService struct {
	users    ports.UserRepository
	hamsters ports.HamsterRepository
	tx       ports.TxRunner
	log      zerolog.Logger
}

func NewUserService(
	users ports.UserRepository,
	hamsters ports.HamsterRepository,
	tx ports.TxRunner,
	log zerolog.Logger,
) *UserService {
	return &UserService{users: users, hamsters: hamsters, tx: tx, log: log}
}

// Profile returns the actor's account and every hamster they own.
func (s *UserService) Profile(ctx context.Context, actorID string) (*ports.Profile, error) {
	user, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	owned, err := s.hamsters.FindByOwner(ctx, actorID)
	if err != nil {
		return nil, err
	}
	return &ports.Profile{User: user, Hamsters: owned}, nil
}

// Delete removes the target user and cascades to all their hamsters.
// Requires the admin role.
func (s *UserService) Delete(ctx context.Context, actorID, targetID string) error {
	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}

	target, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return err
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.hamsters.DeleteByOwner(ctx, target.ID); err != nil {
			return err
		}
		return s.users.Delete(ctx, target.ID)
	})
	if err != nil {
		s.log.Error().Err(err).Str("user_id", target.ID).Msg("user delete failed")
		return err
	}

	s.log.Info().Str("user_id", target.ID).Str("deleted_by", actor.ID).Msg("user and hamsters deleted")
	return nil
}
