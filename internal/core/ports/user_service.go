package ports

import (
	"context"

	"github.com/hamstery/hamstery-api/internal/core/domain"
)

// Profile is the full account view: the user and every hamster they own.
type Profile struct {
	User     *domain.User
	Hamsters []*domain.Hamster
}

// UserService defines account-level use cases.
type UserService interface {
	Profile(ctx context.Context, actorID string) (*Profile, error)
	// Delete removes the target user and all their hamsters. Admin only.
	Delete(ctx context.Context, actorID, targetID string) error
}
