package ports

import (
	"context"

	"github.com/hamstery/hamstery-api/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// AdjustGold atomically adds delta to the user's gold balance and
	// returns the balance after the adjustment. A debit that would take
	// the balance below zero fails with domain.ErrInsufficientGold and
	// writes nothing, so a stale in-memory balance can never overdraw.
	AdjustGold(ctx context.Context, id string, delta int) (int, error)
	Delete(ctx context.Context, id string) error
}
