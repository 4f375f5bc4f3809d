package ports

import (
	"context"

	"github.com/hamstery/hamstery-api/internal/core/domain"
)

// HamsterRepository defines persistence operations for hamsters.
type HamsterRepository interface {
	Create(ctx context.Context, h *domain.Hamster) (*domain.Hamster, error)
	FindByID(ctx context.Context, id string) (*domain.Hamster, error)
	FindByOwner(ctx context.Context, ownerID string) ([]*domain.Hamster, error)
	Update(ctx context.Context, h *domain.Hamster) error
	Delete(ctx context.Context, id string) error
	// DeleteByOwner removes every hamster owned by ownerID and returns the
	// number of deleted records.
	DeleteByOwner(ctx context.Context, ownerID string) (int64, error)
}
