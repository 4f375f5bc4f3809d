package ports

import (
	"context"

	"github.com/hamstery/hamstery-api/internal/core/domain"
)

// FeedResult is returned after a successful feeding.
type FeedResult struct {
	Gold    int
	Hamster *domain.Hamster
}

// SellResult is returned after a successful sale.
type SellResult struct {
	Gold int
}

// HamsterService defines the hamster lifecycle and economy use cases.
// Every operation takes the acting user's id explicitly; the core never
// reaches into ambient session state.
type HamsterService interface {
	ListOwned(ctx context.Context, actorID string) ([]*domain.Hamster, error)
	Get(ctx context.Context, actorID, hamsterID string) (*domain.Hamster, error)
	// Reproduce creates a new hamster owned by the actor from two distinct
	// active parents the actor may act on.
	Reproduce(ctx context.Context, actorID, parentID1, parentID2 string) (*domain.Hamster, error)
	// Feed refills the hamster's hunger and charges the actor the cost.
	Feed(ctx context.Context, actorID, hamsterID string) (*FeedResult, error)
	// Sell credits the fixed payout to the actor and removes the hamster.
	Sell(ctx context.Context, actorID, hamsterID string) (*SellResult, error)
	// SleepAll ages every hamster the actor owns by days. Best-effort batch:
	// one hamster failing to persist does not block the others.
	SleepAll(ctx context.Context, actorID string, days int) error
	Rename(ctx context.Context, actorID, hamsterID, name string) (*domain.Hamster, error)
}
