package ports

import "context"

// TxRunner executes fn inside a single transaction. Every repository call
// made with the context passed to fn commits together or not at all.
// Operations that mutate more than one entity (feeding charges the payer and
// refills the hamster) run through it.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// EntityLocker serializes access to a single entity across concurrent
// requests. Feed and sell acquire the target hamster's lock so the
// gold-never-negative and sold-once guarantees hold under contention.
type EntityLocker interface {
	// Acquire blocks until the lock for key is held or ctx is done.
	// The returned release function must be called exactly once.
	Acquire(ctx context.Context, key string) (release func(), err error)
}
