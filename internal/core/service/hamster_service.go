package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/hamstery/hamstery-api/internal/api/metrics"
	"github.com/hamstery/hamstery-api/internal/core/domain"
	"github.com/hamstery/hamstery-api/internal/core/ports"
)

// HamsterService implements the hamster lifecycle and economy use cases.
// All validation happens before any write; a failed operation leaves every
// entity unchanged.
type HamsterService struct {
	hamsters ports.HamsterRepository
	users    ports.UserRepository
	names    ports.NameGenerator
	tx       ports.TxRunner
	locks    ports.EntityLocker
	log      zerolog.Logger
}

func NewHamsterService(
	hamsters ports.HamsterRepository,
	users ports.UserRepository,
	names ports.NameGenerator,
	tx ports.TxRunner,
	locks ports.EntityLocker,
	log zerolog.Logger,
) *HamsterService {
	return &HamsterService{
		hamsters: hamsters,
		users:    users,
		names:    names,
		tx:       tx,
		locks:    locks,
		log:      log,
	}
}

// ListOwned returns every hamster the actor owns. Scoped to the actor by
// construction, so no ownership check applies.
func (s *HamsterService) ListOwned(ctx context.Context, actorID string) ([]*domain.Hamster, error) {
	return s.hamsters.FindByOwner(ctx, actorID)
}

// Get returns a single hamster the actor may see.
func (s *HamsterService) Get(ctx context.Context, actorID, hamsterID string) (*domain.Hamster, error) {
	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	h, err := s.hamsters.FindByID(ctx, hamsterID)
	if err != nil {
		return nil, err
	}
	if !domain.CanAct(actor, h.OwnerID) {
		return nil, domain.ErrForbidden
	}
	return h, nil
}

// Feed refills the hamster's hunger to the maximum and charges the actor
// the difference. Both entities commit in one transaction; the hamster lock
// keeps concurrent feeds from double-charging.
func (s *HamsterService) Feed(ctx context.Context, actorID, hamsterID string) (*ports.FeedResult, error) {
	release, err := s.locks.Acquire(ctx, "hamster:"+hamsterID)
	if err != nil {
		return nil, err
	}
	defer release()

	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	h, err := s.hamsters.FindByID(ctx, hamsterID)
	if err != nil {
		return nil, err
	}
	if !domain.CanAct(actor, h.OwnerID) {
		return nil, domain.ErrForbidden
	}
	if !h.Active {
		return nil, domain.ErrHamsterInactive
	}
	if h.Hunger >= domain.MaxHunger {
		return nil, domain.ErrHamsterFull
	}

	cost := h.FeedCost()
	if actor.Gold < cost {
		return nil, domain.ErrInsufficientGold
	}

	h.Hunger = domain.MaxHunger

	// The guarded debit runs first: the balance read above may be stale by
	// the time the transaction executes, and AdjustGold re-checks coverage
	// against the stored balance.
	var balance int
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		balance, err = s.users.AdjustGold(ctx, actor.ID, -cost)
		if err != nil {
			return err
		}
		return s.hamsters.Update(ctx, h)
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientGold) {
			return nil, err
		}
		s.log.Error().Err(err).Str("hamster_id", h.ID).Msg("feed commit failed")
		return nil, err
	}

	metrics.HamstersFedTotal.Inc()
	metrics.GoldSpentTotal.Add(float64(cost))
	s.log.Info().Str("hamster_id", h.ID).Str("payer_id", actor.ID).Int("cost", cost).Msg("hamster fed")

	return &ports.FeedResult{Gold: balance, Hamster: h}, nil
}

// Sell credits the fixed payout to the actor and removes the hamster.
// Permitted regardless of the hamster's active flag.
func (s *HamsterService) Sell(ctx context.Context, actorID, hamsterID string) (*ports.SellResult, error) {
	release, err := s.locks.Acquire(ctx, "hamster:"+hamsterID)
	if err != nil {
		return nil, err
	}
	defer release()

	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	h, err := s.hamsters.FindByID(ctx, hamsterID)
	if err != nil {
		return nil, err
	}
	if !domain.CanAct(actor, h.OwnerID) {
		return nil, domain.ErrForbidden
	}

	var balance int
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.hamsters.Delete(ctx, h.ID); err != nil {
			return err
		}
		balance, err = s.users.AdjustGold(ctx, actor.ID, domain.SalePayout)
		return err
	})
	if err != nil {
		s.log.Error().Err(err).Str("hamster_id", h.ID).Msg("sell commit failed")
		return nil, err
	}

	metrics.HamstersSoldTotal.Inc()
	metrics.GoldEarnedTotal.Add(float64(domain.SalePayout))
	s.log.Info().Str("hamster_id", h.ID).Str("seller_id", actor.ID).Msg("hamster sold")

	return &ports.SellResult{Gold: balance}, nil
}

// SleepAll ages every hamster the actor owns by days. Inactive hamsters are
// skipped. The batch is best-effort: each hamster commits on its own, and a
// failed update is logged without blocking the rest.
func (s *HamsterService) SleepAll(ctx context.Context, actorID string, days int) error {
	if days <= 0 {
		return domain.ErrInvalidDays
	}

	owned, err := s.hamsters.FindByOwner(ctx, actorID)
	if err != nil {
		return err
	}

	for _, h := range owned {
		if !h.Active {
			continue
		}
		h.Sleep(days)
		if err := s.hamsters.Update(ctx, h); err != nil {
			s.log.Warn().Err(err).Str("hamster_id", h.ID).Msg("sleep update failed, continuing batch")
			continue
		}
		if !h.Active {
			metrics.HamstersRetiredTotal.Inc()
			s.log.Info().Str("hamster_id", h.ID).Int("age", h.Age).Int("hunger", h.Hunger).Msg("hamster retired")
		}
	}

	return nil
}

// Rename updates the hamster's display name. Activity is not a gate here.
func (s *HamsterService) Rename(ctx context.Context, actorID, hamsterID, name string) (*domain.Hamster, error) {
	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}
	h, err := s.hamsters.FindByID(ctx, hamsterID)
	if err != nil {
		return nil, err
	}
	if !domain.CanAct(actor, h.OwnerID) {
		return nil, domain.ErrForbidden
	}
	if !domain.ValidName(name) {
		return nil, domain.ErrNameTooShort
	}

	h.Name = name
	if err := s.hamsters.Update(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

// Reproduce creates an offspring owned by the actor from two distinct active
// parents. The ownership-or-override policy is evaluated per parent. The
// offspring's name and genre are generated independently of the parents.
func (s *HamsterService) Reproduce(ctx context.Context, actorID, parentID1, parentID2 string) (*domain.Hamster, error) {
	if parentID1 == "" || parentID2 == "" || parentID1 == parentID2 {
		return nil, domain.ErrSameHamster
	}

	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return nil, err
	}

	p1, err := s.hamsters.FindByID(ctx, parentID1)
	if err != nil {
		return nil, err
	}
	p2, err := s.hamsters.FindByID(ctx, parentID2)
	if err != nil {
		return nil, err
	}

	if !domain.CanAct(actor, p1.OwnerID) || !domain.CanAct(actor, p2.OwnerID) {
		return nil, domain.ErrForbidden
	}
	if !p1.Active || !p2.Active {
		return nil, domain.ErrHamsterInactive
	}

	baby, err := s.hamsters.Create(ctx, &domain.Hamster{
		OwnerID: actor.ID,
		Name:    s.names.FirstName(),
		Genre:   s.names.Genre(),
		Age:     0,
		Hunger:  domain.MaxHunger,
		Active:  true,
	})
	if err != nil {
		return nil, err
	}

	metrics.HamstersBredTotal.Inc()
	s.log.Info().
		Str("hamster_id", baby.ID).
		Str("parent1_id", p1.ID).
		Str("parent2_id", p2.ID).
		Str("owner_id", actor.ID).
		Msg("hamster born")

	return baby, nil
}
