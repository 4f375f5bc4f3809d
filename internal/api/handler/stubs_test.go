package handler

import (
	"context"

	"github.com/hamstery/hamstery-api/internal/core/domain"
	"github.com/hamstery/hamstery-api/internal/core/ports"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, email, password string) (*ports.RegisterResult, error)
	loginFn    func(ctx context.Context, email, password string) (string, *domain.User, error)
}

func (s *stubAuthService) Register(ctx context.Context, email, password string) (*ports.RegisterResult, error) {
	return s.registerFn(ctx, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, email, password)
}

type stubHamsterService struct {
	listFn      func(ctx context.Context, actorID string) ([]*domain.Hamster, error)
	getFn       func(ctx context.Context, actorID, hamsterID string) (*domain.Hamster, error)
	reproduceFn func(ctx context.Context, actorID, parentID1, parentID2 string) (*domain.Hamster, error)
	feedFn      func(ctx context.Context, actorID, hamsterID string) (*ports.FeedResult, error)
	sellFn      func(ctx context.Context, actorID, hamsterID string) (*ports.SellResult, error)
	sleepFn     func(ctx context.Context, actorID string, days int) error
	renameFn    func(ctx context.Context, actorID, hamsterID, name string) (*domain.Hamster, error)
}

func (s *stubHamsterService) ListOwned(ctx context.Context, actorID string) ([]*domain.Hamster, error) {
	return s.listFn(ctx, actorID)
}

func (s *stubHamsterService) Get(ctx context.Context, actorID, hamsterID string) (*domain.Hamster, error) {
	return s.getFn(ctx, actorID, hamsterID)
}

func (s *stubHamsterService) Reproduce(ctx context.Context, actorID, parentID1, parentID2 string) (*domain.Hamster, error) {
	return s.reproduceFn(ctx, actorID, parentID1, parentID2)
}

func (s *stubHamsterService) Feed(ctx context.Context, actorID, hamsterID string) (*ports.FeedResult, error) {
	return s.feedFn(ctx, actorID, hamsterID)
}

func (s *stubHamsterService) Sell(ctx context.Context, actorID, hamsterID string) (*ports.SellResult, error) {
	return s.sellFn(ctx, actorID, hamsterID)
}

func (s *stubHamsterService) SleepAll(ctx context.Context, actorID string, days int) error {
	return s.sleepFn(ctx, actorID, days)
}

func (s *stubHamsterService) Rename(ctx context.Context, actorID, hamsterID, name string) (*domain.Hamster, error) {
	return s.renameFn(ctx, actorID, hamsterID, name)
}

type stubUserService struct {
	profileFn func(ctx context.Context, actorID string) (*ports.Profile, error)
	deleteFn  func(ctx context.Context, actorID, targetID string) error
}

func (s *stubUserService) Profile(ctx context.Context, actorID string) (*ports.Profile, error) {
	return s.profileFn(ctx, actorID)
}

func (s *stubUserService) Delete(ctx context.Context, actorID, targetID string) error {
	return s.deleteFn(ctx, actorID, targetID)
}
