package service

import (
	"context"
	"fmt"

	"github.com/hamstery/hamstery-api/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories and capabilities
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	clone.Roles = append([]string(nil), u.Roles...)
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	created := cloneUser(user)
	if created.ID == "" {
		r.nextID++
		created.ID = fmt.Sprintf("u%d", r.nextID)
	}
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) AdjustGold(_ context.Context, id string, delta int) (int, error) {
	u, ok := r.users[id]
	if !ok {
		return 0, domain.ErrUserNotFound
	}
	if delta < 0 && u.Gold < -delta {
		return 0, domain.ErrInsufficientGold
	}
	u.Gold += delta
	return u.Gold, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type stubHamsterRepo struct {
	hamsters    map[string]*domain.Hamster
	nextID      int
	updateErr   map[string]error // per-hamster forced Update failures
	createCalls int
	createErrAt int   // 1-based Create call that fails; 0 disables
	createErr   error // error returned by the failing Create
}

func newStubHamsterRepo() *stubHamsterRepo {
	return &stubHamsterRepo{
		hamsters:  make(map[string]*domain.Hamster),
		updateErr: make(map[string]error),
	}
}

func cloneHamster(h *domain.Hamster) *domain.Hamster {
	clone := *h
	return &clone
}

func (r *stubHamsterRepo) Create(_ context.Context, h *domain.Hamster) (*domain.Hamster, error) {
	r.createCalls++
	if r.createErrAt != 0 && r.createCalls == r.createErrAt {
		return nil, r.createErr
	}
	created := cloneHamster(h)
	if created.ID == "" {
		r.nextID++
		created.ID = fmt.Sprintf("h%d", r.nextID)
	}
	r.hamsters[created.ID] = cloneHamster(created)
	return created, nil
}

func (r *stubHamsterRepo) FindByID(_ context.Context, id string) (*domain.Hamster, error) {
	h, ok := r.hamsters[id]
	if !ok {
		return nil, domain.ErrHamsterNotFound
	}
	return cloneHamster(h), nil
}

func (r *stubHamsterRepo) FindByOwner(_ context.Context, ownerID string) ([]*domain.Hamster, error) {
	var out []*domain.Hamster
	for _, h := range r.hamsters {
		if h.OwnerID == ownerID {
			out = append(out, cloneHamster(h))
		}
	}
	return out, nil
}

func (r *stubHamsterRepo) Update(_ context.Context, h *domain.Hamster) error {
	if err := r.updateErr[h.ID]; err != nil {
		return err
	}
	if _, ok := r.hamsters[h.ID]; !ok {
		return domain.ErrHamsterNotFound
	}
	r.hamsters[h.ID] = cloneHamster(h)
	return nil
}

func (r *stubHamsterRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.hamsters[id]; !ok {
		return domain.ErrHamsterNotFound
	}
	delete(r.hamsters, id)
	return nil
}

func (r *stubHamsterRepo) DeleteByOwner(_ context.Context, ownerID string) (int64, error) {
	var n int64
	for id, h := range r.hamsters {
		if h.OwnerID == ownerID {
			delete(r.hamsters, id)
			n++
		}
	}
	return n, nil
}

// stubTx runs the callback directly; set err to simulate a commit failure,
// or before to interleave a concurrent mutation ahead of the transaction.
type stubTx struct {
	err    error
	calls  int
	before func()
}

func (t *stubTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	if t.err != nil {
		return t.err
	}
	if t.before != nil {
		t.before()
	}
	return fn(ctx)
}

// rollbackTx snapshots both stub repositories before running the callback and
// restores them when it fails, mirroring an aborted session transaction.
type rollbackTx struct {
	users    *stubUserRepo
	hamsters *stubHamsterRepo
}

func (t *rollbackTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	userSnap := make(map[string]*domain.User, len(t.users.users))
	for id, u := range t.users.users {
		userSnap[id] = cloneUser(u)
	}
	hamsterSnap := make(map[string]*domain.Hamster, len(t.hamsters.hamsters))
	for id, h := range t.hamsters.hamsters {
		hamsterSnap[id] = cloneHamster(h)
	}

	if err := fn(ctx); err != nil {
		t.users.users = userSnap
		t.hamsters.hamsters = hamsterSnap
		return err
	}
	return nil
}

// stubLocker hands out no-op locks and records the keys requested.
type stubLocker struct {
	keys []string
}

func (l *stubLocker) Acquire(_ context.Context, key string) (func(), error) {
	l.keys = append(l.keys, key)
	return func() {}, nil
}

// stubNames returns deterministic names and genres.
type stubNames struct {
	names  []string
	genres []string
	n, g   int
}

func (s *stubNames) FirstName() string {
	if len(s.names) == 0 {
		return "Peanut"
	}
	name := s.names[s.n%len(s.names)]
	s.n++
	return name
}

func (s *stubNames) Genre() string {
	if len(s.genres) == 0 {
		return domain.GenreFemale
	}
	genre := s.genres[s.g%len(s.genres)]
	s.g++
	return genre
}
