package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/hamstery/hamstery-api/internal/core/domain"
	"github.com/hamstery/hamstery-api/internal/core/ports"
)

func TestUserHandler_Current(t *testing.T) {
	svc := &stubUserService{
		profileFn: func(_ context.Context, actorID string) (*ports.Profile, error) {
			if actorID != "u1" {
				t.Errorf("expected actor u1, got %s", actorID)
			}
			return &ports.Profile{
				User: &domain.User{ID: "u1", Email: "user@hamstery.dev", Roles: []string{domain.RoleUser}, Gold: 350},
				Hamsters: []*domain.Hamster{
					{ID: "h1", Name: "Biscuit", Genre: domain.GenreMale, Hunger: 70, Active: true},
					{ID: "h2", Name: "Clover", Genre: domain.GenreFemale, Hunger: 90, Active: true},
				},
			}, nil
		},
	}
	h := NewUserHandler(svc)

	c, rec := newTestContext(http.MethodGet, "/api/user", "")
	asActor(c, "u1")

	if err := h.Current(c); err != nil {
		t.Fatalf("Current returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp userResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Gold != 350 {
		t.Errorf("expected gold 350, got %d", resp.Gold)
	}
	if len(resp.Hamsters) != 2 {
		t.Errorf("expected 2 hamsters, got %d", len(resp.Hamsters))
	}
}

func TestUserHandler_Delete(t *testing.T) {
	var gotTarget string
	svc := &stubUserService{
		deleteFn: func(_ context.Context, actorID, targetID string) error {
			gotTarget = targetID
			return nil
		},
	}
	h := NewUserHandler(svc)

	c, rec := newTestContext(http.MethodDelete, "/api/users/u2", "")
	asActor(c, "admin")
	c.SetParamNames("id")
	c.SetParamValues("u2")

	if err := h.Delete(c); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotTarget != "u2" {
		t.Errorf("expected target u2, got %s", gotTarget)
	}
}

func TestUserHandler_DeleteForbidden(t *testing.T) {
	svc := &stubUserService{
		deleteFn: func(_ context.Context, _, _ string) error {
			return domain.ErrForbidden
		},
	}
	h := NewUserHandler(svc)

	c, _ := newTestContext(http.MethodDelete, "/api/users/u2", "")
	asActor(c, "u1")
	c.SetParamNames("id")
	c.SetParamValues("u2")

	if err := h.Delete(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
