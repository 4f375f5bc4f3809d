package ports

import (
	"context"

	"github.com/hamstery/hamstery-api/internal/core/domain"
)

// RegisterResult is returned after provisioning a new account.
type RegisterResult struct {
	User     *domain.User
	Hamsters []*domain.Hamster
}

// AuthService covers account provisioning and session issuance.
type AuthService interface {
	// Register provisions a user with the starter gold balance and the
	// starter litter.
	Register(ctx context.Context, email, password string) (*RegisterResult, error)
	// Login verifies credentials and returns a signed session token.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
