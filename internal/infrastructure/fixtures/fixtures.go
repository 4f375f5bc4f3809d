// Package fixtures seeds demo accounts for local development. Enabled with
// SEED_DEMO_DATA=true; loading is idempotent, existing accounts are kept.
package fixtures

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/hamstery/hamstery-api/internal/core/domain"
	"github.com/hamstery/hamstery-api/internal/core/ports"
)

type demoAccount struct {
	email    string
	password string
	roles    []string
}

var demoAccounts = []demoAccount{
	{email: "user@hamstery.dev", password: "password123", roles: []string{domain.RoleUser}},
	{email: "admin@hamstery.dev", password: "admin-password", roles: []string{domain.RoleUser, domain.RoleAdmin}},
}

// Load creates the demo accounts, each with the starter gold balance and a
// starter litter, skipping any account whose email already exists.
func Load(
	ctx context.Context,
	users ports.UserRepository,
	hamsters ports.HamsterRepository,
	names ports.NameGenerator,
	log zerolog.Logger,
) error {
	for _, acc := range demoAccounts {
		if _, err := users.FindByEmail(ctx, acc.email); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return fmt.Errorf("fixtures: lookup %s: %w", acc.email, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(acc.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("fixtures: hash password: %w", err)
		}

		user, err := users.Create(ctx, &domain.User{
			Email:        acc.email,
			PasswordHash: string(hash),
			Roles:        acc.roles,
			Gold:         domain.StarterGold,
		})
		if err != nil {
			return fmt.Errorf("fixtures: create %s: %w", acc.email, err)
		}

		for _, genre := range domain.StarterGenres {
			_, err := hamsters.Create(ctx, &domain.Hamster{
				OwnerID: user.ID,
				Name:    names.FirstName(),
				Genre:   genre,
				Age:     0,
				Hunger:  domain.MaxHunger,
				Active:  true,
			})
			if err != nil {
				return fmt.Errorf("fixtures: create hamster for %s: %w", acc.email, err)
			}
		}

		log.Info().Str("email", acc.email).Msg("demo account seeded")
	}
	return nil
}
