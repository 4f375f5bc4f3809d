package service

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/hamstery/hamstery-api/internal/api/metrics"
	"github.com/hamstery/hamstery-api/internal/core/domain"
	"github.com/hamstery/hamstery-api/internal/core/ports"
)

var validate = validator.New()

// AuthService implements registration (account provisioning) and login.
type AuthService struct {
	users     ports.UserRepository
	hamsters  ports.HamsterRepository
	names     ports.NameGenerator
	tx        ports.TxRunner
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	hamsters ports.HamsterRepository,
	names ports.NameGenerator,
	tx ports.TxRunner,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:     users,
		hamsters:  hamsters,
		names:     names,
		tx:        tx,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// Register provisions a new account: role {user}, starter gold, and the
// four-hamster starter litter (genres male, male, female, female).
func (s *AuthService) Register(ctx context.Context, email, password string) (*ports.RegisterResult, error) {
	if err := validate.Var(email, "required,email"); err != nil {
		return nil, domain.ErrInvalidEmail
	}
	if len(password) < domain.MinPasswordLen {
		return nil, domain.ErrWeakPassword
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	// The account and its starter litter commit together: a failure
	// mid-provisioning must not leave a user without their hamsters.
	var user *domain.User
	litter := make([]*domain.Hamster, 0, domain.StarterLitterSize)
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		user, err = s.users.Create(ctx, &domain.User{
			Email:        email,
			PasswordHash: string(hash),
			Roles:        []string{domain.RoleUser},
			Gold:         domain.StarterGold,
		})
		if err != nil {
			return err
		}

		for _, genre := range domain.StarterGenres {
			h, err := s.hamsters.Create(ctx, &domain.Hamster{
				OwnerID: user.ID,
				Name:    s.names.FirstName(),
				Genre:   genre,
				Age:     0,
				Hunger:  domain.MaxHunger,
				Active:  true,
			})
			if err != nil {
				return err
			}
			litter = append(litter, h)
		}
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Str("email", email).Msg("register commit failed")
		return nil, err
	}

	metrics.UsersRegisteredTotal.Inc()
	s.log.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("account provisioned")

	return &ports.RegisterResult{User: user, Hamsters: litter}, nil
}

// Login verifies credentials and issues an HS256 session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"roles": user.Roles,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
