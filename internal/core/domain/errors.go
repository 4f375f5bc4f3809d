package domain

import "errors"

// Sentinel errors returned by the core. The HTTP layer maps each one to a
// transport status in the central error handler.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("email already registered")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("access forbidden")

	ErrHamsterNotFound  = errors.New("hamster not found")
	ErrHamsterInactive  = errors.New("hamster is no longer active")
	ErrHamsterFull      = errors.New("hamster is already at full hunger")
	ErrInsufficientGold = errors.New("not enough gold")
	ErrNameTooShort     = errors.New("name must be at least 2 characters")
	ErrSameHamster      = errors.New("two distinct hamsters are required")
	ErrInvalidDays      = errors.New("days must be greater than zero")
)
