// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"mealtrack/internal/domain/entity"
	"mealtrack/internal/domain/service"
)

// MinPasswordLength is the shortest accepted password, counted in characters.
const MinPasswordLength = 5

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Login                string
	Password             string
	PasswordConfirmation string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Login    string
	Password string
}

// --- Output DTOs ---

// AuthOutput is returned by every operation that hands the caller a fresh token.
type AuthOutput struct {
	Token string
	User  entity.PublicUser
}

// UserUsecase defines the account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates an account and signs the caller in.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login checks credentials and issues a token.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Reauthenticate re-reads the verified identity and issues a fresh token for it.
	Reauthenticate(ctx context.Context, claims *service.Claims) (*AuthOutput, error)

	// DeleteSelf removes the account the claims belong to and returns what was removed.
	DeleteSelf(ctx context.Context, claims *service.Claims) (*entity.PublicUser, error)

	// ListUsers returns every stored account, hashes included.
	ListUsers(ctx context.Context) ([]*entity.User, error)
}
