// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"mealtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the credential store consumed by the authentication core.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByLogin retrieves a single user by their login.
	FindByLogin(ctx context.Context, login string) (*entity.User, error)

	// Create persists a new user and fills in its ID and timestamps.
	// A duplicate login surfaces as domainerrors.ErrLoginTaken.
	Create(ctx context.Context, user *entity.User) error

	// DeleteByID removes the user. It returns ErrUserNotFound when no row matched.
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// List returns every stored user, oldest first.
	List(ctx context.Context) ([]*entity.User, error)
}
