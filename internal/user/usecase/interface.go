// Package usecase implements registration, login and profile updates.
package usecase

import (
	"context"

	"github.com/allisson/social/internal/user/domain"
)

// UserRepository is the persistence contract backed by the user stored procedures.
type UserRepository interface {
	// Create stores a new user. Returns domain.ErrUserAlreadyExists on duplicates.
	Create(ctx context.Context, user *domain.User) error

	// Login returns the user matching phoneNumber and password, or domain.ErrInvalidCredentials.
	Login(ctx context.Context, phoneNumber, password string) (*domain.User, error)

	// UpdateBiography replaces the biography. Returns domain.ErrUserNotFound when no row changed.
	UpdateBiography(ctx context.Context, userID int64, biography *string) error
}

// UseCase defines the user operations exposed to the HTTP layer.
type UseCase interface {
	Register(ctx context.Context, input RegisterUserInput) (*domain.User, error)
	Login(ctx context.Context, input LoginInput) (*domain.User, error)
	UpdateBiography(ctx context.Context, input UpdateBiographyInput) error
}
