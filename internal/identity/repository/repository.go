package repository

import (
	"context"
	"errors"

	"workspace-hub/backend/internal/identity/domain"
	userdomain "workspace-hub/backend/internal/user/domain"
)

// ErrEmailTaken is returned when a user with the same email already exists.
var ErrEmailTaken = errors.New("email already registered")

// Repository defines persistence for identities.
type Repository interface {
	GetByUserAndProvider(ctx context.Context, userID string, provider domain.IdentityProvider) (*domain.Identity, error)
	// CreateWithUser persists a new user and its first identity atomically.
	CreateWithUser(ctx context.Context, u *userdomain.User, i *domain.Identity) error
}
