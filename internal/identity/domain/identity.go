package domain

import (
	"time"

	"github.com/google/uuid"
)

// Identity binds a credential to a user. Accounts are created with email and password only,
// so every identity is local and ProviderID is the normalized email.
type Identity struct {
	ID           string
	UserID       string
	Provider     IdentityProvider
	ProviderID   string
	PasswordHash string
	CreatedAt    time.Time
}

type IdentityProvider string

const IdentityProviderLocal IdentityProvider = "local"

// NewLocal returns the password identity of userID.
func NewLocal(userID, email, passwordHash string, now time.Time) *Identity {
	return &Identity{
		ID:           uuid.NewString(),
		UserID:       userID,
		Provider:     IdentityProviderLocal,
		ProviderID:   email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
	}
}

// CanLogin reports whether the identity carries a password to check.
func (i *Identity) CanLogin() bool {
	return i != nil && i.Provider == IdentityProviderLocal && i.PasswordHash != ""
}
