// Package identityv1 is the command contract of the Identity Service.
package identityv1

import "time"

// User is the public view of an account. It never carries credentials.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type LookupUserByEmailRequest struct {
	Email string `json:"email"`
}

type LookupUserByEmailResponse struct {
	Found bool  `json:"found"`
	User  *User `json:"user,omitempty"`
}

type LookupUserByIDRequest struct {
	UserID string `json:"user_id"`
}

type LookupUserByIDResponse struct {
	Found bool  `json:"found"`
	User  *User `json:"user,omitempty"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type RegisterResponse struct {
	User User `json:"user"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        User      `json:"user"`
}
