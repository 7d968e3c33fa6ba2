package service

import (
	"context"
	"errors"
	"strings"
	"time"

	identitydomain "workspace-hub/backend/internal/identity/domain"
	identityrepo "workspace-hub/backend/internal/identity/repository"
	apperrors "workspace-hub/backend/internal/platform/errors"
	"workspace-hub/backend/internal/security"
	userdomain "workspace-hub/backend/internal/user/domain"
)

// Sentinel errors for the auth service; they carry codes so handlers can pass them through.
var (
	ErrEmailAlreadyRegistered = apperrors.New(apperrors.CodeEmailAlreadyRegistered, "email already registered")
	ErrInvalidCredentials     = apperrors.New(apperrors.CodeInvalidCredentials, "invalid credentials")
)

// AuthResult holds the outcome of Login.
type AuthResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *userdomain.User
}

// UserRepo is the minimal user repository needed by the auth service.
type UserRepo interface {
	GetByID(ctx context.Context, id string) (*userdomain.User, error)
	GetByEmail(ctx context.Context, email string) (*userdomain.User, error)
}

// IdentityRepo is the minimal identity repository needed by the auth service.
type IdentityRepo interface {
	GetByUserAndProvider(ctx context.Context, userID string, provider identitydomain.IdentityProvider) (*identitydomain.Identity, error)
	CreateWithUser(ctx context.Context, u *userdomain.User, i *identitydomain.Identity) error
}

// AuthService implements password register, login, and user lookups for the Identity Service.
type AuthService struct {
	userRepo     UserRepo
	identityRepo IdentityRepo
	hasher       *security.Hasher
	tokens       *security.TokenProvider
	now          func() time.Time
}

// NewAuthService returns an AuthService with the given dependencies.
func NewAuthService(userRepo UserRepo, identityRepo IdentityRepo, hasher *security.Hasher, tokens *security.TokenProvider) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		identityRepo: identityRepo,
		hasher:       hasher,
		tokens:       tokens,
		now:          time.Now,
	}
}

// Register creates a user and local identity with the given email and password.
// It does not log the user in.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*userdomain.User, error) {
	email, err := userdomain.ParseEmail(email)
	if err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyRegistered
	}
	now := s.now().UTC()
	user := userdomain.NewUser(email, name, now)
	if err := user.Validate(); err != nil {
		return nil, apperrors.New(apperrors.CodeInvalidArgument, err.Error())
	}
	hashed, err := s.hasher.Hash([]byte(password))
	if err != nil {
		return nil, err
	}
	if err := s.identityRepo.CreateWithUser(ctx, user, identitydomain.NewLocal(user.ID, email, hashed, now)); err != nil {
		if errors.Is(err, identityrepo.ErrEmailTaken) {
			return nil, ErrEmailAlreadyRegistered
		}
		return nil, err
	}
	return user, nil
}

// Login authenticates with email/password and issues an access token carrying the user's email.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = userdomain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if !user.Active() {
		s.hasher.CompareDummy([]byte(password))
		return nil, ErrInvalidCredentials
	}
	ident, err := s.identityRepo.GetByUserAndProvider(ctx, user.ID, identitydomain.IdentityProviderLocal)
	if err != nil {
		return nil, err
	}
	if !ident.CanLogin() {
		return nil, ErrInvalidCredentials
	}
	if err := s.hasher.Compare(ident.PasswordHash, []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	token, expiresAt, err := s.tokens.IssueAccess(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	return &AuthResult{AccessToken: token, ExpiresAt: expiresAt, User: user}, nil
}

// LookupByEmail returns the user registered with email, or nil.
func (s *AuthService) LookupByEmail(ctx context.Context, email string) (*userdomain.User, error) {
	email = userdomain.NormalizeEmail(email)
	if email == "" {
		return nil, apperrors.New(apperrors.CodeInvalidArgument, "email is required")
	}
	return s.userRepo.GetByEmail(ctx, email)
}

// LookupByID returns the user with id, or nil.
func (s *AuthService) LookupByID(ctx context.Context, id string) (*userdomain.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperrors.New(apperrors.CodeInvalidArgument, "user_id is required")
	}
	return s.userRepo.GetByID(ctx, id)
}

func validatePassword(password string) error {
	if len(password) < 12 {
		return apperrors.New(apperrors.CodeInvalidArgument, "password must be at least 12 characters")
	}
	var hasUpper, hasLower, hasNumber, hasSymbol bool
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasNumber = true
		default:
			hasSymbol = true
		}
	}
	switch {
	case !hasUpper:
		return apperrors.New(apperrors.CodeInvalidArgument, "password must contain at least one uppercase letter")
	case !hasLower:
		return apperrors.New(apperrors.CodeInvalidArgument, "password must contain at least one lowercase letter")
	case !hasNumber:
		return apperrors.New(apperrors.CodeInvalidArgument, "password must contain at least one number")
	case !hasSymbol:
		return apperrors.New(apperrors.CodeInvalidArgument, "password must contain at least one symbol")
	}
	return nil
}
