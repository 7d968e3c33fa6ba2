package handler

import (
	"context"
	"log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	identityv1 "workspace-hub/backend/api/identity/v1"
	"workspace-hub/backend/internal/identity/service"
	apperrors "workspace-hub/backend/internal/platform/errors"
	userdomain "workspace-hub/backend/internal/user/domain"
)

// Server implements IdentityService over the auth service.
type Server struct {
	identityv1.UnimplementedIdentityServiceServer
	auth *service.AuthService
}

// NewServer returns a new Identity gRPC server. auth may be nil; then all RPCs return Unimplemented.
func NewServer(auth *service.AuthService) *Server {
	return &Server{auth: auth}
}

// LookupUserByEmail reports whether an account exists for the email.
func (s *Server) LookupUserByEmail(ctx context.Context, req *identityv1.LookupUserByEmailRequest) (*identityv1.LookupUserByEmailResponse, error) {
	if s.auth == nil {
		return nil, status.Error(codes.Unimplemented, "method LookupUserByEmail not implemented")
	}
	u, err := s.auth.LookupByEmail(ctx, req.Email)
	if err != nil {
		return nil, toStatus("lookup user by email", err)
	}
	return &identityv1.LookupUserByEmailResponse{Found: u != nil, User: userToWire(u)}, nil
}

// LookupUserByID reports whether an account exists for the id.
func (s *Server) LookupUserByID(ctx context.Context, req *identityv1.LookupUserByIDRequest) (*identityv1.LookupUserByIDResponse, error) {
	if s.auth == nil {
		return nil, status.Error(codes.Unimplemented, "method LookupUserByID not implemented")
	}
	u, err := s.auth.LookupByID(ctx, req.UserID)
	if err != nil {
		return nil, toStatus("lookup user by id", err)
	}
	return &identityv1.LookupUserByIDResponse{Found: u != nil, User: userToWire(u)}, nil
}

// Register creates an account.
func (s *Server) Register(ctx context.Context, req *identityv1.RegisterRequest) (*identityv1.RegisterResponse, error) {
	if s.auth == nil {
		return nil, status.Error(codes.Unimplemented, "method Register not implemented")
	}
	u, err := s.auth.Register(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		return nil, toStatus("register", err)
	}
	return &identityv1.RegisterResponse{User: *userToWire(u)}, nil
}

// Login authenticates and returns an access token.
func (s *Server) Login(ctx context.Context, req *identityv1.LoginRequest) (*identityv1.LoginResponse, error) {
	if s.auth == nil {
		return nil, status.Error(codes.Unimplemented, "method Login not implemented")
	}
	res, err := s.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		return nil, toStatus("login", err)
	}
	return &identityv1.LoginResponse{
		AccessToken: res.AccessToken,
		ExpiresAt:   res.ExpiresAt,
		User:        *userToWire(res.User),
	}, nil
}

// toStatus logs unexpected failures and hides their cause from the caller.
func toStatus(op string, err error) error {
	if apperrors.As(err) == nil {
		log.Printf("identity: %s: %v", op, err)
	}
	return apperrors.ToGRPC(err)
}

func userToWire(u *userdomain.User) *identityv1.User {
	if u == nil {
		return nil
	}
	return &identityv1.User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}
