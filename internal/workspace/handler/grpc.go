package handler

import (
	"context"
	"log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	workspacev1 "workspace-hub/backend/api/workspace/v1"
	invitationdomain "workspace-hub/backend/internal/invitation/domain"
	membershipdomain "workspace-hub/backend/internal/membership/domain"
	apperrors "workspace-hub/backend/internal/platform/errors"
	"workspace-hub/backend/internal/workspace/domain"
	"workspace-hub/backend/internal/workspace/service"
)

// Server implements WorkspaceService over the workspace service.
type Server struct {
	workspacev1.UnimplementedWorkspaceServiceServer
	svc *service.Service
}

// NewServer returns a new Workspace gRPC server. svc may be nil; then all RPCs return Unimplemented.
func NewServer(svc *service.Service) *Server {
	return &Server{svc: svc}
}

func (s *Server) GetUserMembership(ctx context.Context, req *workspacev1.GetUserMembershipRequest) (*workspacev1.GetUserMembershipResponse, error) {
	if s.svc == nil {
		return nil, status.Error(codes.Unimplemented, "method GetUserMembership not implemented")
	}
	m, err := s.svc.GetUserMembership(ctx, req.WorkspaceID, req.UserID)
	if err != nil {
		return nil, toStatus("get user membership", err)
	}
	if m == nil {
		return &workspacev1.GetUserMembershipResponse{}, nil
	}
	wire := MembershipToWire(m)
	return &workspacev1.GetUserMembershipResponse{Found: true, Membership: &wire}, nil
}

func (s *Server) GetUserWorkspaces(ctx context.Context, req *workspacev1.GetUserWorkspacesRequest) (*workspacev1.GetUserWorkspacesResponse, error) {
	if s.svc == nil {
		return nil, status.Error(codes.Unimplemented, "method GetUserWorkspaces not implemented")
	}
	list, err := s.svc.GetUserWorkspaces(ctx, req.UserID)
	if err != nil {
		return nil, toStatus("get user workspaces", err)
	}
	out := make([]workspacev1.Membership, 0, len(list))
	for _, m := range list {
		out = append(out, MembershipToWire(m))
	}
	return &workspacev1.GetUserWorkspacesResponse{Memberships: out}, nil
}

func (s *Server) CreateInvitation(ctx context.Context, req *workspacev1.CreateInvitationRequest) (*workspacev1.CreateInvitationResponse, error) {
	if s.svc == nil {
		return nil, status.Error(codes.Unimplemented, "method CreateInvitation not implemented")
	}
	inv, url, err := s.svc.CreateInvitation(ctx, req.WorkspaceID, req.Email, req.Role, req.CreatedByID)
	if err != nil {
		return nil, toStatus("create invitation", err)
	}
	return &workspacev1.CreateInvitationResponse{Invitation: InvitationToWire(inv), InviteURL: url}, nil
}

func (s *Server) GetInvitationByToken(ctx context.Context, req *workspacev1.GetInvitationByTokenRequest) (*workspacev1.GetInvitationByTokenResponse, error) {
	if s.svc == nil {
		return nil, status.Error(codes.Unimplemented, "method GetInvitationByToken not implemented")
	}
	inv, err := s.svc.GetInvitationByToken(ctx, req.Token)
	if err != nil {
		return nil, toStatus("get invitation by token", err)
	}
	return &workspacev1.GetInvitationByTokenResponse{Invitation: InvitationToWire(inv)}, nil
}

func (s *Server) ValidateInvitationForRegistration(ctx context.Context, req *workspacev1.ValidateInvitationForRegistrationRequest) (*workspacev1.ValidateInvitationForRegistrationResponse, error) {
	if s.svc == nil {
		return nil, status.Error(codes.Unimplemented, "method ValidateInvitationForRegistration not implemented")
	}
	valid, inv, reason, err := s.svc.ValidateInvitationForRegistration(ctx, req.Token)
	if err != nil {
		return nil, toStatus("validate invitation", err)
	}
	resp := &workspacev1.ValidateInvitationForRegistrationResponse{Valid: valid, Reason: string(reason)}
	if inv != nil {
		wire := InvitationToWire(inv)
		resp.Invitation = &wire
	}
	return resp, nil
}

func (s *Server) AcceptInvitation(ctx context.Context, req *workspacev1.AcceptInvitationRequest) (*workspacev1.AcceptInvitationResponse, error) {
	if s.svc == nil {
		return nil, status.Error(codes.Unimplemented, "method AcceptInvitation not implemented")
	}
	m, ws, err := s.svc.AcceptInvitation(ctx, req.Token, req.UserID)
	if err != nil {
		return nil, toStatus("accept invitation", err)
	}
	return &workspacev1.AcceptInvitationResponse{Membership: MembershipToWire(m), Workspace: WorkspaceToWire(ws)}, nil
}

func (s *Server) DeclineInvitation(ctx context.Context, req *workspacev1.DeclineInvitationRequest) (*workspacev1.DeclineInvitationResponse, error) {
	if s.svc == nil {
		return nil, status.Error(codes.Unimplemented, "method DeclineInvitation not implemented")
	}
	if err := s.svc.DeclineInvitation(ctx, req.Token); err != nil {
		return nil, toStatus("decline invitation", err)
	}
	return &workspacev1.DeclineInvitationResponse{}, nil
}

func (s *Server) GetWorkspaceInvitations(ctx context.Context, req *workspacev1.GetWorkspaceInvitationsRequest) (*workspacev1.GetWorkspaceInvitationsResponse, error) {
	if s.svc == nil {
		return nil, status.Error(codes.Unimplemented, "method GetWorkspaceInvitations not implemented")
	}
	list, err := s.svc.GetWorkspaceInvitations(ctx, req.WorkspaceID, req.CallerID)
	if err != nil {
		return nil, toStatus("get workspace invitations", err)
	}
	out := make([]workspacev1.Invitation, 0, len(list))
	for _, inv := range list {
		out = append(out, InvitationToWire(inv))
	}
	return &workspacev1.GetWorkspaceInvitationsResponse{Invitations: out}, nil
}

func (s *Server) CancelInvitation(ctx context.Context, req *workspacev1.CancelInvitationRequest) (*workspacev1.CancelInvitationResponse, error) {
	if s.svc == nil {
		return nil, status.Error(codes.Unimplemented, "method CancelInvitation not implemented")
	}
	if err := s.svc.CancelInvitation(ctx, req.InvitationID, req.CallerID); err != nil {
		return nil, toStatus("cancel invitation", err)
	}
	return &workspacev1.CancelInvitationResponse{}, nil
}

func (s *Server) CreateWorkspace(ctx context.Context, req *workspacev1.CreateWorkspaceRequest) (*workspacev1.CreateWorkspaceResponse, error) {
	if s.svc == nil {
		return nil, status.Error(codes.Unimplemented, "method CreateWorkspace not implemented")
	}
	ws, m, err := s.svc.CreateWorkspace(ctx, req.Name, req.Slug, req.OwnerID)
	if err != nil {
		return nil, toStatus("create workspace", err)
	}
	return &workspacev1.CreateWorkspaceResponse{Workspace: WorkspaceToWire(ws), Membership: MembershipToWire(m)}, nil
}

func (s *Server) GetWorkspace(ctx context.Context, req *workspacev1.GetWorkspaceRequest) (*workspacev1.GetWorkspaceResponse, error) {
	if s.svc == nil {
		return nil, status.Error(codes.Unimplemented, "method GetWorkspace not implemented")
	}
	ws, err := s.svc.GetWorkspace(ctx, req.WorkspaceID)
	if err != nil {
		return nil, toStatus("get workspace", err)
	}
	return &workspacev1.GetWorkspaceResponse{Workspace: WorkspaceToWire(ws)}, nil
}

// toStatus logs unexpected failures and hides their cause from the caller.
func toStatus(op string, err error) error {
	if apperrors.As(err) == nil {
		log.Printf("workspace: %s: %v", op, err)
	}
	return apperrors.ToGRPC(err)
}

func WorkspaceToWire(w *domain.Workspace) workspacev1.Workspace {
	return workspacev1.Workspace{ID: w.ID, Name: w.Name, Slug: w.Slug, CreatedAt: w.CreatedAt}
}

func MembershipToWire(m *membershipdomain.Membership) workspacev1.Membership {
	return workspacev1.Membership{
		WorkspaceID: m.WorkspaceID,
		UserID:      m.UserID,
		Role:        string(m.Role),
		CreatedAt:   m.CreatedAt,
	}
}

func InvitationToWire(inv *invitationdomain.Invitation) workspacev1.Invitation {
	return workspacev1.Invitation{
		ID:            inv.ID,
		WorkspaceID:   inv.WorkspaceID,
		Email:         inv.Email,
		Token:         inv.Token,
		Role:          string(inv.Role),
		Status:        string(inv.Status),
		ExpiresAt:     inv.ExpiresAt,
		CreatedByID:   inv.CreatedByID,
		CreatedAt:     inv.CreatedAt,
		RespondedAt:   inv.RespondedAt,
		CancelledAt:   inv.CancelledAt,
		CancelledByID: inv.CancelledByID,
	}
}
