package handler

import (
	"context"
	"log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	invitationv1 "workspace-hub/backend/api/invitation/v1"
	"workspace-hub/backend/internal/invitation/service"
	apperrors "workspace-hub/backend/internal/platform/errors"
	"workspace-hub/backend/internal/server/interceptors"
)

// Server implements InvitationService over the orchestrator.
type Server struct {
	invitationv1.UnimplementedInvitationServiceServer
	orch *service.Orchestrator
}

// NewServer returns a new Invitation gRPC server. orch may be nil; then all RPCs return Unimplemented.
func NewServer(orch *service.Orchestrator) *Server {
	return &Server{orch: orch}
}

// callerFrom reads the caller the auth interceptor put in ctx.
func callerFrom(ctx context.Context) service.Caller {
	userID, _ := interceptors.GetUserID(ctx)
	email, _ := interceptors.GetEmail(ctx)
	return service.Caller{UserID: userID, Email: email}
}

func (s *Server) CreateInvitation(ctx context.Context, req *invitationv1.CreateInvitationRequest) (*invitationv1.CreateInvitationResponse, error) {
	if s.orch == nil {
		return nil, status.Error(codes.Unimplemented, "method CreateInvitation not implemented")
	}
	resp, err := s.orch.CreateInvitation(ctx, callerFrom(ctx), req.WorkspaceID, req.Email, req.Role)
	if err != nil {
		return nil, toStatus("create invitation", err)
	}
	return resp, nil
}

func (s *Server) GetInvitation(ctx context.Context, req *invitationv1.GetInvitationRequest) (*invitationv1.GetInvitationResponse, error) {
	if s.orch == nil {
		return nil, status.Error(codes.Unimplemented, "method GetInvitation not implemented")
	}
	inv, err := s.orch.GetInvitation(ctx, req.Token)
	if err != nil {
		return nil, toStatus("get invitation", err)
	}
	return &invitationv1.GetInvitationResponse{Invitation: *inv}, nil
}

func (s *Server) ValidateInvitation(ctx context.Context, req *invitationv1.ValidateInvitationRequest) (*invitationv1.ValidateInvitationResponse, error) {
	if s.orch == nil {
		return nil, status.Error(codes.Unimplemented, "method ValidateInvitation not implemented")
	}
	resp, err := s.orch.ValidateInvitation(ctx, req.Token)
	if err != nil {
		return nil, toStatus("validate invitation", err)
	}
	return resp, nil
}

func (s *Server) AcceptInvitation(ctx context.Context, req *invitationv1.AcceptInvitationRequest) (*invitationv1.AcceptInvitationResponse, error) {
	if s.orch == nil {
		return nil, status.Error(codes.Unimplemented, "method AcceptInvitation not implemented")
	}
	resp, err := s.orch.AcceptInvitation(ctx, callerFrom(ctx), req.Token)
	if err != nil {
		return nil, toStatus("accept invitation", err)
	}
	return resp, nil
}

func (s *Server) DeclineInvitation(ctx context.Context, req *invitationv1.DeclineInvitationRequest) (*invitationv1.DeclineInvitationResponse, error) {
	if s.orch == nil {
		return nil, status.Error(codes.Unimplemented, "method DeclineInvitation not implemented")
	}
	if err := s.orch.DeclineInvitation(ctx, req.Token); err != nil {
		return nil, toStatus("decline invitation", err)
	}
	return &invitationv1.DeclineInvitationResponse{}, nil
}

func (s *Server) CancelInvitation(ctx context.Context, req *invitationv1.CancelInvitationRequest) (*invitationv1.CancelInvitationResponse, error) {
	if s.orch == nil {
		return nil, status.Error(codes.Unimplemented, "method CancelInvitation not implemented")
	}
	if err := s.orch.CancelInvitation(ctx, callerFrom(ctx), req.InvitationID); err != nil {
		return nil, toStatus("cancel invitation", err)
	}
	return &invitationv1.CancelInvitationResponse{}, nil
}

func (s *Server) ListWorkspaceInvitations(ctx context.Context, req *invitationv1.ListWorkspaceInvitationsRequest) (*invitationv1.ListWorkspaceInvitationsResponse, error) {
	if s.orch == nil {
		return nil, status.Error(codes.Unimplemented, "method ListWorkspaceInvitations not implemented")
	}
	list, err := s.orch.ListWorkspaceInvitations(ctx, callerFrom(ctx), req.WorkspaceID)
	if err != nil {
		return nil, toStatus("list workspace invitations", err)
	}
	return &invitationv1.ListWorkspaceInvitationsResponse{Invitations: list}, nil
}

func (s *Server) RegisterWithInvitation(ctx context.Context, req *invitationv1.RegisterWithInvitationRequest) (*invitationv1.RegisterWithInvitationResponse, error) {
	if s.orch == nil {
		return nil, status.Error(codes.Unimplemented, "method RegisterWithInvitation not implemented")
	}
	resp, err := s.orch.RegisterWithInvitation(ctx, req.Email, req.Password, req.Name, req.Token)
	if err != nil {
		return nil, toStatus("register with invitation", err)
	}
	return resp, nil
}

func (s *Server) CreateWorkspace(ctx context.Context, req *invitationv1.CreateWorkspaceRequest) (*invitationv1.CreateWorkspaceResponse, error) {
	if s.orch == nil {
		return nil, status.Error(codes.Unimplemented, "method CreateWorkspace not implemented")
	}
	resp, err := s.orch.CreateWorkspace(ctx, callerFrom(ctx), req.Name, req.Slug)
	if err != nil {
		return nil, toStatus("create workspace", err)
	}
	return &invitationv1.CreateWorkspaceResponse{Workspace: resp.Workspace, Membership: resp.Membership}, nil
}

// toStatus logs unexpected failures and hides their cause from the caller.
func toStatus(op string, err error) error {
	if apperrors.As(err) == nil {
		log.Printf("invitation: %s: %v", op, err)
	}
	return apperrors.ToGRPC(err)
}
