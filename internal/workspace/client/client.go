// Package client issues Workspace Service commands on behalf of the invitation orchestrator.
package client

import (
	"context"
	"time"

	"google.golang.org/grpc"

	workspacev1 "workspace-hub/backend/api/workspace/v1"
	apperrors "workspace-hub/backend/internal/platform/errors"
	"workspace-hub/backend/internal/platform/rpc"
)

// Client applies the command timeout to every call and converts failures into typed errors.
type Client struct {
	rpc     workspacev1.WorkspaceServiceClient
	timeout time.Duration
}

// New returns a Client over cc. timeout <= 0 uses rpc.DefaultCommandTimeout.
func New(cc grpc.ClientConnInterface, timeout time.Duration) *Client {
	return &Client{rpc: workspacev1.NewWorkspaceServiceClient(cc), timeout: timeout}
}

// GetUserMembership returns the user's membership in workspaceID, or nil.
func (c *Client) GetUserMembership(ctx context.Context, workspaceID, userID string) (*workspacev1.Membership, error) {
	ctx, cancel := rpc.WithCallTimeout(ctx, c.timeout)
	defer cancel()
	resp, err := c.rpc.GetUserMembership(ctx, &workspacev1.GetUserMembershipRequest{WorkspaceID: workspaceID, UserID: userID})
	if err != nil {
		return nil, apperrors.FromGRPC(err)
	}
	if !resp.Found {
		return nil, nil
	}
	return resp.Membership, nil
}

func (c *Client) GetUserWorkspaces(ctx context.Context, userID string) ([]workspacev1.Membership, error) {
	ctx, cancel := rpc.WithCallTimeout(ctx, c.timeout)
	defer cancel()
	resp, err := c.rpc.GetUserWorkspaces(ctx, &workspacev1.GetUserWorkspacesRequest{UserID: userID})
	if err != nil {
		return nil, apperrors.FromGRPC(err)
	}
	return resp.Memberships, nil
}

func (c *Client) CreateInvitation(ctx context.Context, req *workspacev1.CreateInvitationRequest) (*workspacev1.CreateInvitationResponse, error) {
	ctx, cancel := rpc.WithCallTimeout(ctx, c.timeout)
	defer cancel()
	resp, err := c.rpc.CreateInvitation(ctx, req)
	if err != nil {
		return nil, apperrors.FromGRPC(err)
	}
	return resp, nil
}

func (c *Client) GetInvitationByToken(ctx context.Context, token string) (*workspacev1.Invitation, error) {
	ctx, cancel := rpc.WithCallTimeout(ctx, c.timeout)
	defer cancel()
	resp, err := c.rpc.GetInvitationByToken(ctx, &workspacev1.GetInvitationByTokenRequest{Token: token})
	if err != nil {
		return nil, apperrors.FromGRPC(err)
	}
	return &resp.Invitation, nil
}

func (c *Client) ValidateInvitationForRegistration(ctx context.Context, token string) (*workspacev1.ValidateInvitationForRegistrationResponse, error) {
	ctx, cancel := rpc.WithCallTimeout(ctx, c.timeout)
	defer cancel()
	resp, err := c.rpc.ValidateInvitationForRegistration(ctx, &workspacev1.ValidateInvitationForRegistrationRequest{Token: token})
	if err != nil {
		return nil, apperrors.FromGRPC(err)
	}
	return resp, nil
}

func (c *Client) AcceptInvitation(ctx context.Context, token, userID string) (*workspacev1.AcceptInvitationResponse, error) {
	ctx, cancel := rpc.WithCallTimeout(ctx, c.timeout)
	defer cancel()
	resp, err := c.rpc.AcceptInvitation(ctx, &workspacev1.AcceptInvitationRequest{Token: token, UserID: userID})
	if err != nil {
		return nil, apperrors.FromGRPC(err)
	}
	return resp, nil
}

func (c *Client) DeclineInvitation(ctx context.Context, token string) error {
	ctx, cancel := rpc.WithCallTimeout(ctx, c.timeout)
	defer cancel()
	_, err := c.rpc.DeclineInvitation(ctx, &workspacev1.DeclineInvitationRequest{Token: token})
	return apperrors.FromGRPC(err)
}

func (c *Client) GetWorkspaceInvitations(ctx context.Context, workspaceID, callerID string) ([]workspacev1.Invitation, error) {
	ctx, cancel := rpc.WithCallTimeout(ctx, c.timeout)
	defer cancel()
	resp, err := c.rpc.GetWorkspaceInvitations(ctx, &workspacev1.GetWorkspaceInvitationsRequest{WorkspaceID: workspaceID, CallerID: callerID})
	if err != nil {
		return nil, apperrors.FromGRPC(err)
	}
	return resp.Invitations, nil
}

func (c *Client) CancelInvitation(ctx context.Context, invitationID, callerID string) error {
	ctx, cancel := rpc.WithCallTimeout(ctx, c.timeout)
	defer cancel()
	_, err := c.rpc.CancelInvitation(ctx, &workspacev1.CancelInvitationRequest{InvitationID: invitationID, CallerID: callerID})
	return apperrors.FromGRPC(err)
}

func (c *Client) CreateWorkspace(ctx context.Context, name, slug, ownerID string) (*workspacev1.CreateWorkspaceResponse, error) {
	ctx, cancel := rpc.WithCallTimeout(ctx, c.timeout)
	defer cancel()
	resp, err := c.rpc.CreateWorkspace(ctx, &workspacev1.CreateWorkspaceRequest{Name: name, Slug: slug, OwnerID: ownerID})
	if err != nil {
		return nil, apperrors.FromGRPC(err)
	}
	return resp, nil
}

func (c *Client) GetWorkspace(ctx context.Context, workspaceID string) (*workspacev1.Workspace, error) {
	ctx, cancel := rpc.WithCallTimeout(ctx, c.timeout)
	defer cancel()
	resp, err := c.rpc.GetWorkspace(ctx, &workspacev1.GetWorkspaceRequest{WorkspaceID: workspaceID})
	if err != nil {
		return nil, apperrors.FromGRPC(err)
	}
	return &resp.Workspace, nil
}
