// Package workspacev1 is the command contract of the Workspace Service.
//
// Messages are JSON-encoded over gRPC (content-subtype "json"); see internal/platform/rpc.
package workspacev1

import "time"

// Workspace is the wire form of a workspace.
type Workspace struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
}

// Membership is the wire form of a workspace membership.
type Membership struct {
	WorkspaceID string    `json:"workspace_id"`
	UserID      string    `json:"user_id"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
}

// Invitation is the wire form of an invitation.
type Invitation struct {
	ID            string     `json:"id"`
	WorkspaceID   string     `json:"workspace_id"`
	Email         string     `json:"email"`
	Token         string     `json:"token"`
	Role          string     `json:"role"`
	Status        string     `json:"status"`
	ExpiresAt     time.Time  `json:"expires_at"`
	CreatedByID   string     `json:"created_by_id"`
	CreatedAt     time.Time  `json:"created_at"`
	RespondedAt   *time.Time `json:"responded_at,omitempty"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
	CancelledByID string     `json:"cancelled_by_id,omitempty"`
}

type GetUserMembershipRequest struct {
	WorkspaceID string `json:"workspace_id"`
	UserID      string `json:"user_id"`
}

// GetUserMembershipResponse reports Found=false when the user has no membership in the workspace.
type GetUserMembershipResponse struct {
	Found      bool        `json:"found"`
	Membership *Membership `json:"membership,omitempty"`
}

type GetUserWorkspacesRequest struct {
	UserID string `json:"user_id"`
}

type GetUserWorkspacesResponse struct {
	Memberships []Membership `json:"memberships"`
}

type CreateInvitationRequest struct {
	WorkspaceID string `json:"workspace_id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	CreatedByID string `json:"created_by_id"`
}

type CreateInvitationResponse struct {
	Invitation Invitation `json:"invitation"`
	InviteURL  string     `json:"invite_url"`
}

type GetInvitationByTokenRequest struct {
	Token string `json:"token"`
}

type GetInvitationByTokenResponse struct {
	Invitation Invitation `json:"invitation"`
}

type ValidateInvitationForRegistrationRequest struct {
	Token string `json:"token"`
}

// ValidateInvitationForRegistrationResponse carries the invitation when Valid, and the rejection
// code in Reason otherwise.
type ValidateInvitationForRegistrationResponse struct {
	Valid      bool        `json:"valid"`
	Invitation *Invitation `json:"invitation,omitempty"`
	Reason     string      `json:"reason,omitempty"`
}

type AcceptInvitationRequest struct {
	Token  string `json:"token"`
	UserID string `json:"user_id"`
}

type AcceptInvitationResponse struct {
	Membership Membership `json:"membership"`
	Workspace  Workspace  `json:"workspace"`
}

type DeclineInvitationRequest struct {
	Token string `json:"token"`
}

type DeclineInvitationResponse struct{}

type GetWorkspaceInvitationsRequest struct {
	WorkspaceID string `json:"workspace_id"`
	CallerID    string `json:"caller_id"`
}

type GetWorkspaceInvitationsResponse struct {
	Invitations []Invitation `json:"invitations"`
}

type CancelInvitationRequest struct {
	InvitationID string `json:"invitation_id"`
	CallerID     string `json:"caller_id"`
}

type CancelInvitationResponse struct{}

type CreateWorkspaceRequest struct {
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	OwnerID string `json:"owner_id"`
}

type CreateWorkspaceResponse struct {
	Workspace  Workspace  `json:"workspace"`
	Membership Membership `json:"membership"`
}

type GetWorkspaceRequest struct {
	WorkspaceID string `json:"workspace_id"`
}

type GetWorkspaceResponse struct {
	Workspace Workspace `json:"workspace"`
}
