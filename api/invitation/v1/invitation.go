// Package invitationv1 is the public command contract of the Invitation Orchestrator.
//
// Authenticated methods read the caller from a Bearer access token in the "authorization"
// metadata. GetInvitation, ValidateInvitation, DeclineInvitation and RegisterWithInvitation are public.
package invitationv1

import (
	"time"

	identityv1 "workspace-hub/backend/api/identity/v1"
	workspacev1 "workspace-hub/backend/api/workspace/v1"
)

type (
	Invitation = workspacev1.Invitation
	Membership = workspacev1.Membership
	Workspace  = workspacev1.Workspace
	User       = identityv1.User
)

// Routing outcomes of ValidateInvitation.
const (
	StateInvalid           = "INVALID"
	StateNeedsLogin        = "NEEDS_LOGIN"
	StateNeedsRegistration = "NEEDS_REGISTRATION"
	StateBlocked           = "BLOCKED"
)

type CreateInvitationRequest struct {
	WorkspaceID string `json:"workspace_id"`
	Email       string `json:"email"`
	Role        string `json:"role,omitempty"`
}

type CreateInvitationResponse struct {
	Invitation Invitation `json:"invitation"`
	InviteURL  string     `json:"invite_url"`
}

type GetInvitationRequest struct {
	Token string `json:"token"`
}

type GetInvitationResponse struct {
	Invitation Invitation `json:"invitation"`
}

type ValidateInvitationRequest struct {
	Token string `json:"token"`
}

// ValidateInvitationResponse tells the caller where to route the invitee. Reason carries the
// error code when State is INVALID or BLOCKED.
type ValidateInvitationResponse struct {
	State      string      `json:"state"`
	Invitation *Invitation `json:"invitation,omitempty"`
	Reason     string      `json:"reason,omitempty"`
}

type AcceptInvitationRequest struct {
	Token string `json:"token"`
}

type AcceptInvitationResponse struct {
	Membership Membership `json:"membership"`
	Workspace  Workspace  `json:"workspace"`
}

type DeclineInvitationRequest struct {
	Token string `json:"token"`
}

type DeclineInvitationResponse struct{}

type CancelInvitationRequest struct {
	InvitationID string `json:"invitation_id"`
}

type CancelInvitationResponse struct{}

type ListWorkspaceInvitationsRequest struct {
	WorkspaceID string `json:"workspace_id"`
}

type ListWorkspaceInvitationsResponse struct {
	Invitations []Invitation `json:"invitations"`
}

type RegisterWithInvitationRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Token    string `json:"token"`
}

// FollowUpError describes why the best-effort part of a composite flow did not complete.
type FollowUpError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// RegisterWithInvitationResponse always carries the created user. AccessToken is empty when
// auto-login failed; InvitationAccepted is false when acceptance must be retried by the caller.
type RegisterWithInvitationResponse struct {
	User               User           `json:"user"`
	AccessToken        string         `json:"access_token,omitempty"`
	ExpiresAt          *time.Time     `json:"expires_at,omitempty"`
	InvitationAccepted bool           `json:"invitation_accepted"`
	Membership         *Membership    `json:"membership,omitempty"`
	Workspace          *Workspace     `json:"workspace,omitempty"`
	FollowUpError      *FollowUpError `json:"follow_up_error,omitempty"`
}

type CreateWorkspaceRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type CreateWorkspaceResponse struct {
	Workspace  Workspace  `json:"workspace"`
	Membership Membership `json:"membership"`
}
