// Package engine decides who may act on invitations. Rules are expressed in Rego and evaluated
// by OPA; Rules applies the same decisions in Go when evaluation fails.
package engine

import (
	"context"

	membershipdomain "workspace-hub/backend/internal/membership/domain"
	apperrors "workspace-hub/backend/internal/platform/errors"
)

// Action is an invitation operation subject to authorization.
type Action string

const (
	ActionCreateInvitation Action = "invitation.create"
	ActionCancelInvitation Action = "invitation.cancel"
	ActionListInvitations  Action = "invitation.list"
)

// Actor is the caller. WorkspaceID and Role are empty when the caller has no membership.
type Actor struct {
	UserID      string
	WorkspaceID string
	Role        membershipdomain.Role
}

// Resource describes the invitation (or workspace) being acted on.
type Resource struct {
	WorkspaceID string
	CreatedByID string
	Role        membershipdomain.Role
}

// Input is one authorization question.
type Input struct {
	Action   Action
	Actor    Actor
	Resource Resource
}

// Decision is the answer. Reason is set when Allowed is false.
type Decision struct {
	Allowed bool
	Reason  apperrors.Code
}

// Err returns nil when allowed, otherwise a typed error for Reason.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	switch d.Reason {
	case apperrors.CodeInvitationOwnerRole:
		return apperrors.New(d.Reason, "the OWNER role cannot be granted by invitation; a workspace has a single owner")
	case apperrors.CodeNotWorkspaceOwner:
		return apperrors.New(d.Reason, "only the workspace owner can do this")
	}
	return apperrors.New(apperrors.CodePermissionDenied, "not allowed")
}

// Evaluator answers authorization questions.
type Evaluator interface {
	Authorize(ctx context.Context, in Input) Decision
}

// Rules is the Go rendition of the invitation policy.
type Rules struct{}

// Authorize implements Evaluator.
func (Rules) Authorize(_ context.Context, in Input) Decision {
	isOwner := in.Actor.Role == membershipdomain.RoleOwner &&
		in.Actor.WorkspaceID != "" &&
		in.Actor.WorkspaceID == in.Resource.WorkspaceID
	switch in.Action {
	case ActionCreateInvitation:
		if !isOwner {
			return Decision{Reason: apperrors.CodeNotWorkspaceOwner}
		}
		if in.Resource.Role == membershipdomain.RoleOwner {
			return Decision{Reason: apperrors.CodeInvitationOwnerRole}
		}
		return Decision{Allowed: true}
	case ActionListInvitations:
		if !isOwner {
			return Decision{Reason: apperrors.CodeNotWorkspaceOwner}
		}
		return Decision{Allowed: true}
	case ActionCancelInvitation:
		if isOwner || (in.Actor.UserID != "" && in.Actor.UserID == in.Resource.CreatedByID) {
			return Decision{Allowed: true}
		}
		return Decision{Reason: apperrors.CodeNotWorkspaceOwner}
	}
	return Decision{Reason: apperrors.CodePermissionDenied}
}
