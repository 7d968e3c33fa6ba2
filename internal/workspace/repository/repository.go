package repository

import (
	"context"
	"errors"
	"time"

	invitationdomain "workspace-hub/backend/internal/invitation/domain"
	membershipdomain "workspace-hub/backend/internal/membership/domain"
	"workspace-hub/backend/internal/workspace/domain"
)

// Sentinel errors returned by every Repository implementation.
var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicatePending = errors.New("a pending invitation already exists for this email")
	ErrMembershipExists = errors.New("user already belongs to a workspace")
	ErrStaleTransition  = errors.New("invitation is no longer pending")
	ErrSlugTaken        = errors.New("workspace slug already taken")
	ErrTokenCollision   = errors.New("invitation token already issued")
)

// Transition describes a status change of a PENDING invitation.
type Transition struct {
	To            invitationdomain.Status
	At            time.Time
	CancelledByID string // set only when an owner or creator cancels
}

// Repository is the Workspace Service store. It owns workspaces, memberships and invitations;
// the two mutation points (CreateInvitation, AcceptInvitation) serialize on unique constraints.
type Repository interface {
	GetWorkspace(ctx context.Context, id string) (*domain.Workspace, error)
	// CreateWorkspace inserts the workspace and its single OWNER membership atomically.
	CreateWorkspace(ctx context.Context, w *domain.Workspace, owner *membershipdomain.Membership) error

	// GetMembershipByUser returns the user's membership, or ErrNotFound.
	GetMembershipByUser(ctx context.Context, userID string) (*membershipdomain.Membership, error)
	ListMembershipsByUser(ctx context.Context, userID string) ([]*membershipdomain.Membership, error)

	GetInvitationByID(ctx context.Context, id string) (*invitationdomain.Invitation, error)
	GetInvitationByToken(ctx context.Context, token string) (*invitationdomain.Invitation, error)
	ListInvitationsByWorkspace(ctx context.Context, workspaceID string) ([]*invitationdomain.Invitation, error)

	// CreateInvitation expires PENDING rows for the same (workspace, email) whose TTL has passed at
	// inv.CreatedAt, then inserts inv. Returns ErrDuplicatePending if an unexpired PENDING row remains.
	CreateInvitation(ctx context.Context, inv *invitationdomain.Invitation) error
	// AcceptInvitation inserts the membership and marks the invitation ACCEPTED in one transaction.
	// Returns ErrMembershipExists if the user already has a membership (the invitation is left
	// untouched) and ErrStaleTransition if the invitation is no longer PENDING and unexpired at m.CreatedAt.
	AcceptInvitation(ctx context.Context, invitationID string, m *membershipdomain.Membership) error
	// TransitionInvitation moves a PENDING invitation to t.To. Returns ErrStaleTransition when the
	// invitation is not PENDING any more.
	TransitionInvitation(ctx context.Context, invitationID string, t Transition) error
}
