// Package domain holds the invitation entity and its state machine.
package domain

import (
	"strings"
	"time"

	"golang.org/x/text/cases"

	membershipdomain "workspace-hub/backend/internal/membership/domain"
	apperrors "workspace-hub/backend/internal/platform/errors"
)

// DefaultTTL is how long a freshly issued invitation stays redeemable.
const DefaultTTL = 7 * 24 * time.Hour

// Status is the lifecycle state of an invitation. Everything but PENDING is terminal.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusAccepted Status = "ACCEPTED"
	StatusDeclined Status = "DECLINED"
	StatusExpired  Status = "EXPIRED"
)

// Terminal reports whether no further transition is allowed from s.
func (s Status) Terminal() bool {
	return s != StatusPending
}

// CanTransition reports whether from -> to is a legal transition.
func CanTransition(from, to Status) bool {
	if from != StatusPending {
		return false
	}
	switch to {
	case StatusAccepted, StatusDeclined, StatusExpired:
		return true
	}
	return false
}

// Invitation binds a token to one email and one workspace.
type Invitation struct {
	ID          string
	WorkspaceID string
	Email       string
	Token       string
	Role        membershipdomain.Role
	Status      Status
	ExpiresAt   time.Time
	CreatedByID string
	CreatedAt   time.Time
	RespondedAt *time.Time
	// Set when an owner or the creator withdrew the invitation. Status is EXPIRED in that case.
	CancelledAt   *time.Time
	CancelledByID string
}

// IsExpired reports whether a PENDING invitation has outlived its TTL at now.
func (i *Invitation) IsExpired(now time.Time) bool {
	return i.Status == StatusPending && !now.Before(i.ExpiresAt)
}

// Cancelled reports whether the invitation was withdrawn rather than left to expire.
func (i *Invitation) Cancelled() bool {
	return i.CancelledAt != nil
}

// TerminalError returns the typed rejection for an invitation that can no longer be redeemed,
// or nil while it is still PENDING.
func (i *Invitation) TerminalError() error {
	meta := map[string]string{"invitation_status": string(i.Status)}
	switch i.Status {
	case StatusAccepted:
		return apperrors.WithMetadata(apperrors.CodeInvitationAlreadyAccepted, "invitation has already been accepted", meta)
	case StatusDeclined:
		return apperrors.WithMetadata(apperrors.CodeInvitationDeclined, "invitation has been declined", meta)
	case StatusExpired:
		if i.Cancelled() {
			return apperrors.WithMetadata(apperrors.CodeInvitationCancelled, "invitation was cancelled", meta)
		}
		return apperrors.WithMetadata(apperrors.CodeInvitationExpired, "invitation has expired", meta)
	}
	return nil
}

// EmailsMatch compares two addresses case-insensitively using Unicode case folding.
func EmailsMatch(a, b string) bool {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if a == "" || b == "" {
		return false
	}
	fold := cases.Fold()
	return fold.String(a) == fold.String(b)
}
