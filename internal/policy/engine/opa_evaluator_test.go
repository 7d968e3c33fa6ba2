package engine

import (
	"context"
	"testing"

	membershipdomain "workspace-hub/backend/internal/membership/domain"
	apperrors "workspace-hub/backend/internal/platform/errors"
)

func policyCases() []struct {
	name    string
	in      Input
	allowed bool
	reason  apperrors.Code
} {
	owner := Actor{UserID: "owner", WorkspaceID: "w1", Role: membershipdomain.RoleOwner}
	member := Actor{UserID: "member", WorkspaceID: "w1", Role: membershipdomain.RoleMember}
	otherOwner := Actor{UserID: "other", WorkspaceID: "w2", Role: membershipdomain.RoleOwner}
	stranger := Actor{UserID: "stranger"}
	return []struct {
		name    string
		in      Input
		allowed bool
		reason  apperrors.Code
	}{
		{"owner creates member invite", Input{ActionCreateInvitation, owner, Resource{WorkspaceID: "w1", Role: membershipdomain.RoleMember}}, true, ""},
		{"owner creates admin invite", Input{ActionCreateInvitation, owner, Resource{WorkspaceID: "w1", Role: membershipdomain.RoleAdmin}}, true, ""},
		{"owner invites as owner", Input{ActionCreateInvitation, owner, Resource{WorkspaceID: "w1", Role: membershipdomain.RoleOwner}}, false, apperrors.CodeInvitationOwnerRole},
		{"member creates", Input{ActionCreateInvitation, member, Resource{WorkspaceID: "w1", Role: membershipdomain.RoleMember}}, false, apperrors.CodeNotWorkspaceOwner},
		{"non-owner invites as owner", Input{ActionCreateInvitation, member, Resource{WorkspaceID: "w1", Role: membershipdomain.RoleOwner}}, false, apperrors.CodeNotWorkspaceOwner},
		{"owner of other workspace creates", Input{ActionCreateInvitation, otherOwner, Resource{WorkspaceID: "w1", Role: membershipdomain.RoleMember}}, false, apperrors.CodeNotWorkspaceOwner},
		{"stranger creates", Input{ActionCreateInvitation, stranger, Resource{WorkspaceID: "w1"}}, false, apperrors.CodeNotWorkspaceOwner},
		{"owner lists", Input{ActionListInvitations, owner, Resource{WorkspaceID: "w1"}}, true, ""},
		{"member lists", Input{ActionListInvitations, member, Resource{WorkspaceID: "w1"}}, false, apperrors.CodeNotWorkspaceOwner},
		{"owner cancels", Input{ActionCancelInvitation, owner, Resource{WorkspaceID: "w1", CreatedByID: "someone"}}, true, ""},
		{"creator cancels", Input{ActionCancelInvitation, member, Resource{WorkspaceID: "w1", CreatedByID: "member"}}, true, ""},
		{"other cancels", Input{ActionCancelInvitation, stranger, Resource{WorkspaceID: "w1", CreatedByID: "owner"}}, false, apperrors.CodeNotWorkspaceOwner},
		{"unknown action", Input{Action("invitation.delete"), owner, Resource{WorkspaceID: "w1"}}, false, apperrors.CodePermissionDenied},
	}
}

func TestOPAEvaluator_Decisions(t *testing.T) {
	ctx := context.Background()
	e, err := NewOPAEvaluator(ctx, "")
	if err != nil {
		t.Fatalf("NewOPAEvaluator: %v", err)
	}
	if err := e.HealthCheck(ctx); err != nil {
		t.Fatalf("HealthCheck: %v", err)
	}
	for _, tc := range policyCases() {
		t.Run(tc.name, func(t *testing.T) {
			d := e.Authorize(ctx, tc.in)
			if d.Allowed != tc.allowed || d.Reason != tc.reason {
				t.Errorf("Authorize = %+v, want allowed=%v reason=%q", d, tc.allowed, tc.reason)
			}
		})
	}
}

func TestRules_MatchPolicy(t *testing.T) {
	ctx := context.Background()
	for _, tc := range policyCases() {
		t.Run(tc.name, func(t *testing.T) {
			d := Rules{}.Authorize(ctx, tc.in)
			if d.Allowed != tc.allowed || d.Reason != tc.reason {
				t.Errorf("Authorize = %+v, want allowed=%v reason=%q", d, tc.allowed, tc.reason)
			}
		})
	}
}

func TestNewOPAEvaluator_BadPolicy(t *testing.T) {
	if _, err := NewOPAEvaluator(context.Background(), "package broken\nallow if {"); err == nil {
		t.Fatal("malformed policy should fail to compile")
	}
}

func TestDecision_Err(t *testing.T) {
	if (Decision{Allowed: true}).Err() != nil {
		t.Error("allowed decision should have no error")
	}
	err := Decision{Reason: apperrors.CodeInvitationOwnerRole}.Err()
	if apperrors.KindOf(err) != apperrors.KindBadRequest {
		t.Errorf("owner-role kind = %q, want BAD_REQUEST", apperrors.KindOf(err))
	}
	err = Decision{Reason: apperrors.CodeNotWorkspaceOwner}.Err()
	if apperrors.KindOf(err) != apperrors.KindForbidden {
		t.Errorf("not-owner kind = %q, want FORBIDDEN", apperrors.KindOf(err))
	}
}
