// Package service implements the Workspace Service commands. It is the only writer of workspaces,
// memberships and invitations; the repository's unique constraints are the final race backstop for
// the two mutation points (CreateInvitation and AcceptInvitation).
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	invitationdomain "workspace-hub/backend/internal/invitation/domain"
	membershipdomain "workspace-hub/backend/internal/membership/domain"
	apperrors "workspace-hub/backend/internal/platform/errors"
	"workspace-hub/backend/internal/policy/engine"
	"workspace-hub/backend/internal/security"
	userdomain "workspace-hub/backend/internal/user/domain"
	"workspace-hub/backend/internal/workspace/domain"
	"workspace-hub/backend/internal/workspace/repository"
)

// tokenAttempts bounds retries on the (practically impossible) token unique-constraint clash.
const tokenAttempts = 3

var (
	ErrInvitationNotFound = apperrors.New(apperrors.CodeInvitationNotFound, "invitation not found")
	ErrWorkspaceNotFound  = apperrors.New(apperrors.CodeWorkspaceNotFound, "workspace not found")
	ErrInvitationPending  = apperrors.New(apperrors.CodeInvitationPending, "a pending invitation already exists for this email")
	ErrMembershipExists   = apperrors.New(apperrors.CodeMembershipExists, "user already belongs to a workspace")
	ErrSlugTaken          = apperrors.New(apperrors.CodeWorkspaceSlugTaken, "workspace slug already taken")
)

// Config holds invitation issuing settings.
type Config struct {
	InvitationTTL time.Duration // zero means invitationdomain.DefaultTTL
	InviteBaseURL string        // the invite URL is InviteBaseURL + "/invite/" + token
	Now           func() time.Time
}

// Service runs the Workspace Service commands against a repository.
type Service struct {
	repo    repository.Repository
	policy  engine.Evaluator
	ttl     time.Duration
	baseURL string

	now      func() time.Time
	newToken func() (string, error)
}

// NewService returns a workspace service. policy may be nil; then the Go rules are used.
func NewService(repo repository.Repository, policy engine.Evaluator, cfg Config) *Service {
	if policy == nil {
		policy = engine.Rules{}
	}
	ttl := cfg.InvitationTTL
	if ttl <= 0 {
		ttl = invitationdomain.DefaultTTL
	}
	now := cfg.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Service{
		repo:     repo,
		policy:   policy,
		ttl:      ttl,
		baseURL:  strings.TrimRight(cfg.InviteBaseURL, "/"),
		now:      now,
		newToken: security.NewInviteToken,
	}
}

// InviteURL returns the caller-facing URL embedding token.
func (s *Service) InviteURL(token string) string {
	return s.baseURL + "/invite/" + token
}

// GetUserMembership returns the user's membership in workspaceID, or nil if the user is not a member of it.
func (s *Service) GetUserMembership(ctx context.Context, workspaceID, userID string) (*membershipdomain.Membership, error) {
	if workspaceID == "" || userID == "" {
		return nil, apperrors.New(apperrors.CodeInvalidArgument, "workspace_id and user_id are required")
	}
	m, err := s.membershipOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	if m == nil || m.WorkspaceID != workspaceID {
		return nil, nil
	}
	return m, nil
}

// GetUserWorkspaces returns every membership of the user (at most one).
func (s *Service) GetUserWorkspaces(ctx context.Context, userID string) ([]*membershipdomain.Membership, error) {
	if userID == "" {
		return nil, apperrors.New(apperrors.CodeInvalidArgument, "user_id is required")
	}
	return s.repo.ListMembershipsByUser(ctx, userID)
}

// CreateInvitation issues a PENDING invitation for email. The creator must own the workspace and
// role must not be OWNER. Conflicts with an unexpired PENDING invitation for the same email.
func (s *Service) CreateInvitation(ctx context.Context, workspaceID, email, role, createdByID string) (*invitationdomain.Invitation, string, error) {
	if workspaceID == "" || createdByID == "" {
		return nil, "", apperrors.New(apperrors.CodeInvalidArgument, "workspace_id and created_by_id are required")
	}
	email, err := userdomain.ParseEmail(email)
	if err != nil {
		return nil, "", err
	}
	r, ok := membershipdomain.ParseRole(role)
	if !ok {
		return nil, "", apperrors.Newf(apperrors.CodeInvalidRole, "unknown role %q", role)
	}
	if _, err := s.GetWorkspace(ctx, workspaceID); err != nil {
		return nil, "", err
	}
	creator, err := s.membershipOf(ctx, createdByID)
	if err != nil {
		return nil, "", err
	}
	in := engine.Input{
		Action:   engine.ActionCreateInvitation,
		Actor:    actor(createdByID, creator),
		Resource: engine.Resource{WorkspaceID: workspaceID, Role: r},
	}
	if err := s.policy.Authorize(ctx, in).Err(); err != nil {
		return nil, "", err
	}

	now := s.now()
	inv := &invitationdomain.Invitation{
		ID:          uuid.NewString(),
		WorkspaceID: workspaceID,
		Email:       email,
		Role:        r,
		Status:      invitationdomain.StatusPending,
		ExpiresAt:   now.Add(s.ttl),
		CreatedByID: createdByID,
		CreatedAt:   now,
	}
	for attempt := 1; ; attempt++ {
		inv.Token, err = s.newToken()
		if err != nil {
			return nil, "", err
		}
		err = s.repo.CreateInvitation(ctx, inv)
		if errors.Is(err, repository.ErrTokenCollision) && attempt < tokenAttempts {
			continue
		}
		break
	}
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrDuplicatePending):
		return nil, "", ErrInvitationPending
	default:
		return nil, "", fmt.Errorf("create invitation: %w", err)
	}
	return inv, s.InviteURL(inv.Token), nil
}

// GetInvitationByToken returns the invitation with its current status. A PENDING invitation past
// its ttl is flipped to EXPIRED on the way out.
func (s *Service) GetInvitationByToken(ctx context.Context, token string) (*invitationdomain.Invitation, error) {
	if token == "" {
		return nil, apperrors.New(apperrors.CodeInvalidArgument, "token is required")
	}
	if !security.ValidInviteTokenFormat(token) {
		return nil, ErrInvitationNotFound
	}
	inv, err := s.repo.GetInvitationByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvitationNotFound
		}
		return nil, err
	}
	return s.expireIfDue(ctx, inv), nil
}

// ValidateInvitationForRegistration reports whether token can still be redeemed. Reason is the
// rejection code when it cannot.
func (s *Service) ValidateInvitationForRegistration(ctx context.Context, token string) (valid bool, inv *invitationdomain.Invitation, reason apperrors.Code, err error) {
	inv, err = s.GetInvitationByToken(ctx, token)
	if err != nil {
		if errors.Is(err, ErrInvitationNotFound) {
			return false, nil, apperrors.CodeInvitationNotFound, nil
		}
		return false, nil, "", err
	}
	if terr := inv.TerminalError(); terr != nil {
		return false, inv, apperrors.CodeOf(terr), nil
	}
	return true, inv, "", nil
}

// AcceptInvitation creates the user's membership and marks the invitation ACCEPTED in one
// transaction. The caller has already matched the invitation email against the user.
func (s *Service) AcceptInvitation(ctx context.Context, token, userID string) (*membershipdomain.Membership, *domain.Workspace, error) {
	if userID == "" {
		return nil, nil, apperrors.New(apperrors.CodeInvalidArgument, "user_id is required")
	}
	inv, err := s.GetInvitationByToken(ctx, token)
	if err != nil {
		return nil, nil, err
	}
	if terr := inv.TerminalError(); terr != nil {
		return nil, nil, terr
	}
	m := &membershipdomain.Membership{
		WorkspaceID: inv.WorkspaceID,
		UserID:      userID,
		Role:        inv.Role,
		CreatedAt:   s.now(),
	}
	switch err := s.repo.AcceptInvitation(ctx, inv.ID, m); {
	case err == nil:
	case errors.Is(err, repository.ErrMembershipExists):
		return nil, nil, ErrMembershipExists
	case errors.Is(err, repository.ErrStaleTransition):
		return nil, nil, s.staleError(ctx, inv.ID)
	default:
		return nil, nil, fmt.Errorf("accept invitation: %w", err)
	}
	ws, err := s.GetWorkspace(ctx, inv.WorkspaceID)
	if err != nil {
		return nil, nil, err
	}
	return m, ws, nil
}

// DeclineInvitation moves a PENDING invitation to DECLINED.
func (s *Service) DeclineInvitation(ctx context.Context, token string) error {
	inv, err := s.GetInvitationByToken(ctx, token)
	if err != nil {
		return err
	}
	if terr := inv.TerminalError(); terr != nil {
		return terr
	}
	t := repository.Transition{To: invitationdomain.StatusDeclined, At: s.now()}
	return s.transition(ctx, inv.ID, t)
}

// GetWorkspaceInvitations lists every invitation of the workspace, newest first. Owner only.
func (s *Service) GetWorkspaceInvitations(ctx context.Context, workspaceID, callerID string) ([]*invitationdomain.Invitation, error) {
	if workspaceID == "" || callerID == "" {
		return nil, apperrors.New(apperrors.CodeInvalidArgument, "workspace_id and caller_id are required")
	}
	caller, err := s.membershipOf(ctx, callerID)
	if err != nil {
		return nil, err
	}
	in := engine.Input{
		Action:   engine.ActionListInvitations,
		Actor:    actor(callerID, caller),
		Resource: engine.Resource{WorkspaceID: workspaceID},
	}
	if err := s.policy.Authorize(ctx, in).Err(); err != nil {
		return nil, err
	}
	invs, err := s.repo.ListInvitationsByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	for i, inv := range invs {
		invs[i] = s.expireIfDue(ctx, inv)
	}
	return invs, nil
}

// CancelInvitation withdraws a PENDING invitation. Allowed for the workspace owner and the
// invitation's creator. The status becomes EXPIRED with the cancellation recorded alongside.
func (s *Service) CancelInvitation(ctx context.Context, invitationID, callerID string) error {
	if invitationID == "" || callerID == "" {
		return apperrors.New(apperrors.CodeInvalidArgument, "invitation_id and caller_id are required")
	}
	inv, err := s.repo.GetInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvitationNotFound
		}
		return err
	}
	caller, err := s.membershipOf(ctx, callerID)
	if err != nil {
		return err
	}
	in := engine.Input{
		Action:   engine.ActionCancelInvitation,
		Actor:    actor(callerID, caller),
		Resource: engine.Resource{WorkspaceID: inv.WorkspaceID, CreatedByID: inv.CreatedByID, Role: inv.Role},
	}
	if err := s.policy.Authorize(ctx, in).Err(); err != nil {
		return err
	}
	inv = s.expireIfDue(ctx, inv)
	if terr := inv.TerminalError(); terr != nil {
		return terr
	}
	t := repository.Transition{To: invitationdomain.StatusExpired, At: s.now(), CancelledByID: callerID}
	return s.transition(ctx, inv.ID, t)
}

// CreateWorkspace creates a workspace owned by ownerID. The owner must not belong to a workspace yet.
func (s *Service) CreateWorkspace(ctx context.Context, name, slug, ownerID string) (*domain.Workspace, *membershipdomain.Membership, error) {
	if ownerID == "" {
		return nil, nil, apperrors.New(apperrors.CodeInvalidArgument, "owner_id is required")
	}
	now := s.now()
	ws := &domain.Workspace{ID: uuid.NewString(), Name: name, Slug: slug, CreatedAt: now}
	if err := ws.Validate(); err != nil {
		return nil, nil, apperrors.New(apperrors.CodeInvalidArgument, err.Error())
	}
	owner := &membershipdomain.Membership{
		WorkspaceID: ws.ID,
		UserID:      ownerID,
		Role:        membershipdomain.RoleOwner,
		CreatedAt:   now,
	}
	switch err := s.repo.CreateWorkspace(ctx, ws, owner); {
	case err == nil:
		return ws, owner, nil
	case errors.Is(err, repository.ErrMembershipExists):
		return nil, nil, ErrMembershipExists
	case errors.Is(err, repository.ErrSlugTaken):
		return nil, nil, ErrSlugTaken
	default:
		return nil, nil, fmt.Errorf("create workspace: %w", err)
	}
}

// GetWorkspace returns the workspace by id.
func (s *Service) GetWorkspace(ctx context.Context, id string) (*domain.Workspace, error) {
	if id == "" {
		return nil, apperrors.New(apperrors.CodeInvalidArgument, "workspace_id is required")
	}
	ws, err := s.repo.GetWorkspace(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, err
	}
	return ws, nil
}

// membershipOf returns the user's membership or nil.
func (s *Service) membershipOf(ctx context.Context, userID string) (*membershipdomain.Membership, error) {
	m, err := s.repo.GetMembershipByUser(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return m, err
}

// expireIfDue flips a PENDING invitation past its ttl to EXPIRED. Repeated calls are no-ops.
// A failed write is logged and the returned view still reads EXPIRED; the next read retries it.
func (s *Service) expireIfDue(ctx context.Context, inv *invitationdomain.Invitation) *invitationdomain.Invitation {
	if !inv.IsExpired(s.now()) {
		return inv
	}
	err := s.repo.TransitionInvitation(ctx, inv.ID, repository.Transition{To: invitationdomain.StatusExpired, At: s.now()})
	switch {
	case err == nil:
		inv.Status = invitationdomain.StatusExpired
	case errors.Is(err, repository.ErrStaleTransition):
		// Someone else moved it first; report what they wrote.
		if fresh, gerr := s.repo.GetInvitationByID(ctx, inv.ID); gerr == nil {
			return fresh
		}
		inv.Status = invitationdomain.StatusExpired
	default:
		log.Printf("workspace: expire invitation %s: %v", inv.ID, err)
		inv.Status = invitationdomain.StatusExpired
	}
	return inv
}

func (s *Service) transition(ctx context.Context, id string, t repository.Transition) error {
	err := s.repo.TransitionInvitation(ctx, id, t)
	if errors.Is(err, repository.ErrStaleTransition) {
		return s.staleError(ctx, id)
	}
	return err
}

// staleError explains why a transition lost: the invitation reached a terminal state concurrently
// or ran out of time.
func (s *Service) staleError(ctx context.Context, id string) error {
	inv, err := s.repo.GetInvitationByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvitationNotFound
		}
		return err
	}
	inv = s.expireIfDue(ctx, inv)
	if terr := inv.TerminalError(); terr != nil {
		return terr
	}
	return apperrors.New(apperrors.CodeInvitationExpired, "invitation has expired")
}

func actor(userID string, m *membershipdomain.Membership) engine.Actor {
	a := engine.Actor{UserID: userID}
	if m != nil {
		a.WorkspaceID = m.WorkspaceID
		a.Role = m.Role
	}
	return a
}
