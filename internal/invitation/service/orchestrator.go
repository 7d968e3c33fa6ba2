// Package service is the Invitation Orchestrator. It composes Identity Service and Workspace
// Service commands and enforces the invariants neither store can enforce alone: an invitee in
// another workspace is turned away, and a token is redeemable only by the account it was sent to.
//
// The orchestrator writes nothing durable itself. Every flow has at most one mutating command,
// issued last; reads before it are advisory and only sharpen the error the caller sees.
package service

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	identityv1 "workspace-hub/backend/api/identity/v1"
	invitationv1 "workspace-hub/backend/api/invitation/v1"
	workspacev1 "workspace-hub/backend/api/workspace/v1"
	invitationdomain "workspace-hub/backend/internal/invitation/domain"
	membershipdomain "workspace-hub/backend/internal/membership/domain"
	"workspace-hub/backend/internal/notification"
	apperrors "workspace-hub/backend/internal/platform/errors"
	"workspace-hub/backend/internal/policy/engine"
	userdomain "workspace-hub/backend/internal/user/domain"
)

// IdentityClient is the Identity Service as the orchestrator sees it.
type IdentityClient interface {
	LookupUserByEmail(ctx context.Context, email string) (*identityv1.User, error)
	LookupUserByID(ctx context.Context, id string) (*identityv1.User, error)
	Register(ctx context.Context, email, password, name string) (*identityv1.User, error)
	Login(ctx context.Context, email, password string) (*identityv1.LoginResponse, error)
}

// WorkspaceClient is the Workspace Service as the orchestrator sees it.
type WorkspaceClient interface {
	GetUserMembership(ctx context.Context, workspaceID, userID string) (*workspacev1.Membership, error)
	GetUserWorkspaces(ctx context.Context, userID string) ([]workspacev1.Membership, error)
	CreateInvitation(ctx context.Context, req *workspacev1.CreateInvitationRequest) (*workspacev1.CreateInvitationResponse, error)
	GetInvitationByToken(ctx context.Context, token string) (*workspacev1.Invitation, error)
	ValidateInvitationForRegistration(ctx context.Context, token string) (*workspacev1.ValidateInvitationForRegistrationResponse, error)
	AcceptInvitation(ctx context.Context, token, userID string) (*workspacev1.AcceptInvitationResponse, error)
	DeclineInvitation(ctx context.Context, token string) error
	GetWorkspaceInvitations(ctx context.Context, workspaceID, callerID string) ([]workspacev1.Invitation, error)
	CancelInvitation(ctx context.Context, invitationID, callerID string) error
	CreateWorkspace(ctx context.Context, name, slug, ownerID string) (*workspacev1.CreateWorkspaceResponse, error)
}

// Caller is the authenticated user a command runs for.
type Caller struct {
	UserID string
	Email  string
}

// Orchestrator runs the invitation flows.
type Orchestrator struct {
	identity  IdentityClient
	workspace WorkspaceClient
	policy    engine.Evaluator
	publisher notification.Publisher
	outcomes  metric.Int64Counter
	now       func() time.Time
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithPolicy sets the authorization evaluator. Default: engine.Rules.
func WithPolicy(p engine.Evaluator) Option {
	return func(o *Orchestrator) { o.policy = p }
}

// WithPublisher sets where invitation.created events go. Default: none.
func WithPublisher(p notification.Publisher) Option {
	return func(o *Orchestrator) { o.publisher = p }
}

// WithMeter sets the meter for the outcomes counter. Default: the global meter provider.
func WithMeter(m metric.Meter) Option {
	return func(o *Orchestrator) { o.outcomes = newOutcomesCounter(m) }
}

// New returns an Orchestrator over the two service clients.
func New(identity IdentityClient, workspace WorkspaceClient, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		identity:  identity,
		workspace: workspace,
		policy:    engine.Rules{},
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.outcomes == nil {
		o.outcomes = newOutcomesCounter(otel.Meter("workspace-hub/invitation"))
	}
	return o
}

func newOutcomesCounter(m metric.Meter) metric.Int64Counter {
	c, err := m.Int64Counter("invitations.outcomes",
		metric.WithDescription("Invitation orchestrator command outcomes by operation and result code"))
	if err != nil {
		log.Printf("invitation: outcomes counter: %v", err)
	}
	return c
}

// record counts one outcome. err == nil counts as OK.
func (o *Orchestrator) record(ctx context.Context, op string, err error) {
	if o.outcomes == nil {
		return
	}
	result := "OK"
	if err != nil {
		result = string(apperrors.CodeOf(err))
	}
	o.outcomes.Add(context.WithoutCancel(ctx), 1, metric.WithAttributes(
		attribute.String("operation", op),
		attribute.String("result", result),
	))
}

// CreateInvitation invites email to workspaceID on behalf of caller. Preconditions run in order and
// fail fast: caller owns the workspace, role is grantable, the invitee is not a member here or
// elsewhere. The Workspace Service re-checks the pending-invitation uniqueness on insert.
func (o *Orchestrator) CreateInvitation(ctx context.Context, caller Caller, workspaceID, email, role string) (resp *invitationv1.CreateInvitationResponse, err error) {
	defer func() { o.record(ctx, "create", err) }()

	if workspaceID == "" {
		return nil, apperrors.New(apperrors.CodeInvalidArgument, "workspace_id is required")
	}
	if caller.UserID == "" {
		return nil, apperrors.New(apperrors.CodeUnauthenticated, "authentication required")
	}

	inviter, err := o.workspace.GetUserMembership(ctx, workspaceID, caller.UserID)
	if err != nil {
		return nil, err
	}
	r, roleOK := membershipdomain.ParseRole(role)
	in := engine.Input{
		Action:   engine.ActionCreateInvitation,
		Actor:    actorOf(caller.UserID, inviter),
		Resource: engine.Resource{WorkspaceID: workspaceID, Role: r},
	}
	if err := o.policy.Authorize(ctx, in).Err(); err != nil {
		return nil, err
	}
	if !roleOK {
		return nil, apperrors.Newf(apperrors.CodeInvalidRole, "unknown role %q", role)
	}

	email, err = userdomain.ParseEmail(email)
	if err != nil {
		return nil, err
	}
	if err := o.checkInvitee(ctx, workspaceID, email); err != nil {
		return nil, err
	}

	created, err := o.workspace.CreateInvitation(ctx, &workspacev1.CreateInvitationRequest{
		WorkspaceID: workspaceID,
		Email:       email,
		Role:        string(r),
		CreatedByID: caller.UserID,
	})
	if err != nil {
		return nil, err
	}
	notification.PublishAsync(ctx, o.publisher, &notification.InvitationCreated{
		Type:         notification.EventInvitationCreated,
		InvitationID: created.Invitation.ID,
		WorkspaceID:  created.Invitation.WorkspaceID,
		Email:        created.Invitation.Email,
		Role:         created.Invitation.Role,
		InviteURL:    created.InviteURL,
		InvitedByID:  caller.UserID,
		ExpiresAt:    created.Invitation.ExpiresAt,
		CreatedAt:    created.Invitation.CreatedAt,
	})
	return &invitationv1.CreateInvitationResponse{Invitation: created.Invitation, InviteURL: created.InviteURL}, nil
}

// checkInvitee rejects an email whose account already has a workspace. Both lookups are advisory:
// when either fails the invitation goes ahead and the membership constraint decides at accept time.
func (o *Orchestrator) checkInvitee(ctx context.Context, workspaceID, email string) error {
	user, err := o.identity.LookupUserByEmail(ctx, email)
	if err != nil {
		log.Printf("invitation: advisory user lookup failed, proceeding: %v", err)
		return nil
	}
	if user == nil {
		return nil
	}
	memberships, err := o.workspace.GetUserWorkspaces(ctx, user.ID)
	if err != nil {
		log.Printf("invitation: advisory membership lookup for %s failed, proceeding: %v", user.ID, err)
		return nil
	}
	return membershipConflict(workspaceID, memberships)
}

func membershipConflict(workspaceID string, memberships []workspacev1.Membership) error {
	for _, m := range memberships {
		if m.WorkspaceID == workspaceID {
			return apperrors.New(apperrors.CodeInviteeAlreadyMember, "user is already a member of this workspace")
		}
	}
	if len(memberships) > 0 {
		return apperrors.New(apperrors.CodeInviteeInOtherWorkspace, "user already belongs to another workspace")
	}
	return nil
}

// GetInvitation returns the invitation for token with its current status.
func (o *Orchestrator) GetInvitation(ctx context.Context, token string) (inv *workspacev1.Invitation, err error) {
	defer func() { o.record(ctx, "get", err) }()
	if token == "" {
		return nil, apperrors.New(apperrors.CodeInvalidArgument, "token is required")
	}
	return o.workspace.GetInvitationByToken(ctx, token)
}

// ValidateInvitation tells an unauthenticated caller where to go with token: nowhere (INVALID),
// login (NEEDS_LOGIN), registration (NEEDS_REGISTRATION) or nowhere because the invitee already
// has a workspace (BLOCKED).
func (o *Orchestrator) ValidateInvitation(ctx context.Context, token string) (resp *invitationv1.ValidateInvitationResponse, err error) {
	defer func() { o.record(ctx, "validate", err) }()
	if token == "" {
		return nil, apperrors.New(apperrors.CodeInvalidArgument, "token is required")
	}
	v, err := o.workspace.ValidateInvitationForRegistration(ctx, token)
	if err != nil {
		return nil, err
	}
	if !v.Valid || v.Invitation == nil {
		return &invitationv1.ValidateInvitationResponse{State: invitationv1.StateInvalid, Invitation: v.Invitation, Reason: v.Reason}, nil
	}
	inv := v.Invitation

	user, err := o.identity.LookupUserByEmail(ctx, inv.Email)
	if err != nil {
		// Login can still send an unknown caller on to registration.
		log.Printf("invitation: advisory user lookup for invitation %s failed, routing to login: %v", inv.ID, err)
		return &invitationv1.ValidateInvitationResponse{State: invitationv1.StateNeedsLogin, Invitation: inv}, nil
	}
	if user == nil {
		return &invitationv1.ValidateInvitationResponse{State: invitationv1.StateNeedsRegistration, Invitation: inv}, nil
	}
	memberships, err := o.workspace.GetUserWorkspaces(ctx, user.ID)
	if err != nil {
		log.Printf("invitation: advisory membership lookup for %s failed, routing to login: %v", user.ID, err)
		return &invitationv1.ValidateInvitationResponse{State: invitationv1.StateNeedsLogin, Invitation: inv}, nil
	}
	if cerr := membershipConflict(inv.WorkspaceID, memberships); cerr != nil {
		return &invitationv1.ValidateInvitationResponse{
			State:      invitationv1.StateBlocked,
			Invitation: inv,
			Reason:     string(apperrors.CodeOf(cerr)),
		}, nil
	}
	return &invitationv1.ValidateInvitationResponse{State: invitationv1.StateNeedsLogin, Invitation: inv}, nil
}

// AcceptInvitation redeems token for caller. The invitation must be PENDING and addressed to the
// caller's email; membership creation and the ACCEPTED transition happen atomically in the
// Workspace Service.
func (o *Orchestrator) AcceptInvitation(ctx context.Context, caller Caller, token string) (resp *invitationv1.AcceptInvitationResponse, err error) {
	defer func() { o.record(ctx, "accept", err) }()
	return o.accept(ctx, caller, token)
}

func (o *Orchestrator) accept(ctx context.Context, caller Caller, token string) (*invitationv1.AcceptInvitationResponse, error) {
	if token == "" {
		return nil, apperrors.New(apperrors.CodeInvalidArgument, "token is required")
	}
	if caller.UserID == "" {
		return nil, apperrors.New(apperrors.CodeUnauthenticated, "authentication required")
	}
	wire, err := o.workspace.GetInvitationByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	inv := invitationFromWire(wire)
	if terr := inv.TerminalError(); terr != nil {
		return nil, terr
	}
	if inv.IsExpired(o.now()) {
		// The Workspace Service flips it on its next read.
		return nil, apperrors.WithMetadata(apperrors.CodeInvitationExpired, "invitation has expired",
			map[string]string{"invitation_status": string(invitationdomain.StatusExpired)})
	}

	email := caller.Email
	if email == "" {
		u, err := o.identity.LookupUserByID(ctx, caller.UserID)
		if err != nil {
			return nil, err
		}
		if u == nil {
			return nil, apperrors.New(apperrors.CodeUserNotFound, "caller account not found")
		}
		email = u.Email
	}
	if !invitationdomain.EmailsMatch(inv.Email, email) {
		return nil, apperrors.New(apperrors.CodeEmailMismatch, "invitation was sent to a different email address")
	}

	accepted, err := o.workspace.AcceptInvitation(ctx, token, caller.UserID)
	if err != nil {
		return nil, err
	}
	return &invitationv1.AcceptInvitationResponse{Membership: accepted.Membership, Workspace: accepted.Workspace}, nil
}

// DeclineInvitation moves a PENDING invitation to DECLINED. Anyone holding the token may decline.
func (o *Orchestrator) DeclineInvitation(ctx context.Context, token string) (err error) {
	defer func() { o.record(ctx, "decline", err) }()
	if token == "" {
		return apperrors.New(apperrors.CodeInvalidArgument, "token is required")
	}
	return o.workspace.DeclineInvitation(ctx, token)
}

// CancelInvitation withdraws an invitation. The Workspace Service checks that caller owns the
// workspace or created the invitation.
func (o *Orchestrator) CancelInvitation(ctx context.Context, caller Caller, invitationID string) (err error) {
	defer func() { o.record(ctx, "cancel", err) }()
	if invitationID == "" {
		return apperrors.New(apperrors.CodeInvalidArgument, "invitation_id is required")
	}
	if caller.UserID == "" {
		return apperrors.New(apperrors.CodeUnauthenticated, "authentication required")
	}
	return o.workspace.CancelInvitation(ctx, invitationID, caller.UserID)
}

// ListWorkspaceInvitations lists the workspace's invitations for its owner.
func (o *Orchestrator) ListWorkspaceInvitations(ctx context.Context, caller Caller, workspaceID string) (list []workspacev1.Invitation, err error) {
	defer func() { o.record(ctx, "list", err) }()
	if workspaceID == "" {
		return nil, apperrors.New(apperrors.CodeInvalidArgument, "workspace_id is required")
	}
	if caller.UserID == "" {
		return nil, apperrors.New(apperrors.CodeUnauthenticated, "authentication required")
	}
	return o.workspace.GetWorkspaceInvitations(ctx, workspaceID, caller.UserID)
}

// RegisterWithInvitation creates the account, then logs in and accepts the invitation as a
// best-effort continuation. Only a failed registration fails the call; a failure afterwards leaves
// the account in place and is reported in FollowUpError so the caller can accept manually.
func (o *Orchestrator) RegisterWithInvitation(ctx context.Context, email, password, name, token string) (resp *invitationv1.RegisterWithInvitationResponse, err error) {
	defer func() {
		result := err
		if err == nil && resp.FollowUpError != nil {
			result = apperrors.New(apperrors.Code(resp.FollowUpError.Code), "")
		}
		o.record(ctx, "register", result)
	}()
	if token == "" {
		return nil, apperrors.New(apperrors.CodeInvalidArgument, "token is required")
	}

	user, err := o.identity.Register(ctx, email, password, name)
	if err != nil {
		return nil, err
	}
	resp = &invitationv1.RegisterWithInvitationResponse{User: *user}

	login, err := o.identity.Login(ctx, email, password)
	if err != nil {
		log.Printf("invitation: registered %s but login failed: %v", user.ID, err)
		resp.FollowUpError = followUp(err)
		return resp, nil
	}
	resp.AccessToken = login.AccessToken
	expiresAt := login.ExpiresAt
	resp.ExpiresAt = &expiresAt

	accepted, err := o.accept(ctx, Caller{UserID: user.ID, Email: user.Email}, token)
	if err != nil {
		log.Printf("invitation: registered %s but accept failed: %v", user.ID, err)
		resp.FollowUpError = followUp(err)
		return resp, nil
	}
	resp.InvitationAccepted = true
	resp.Membership = &accepted.Membership
	resp.Workspace = &accepted.Workspace
	return resp, nil
}

func followUp(err error) *invitationv1.FollowUpError {
	e := apperrors.As(err)
	if e == nil {
		return &invitationv1.FollowUpError{Code: string(apperrors.CodeInternal), Message: "internal error"}
	}
	return &invitationv1.FollowUpError{Code: string(e.Code), Message: e.Error()}
}

// CreateWorkspace creates a workspace owned by caller.
func (o *Orchestrator) CreateWorkspace(ctx context.Context, caller Caller, name, slug string) (resp *workspacev1.CreateWorkspaceResponse, err error) {
	defer func() { o.record(ctx, "create_workspace", err) }()
	if caller.UserID == "" {
		return nil, apperrors.New(apperrors.CodeUnauthenticated, "authentication required")
	}
	return o.workspace.CreateWorkspace(ctx, name, slug, caller.UserID)
}

func actorOf(userID string, m *workspacev1.Membership) engine.Actor {
	a := engine.Actor{UserID: userID}
	if m != nil {
		a.WorkspaceID = m.WorkspaceID
		a.Role = membershipdomain.Role(m.Role)
	}
	return a
}

func invitationFromWire(w *workspacev1.Invitation) *invitationdomain.Invitation {
	return &invitationdomain.Invitation{
		ID:            w.ID,
		WorkspaceID:   w.WorkspaceID,
		Email:         w.Email,
		Token:         w.Token,
		Role:          membershipdomain.Role(w.Role),
		Status:        invitationdomain.Status(w.Status),
		ExpiresAt:     w.ExpiresAt,
		CreatedByID:   w.CreatedByID,
		CreatedAt:     w.CreatedAt,
		RespondedAt:   w.RespondedAt,
		CancelledAt:   w.CancelledAt,
		CancelledByID: w.CancelledByID,
	}
}
