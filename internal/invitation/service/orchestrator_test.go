package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	invitationv1 "workspace-hub/backend/api/invitation/v1"
	invitationdomain "workspace-hub/backend/internal/invitation/domain"
	"workspace-hub/backend/internal/notification"
	apperrors "workspace-hub/backend/internal/platform/errors"
	"workspace-hub/backend/internal/workspace/repository"
	wsservice "workspace-hub/backend/internal/workspace/service"
)

var errUnavailable = apperrors.New(apperrors.CodeTransportFailure, "collaborator call failed")

type capturePublisher struct {
	events chan *notification.InvitationCreated
}

func (p *capturePublisher) Publish(_ context.Context, e *notification.InvitationCreated) error {
	p.events <- e
	return nil
}

func (p *capturePublisher) Close() error { return nil }

type fixture struct {
	o      *Orchestrator
	id     *fakeIdentity
	ws     *fakeWorkspace
	clock  *clock
	pub    *capturePublisher
	reader *sdkmetric.ManualReader
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	c := &clock{t: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	repo := repository.NewMemoryRepository()
	ws := &fakeWorkspace{
		repo: repo,
		svc:  wsservice.NewService(repo, nil, wsservice.Config{InviteBaseURL: "https://app.example.com", Now: c.now}),
	}
	id := newFakeIdentity()
	pub := &capturePublisher{events: make(chan *notification.InvitationCreated, 16)}
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	o := New(id, ws, WithPublisher(pub), WithMeter(mp.Meter("test")))
	o.now = c.now
	return &fixture{o: o, id: id, ws: ws, clock: c, pub: pub, reader: reader}
}

// owner registers an account and makes it the owner of a new workspace.
func (f *fixture) owner(t *testing.T, slug, email string) (Caller, string) {
	t.Helper()
	u := f.id.add(email)
	caller := Caller{UserID: u.ID, Email: u.Email}
	resp, err := f.o.CreateWorkspace(context.Background(), caller, "Team "+slug, slug)
	if err != nil {
		t.Fatalf("CreateWorkspace(%s): %v", slug, err)
	}
	return caller, resp.Workspace.ID
}

func (f *fixture) user(email string) Caller {
	u := f.id.add(email)
	return Caller{UserID: u.ID, Email: u.Email}
}

func (f *fixture) invitationCount(t *testing.T, workspaceID string) int {
	t.Helper()
	list, err := f.ws.repo.ListInvitationsByWorkspace(context.Background(), workspaceID)
	if err != nil {
		t.Fatalf("ListInvitationsByWorkspace: %v", err)
	}
	return len(list)
}

func wantCode(t *testing.T, err error, code apperrors.Code) {
	t.Helper()
	if got := apperrors.CodeOf(err); got != code {
		t.Fatalf("want %s, got %s (%v)", code, got, err)
	}
}

// outcomes returns the invitations.outcomes counter values keyed by operation/result.
func (f *fixture) outcomes(t *testing.T) map[string]int64 {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := f.reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect: %v", err)
	}
	out := make(map[string]int64)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "invitations.outcomes" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("outcomes data = %T", m.Data)
			}
			for _, dp := range sum.DataPoints {
				op, _ := dp.Attributes.Value("operation")
				res, _ := dp.Attributes.Value("result")
				out[op.AsString()+"/"+res.AsString()] += dp.Value
			}
		}
	}
	return out
}

func TestScenarioA_InviteRegisterAcceptOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner, ws := f.owner(t, "w1", "owner@x.com")

	created, err := f.o.CreateInvitation(ctx, owner, ws, "a@x.com", "MEMBER")
	if err != nil {
		t.Fatalf("CreateInvitation: %v", err)
	}
	if created.Invitation.Status != string(invitationdomain.StatusPending) || created.Invitation.Token == "" {
		t.Fatalf("invitation = %+v", created.Invitation)
	}
	if created.InviteURL != "https://app.example.com/invite/"+created.Invitation.Token {
		t.Errorf("InviteURL = %q", created.InviteURL)
	}

	a := f.user("a@x.com")
	accepted, err := f.o.AcceptInvitation(ctx, a, created.Invitation.Token)
	if err != nil {
		t.Fatalf("AcceptInvitation: %v", err)
	}
	if accepted.Membership.WorkspaceID != ws || accepted.Membership.Role != "MEMBER" || accepted.Workspace.Slug != "w1" {
		t.Errorf("accepted = %+v", accepted)
	}
	inv, _ := f.o.GetInvitation(ctx, created.Invitation.Token)
	if inv.Status != string(invitationdomain.StatusAccepted) {
		t.Errorf("status = %s", inv.Status)
	}

	_, err = f.o.AcceptInvitation(ctx, a, created.Invitation.Token)
	wantCode(t, err, apperrors.CodeInvitationAlreadyAccepted)
	list, _ := f.ws.GetUserWorkspaces(ctx, a.UserID)
	if len(list) != 1 {
		t.Errorf("memberships = %d, want 1", len(list))
	}

	got := f.outcomes(t)
	if got["create/OK"] != 1 || got["accept/OK"] != 1 || got["accept/INVITATION_ALREADY_ACCEPTED"] != 1 {
		t.Errorf("outcomes = %v", got)
	}
}

func TestScenarioB_OwnerRoleRejected(t *testing.T) {
	f := newFixture(t)
	owner, ws := f.owner(t, "w1", "owner@x.com")

	_, err := f.o.CreateInvitation(context.Background(), owner, ws, "a@x.com", "OWNER")
	wantCode(t, err, apperrors.CodeInvitationOwnerRole)
	if n := f.invitationCount(t, ws); n != 0 {
		t.Errorf("invitations = %d, want 0", n)
	}
	if f.ws.createCalls != 0 {
		t.Error("no create command may be issued")
	}
}

func TestScenarioC_InviteeInOtherWorkspace(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner, w1 := f.owner(t, "w1", "owner@x.com")
	f.owner(t, "w2", "b@x.com")

	_, err := f.o.CreateInvitation(ctx, owner, w1, "B@x.com", "")
	wantCode(t, err, apperrors.CodeInviteeInOtherWorkspace)
	if n := f.invitationCount(t, w1); n != 0 {
		t.Errorf("invitations = %d, want 0", n)
	}

	_, err = f.o.CreateInvitation(ctx, owner, w1, "owner@x.com", "")
	wantCode(t, err, apperrors.CodeInviteeAlreadyMember)
}

func TestScenarioD_CancelledInvitationCannotBeAccepted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner, ws := f.owner(t, "w1", "owner@x.com")
	created, err := f.o.CreateInvitation(ctx, owner, ws, "c@x.com", "")
	if err != nil {
		t.Fatalf("CreateInvitation: %v", err)
	}

	if err := f.o.CancelInvitation(ctx, owner, created.Invitation.ID); err != nil {
		t.Fatalf("CancelInvitation: %v", err)
	}
	inv, _ := f.o.GetInvitation(ctx, created.Invitation.Token)
	if inv.Status != string(invitationdomain.StatusExpired) || inv.CancelledByID != owner.UserID {
		t.Errorf("invitation = %+v", inv)
	}

	c := f.user("c@x.com")
	_, err = f.o.AcceptInvitation(ctx, c, created.Invitation.Token)
	wantCode(t, err, apperrors.CodeInvitationCancelled)
	if apperrors.KindOf(err) != apperrors.KindExpired {
		t.Errorf("kind = %s, want EXPIRED", apperrors.KindOf(err))
	}
}

func TestAccept_EmailMismatchChangesNothing(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner, ws := f.owner(t, "w1", "owner@x.com")
	created, _ := f.o.CreateInvitation(ctx, owner, ws, "a@x.com", "")

	eve := f.user("eve@x.com")
	_, err := f.o.AcceptInvitation(ctx, eve, created.Invitation.Token)
	wantCode(t, err, apperrors.CodeEmailMismatch)

	inv, _ := f.o.GetInvitation(ctx, created.Invitation.Token)
	if inv.Status != string(invitationdomain.StatusPending) {
		t.Errorf("status = %s, want PENDING", inv.Status)
	}
	if list, _ := f.ws.GetUserWorkspaces(ctx, eve.UserID); len(list) != 0 {
		t.Errorf("memberships = %v", list)
	}
}

func TestAccept_CaseInsensitiveEmailAndTokenWithoutEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner, ws := f.owner(t, "w1", "owner@x.com")
	created, _ := f.o.CreateInvitation(ctx, owner, ws, "a@x.com", "admin")

	a := f.user("a@x.com")
	// Caller without an email in the token: looked up by id.
	resp, err := f.o.AcceptInvitation(ctx, Caller{UserID: a.UserID}, created.Invitation.Token)
	if err != nil {
		t.Fatalf("AcceptInvitation: %v", err)
	}
	if resp.Membership.Role != "ADMIN" {
		t.Errorf("role = %s", resp.Membership.Role)
	}

	created2, _ := f.o.CreateInvitation(ctx, owner, ws, "mixed@x.com", "")
	m := f.user("mixed@x.com")
	if _, err := f.o.AcceptInvitation(ctx, Caller{UserID: m.UserID, Email: "MIXED@X.COM"}, created2.Invitation.Token); err != nil {
		t.Fatalf("case-insensitive accept: %v", err)
	}
}

func TestAccept_ExpiredIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner, ws := f.owner(t, "w1", "owner@x.com")
	created, _ := f.o.CreateInvitation(ctx, owner, ws, "a@x.com", "")
	a := f.user("a@x.com")

	f.clock.advance(invitationdomain.DefaultTTL)
	for i := 0; i < 2; i++ {
		inv, err := f.o.GetInvitation(ctx, created.Invitation.Token)
		if err != nil || inv.Status != string(invitationdomain.StatusExpired) {
			t.Fatalf("read %d: %v %+v", i, err, inv)
		}
		_, err = f.o.AcceptInvitation(ctx, a, created.Invitation.Token)
		wantCode(t, err, apperrors.CodeInvitationExpired)
	}
}

func TestConcurrentAccepts_OneMembershipPerUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	o1, w1 := f.owner(t, "w1", "o1@x.com")
	o2, w2 := f.owner(t, "w2", "o2@x.com")
	t1, _ := f.o.CreateInvitation(ctx, o1, w1, "a@x.com", "")
	t2, _ := f.o.CreateInvitation(ctx, o2, w2, "a@x.com", "")
	a := f.user("a@x.com")

	var (
		wg   sync.WaitGroup
		errs = make([]error, 2)
	)
	for i, tok := range []string{t1.Invitation.Token, t2.Invitation.Token} {
		wg.Add(1)
		go func(i int, tok string) {
			defer wg.Done()
			_, errs[i] = f.o.AcceptInvitation(ctx, a, tok)
		}(i, tok)
	}
	wg.Wait()

	ok, conflict := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case apperrors.HasCode(err, apperrors.CodeMembershipExists):
			conflict++
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if ok != 1 || conflict != 1 {
		t.Fatalf("ok=%d conflict=%d", ok, conflict)
	}
	if list, _ := f.ws.GetUserWorkspaces(ctx, a.UserID); len(list) != 1 {
		t.Errorf("memberships = %d", len(list))
	}
}

func TestCreate_AuthorizationAndValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner, ws := f.owner(t, "w1", "owner@x.com")
	_, other := f.owner(t, "w2", "other@x.com")
	member := f.user("member@x.com")

	created, _ := f.o.CreateInvitation(ctx, owner, ws, "member@x.com", "")
	if _, err := f.o.AcceptInvitation(ctx, member, created.Invitation.Token); err != nil {
		t.Fatalf("AcceptInvitation: %v", err)
	}

	testCases := []struct {
		name      string
		caller    Caller
		workspace string
		email     string
		role      string
		code      apperrors.Code
	}{
		{"member is not owner", member, ws, "z@x.com", "", apperrors.CodeNotWorkspaceOwner},
		{"owner of another workspace", owner, other, "z@x.com", "", apperrors.CodeNotWorkspaceOwner},
		{"non owner asking for owner role", member, ws, "z@x.com", "OWNER", apperrors.CodeNotWorkspaceOwner},
		{"unknown role", owner, ws, "z@x.com", "GUEST", apperrors.CodeInvalidRole},
		{"bad email", owner, ws, "nope", "", apperrors.CodeInvalidArgument},
		{"email that cannot register", owner, ws, "a@localhost", "", apperrors.CodeInvalidArgument},
		{"missing workspace", owner, "", "z@x.com", "", apperrors.CodeInvalidArgument},
		{"anonymous", Caller{}, ws, "z@x.com", "", apperrors.CodeUnauthenticated},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.o.CreateInvitation(ctx, tc.caller, tc.workspace, tc.email, tc.role)
			wantCode(t, err, tc.code)
		})
	}
}

func TestCreate_DuplicatePendingConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner, ws := f.owner(t, "w1", "owner@x.com")
	if _, err := f.o.CreateInvitation(ctx, owner, ws, "a@x.com", ""); err != nil {
		t.Fatalf("first: %v", err)
	}
	_, err := f.o.CreateInvitation(ctx, owner, ws, "A@X.com", "")
	wantCode(t, err, apperrors.CodeInvitationPending)
	if apperrors.KindOf(err) != apperrors.KindConflict {
		t.Errorf("kind = %s", apperrors.KindOf(err))
	}
}

func TestCreate_AdvisoryLookupFailuresProceed(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner, w1 := f.owner(t, "w1", "owner@x.com")
	f.owner(t, "w2", "b@x.com")

	f.ws.workspacesErr = errUnavailable
	if _, err := f.o.CreateInvitation(ctx, owner, w1, "b@x.com", ""); err != nil {
		t.Fatalf("membership lookup failure should not block: %v", err)
	}
	f.ws.workspacesErr = nil

	f.id.lookupErr = errUnavailable
	if _, err := f.o.CreateInvitation(ctx, owner, w1, "new@x.com", ""); err != nil {
		t.Fatalf("user lookup failure should not block: %v", err)
	}
	f.id.lookupErr = nil

	// The accept transaction is the backstop.
	b := Caller{UserID: mustLookup(t, f, "b@x.com"), Email: "b@x.com"}
	list, _ := f.ws.repo.ListInvitationsByWorkspace(ctx, w1)
	var token string
	for _, inv := range list {
		if inv.Email == "b@x.com" {
			token = inv.Token
		}
	}
	_, err := f.o.AcceptInvitation(ctx, b, token)
	wantCode(t, err, apperrors.CodeMembershipExists)
}

func mustLookup(t *testing.T, f *fixture, email string) string {
	t.Helper()
	u, err := f.id.LookupUserByEmail(context.Background(), email)
	if err != nil || u == nil {
		t.Fatalf("lookup %s: %v", email, err)
	}
	return u.ID
}

func TestCreate_InviterLookupFailureIsSurfaced(t *testing.T) {
	f := newFixture(t)
	owner, ws := f.owner(t, "w1", "owner@x.com")
	f.ws.membershipErr = errUnavailable

	_, err := f.o.CreateInvitation(context.Background(), owner, ws, "a@x.com", "")
	if apperrors.KindOf(err) != apperrors.KindTransportFailure {
		t.Fatalf("kind = %s (%v)", apperrors.KindOf(err), err)
	}
	if f.ws.createCalls != 0 {
		t.Error("no create command may be issued")
	}
}

func TestCreate_PublishesNotification(t *testing.T) {
	f := newFixture(t)
	owner, ws := f.owner(t, "w1", "owner@x.com")
	created, err := f.o.CreateInvitation(context.Background(), owner, ws, "a@x.com", "")
	if err != nil {
		t.Fatalf("CreateInvitation: %v", err)
	}
	select {
	case e := <-f.pub.events:
		if e.Type != notification.EventInvitationCreated || e.InvitationID != created.Invitation.ID ||
			e.InviteURL != created.InviteURL || e.InvitedByID != owner.UserID {
			t.Errorf("event = %+v", e)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no notification published")
	}
}

func TestValidateInvitation_States(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner, w1 := f.owner(t, "w1", "owner@x.com")
	f.owner(t, "w2", "taken@x.com")
	f.user("known@x.com")

	token := func(email string) string {
		t.Helper()
		f.ws.workspacesErr = errUnavailable // let the invite through even for taken@x.com
		defer func() { f.ws.workspacesErr = nil }()
		resp, err := f.o.CreateInvitation(ctx, owner, w1, email, "")
		if err != nil {
			t.Fatalf("CreateInvitation(%s): %v", email, err)
		}
		return resp.Invitation.Token
	}
	newTok, knownTok, takenTok := token("new@x.com"), token("known@x.com"), token("taken@x.com")

	testCases := []struct {
		name   string
		token  string
		state  string
		reason string
	}{
		{"unknown token", "missing", invitationv1.StateInvalid, string(apperrors.CodeInvitationNotFound)},
		{"no account", newTok, invitationv1.StateNeedsRegistration, ""},
		{"existing account", knownTok, invitationv1.StateNeedsLogin, ""},
		{"account in another workspace", takenTok, invitationv1.StateBlocked, string(apperrors.CodeInviteeInOtherWorkspace)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := f.o.ValidateInvitation(ctx, tc.token)
			if err != nil {
				t.Fatalf("ValidateInvitation: %v", err)
			}
			if resp.State != tc.state || resp.Reason != tc.reason {
				t.Errorf("state=%s reason=%s", resp.State, resp.Reason)
			}
		})
	}

	if err := f.o.DeclineInvitation(ctx, newTok); err != nil {
		t.Fatalf("DeclineInvitation: %v", err)
	}
	resp, _ := f.o.ValidateInvitation(ctx, newTok)
	if resp.State != invitationv1.StateInvalid || resp.Reason != string(apperrors.CodeInvitationDeclined) {
		t.Errorf("declined: %+v", resp)
	}

	f.ws.workspacesErr = errUnavailable
	resp, err := f.o.ValidateInvitation(ctx, takenTok)
	if err != nil || resp.State != invitationv1.StateNeedsLogin {
		t.Errorf("membership lookup failure should route to login: %v %+v", err, resp)
	}
	f.ws.workspacesErr = nil

	f.id.lookupErr = errUnavailable
	resp, err = f.o.ValidateInvitation(ctx, knownTok)
	if err != nil || resp.State != invitationv1.StateNeedsLogin {
		t.Errorf("identity lookup failure should route to login: %v %+v", err, resp)
	}
	f.id.lookupErr = nil
}

func TestRegisterWithInvitation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner, ws := f.owner(t, "w1", "owner@x.com")
	created, _ := f.o.CreateInvitation(ctx, owner, ws, "a@x.com", "")

	resp, err := f.o.RegisterWithInvitation(ctx, "a@x.com", "Correct-Horse-9", "Ada", created.Invitation.Token)
	if err != nil {
		t.Fatalf("RegisterWithInvitation: %v", err)
	}
	if !resp.InvitationAccepted || resp.FollowUpError != nil || resp.AccessToken == "" || resp.ExpiresAt == nil {
		t.Fatalf("resp = %+v", resp)
	}
	if resp.Membership.WorkspaceID != ws || resp.Workspace.ID != ws {
		t.Errorf("membership=%+v workspace=%+v", resp.Membership, resp.Workspace)
	}

	_, err = f.o.RegisterWithInvitation(ctx, "a@x.com", "Correct-Horse-9", "Ada", created.Invitation.Token)
	wantCode(t, err, apperrors.CodeEmailAlreadyRegistered)
}

func TestRegisterWithInvitation_FollowUpFailuresKeepAccount(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner, ws := f.owner(t, "w1", "owner@x.com")
	created, _ := f.o.CreateInvitation(ctx, owner, ws, "a@x.com", "")

	// Registering a different address than the invitation's: account stays, accept is reported.
	resp, err := f.o.RegisterWithInvitation(ctx, "b@x.com", "Correct-Horse-9", "Bo", created.Invitation.Token)
	if err != nil {
		t.Fatalf("RegisterWithInvitation: %v", err)
	}
	if resp.InvitationAccepted || resp.FollowUpError == nil || resp.FollowUpError.Code != string(apperrors.CodeEmailMismatch) {
		t.Fatalf("resp = %+v", resp)
	}
	if resp.AccessToken == "" {
		t.Error("login should still have succeeded")
	}
	if u, _ := f.id.LookupUserByEmail(ctx, "b@x.com"); u == nil {
		t.Error("account must not be rolled back")
	}

	f.id.loginErr = errUnavailable
	resp, err = f.o.RegisterWithInvitation(ctx, "a@x.com", "Correct-Horse-9", "Ada", created.Invitation.Token)
	if err != nil {
		t.Fatalf("RegisterWithInvitation: %v", err)
	}
	if resp.InvitationAccepted || resp.AccessToken != "" || resp.FollowUpError.Code != string(apperrors.CodeTransportFailure) {
		t.Fatalf("resp = %+v", resp)
	}
	inv, _ := f.o.GetInvitation(ctx, created.Invitation.Token)
	if inv.Status != string(invitationdomain.StatusPending) {
		t.Errorf("invitation should still be redeemable, got %s", inv.Status)
	}

	got := f.outcomes(t)
	if got["register/EMAIL_MISMATCH"] != 1 || got["register/TRANSPORT_FAILURE"] != 1 {
		t.Errorf("outcomes = %v", got)
	}
}

func TestListAndCancel_Authorization(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner, ws := f.owner(t, "w1", "owner@x.com")
	created, _ := f.o.CreateInvitation(ctx, owner, ws, "a@x.com", "")
	stranger := f.user("stranger@x.com")

	list, err := f.o.ListWorkspaceInvitations(ctx, owner, ws)
	if err != nil || len(list) != 1 {
		t.Fatalf("ListWorkspaceInvitations: %v %v", err, list)
	}
	_, err = f.o.ListWorkspaceInvitations(ctx, stranger, ws)
	wantCode(t, err, apperrors.CodeNotWorkspaceOwner)

	wantCode(t, f.o.CancelInvitation(ctx, stranger, created.Invitation.ID), apperrors.CodeNotWorkspaceOwner)
	wantCode(t, f.o.CancelInvitation(ctx, Caller{}, created.Invitation.ID), apperrors.CodeUnauthenticated)
	wantCode(t, f.o.DeclineInvitation(ctx, ""), apperrors.CodeInvalidArgument)
}

func TestCreateWorkspace_OneWorkspacePerUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner, _ := f.owner(t, "w1", "owner@x.com")
	_, err := f.o.CreateWorkspace(ctx, owner, "Second", "w2")
	wantCode(t, err, apperrors.CodeMembershipExists)
	_, err = f.o.CreateWorkspace(ctx, Caller{}, "Anon", "anon")
	wantCode(t, err, apperrors.CodeUnauthenticated)
}

func TestFollowUp_HidesInternalErrors(t *testing.T) {
	fe := followUp(errors.New("pq: connection reset"))
	if fe.Code != string(apperrors.CodeInternal) || fe.Message != "internal error" {
		t.Errorf("followUp = %+v", fe)
	}
}
