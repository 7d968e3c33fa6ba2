package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	identityv1 "workspace-hub/backend/api/identity/v1"
	workspacev1 "workspace-hub/backend/api/workspace/v1"
	apperrors "workspace-hub/backend/internal/platform/errors"
	"workspace-hub/backend/internal/workspace/handler"
	"workspace-hub/backend/internal/workspace/repository"
	wsservice "workspace-hub/backend/internal/workspace/service"
)

type clock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *clock) advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

// fakeIdentity is an in-memory Identity Service with failure injection.
type fakeIdentity struct {
	mu        sync.Mutex
	users     map[string]*identityv1.User // by email
	passwords map[string]string
	lookupErr error
	loginErr  error
}

func newFakeIdentity() *fakeIdentity {
	return &fakeIdentity{users: make(map[string]*identityv1.User), passwords: make(map[string]string)}
}

func (f *fakeIdentity) add(email string) *identityv1.User {
	u, err := f.Register(context.Background(), email, "Correct-Horse-9", "")
	if err != nil {
		panic(err)
	}
	return u
}

func (f *fakeIdentity) LookupUserByEmail(_ context.Context, email string) (*identityv1.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	return f.users[strings.ToLower(email)], nil
}

func (f *fakeIdentity) LookupUserByID(_ context.Context, id string) (*identityv1.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeIdentity) Register(_ context.Context, email, password, name string) (*identityv1.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	email = strings.ToLower(strings.TrimSpace(email))
	if _, ok := f.users[email]; ok {
		return nil, apperrors.New(apperrors.CodeEmailAlreadyRegistered, "email already registered")
	}
	u := &identityv1.User{ID: uuid.NewString(), Email: email, Name: name, CreatedAt: time.Now().UTC()}
	f.users[email] = u
	f.passwords[email] = password
	return u, nil
}

func (f *fakeIdentity) Login(_ context.Context, email, password string) (*identityv1.LoginResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	email = strings.ToLower(email)
	u, ok := f.users[email]
	if !ok || f.passwords[email] != password {
		return nil, apperrors.New(apperrors.CodeInvalidCredentials, "invalid email or password")
	}
	return &identityv1.LoginResponse{AccessToken: "token-" + u.ID, ExpiresAt: time.Now().Add(time.Hour), User: *u}, nil
}

// fakeWorkspace runs the real Workspace service in-process and converts results to the wire
// types the gRPC client would return.
type fakeWorkspace struct {
	svc  *wsservice.Service
	repo *repository.MemoryRepository

	mu            sync.Mutex
	membershipErr error // GetUserMembership
	workspacesErr error // GetUserWorkspaces
	createCalls   int
}

func (f *fakeWorkspace) injected(err *error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return *err
}

func (f *fakeWorkspace) GetUserMembership(ctx context.Context, workspaceID, userID string) (*workspacev1.Membership, error) {
	if err := f.injected(&f.membershipErr); err != nil {
		return nil, err
	}
	m, err := f.svc.GetUserMembership(ctx, workspaceID, userID)
	if err != nil || m == nil {
		return nil, err
	}
	w := handler.MembershipToWire(m)
	return &w, nil
}

func (f *fakeWorkspace) GetUserWorkspaces(ctx context.Context, userID string) ([]workspacev1.Membership, error) {
	if err := f.injected(&f.workspacesErr); err != nil {
		return nil, err
	}
	list, err := f.svc.GetUserWorkspaces(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]workspacev1.Membership, 0, len(list))
	for _, m := range list {
		out = append(out, handler.MembershipToWire(m))
	}
	return out, nil
}

func (f *fakeWorkspace) CreateInvitation(ctx context.Context, req *workspacev1.CreateInvitationRequest) (*workspacev1.CreateInvitationResponse, error) {
	f.mu.Lock()
	f.createCalls++
	f.mu.Unlock()
	inv, url, err := f.svc.CreateInvitation(ctx, req.WorkspaceID, req.Email, req.Role, req.CreatedByID)
	if err != nil {
		return nil, err
	}
	return &workspacev1.CreateInvitationResponse{Invitation: handler.InvitationToWire(inv), InviteURL: url}, nil
}

func (f *fakeWorkspace) GetInvitationByToken(ctx context.Context, token string) (*workspacev1.Invitation, error) {
	inv, err := f.svc.GetInvitationByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	w := handler.InvitationToWire(inv)
	return &w, nil
}

func (f *fakeWorkspace) ValidateInvitationForRegistration(ctx context.Context, token string) (*workspacev1.ValidateInvitationForRegistrationResponse, error) {
	valid, inv, reason, err := f.svc.ValidateInvitationForRegistration(ctx, token)
	if err != nil {
		return nil, err
	}
	resp := &workspacev1.ValidateInvitationForRegistrationResponse{Valid: valid, Reason: string(reason)}
	if inv != nil {
		w := handler.InvitationToWire(inv)
		resp.Invitation = &w
	}
	return resp, nil
}

func (f *fakeWorkspace) AcceptInvitation(ctx context.Context, token, userID string) (*workspacev1.AcceptInvitationResponse, error) {
	m, ws, err := f.svc.AcceptInvitation(ctx, token, userID)
	if err != nil {
		return nil, err
	}
	return &workspacev1.AcceptInvitationResponse{Membership: handler.MembershipToWire(m), Workspace: handler.WorkspaceToWire(ws)}, nil
}

func (f *fakeWorkspace) DeclineInvitation(ctx context.Context, token string) error {
	return f.svc.DeclineInvitation(ctx, token)
}

func (f *fakeWorkspace) GetWorkspaceInvitations(ctx context.Context, workspaceID, callerID string) ([]workspacev1.Invitation, error) {
	list, err := f.svc.GetWorkspaceInvitations(ctx, workspaceID, callerID)
	if err != nil {
		return nil, err
	}
	out := make([]workspacev1.Invitation, 0, len(list))
	for _, inv := range list {
		out = append(out, handler.InvitationToWire(inv))
	}
	return out, nil
}

func (f *fakeWorkspace) CancelInvitation(ctx context.Context, invitationID, callerID string) error {
	return f.svc.CancelInvitation(ctx, invitationID, callerID)
}

func (f *fakeWorkspace) CreateWorkspace(ctx context.Context, name, slug, ownerID string) (*workspacev1.CreateWorkspaceResponse, error) {
	ws, m, err := f.svc.CreateWorkspace(ctx, name, slug, ownerID)
	if err != nil {
		return nil, err
	}
	return &workspacev1.CreateWorkspaceResponse{Workspace: handler.WorkspaceToWire(ws), Membership: handler.MembershipToWire(m)}, nil
}
