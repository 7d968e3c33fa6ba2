package handler

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	identityv1 "workspace-hub/backend/api/identity/v1"
	invitationv1 "workspace-hub/backend/api/invitation/v1"
	workspacev1 "workspace-hub/backend/api/workspace/v1"
	"workspace-hub/backend/internal/db"
	"workspace-hub/backend/internal/db/migrate"
	identityclient "workspace-hub/backend/internal/identity/client"
	identityhandler "workspace-hub/backend/internal/identity/handler"
	identityrepo "workspace-hub/backend/internal/identity/repository"
	identityservice "workspace-hub/backend/internal/identity/service"
	"workspace-hub/backend/internal/invitation/service"
	apperrors "workspace-hub/backend/internal/platform/errors"
	"workspace-hub/backend/internal/platform/rpc"
	"workspace-hub/backend/internal/security"
	"workspace-hub/backend/internal/server/interceptors"
	userrepo "workspace-hub/backend/internal/user/repository"
	workspaceclient "workspace-hub/backend/internal/workspace/client"
	workspacehandler "workspace-hub/backend/internal/workspace/handler"
	"workspace-hub/backend/internal/workspace/repository"
	workspaceservice "workspace-hub/backend/internal/workspace/service"
)

const password = "Correct-Horse-9"

// serve runs srv on an in-memory listener and returns a connection to it.
func serve(t *testing.T, srv *grpc.Server) *grpc.ClientConn {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)
	conn, err := rpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

type stack struct {
	api      invitationv1.InvitationServiceClient
	identity *identityclient.Client
}

// newStack wires the three services over in-memory gRPC: Identity on SQLite, Workspace on the
// memory repository, and the orchestrator behind the auth interceptor.
func newStack(t *testing.T) *stack {
	t.Helper()
	conn, err := db.OpenSQLite(filepath.Join(t.TempDir(), "identity.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	if err := migrate.Up(conn, migrate.StoreIdentity); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	tokens, err := security.NewTestTokenProvider()
	if err != nil {
		t.Fatalf("NewTestTokenProvider: %v", err)
	}
	auth := identityservice.NewAuthService(
		userrepo.NewSQLiteRepository(conn),
		identityrepo.NewSQLiteRepository(conn),
		security.NewHasher(bcrypt.MinCost),
		tokens,
	)
	idSrv := grpc.NewServer()
	identityv1.RegisterIdentityServiceServer(idSrv, identityhandler.NewServer(auth))
	idConn := serve(t, idSrv)

	wsSrv := grpc.NewServer()
	wsSvc := workspaceservice.NewService(repository.NewMemoryRepository(), nil, workspaceservice.Config{InviteBaseURL: "https://app.example.com"})
	workspacev1.RegisterWorkspaceServiceServer(wsSrv, workspacehandler.NewServer(wsSvc))
	wsConn := serve(t, wsSrv)

	ids := identityclient.New(idConn, 2*time.Second)
	orch := service.New(ids, workspaceclient.New(wsConn, 2*time.Second))
	public := map[string]bool{
		invitationv1.InvitationService_GetInvitation_FullMethodName:          true,
		invitationv1.InvitationService_ValidateInvitation_FullMethodName:     true,
		invitationv1.InvitationService_DeclineInvitation_FullMethodName:      true,
		invitationv1.InvitationService_RegisterWithInvitation_FullMethodName: true,
	}
	apiSrv := grpc.NewServer(grpc.ChainUnaryInterceptor(interceptors.AuthUnary(tokens, public)))
	invitationv1.RegisterInvitationServiceServer(apiSrv, NewServer(orch))
	return &stack{api: invitationv1.NewInvitationServiceClient(serve(t, apiSrv)), identity: ids}
}

// signup registers an account and returns a context carrying its access token.
func (s *stack) signup(t *testing.T, email string) context.Context {
	t.Helper()
	ctx := context.Background()
	if _, err := s.identity.Register(ctx, email, password, "Test"); err != nil {
		t.Fatalf("Register(%s): %v", email, err)
	}
	login, err := s.identity.Login(ctx, email, password)
	if err != nil {
		t.Fatalf("Login(%s): %v", email, err)
	}
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+login.AccessToken)
}

func wantCode(t *testing.T, err error, code apperrors.Code) {
	t.Helper()
	if got := apperrors.CodeOf(apperrors.FromGRPC(err)); got != code {
		t.Fatalf("code = %s, want %s (%v)", got, code, err)
	}
}

func TestNilOrchestrator(t *testing.T) {
	srv := NewServer(nil)
	_, err := srv.ValidateInvitation(context.Background(), &invitationv1.ValidateInvitationRequest{Token: "t"})
	if st, _ := status.FromError(err); st.Code() != codes.Unimplemented {
		t.Errorf("code = %v, want Unimplemented", st.Code())
	}
}

func TestInviteRegisterAccept(t *testing.T) {
	s := newStack(t)
	owner := s.signup(t, "owner@x.com")

	ws, err := s.api.CreateWorkspace(owner, &invitationv1.CreateWorkspaceRequest{Name: "Acme", Slug: "acme"})
	if err != nil {
		t.Fatalf("CreateWorkspace: %v", err)
	}
	created, err := s.api.CreateInvitation(owner, &invitationv1.CreateInvitationRequest{WorkspaceID: ws.Workspace.ID, Email: "a@x.com"})
	if err != nil {
		t.Fatalf("CreateInvitation: %v", err)
	}
	token := created.Invitation.Token
	if created.InviteURL != "https://app.example.com/invite/"+token {
		t.Errorf("InviteURL = %q", created.InviteURL)
	}

	anon := context.Background()
	v, err := s.api.ValidateInvitation(anon, &invitationv1.ValidateInvitationRequest{Token: token})
	if err != nil || v.State != invitationv1.StateNeedsRegistration {
		t.Fatalf("ValidateInvitation: %v %+v", err, v)
	}

	reg, err := s.api.RegisterWithInvitation(anon, &invitationv1.RegisterWithInvitationRequest{
		Email: "a@x.com", Password: password, Name: "Ada", Token: token,
	})
	if err != nil {
		t.Fatalf("RegisterWithInvitation: %v", err)
	}
	if !reg.InvitationAccepted || reg.AccessToken == "" || reg.Membership == nil || reg.Membership.WorkspaceID != ws.Workspace.ID {
		t.Fatalf("reg = %+v", reg)
	}

	invitee := metadata.AppendToOutgoingContext(anon, "authorization", "Bearer "+reg.AccessToken)
	_, err = s.api.AcceptInvitation(invitee, &invitationv1.AcceptInvitationRequest{Token: token})
	wantCode(t, err, apperrors.CodeInvitationAlreadyAccepted)

	list, err := s.api.ListWorkspaceInvitations(owner, &invitationv1.ListWorkspaceInvitationsRequest{WorkspaceID: ws.Workspace.ID})
	if err != nil || len(list.Invitations) != 1 || list.Invitations[0].Status != "ACCEPTED" {
		t.Fatalf("ListWorkspaceInvitations: %v %+v", err, list)
	}
	_, err = s.api.ListWorkspaceInvitations(invitee, &invitationv1.ListWorkspaceInvitationsRequest{WorkspaceID: ws.Workspace.ID})
	wantCode(t, err, apperrors.CodeNotWorkspaceOwner)
}

func TestProtectedMethodsNeedToken(t *testing.T) {
	s := newStack(t)
	_, err := s.api.CreateInvitation(context.Background(), &invitationv1.CreateInvitationRequest{WorkspaceID: "w", Email: "a@x.com"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("code = %v, want Unauthenticated", status.Code(err))
	}
	_, err = s.api.AcceptInvitation(context.Background(), &invitationv1.AcceptInvitationRequest{Token: "t"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("code = %v, want Unauthenticated", status.Code(err))
	}
}

func TestAcceptRejectsOtherAccountAndCancelled(t *testing.T) {
	s := newStack(t)
	owner := s.signup(t, "owner@x.com")
	ws, err := s.api.CreateWorkspace(owner, &invitationv1.CreateWorkspaceRequest{Name: "Acme", Slug: "acme"})
	if err != nil {
		t.Fatalf("CreateWorkspace: %v", err)
	}
	created, err := s.api.CreateInvitation(owner, &invitationv1.CreateInvitationRequest{WorkspaceID: ws.Workspace.ID, Email: "c@x.com", Role: "ADMIN"})
	if err != nil {
		t.Fatalf("CreateInvitation: %v", err)
	}

	eve := s.signup(t, "eve@x.com")
	_, err = s.api.AcceptInvitation(eve, &invitationv1.AcceptInvitationRequest{Token: created.Invitation.Token})
	wantCode(t, err, apperrors.CodeEmailMismatch)

	if _, err := s.api.CancelInvitation(owner, &invitationv1.CancelInvitationRequest{InvitationID: created.Invitation.ID}); err != nil {
		t.Fatalf("CancelInvitation: %v", err)
	}
	c := s.signup(t, "c@x.com")
	_, err = s.api.AcceptInvitation(c, &invitationv1.AcceptInvitationRequest{Token: created.Invitation.Token})
	wantCode(t, err, apperrors.CodeInvitationCancelled)

	got, err := s.api.GetInvitation(context.Background(), &invitationv1.GetInvitationRequest{Token: created.Invitation.Token})
	if err != nil || got.Invitation.Status != "EXPIRED" || got.Invitation.CancelledAt == nil {
		t.Fatalf("GetInvitation: %v %+v", err, got)
	}
}

func TestCreateInvitation_OwnerRoleAndOtherWorkspace(t *testing.T) {
	s := newStack(t)
	owner := s.signup(t, "owner@x.com")
	ws, err := s.api.CreateWorkspace(owner, &invitationv1.CreateWorkspaceRequest{Name: "One", Slug: "one"})
	if err != nil {
		t.Fatalf("CreateWorkspace: %v", err)
	}
	other := s.signup(t, "b@x.com")
	if _, err := s.api.CreateWorkspace(other, &invitationv1.CreateWorkspaceRequest{Name: "Two", Slug: "two"}); err != nil {
		t.Fatalf("CreateWorkspace: %v", err)
	}

	_, err = s.api.CreateInvitation(owner, &invitationv1.CreateInvitationRequest{WorkspaceID: ws.Workspace.ID, Email: "x@x.com", Role: "OWNER"})
	wantCode(t, err, apperrors.CodeInvitationOwnerRole)
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("grpc code = %v, want InvalidArgument", status.Code(err))
	}

	_, err = s.api.CreateInvitation(owner, &invitationv1.CreateInvitationRequest{WorkspaceID: ws.Workspace.ID, Email: "b@x.com"})
	wantCode(t, err, apperrors.CodeInviteeInOtherWorkspace)
}
