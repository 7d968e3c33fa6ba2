package client

import (
	"context"
	"net"
	"testing"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	workspacev1 "workspace-hub/backend/api/workspace/v1"
	apperrors "workspace-hub/backend/internal/platform/errors"
	"workspace-hub/backend/internal/platform/rpc"
	"workspace-hub/backend/internal/workspace/handler"
	"workspace-hub/backend/internal/workspace/repository"
	"workspace-hub/backend/internal/workspace/service"
)

// newBufconnClient serves a Workspace Service over an in-memory listener and returns a client for it.
func newBufconnClient(t *testing.T) *Client {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	svc := service.NewService(repository.NewMemoryRepository(), nil, service.Config{InviteBaseURL: "https://app.example.com"})
	workspacev1.RegisterWorkspaceServiceServer(srv, handler.NewServer(svc))
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
	return New(conn, 2*time.Second)
}

func TestRoundTrip_InvitationLifecycle(t *testing.T) {
	ctx := context.Background()
	c := newBufconnClient(t)

	created, err := c.CreateWorkspace(ctx, "Acme", "acme", "owner-1")
	if err != nil {
		t.Fatalf("CreateWorkspace: %v", err)
	}
	ws := created.Workspace.ID
	if created.Membership.Role != "OWNER" {
		t.Errorf("owner role = %q", created.Membership.Role)
	}

	resp, err := c.CreateInvitation(ctx, &workspacev1.CreateInvitationRequest{WorkspaceID: ws, Email: "a@x.com", CreatedByID: "owner-1"})
	if err != nil {
		t.Fatalf("CreateInvitation: %v", err)
	}
	if resp.InviteURL != "https://app.example.com/invite/"+resp.Invitation.Token {
		t.Errorf("InviteURL = %q", resp.InviteURL)
	}

	v, err := c.ValidateInvitationForRegistration(ctx, resp.Invitation.Token)
	if err != nil || !v.Valid || v.Invitation == nil || v.Invitation.Email != "a@x.com" {
		t.Fatalf("Validate: %v %+v", err, v)
	}

	accepted, err := c.AcceptInvitation(ctx, resp.Invitation.Token, "user-a")
	if err != nil {
		t.Fatalf("AcceptInvitation: %v", err)
	}
	if accepted.Membership.WorkspaceID != ws || accepted.Workspace.Slug != "acme" {
		t.Errorf("accepted = %+v", accepted)
	}

	_, err = c.AcceptInvitation(ctx, resp.Invitation.Token, "user-a")
	e := apperrors.As(err)
	if e == nil || e.Code != apperrors.CodeInvitationAlreadyAccepted || e.Metadata["invitation_status"] != "ACCEPTED" {
		t.Fatalf("second accept = %v", err)
	}

	m, err := c.GetUserMembership(ctx, ws, "user-a")
	if err != nil || m == nil || m.Role != "MEMBER" {
		t.Fatalf("GetUserMembership: %v %+v", err, m)
	}
	if m, err := c.GetUserMembership(ctx, ws, "nobody"); err != nil || m != nil {
		t.Errorf("unknown user membership: %v %+v", err, m)
	}
	list, err := c.GetWorkspaceInvitations(ctx, ws, "owner-1")
	if err != nil || len(list) != 1 || list[0].Status != "ACCEPTED" {
		t.Errorf("GetWorkspaceInvitations: %v %+v", err, list)
	}
}

func TestRoundTrip_TypedErrors(t *testing.T) {
	ctx := context.Background()
	c := newBufconnClient(t)
	created, err := c.CreateWorkspace(ctx, "Acme", "acme", "owner-1")
	if err != nil {
		t.Fatalf("CreateWorkspace: %v", err)
	}
	ws := created.Workspace.ID

	testCases := []struct {
		name string
		call func() error
		code apperrors.Code
	}{
		{"owner role", func() error {
			_, err := c.CreateInvitation(ctx, &workspacev1.CreateInvitationRequest{WorkspaceID: ws, Email: "a@x.com", Role: "OWNER", CreatedByID: "owner-1"})
			return err
		}, apperrors.CodeInvitationOwnerRole},
		{"not owner", func() error {
			_, err := c.CreateInvitation(ctx, &workspacev1.CreateInvitationRequest{WorkspaceID: ws, Email: "a@x.com", CreatedByID: "someone"})
			return err
		}, apperrors.CodeNotWorkspaceOwner},
		{"unknown token", func() error {
			_, err := c.GetInvitationByToken(ctx, "nope")
			return err
		}, apperrors.CodeInvitationNotFound},
		{"decline unknown", func() error { return c.DeclineInvitation(ctx, "nope") }, apperrors.CodeInvitationNotFound},
		{"cancel unknown", func() error { return c.CancelInvitation(ctx, "nope", "owner-1") }, apperrors.CodeInvitationNotFound},
		{"unknown workspace", func() error {
			_, err := c.GetWorkspace(ctx, "nope")
			return err
		}, apperrors.CodeWorkspaceNotFound},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := apperrors.CodeOf(tc.call()); got != tc.code {
				t.Errorf("code = %s, want %s", got, tc.code)
			}
		})
	}
}

func TestUnreachableServiceIsTransportFailure(t *testing.T) {
	lis := bufconn.Listen(1 << 10)
	_ = lis.Close()
	conn, err := rpc.NewClient("passthrough:///closed",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
	)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer conn.Close()
	c := New(conn, 200*time.Millisecond)

	_, err = c.GetUserWorkspaces(context.Background(), "user-a")
	if apperrors.KindOf(err) != apperrors.KindTransportFailure {
		t.Fatalf("kind = %q (%v), want TRANSPORT_FAILURE", apperrors.KindOf(err), err)
	}
}
