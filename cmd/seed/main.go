// seed creates development sample data through the running Identity and Workspace services.
// Idempotent: an existing dev account, workspace or pending invitation is reused.
package main

import (
	"context"
	"log"
	"time"

	workspacev1 "workspace-hub/backend/api/workspace/v1"
	"workspace-hub/backend/internal/config"
	identityclient "workspace-hub/backend/internal/identity/client"
	apperrors "workspace-hub/backend/internal/platform/errors"
	"workspace-hub/backend/internal/platform/rpc"
	workspaceclient "workspace-hub/backend/internal/workspace/client"
)

const (
	devUserEmail     = "dev@example.com"
	devPassword      = "Password123!"
	devName          = "Dev Owner"
	devWorkspaceName = "Dev Workspace"
	devWorkspaceSlug = "dev-workspace"
	devInviteeEmail  = "member@example.com"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	identityConn, err := rpc.NewClient(cfg.IdentityServiceAddr)
	if err != nil {
		log.Fatalf("identity client: %v", err)
	}
	defer identityConn.Close()
	workspaceConn, err := rpc.NewClient(cfg.WorkspaceServiceAddr)
	if err != nil {
		log.Fatalf("workspace client: %v", err)
	}
	defer workspaceConn.Close()

	identity := identityclient.New(identityConn, cfg.CommandTimeout())
	workspaces := workspaceclient.New(workspaceConn, cfg.CommandTimeout())

	_, err = identity.Register(ctx, devUserEmail, devPassword, devName)
	switch apperrors.CodeOf(err) {
	case "":
		log.Printf("created user %s", devUserEmail)
	case apperrors.CodeEmailAlreadyRegistered:
		log.Printf("user %s already exists", devUserEmail)
	default:
		log.Fatalf("register dev user: %v", err)
	}
	login, err := identity.Login(ctx, devUserEmail, devPassword)
	if err != nil {
		log.Fatalf("login dev user: %v", err)
	}
	owner := login.User

	var workspaceID string
	memberships, err := workspaces.GetUserWorkspaces(ctx, owner.ID)
	if err != nil {
		log.Fatalf("list workspaces: %v", err)
	}
	if len(memberships) > 0 {
		workspaceID = memberships[0].WorkspaceID
		log.Printf("user %s already in workspace %s", devUserEmail, workspaceID)
	} else {
		resp, err := workspaces.CreateWorkspace(ctx, devWorkspaceName, devWorkspaceSlug, owner.ID)
		if err != nil {
			log.Fatalf("create workspace: %v", err)
		}
		workspaceID = resp.Workspace.ID
		log.Printf("created workspace %s (%s)", resp.Workspace.Slug, workspaceID)
	}

	inv, err := workspaces.CreateInvitation(ctx, &workspacev1.CreateInvitationRequest{
		WorkspaceID: workspaceID,
		Email:       devInviteeEmail,
		Role:        "MEMBER",
		CreatedByID: owner.ID,
	})
	switch apperrors.CodeOf(err) {
	case "":
		log.Printf("invited %s: %s", devInviteeEmail, inv.InviteURL)
	case apperrors.CodeInvitationPending:
		log.Printf("invitation for %s already pending", devInviteeEmail)
	default:
		log.Fatalf("create invitation: %v", err)
	}

	log.Println("Seed complete.")
	log.Printf("  Login: %s / %s", devUserEmail, devPassword)
}
