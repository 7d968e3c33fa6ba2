// Package notification carries the best-effort invitation email side channel: the orchestrator
// publishes an event after an invitation is created, and the worker hands it to a Mailer.
// Nothing here can fail or roll back an invitation.
package notification

import (
	"context"
	"log"
	"time"
)

// EventInvitationCreated is the Type of InvitationCreated events.
const EventInvitationCreated = "invitation.created"

// InvitationCreated is published once per created invitation.
type InvitationCreated struct {
	Type         string    `json:"type"`
	InvitationID string    `json:"invitation_id"`
	WorkspaceID  string    `json:"workspace_id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	InviteURL    string    `json:"invite_url"`
	InvitedByID  string    `json:"invited_by_id"`
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}

// Publisher sends events to the notification queue.
type Publisher interface {
	Publish(ctx context.Context, event *InvitationCreated) error
	Close() error
}

// Mailer delivers the invitation email.
type Mailer interface {
	SendInvitation(ctx context.Context, event *InvitationCreated) error
}

// LogMailer writes the email to the process log instead of sending it. Used in development.
type LogMailer struct{}

func (LogMailer) SendInvitation(_ context.Context, e *InvitationCreated) error {
	log.Printf("mail: to=%s subject=%q link=%s expires=%s", e.Email, "You have been invited to a workspace", e.InviteURL, e.ExpiresAt.Format(time.RFC3339))
	return nil
}
