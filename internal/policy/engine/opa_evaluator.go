package engine

import (
	"context"
	"fmt"
	"log"

	"github.com/open-policy-agent/opa/v1/rego"

	apperrors "workspace-hub/backend/internal/platform/errors"
)

const policyQuery = "data.workspacehub.invitations"

// InvitationPolicy is the Rego source of the invitation authorization rules.
const InvitationPolicy = `package workspacehub.invitations

default allow := false

default reason := "PERMISSION_DENIED"

is_owner if {
	input.actor.role == "OWNER"
	input.actor.workspace_id != ""
	input.actor.workspace_id == input.resource.workspace_id
}

is_creator if {
	input.actor.user_id != ""
	input.actor.user_id == input.resource.created_by_id
}

allow if {
	input.action == "invitation.create"
	is_owner
	input.resource.role != "OWNER"
}

allow if {
	input.action == "invitation.list"
	is_owner
}

allow if {
	input.action == "invitation.cancel"
	is_owner
}

allow if {
	input.action == "invitation.cancel"
	is_creator
}

reason := "NOT_WORKSPACE_OWNER" if {
	input.action in {"invitation.create", "invitation.list", "invitation.cancel"}
	not is_owner
}

reason := "INVITATION_OWNER_ROLE" if {
	input.action == "invitation.create"
	is_owner
	input.resource.role == "OWNER"
}
`

// OPAEvaluator evaluates the invitation policy with OPA Rego.
type OPAEvaluator struct {
	query    rego.PreparedEvalQuery
	fallback Rules
}

// NewOPAEvaluator compiles policy (InvitationPolicy when empty) once for repeated evaluation.
func NewOPAEvaluator(ctx context.Context, policy string) (*OPAEvaluator, error) {
	if policy == "" {
		policy = InvitationPolicy
	}
	q, err := rego.New(
		rego.Query(policyQuery),
		rego.Module("invitations.rego", policy),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("compile invitation policy: %w", err)
	}
	return &OPAEvaluator{query: q}, nil
}

// HealthCheck evaluates a representative input. Returns nil on success.
func (e *OPAEvaluator) HealthCheck(ctx context.Context) error {
	_, err := e.eval(ctx, Input{
		Action:   ActionListInvitations,
		Actor:    Actor{UserID: "u", WorkspaceID: "w", Role: "OWNER"},
		Resource: Resource{WorkspaceID: "w"},
	})
	return err
}

// Authorize evaluates the policy. If evaluation fails the Go rules decide and the failure is logged.
func (e *OPAEvaluator) Authorize(ctx context.Context, in Input) Decision {
	d, err := e.eval(ctx, in)
	if err != nil {
		log.Printf("policy: evaluation failed: %v, using built-in rules", err)
		return e.fallback.Authorize(ctx, in)
	}
	return d
}

func (e *OPAEvaluator) eval(ctx context.Context, in Input) (Decision, error) {
	rs, err := e.query.Eval(ctx, rego.EvalInput(buildInput(in)))
	if err != nil {
		return Decision{}, err
	}
	if len(rs) == 0 || len(rs[0].Expressions) == 0 {
		return Decision{}, fmt.Errorf("policy query returned no result")
	}
	doc, ok := rs[0].Expressions[0].Value.(map[string]any)
	if !ok {
		return Decision{}, fmt.Errorf("policy result has type %T", rs[0].Expressions[0].Value)
	}
	allowed, _ := doc["allow"].(bool)
	if allowed {
		return Decision{Allowed: true}, nil
	}
	reason, _ := doc["reason"].(string)
	return Decision{Reason: apperrors.Code(reason)}, nil
}

func buildInput(in Input) map[string]any {
	return map[string]any{
		"action": string(in.Action),
		"actor": map[string]any{
			"user_id":      in.Actor.UserID,
			"workspace_id": in.Actor.WorkspaceID,
			"role":         string(in.Actor.Role),
		},
		"resource": map[string]any{
			"workspace_id":  in.Resource.WorkspaceID,
			"created_by_id": in.Resource.CreatedByID,
			"role":          string(in.Resource.Role),
		},
	}
}
