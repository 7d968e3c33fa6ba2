package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"workspace-hub/backend/internal/db"
	invitationdomain "workspace-hub/backend/internal/invitation/domain"
	membershipdomain "workspace-hub/backend/internal/membership/domain"
	"workspace-hub/backend/internal/workspace/domain"
)

// Constraint and index names from internal/db/migrations/workspace.
const (
	constraintOnePending     = "invitations_one_pending"
	constraintMembershipUser = "memberships_user_unique"
	constraintSlug           = "workspaces_slug_unique"
	constraintToken          = "invitations_token_unique"
)

type PostgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a workspace repository that uses the given db for persistence.
func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) GetWorkspace(ctx context.Context, id string) (*domain.Workspace, error) {
	var w domain.Workspace
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, slug, created_at FROM workspaces WHERE id = $1`, id,
	).Scan(&w.ID, &w.Name, &w.Slug, &w.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	w.CreatedAt = w.CreatedAt.UTC()
	return &w, nil
}

func (r *PostgresRepository) CreateWorkspace(ctx context.Context, w *domain.Workspace, owner *membershipdomain.Membership) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO workspaces (id, name, slug, created_at) VALUES ($1, $2, $3, $4)`,
		w.ID, w.Name, w.Slug, w.CreatedAt)
	if err != nil {
		return mapConstraint(err, "insert workspace")
	}
	if err := insertMembership(ctx, tx, owner); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit workspace: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetMembershipByUser(ctx context.Context, userID string) (*membershipdomain.Membership, error) {
	var (
		m    membershipdomain.Membership
		role string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT workspace_id, user_id, role, created_at FROM workspace_memberships WHERE user_id = $1`, userID,
	).Scan(&m.WorkspaceID, &m.UserID, &role, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	m.Role = membershipdomain.Role(role)
	m.CreatedAt = m.CreatedAt.UTC()
	return &m, nil
}

func (r *PostgresRepository) ListMembershipsByUser(ctx context.Context, userID string) ([]*membershipdomain.Membership, error) {
	m, err := r.GetMembershipByUser(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return []*membershipdomain.Membership{m}, nil
}

const selectInvitation = `
	SELECT id, workspace_id, email, token, role, status, expires_at, created_by_id, created_at,
	       responded_at, cancelled_at, cancelled_by_id
	FROM invitations`

func (r *PostgresRepository) GetInvitationByID(ctx context.Context, id string) (*invitationdomain.Invitation, error) {
	return scanInvitation(r.db.QueryRowContext(ctx, selectInvitation+` WHERE id = $1`, id))
}

func (r *PostgresRepository) GetInvitationByToken(ctx context.Context, token string) (*invitationdomain.Invitation, error) {
	return scanInvitation(r.db.QueryRowContext(ctx, selectInvitation+` WHERE token = $1`, token))
}

func (r *PostgresRepository) ListInvitationsByWorkspace(ctx context.Context, workspaceID string) ([]*invitationdomain.Invitation, error) {
	rows, err := r.db.QueryContext(ctx, selectInvitation+` WHERE workspace_id = $1 ORDER BY created_at DESC`, workspaceID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*invitationdomain.Invitation
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) CreateInvitation(ctx context.Context, inv *invitationdomain.Invitation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		UPDATE invitations SET status = 'EXPIRED'
		WHERE workspace_id = $1 AND email = $2 AND status = 'PENDING' AND expires_at <= $3`,
		inv.WorkspaceID, inv.Email, inv.CreatedAt)
	if err != nil {
		return fmt.Errorf("expire stale invitations: %w", err)
	}
	var pending bool
	err = tx.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM invitations WHERE workspace_id = $1 AND email = $2 AND status = 'PENDING')`,
		inv.WorkspaceID, inv.Email).Scan(&pending)
	if err != nil {
		return fmt.Errorf("check pending invitation: %w", err)
	}
	if pending {
		return ErrDuplicatePending
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO invitations (id, workspace_id, email, token, role, status, expires_at, created_by_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		inv.ID, inv.WorkspaceID, inv.Email, inv.Token, string(inv.Role), string(inv.Status),
		inv.ExpiresAt, inv.CreatedByID, inv.CreatedAt)
	if err != nil {
		return mapConstraint(err, "insert invitation")
	}
	if err := tx.Commit(); err != nil {
		return mapConstraint(err, "commit invitation")
	}
	return nil
}

func (r *PostgresRepository) AcceptInvitation(ctx context.Context, invitationID string, m *membershipdomain.Membership) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Row lock serializes accept/decline/cancel of the same invitation.
	var (
		status    string
		expiresAt time.Time
	)
	err = tx.QueryRowContext(ctx,
		`SELECT status, expires_at FROM invitations WHERE id = $1 FOR UPDATE`, invitationID,
	).Scan(&status, &expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("lock invitation: %w", err)
	}
	if invitationdomain.Status(status) != invitationdomain.StatusPending || !m.CreatedAt.Before(expiresAt) {
		return ErrStaleTransition
	}
	var exists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM workspace_memberships WHERE user_id = $1)`, m.UserID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check membership: %w", err)
	}
	if exists {
		return ErrMembershipExists
	}
	if err := insertMembership(ctx, tx, m); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx, `
		UPDATE invitations SET status = 'ACCEPTED', responded_at = $2
		WHERE id = $1 AND status = 'PENDING'`, invitationID, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("mark invitation accepted: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil || n != 1 {
		return ErrStaleTransition
	}
	if err := tx.Commit(); err != nil {
		return mapConstraint(err, "commit accept")
	}
	return nil
}

func (r *PostgresRepository) TransitionInvitation(ctx context.Context, invitationID string, t Transition) error {
	if !invitationdomain.CanTransition(invitationdomain.StatusPending, t.To) {
		return fmt.Errorf("illegal transition to %s", t.To)
	}
	var (
		res sql.Result
		err error
	)
	switch {
	case t.CancelledByID != "":
		res, err = r.db.ExecContext(ctx, `
			UPDATE invitations SET status = $2, cancelled_at = $3, cancelled_by_id = $4
			WHERE id = $1 AND status = 'PENDING'`, invitationID, string(t.To), t.At, t.CancelledByID)
	case t.To == invitationdomain.StatusExpired:
		res, err = r.db.ExecContext(ctx, `
			UPDATE invitations SET status = $2
			WHERE id = $1 AND status = 'PENDING'`, invitationID, string(t.To))
	default:
		res, err = r.db.ExecContext(ctx, `
			UPDATE invitations SET status = $2, responded_at = $3
			WHERE id = $1 AND status = 'PENDING'`, invitationID, string(t.To), t.At)
	}
	if err != nil {
		return fmt.Errorf("transition invitation: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrStaleTransition
	}
	return nil
}

func insertMembership(ctx context.Context, tx *sql.Tx, m *membershipdomain.Membership) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO workspace_memberships (workspace_id, user_id, role, created_at)
		VALUES ($1, $2, $3, $4)`, m.WorkspaceID, m.UserID, string(m.Role), m.CreatedAt)
	if err != nil {
		return mapConstraint(err, "insert membership")
	}
	return nil
}

// mapConstraint turns unique violations into repository sentinels.
func mapConstraint(err error, op string) error {
	if name, ok := db.UniqueViolation(err); ok {
		switch name {
		case constraintOnePending:
			return ErrDuplicatePending
		case constraintMembershipUser:
			return ErrMembershipExists
		case constraintSlug:
			return ErrSlugTaken
		case constraintToken:
			return ErrTokenCollision
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInvitation(row rowScanner) (*invitationdomain.Invitation, error) {
	var (
		inv                      invitationdomain.Invitation
		role, status             string
		respondedAt, cancelledAt sql.NullTime
		cancelledBy              sql.NullString
	)
	err := row.Scan(&inv.ID, &inv.WorkspaceID, &inv.Email, &inv.Token, &role, &status,
		&inv.ExpiresAt, &inv.CreatedByID, &inv.CreatedAt, &respondedAt, &cancelledAt, &cancelledBy)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	inv.Role = membershipdomain.Role(role)
	inv.Status = invitationdomain.Status(status)
	inv.ExpiresAt = inv.ExpiresAt.UTC()
	inv.CreatedAt = inv.CreatedAt.UTC()
	if respondedAt.Valid {
		t := respondedAt.Time.UTC()
		inv.RespondedAt = &t
	}
	if cancelledAt.Valid {
		t := cancelledAt.Time.UTC()
		inv.CancelledAt = &t
	}
	inv.CancelledByID = cancelledBy.String
	return &inv, nil
}
