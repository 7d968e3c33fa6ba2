package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"workspace-hub/backend/internal/db"
	"workspace-hub/backend/internal/identity/domain"
	userdomain "workspace-hub/backend/internal/user/domain"
)

// SQLiteRepository persists identities in the identity store.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository returns an identity repository over the identity store's db.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// GetByUserAndProvider returns the identity for the given user and provider, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *SQLiteRepository) GetByUserAndProvider(ctx context.Context, userID string, provider domain.IdentityProvider) (*domain.Identity, error) {
	var (
		i         domain.Identity
		prov      string
		hash      sql.NullString
		createdAt int64
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, user_id, provider, provider_id, password_hash, created_at
		FROM identities WHERE user_id = ? AND provider = ?`, userID, string(provider),
	).Scan(&i.ID, &i.UserID, &prov, &i.ProviderID, &hash, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	i.Provider = domain.IdentityProvider(prov)
	i.PasswordHash = hash.String
	i.CreatedAt = time.UnixMilli(createdAt).UTC()
	return &i, nil
}

// CreateWithUser inserts the user and identity in one transaction. A duplicate email yields ErrEmailTaken.
func (r *SQLiteRepository) CreateWithUser(ctx context.Context, u *userdomain.User, i *domain.Identity) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO users (id, email, name, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.Name, string(u.Status), toMillis(u.CreatedAt), toMillis(u.UpdatedAt))
	if err != nil {
		if db.IsSQLiteUniqueViolation(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	hash := sql.NullString{String: i.PasswordHash, Valid: i.PasswordHash != ""}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO identities (id, user_id, provider, provider_id, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		i.ID, i.UserID, string(i.Provider), i.ProviderID, hash, toMillis(i.CreatedAt))
	if err != nil {
		if db.IsSQLiteUniqueViolation(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("insert identity: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit user: %w", err)
	}
	return nil
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}
