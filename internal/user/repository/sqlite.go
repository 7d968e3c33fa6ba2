package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"workspace-hub/backend/internal/user/domain"
)

// SQLiteRepository reads users from the identity store.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository returns a user repository over the identity store's db.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const selectUser = `SELECT id, email, name, status, created_at, updated_at FROM users`

// GetByID returns the user for id, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, selectUser+` WHERE id = ?`, id))
}

// GetByEmail returns the user with the given (already normalized) email, or nil if not found.
// It returns an error only for database failures, not for missing rows.
func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, selectUser+` WHERE email = ?`, email))
}

func scanUser(row *sql.Row) (*domain.User, error) {
	var (
		u                    domain.User
		status               string
		createdAt, updatedAt int64
	)
	if err := row.Scan(&u.ID, &u.Email, &u.Name, &status, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	u.Status = domain.UserStatus(status)
	u.CreatedAt = fromMillis(createdAt)
	u.UpdatedAt = fromMillis(updatedAt)
	return &u, nil
}

func fromMillis(v int64) time.Time {
	return time.UnixMilli(v).UTC()
}
