// Package migrate runs database migrations from embedded SQL files using golang-migrate.
//
// The workspace store (Postgres) and the identity store (SQLite) are migrated independently;
// neither service ever touches the other's schema.
package migrate

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"workspace-hub/backend/internal/db"
)

// ErrNoChange is returned when Up/Down has nothing to do (already at target version).
var ErrNoChange = migrate.ErrNoChange

// Stores that can be migrated.
const (
	StoreWorkspace = "workspace"
	StoreIdentity  = "identity"
)

// Run applies migrations for store in the given direction. dsn is a Postgres URL for the
// workspace store and a file path for the identity store. direction must be "up" or "down".
// Returns nil when already at the target version.
func Run(store, dsn, direction string) error {
	if strings.TrimSpace(dsn) == "" {
		switch store {
		case StoreIdentity:
			return errors.New("IDENTITY_DB_PATH is not set")
		default:
			return errors.New("DATABASE_URL is not set; create a .env from .env.example or set DATABASE_URL")
		}
	}
	if direction != "up" && direction != "down" {
		return fmt.Errorf("direction must be up or down, got %q", direction)
	}
	dir, err := migrationDir(store)
	if err != nil {
		return err
	}
	if store == StoreIdentity && !strings.HasPrefix(dsn, "sqlite://") {
		dsn = "sqlite://" + dsn
	}

	sourceDriver, err := iofs.New(db.MigrationFS, dir)
	if err != nil {
		return fmt.Errorf("migrate source: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", sourceDriver, dsn)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	defer func() { _, _ = m.Close() }()
	return apply(m, direction)
}

// Up applies all pending migrations for store over an already-open handle. Services call it at
// startup; tests call it on temporary SQLite files.
func Up(conn *sql.DB, store string) error {
	dir, err := migrationDir(store)
	if err != nil {
		return err
	}
	var (
		driver database.Driver
		name   string
	)
	switch store {
	case StoreWorkspace:
		driver, err = postgres.WithInstance(conn, &postgres.Config{})
		name = "postgres"
	case StoreIdentity:
		driver, err = sqlite.WithInstance(conn, &sqlite.Config{})
		name = "sqlite"
	}
	if err != nil {
		return fmt.Errorf("migrate driver: %w", err)
	}
	sourceDriver, err := iofs.New(db.MigrationFS, dir)
	if err != nil {
		return fmt.Errorf("migrate source: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", sourceDriver, name, driver)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	// Closing m would close conn; the caller owns it.
	return apply(m, "up")
}

func apply(m *migrate.Migrate, direction string) error {
	var err error
	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func migrationDir(store string) (string, error) {
	switch store {
	case StoreWorkspace:
		return db.WorkspaceMigrations, nil
	case StoreIdentity:
		return db.IdentityMigrations, nil
	}
	return "", fmt.Errorf("store must be %s or %s, got %q", StoreWorkspace, StoreIdentity, store)
}
