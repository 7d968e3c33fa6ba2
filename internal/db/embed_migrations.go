package db

import "embed"

// MigrationFS embeds the SQL migrations of both stores. Each store has its own directory under
// migrations/ and its own schema_migrations table; see internal/db/migrate.
//
//go:embed migrations/workspace/*.sql migrations/identity/*.sql
var MigrationFS embed.FS

// Migration directories inside MigrationFS.
const (
	WorkspaceMigrations = "migrations/workspace"
	IdentityMigrations  = "migrations/identity"
)
