// migrate runs DB migrations from embedded SQL; use with go run ./cmd/migrate -store workspace|identity.
package main

import (
	"flag"
	"fmt"
	"os"

	"workspace-hub/backend/internal/config"
	"workspace-hub/backend/internal/db/migrate"
)

func main() {
	store := flag.String("store", migrate.StoreWorkspace, "Store to migrate: workspace (Postgres) or identity (SQLite)")
	direction := flag.String("direction", "up", "Migration direction: up or down")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	var dsn string
	switch *store {
	case migrate.StoreWorkspace:
		dsn = cfg.DatabaseURL
	case migrate.StoreIdentity:
		dsn = cfg.IdentityDBPath
	default:
		fmt.Fprintf(os.Stderr, "unknown store %q\n", *store)
		os.Exit(2)
	}

	// Run treats "already at target version" as success.
	if err := migrate.Run(*store, dsn, *direction); err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
}
