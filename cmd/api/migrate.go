// AngelaMos | 2026
// migrate.go

package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"sort"

	"github.com/angelamos/eatgreet/internal/core"
)

// Migrations ship inside the binary so `eatgreet -migrate` works
// regardless of the working directory.
//
//go:embed migrations/*.sql
var migrationsFS embed.FS

func applyMigrations(
	ctx context.Context,
	db *core.Database,
	logger *slog.Logger,
) error {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		sqlBytes, err := migrationsFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", name, err)
		}

		if _, err := db.DB.ExecContext(ctx, string(sqlBytes)); err != nil {
			return fmt.Errorf("apply migration %s: %w", name, err)
		}

		logger.Info("migration applied", "name", name)
	}

	return nil
}
