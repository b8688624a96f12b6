// Package commands holds the tooling subcommands.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jrazmi/todoserver/infrastructure/postgresdb"
)

// Migrate creates the schema in the database.
func Migrate(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger) error {
	// Increase timeout for migrations
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	log.InfoContext(ctx, "migration started", "step", "testing simple query")

	var result bool
	if err := pool.QueryRow(ctx, "SELECT true").Scan(&result); err != nil {
		return fmt.Errorf("simple query failed: %w", err)
	}

	log.InfoContext(ctx, "simple query successful", "step", "running migrations")

	if err := postgresdb.Migrate(ctx, pool, log); err != nil {
		return fmt.Errorf("migrate database: %w", err)
	}

	log.InfoContext(ctx, "migrations completed successfully")
	return nil
}
