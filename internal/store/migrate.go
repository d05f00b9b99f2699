package store

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"time"

	"vsl-server/internal/observability"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// MigrationStatus is the state of one embedded migration.
type MigrationStatus struct {
	Version   int64
	Name      string
	Applied   bool
	AppliedAt time.Time
}

func newMigrationProvider(db *sql.DB) (*goose.Provider, error) {
	fsys, err := fs.Sub(migrationFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration provider: %w", err)
	}
	return provider, nil
}

// Migrate applies every pending embedded migration in version order.
func (s *Store) Migrate(ctx context.Context) error {
	return migrate(ctx, s.db, s.logger)
}

func migrate(ctx context.Context, db *sqlx.DB, logger *observability.Logger) error {
	provider, err := newMigrationProvider(db.DB)
	if err != nil {
		return err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		logger.Error(ctx, "migration failed", err)
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	for _, r := range results {
		logger.Info(observability.WithFields(ctx,
			observability.Field{Key: "migration", Value: path.Base(r.Source.Path)},
			observability.Field{Key: "duration_ms", Value: r.Duration.Milliseconds()},
		), "applied migration")
	}
	return nil
}

// RollbackMigration reverts the most recently applied migration.
func (s *Store) RollbackMigration(ctx context.Context) (string, error) {
	provider, err := newMigrationProvider(s.db.DB)
	if err != nil {
		return "", err
	}
	result, err := provider.Down(ctx)
	if err != nil {
		s.logger.Error(ctx, "failed to roll back migration", err)
		return "", fmt.Errorf("failed to roll back migration: %w", err)
	}
	return path.Base(result.Source.Path), nil
}

// MigrationStatus lists embedded migrations in version order with their state.
func (s *Store) MigrationStatus(ctx context.Context) ([]MigrationStatus, error) {
	provider, err := newMigrationProvider(s.db.DB)
	if err != nil {
		return nil, err
	}
	statuses, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration status: %w", err)
	}

	out := make([]MigrationStatus, len(statuses))
	for i, st := range statuses {
		out[i] = MigrationStatus{
			Version:   st.Source.Version,
			Name:      path.Base(st.Source.Path),
			Applied:   st.State == goose.StateApplied,
			AppliedAt: st.AppliedAt,
		}
	}
	return out, nil
}
