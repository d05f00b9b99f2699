package store

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"vsl-server/internal/observability"

	"github.com/jmoiron/sqlx"
)

// TestDB wraps a migrated test database instance
type TestDB struct {
	db     *sqlx.DB
	logger *observability.Logger
	Store  *Store
}

// SetupTestDB connects to the PostgreSQL instance named by the TEST_DB_*
// variables and applies the embedded migrations. The test is skipped when no
// database is reachable.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	logger := observability.NewLogger()

	db, err := sqlx.Open("pgx", testConnectionString())
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		t.Skipf("test database unavailable: %v", err)
	}

	if err := migrate(context.Background(), db, logger); err != nil {
		db.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return &TestDB{
		db:     db,
		logger: logger,
		Store:  &Store{db: db, logger: logger},
	}
}

func testConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		envOr("TEST_DB_USER", "vsl_user"),
		envOr("TEST_DB_PASSWORD", "vsl_password"),
		envOr("TEST_DB_HOST", "localhost"),
		envOr("TEST_DB_PORT", "5432"),
		envOr("TEST_DB_NAME", "vsl_test"))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Truncate clears all data from tables while preserving schema
func (tdb *TestDB) Truncate(t *testing.T) {
	t.Helper()

	_, err := tdb.db.Exec("TRUNCATE TABLE campaigns, business_profiles, users CASCADE")
	if err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
}

// MustExec executes SQL and fails the test if there's an error
func (tdb *TestDB) MustExec(t *testing.T, query string, args ...interface{}) {
	t.Helper()
	if _, err := tdb.db.Exec(query, args...); err != nil {
		t.Fatalf("failed to execute SQL: %v", err)
	}
}
