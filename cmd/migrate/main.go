package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"vsl-server/internal/config"
	"vsl-server/internal/observability"
	"vsl-server/internal/store"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "migrate",
	Short:        "Apply embedded database migrations",
	SilenceUsage: true,
	RunE:         runUp,
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE:  runUp,
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recently applied migration",
	RunE:  runDown,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "List embedded migrations and whether each has been applied",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(upCmd, downCmd, statusCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func openStore(logger *observability.Logger) (store.Store, error) {
	dbConfig, err := config.LoadDatabase()
	if err != nil {
		return store.Store{}, fmt.Errorf("failed to load database configuration: %w", err)
	}
	s, err := store.New(dbConfig.ConnectionString(), logger)
	if err != nil {
		return store.Store{}, fmt.Errorf("failed to connect to database: %w", err)
	}
	return s, nil
}

func runUp(cmd *cobra.Command, _ []string) error {
	logger := observability.NewLogger()
	defer logger.Sync()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	s, err := openStore(logger)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Migrate(ctx); err != nil {
		return err
	}
	logger.Info(ctx, "migrations complete")
	return nil
}

func runDown(cmd *cobra.Command, _ []string) error {
	logger := observability.NewLogger()
	defer logger.Sync()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	s, err := openStore(logger)
	if err != nil {
		return err
	}
	defer s.Close()

	name, err := s.RollbackMigration(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "rolled back %s\n", name)
	return nil
}

func runStatus(cmd *cobra.Command, _ []string) error {
	logger := observability.NewLogger()
	defer logger.Sync()
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	s, err := openStore(logger)
	if err != nil {
		return err
	}
	defer s.Close()

	statuses, err := s.MigrationStatus(ctx)
	if err != nil {
		return err
	}
	writeStatus(cmd.OutOrStdout(), statuses)
	return nil
}

func writeStatus(out io.Writer, statuses []store.MigrationStatus) {
	for _, st := range statuses {
		state := "pending"
		if st.Applied {
			state = "applied " + st.AppliedAt.UTC().Format(time.RFC3339)
		}
		fmt.Fprintf(out, "%-24s %s\n", st.Name, state)
	}
}
