package cmd

import (
	"database/sql"
	"fmt"

	"github.com/Swoyesh/FinSense/internal/config"
	"github.com/Swoyesh/FinSense/internal/database"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var (
	flagMigrateSteps int
	flagMigrateSeed  bool
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withRunner(func(runner *database.MigrationRunner) error {
			if err := runner.WaitForDatabase(cmd.Context()); err != nil {
				return err
			}
			if err := runner.RunMigrations(); err != nil {
				return err
			}
			return runner.LoadSeeds()
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Revert the last --steps migrations",
	RunE: func(_ *cobra.Command, _ []string) error {
		return withRunner(func(runner *database.MigrationRunner) error {
			return runner.Rollback(flagMigrateSteps)
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print the current migration version",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withRunner(func(runner *database.MigrationRunner) error {
			version, dirty, err := runner.GetMigrationStatus()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "version %d, dirty %t\n", version, dirty)
			return nil
		})
	},
}

func init() {
	migrateDownCmd.Flags().IntVar(&flagMigrateSteps, "steps", 1, "Number of migrations to revert")
	migrateUpCmd.Flags().BoolVar(&flagMigrateSeed, "seed", false, "Load db/seeds after migrating")

	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
	rootCmd.AddCommand(migrateCmd)
}

// withRunner opens a database/sql connection for golang-migrate and closes it
// after fn returns.
func withRunner(fn func(*database.MigrationRunner) error) error {
	cfg := config.Load()
	logger := setupLogger(cfg)

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	runner := database.NewMigrationRunner(db,
		database.WithMigrationsPath(cfg.Database.MigrationsPath),
		database.WithSeeding(flagMigrateSeed || cfg.Database.SeedDatabase),
		database.WithLogger(logger),
	)
	return fn(runner)
}
