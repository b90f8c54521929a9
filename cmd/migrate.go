package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zhmaterial/material-api/internal/database"
	"github.com/zhmaterial/material-api/internal/models"
	"github.com/zhmaterial/material-api/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage the database schema for the Material Search API.

Schema changes are applied with GORM AutoMigrate, which creates missing
tables, columns and indexes. It never drops existing columns.

Available subcommands:
  up      - Apply the current schema
  status  - Show which tables exist`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply the current schema",
	Long: `Create or update all tables used by the Material Search API.

This is also run automatically on server startup, the command exists so
the schema can be prepared ahead of a deployment.`,
	RunE: runMigrateUp,
}

// migrateStatusCmd shows migration status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show schema status",
	Long:  `Display which of the expected tables currently exist in the database.`,
	RunE:  runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateCmd.PersistentFlags().Bool("dry-run", false, "show what would be done without making changes")
}

func openDatabase() (*database.DB, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Database.Path == "" {
		return nil, fmt.Errorf("no database path configured")
	}
	return database.Initialize(cfg.Database.Path, cfg.Database.LogQueries)
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if dryRun {
		fmt.Println("Dry run mode - no changes will be made")
		fmt.Println("Would migrate tables:")
		fmt.Println("  • favorites")
		fmt.Println("  • search_history")
		return nil
	}

	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.AutoMigrate(&models.Favorite{}, &models.SearchHistory{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	fmt.Println("Schema is up to date")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	fmt.Println("Database Schema Status")
	fmt.Println(strings.Repeat("=", 50))

	tables := []struct {
		name  string
		model any
	}{
		{"favorites", &models.Favorite{}},
		{"search_history", &models.SearchHistory{}},
	}
	for _, t := range tables {
		state := "missing"
		if db.Migrator().HasTable(t.model) {
			state = "present"
		}
		fmt.Printf("  %-20s %s\n", t.name, state)
	}

	return nil
}
