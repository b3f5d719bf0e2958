package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blogscout/search-api/internal/database"
	"github.com/blogscout/search-api/internal/models"
	"github.com/blogscout/search-api/internal/services/history"
	"github.com/blogscout/search-api/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the search history database schema",
	Long: `Manage the schema of the search history database.

Available subcommands:
  up      - Apply the current schema
  down    - Drop the search history table
  status  - Show current schema status`,
}

// migrateUpCmd applies the schema
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply the current schema",
	Long: `Create or update the search history table to match the current
model definitions. Safe to run repeatedly.`,
	RunE: runMigrateUp,
}

// migrateDownCmd drops the history table
var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Drop the search history table",
	Long: `Drop the search history table, erasing the entire search log.

This is destructive and asks for confirmation unless run with --dry-run.`,
	RunE: runMigrateDown,
}

// migrateStatusCmd shows schema status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show schema status",
	RunE:  runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateDownCmd)
	migrateCmd.AddCommand(migrateStatusCmd)

	migrateCmd.PersistentFlags().Bool("dry-run", false, "show what would be done without making changes")
}

// openHistoryDB opens the configured search history database
func openHistoryDB() (*database.DB, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Database.Path == "" {
		return nil, fmt.Errorf("no database path configured")
	}

	return database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if dryRun {
		fmt.Println("Dry run mode - would apply the search history schema")
		return nil
	}

	db, err := openHistoryDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.AutoMigrate(&models.SearchRecord{}); err != nil {
		return err
	}

	fmt.Println("Search history schema applied")
	return nil
}

func runMigrateDown(cmd *cobra.Command, args []string) error {
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	if dryRun {
		fmt.Println("Dry run mode - would drop the search history table")
		return nil
	}

	// Confirmation prompt for destructive action
	fmt.Print("WARNING: This will erase the entire search log. Continue? (y/N): ")
	var response string
	_, _ = fmt.Scanln(&response)
	if response != "y" && response != "Y" {
		fmt.Println("Migration rollback cancelled")
		return nil
	}

	db, err := openHistoryDB()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrator().DropTable(&models.SearchRecord{}); err != nil {
		return fmt.Errorf("dropping search history table: %w", err)
	}

	fmt.Println("Search history table dropped")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openHistoryDB()
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Println("Search History Database Status")

	if !db.Migrator().HasTable(&models.SearchRecord{}) {
		fmt.Println("  search_records: missing (run 'migrate up')")
		return nil
	}

	repo := history.NewRepository(db.DB)
	count, err := repo.Count(context.Background())
	if err != nil {
		return err
	}

	fmt.Println("  search_records: present")
	fmt.Printf("  recorded searches: %d\n", count)
	return nil
}
