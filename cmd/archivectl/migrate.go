package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/johnquangdev/transcript-archive/internal/infrastructure/database"
	"github.com/johnquangdev/transcript-archive/pkg/config"
	"github.com/johnquangdev/transcript-archive/pkg/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, closeDB, err := openForMigration()
		if err != nil {
			return err
		}
		defer closeDB()

		n, err := database.Migrate(db)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Applied %d migration(s)\n", n)
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Revert all applied migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, closeDB, err := openForMigration()
		if err != nil {
			return err
		}
		defer closeDB()

		n, err := database.Rollback(db)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Rolled back %d migration(s)\n", n)
		return nil
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show applied and pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, closeDB, err := openForMigration()
		if err != nil {
			return err
		}
		defer closeDB()

		status, err := database.MigrationStatus(db)
		if err != nil {
			return err
		}

		ids := make([]string, 0, len(status))
		for id := range status {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			state := "pending"
			if status[id] {
				state = "applied"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", state, id)
		}
		return nil
	},
}

// openForMigration connects without auto-migrating so the subcommand controls the schema
func openForMigration() (*gorm.DB, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	cfg.Database.AutoMigrate = false

	log, err := logger.New(cfg.Server.Environment)
	if err != nil {
		return nil, nil, fmt.Errorf("initializing logger: %w", err)
	}

	db, err := database.Open(cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return db, func() { _ = database.CloseDB(db) }, nil
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
	rootCmd.AddCommand(migrateCmd)
}
