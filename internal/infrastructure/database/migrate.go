package database

import (
	"fmt"

	migrate "github.com/rubenv/sql-migrate"
	"gorm.io/gorm"

	"github.com/johnquangdev/transcript-archive/migrations"
)

// migrationDialect maps a GORM dialector name to the sql-migrate dialect and the
// directory of its scripts inside the embedded migrations.
func migrationDialect(db *gorm.DB) (string, error) {
	switch name := db.Dialector.Name(); name {
	case "postgres":
		return "postgres", nil
	case "sqlite":
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("no migrations for dialect %q", name)
	}
}

func migrationSource(dialect string) migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrations.FS,
		Root:       dialect,
	}
}

// Migrate applies all pending up migrations and returns how many ran
func Migrate(db *gorm.DB) (int, error) {
	return exec(db, migrate.Up)
}

// Rollback reverts every applied migration
func Rollback(db *gorm.DB) (int, error) {
	return exec(db, migrate.Down)
}

func exec(db *gorm.DB, direction migrate.MigrationDirection) (int, error) {
	dialect, err := migrationDialect(db)
	if err != nil {
		return 0, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return 0, fmt.Errorf("failed to get db connection during migrate, error: %v", err)
	}

	n, err := migrate.Exec(sqlDB, dialect, migrationSource(dialect), direction)
	if err != nil {
		return n, fmt.Errorf("failed to apply migration, error: %w", err)
	}
	return n, nil
}

// MigrationStatus lists the known migrations and whether each has been applied
func MigrationStatus(db *gorm.DB) (map[string]bool, error) {
	dialect, err := migrationDialect(db)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	known, err := migrationSource(dialect).FindMigrations()
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations: %w", err)
	}

	records, err := migrate.GetMigrationRecords(sqlDB, dialect)
	if err != nil {
		return nil, fmt.Errorf("failed to read migration records: %w", err)
	}

	status := make(map[string]bool, len(known))
	for _, m := range known {
		status[m.Id] = false
	}
	for _, r := range records {
		status[r.Id] = true
	}
	return status, nil
}
