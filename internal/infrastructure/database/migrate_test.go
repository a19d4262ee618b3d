package database

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
)

func TestMigrate_SQLite(t *testing.T) {
	db, err := OpenSQLite(fmt.Sprintf("file:%s?mode=memory&_foreign_keys=on", uuid.NewString()), "test")
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	defer CloseDB(db)

	n, err := Migrate(db)
	if err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	if n != 1 {
		t.Errorf("Migrate() applied %d, want 1", n)
	}

	for _, table := range []string{"files", "file_transcripts"} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("table %s missing after migrate", table)
		}
	}

	// Second run is a no-op.
	n, err = Migrate(db)
	if err != nil || n != 0 {
		t.Errorf("second Migrate() = %d, %v; want 0, nil", n, err)
	}

	status, err := MigrationStatus(db)
	if err != nil {
		t.Fatalf("MigrationStatus() error = %v", err)
	}
	if applied, ok := status["0001_init.sql"]; !ok || !applied {
		t.Errorf("MigrationStatus() = %v, want 0001_init.sql applied", status)
	}

	n, err = Rollback(db)
	if err != nil || n != 1 {
		t.Fatalf("Rollback() = %d, %v; want 1, nil", n, err)
	}
	if db.Migrator().HasTable("files") {
		t.Error("files table still present after rollback")
	}
}
