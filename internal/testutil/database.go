package testutil

import (
	"testing"

	"vpath-go/internal/database"
	"vpath-go/internal/database/migrations"
	"vpath-go/internal/mount"
)

// NewTestStore creates a new in-memory SQLite store with migrations applied.
// The store is automatically closed when the test completes.
func NewTestStore(t *testing.T) mount.Store {
	t.Helper()

	sqlDB, err := database.OpenConnection(":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	if err := migrations.MigrateUp(sqlDB); err != nil {
		sqlDB.Close()
		t.Fatalf("failed to migrate database: %v", err)
	}

	s := database.NewSQLiteStoreFromDB(sqlDB)

	t.Cleanup(func() {
		s.Close()
	})

	return s
}
