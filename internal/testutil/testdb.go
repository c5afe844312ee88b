package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/gigsim/internal/db"
)

// NewTestDB opens a migrated in-memory database closed at test cleanup.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		database.Close()
	})
	return database
}
