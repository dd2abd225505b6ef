package testutil

import (
	"database/sql"
	"testing"

	"github.com/alexanderramin/fitlog/internal/db"
)

// NewTestDB opens a migrated in-memory database holding an empty kv_store.
// It is closed by t.Cleanup.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	if err != nil {
		t.Fatalf("opening in-memory workout store: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })
	return database
}

// NewTestUoW wraps database so services under test save inside transactions.
func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}
