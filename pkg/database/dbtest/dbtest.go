// Package dbtest opens throwaway SQLite databases with the service
// schema applied, for repository and usecase tests.
package dbtest

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/fekuna/omnipos-ledger-service/pkg/database"
	"github.com/jmoiron/sqlx"
)

// New returns a migrated database in t.TempDir(), closed at cleanup.
func New(t testing.TB) *sqlx.DB {
	t.Helper()

	ctx := context.Background()
	db, err := database.OpenSQLite(ctx, filepath.Join(t.TempDir(), "ledger.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := database.Migrate(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Exec runs a raw statement, for seeding reference data.
func Exec(t testing.TB, db *sqlx.DB, query string, args ...interface{}) {
	t.Helper()
	if _, err := db.Exec(db.Rebind(query), args...); err != nil {
		t.Fatalf("exec %q: %v", query, err)
	}
}
