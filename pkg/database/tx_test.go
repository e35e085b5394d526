package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fekuna/omnipos-ledger-service/pkg/database"
	"github.com/fekuna/omnipos-ledger-service/pkg/database/dbtest"
)

func countMaterials(t *testing.T, ctx context.Context, ex database.Executor) int {
	t.Helper()
	var n int
	if err := ex.GetContext(ctx, &n, "SELECT count(*) FROM materials"); err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestWithinTx_CommitsOnSuccess(t *testing.T) {
	db := dbtest.New(t)
	tr := database.NewTransactor(db)
	ctx := context.Background()

	err := tr.WithinTx(ctx, func(ctx context.Context) error {
		if !database.InTx(ctx) {
			t.Fatal("expected transaction in context")
		}
		_, err := database.Conn(ctx, db).ExecContext(ctx, db.Rebind(
			"INSERT INTO materials (id, designation, created_at, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)"),
			"m-1", "Drill")
		return err
	})
	if err != nil {
		t.Fatalf("WithinTx: %v", err)
	}

	if got := countMaterials(t, ctx, db); got != 1 {
		t.Errorf("expected 1 material, got %d", got)
	}
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	db := dbtest.New(t)
	tr := database.NewTransactor(db)
	ctx := context.Background()
	boom := errors.New("boom")

	err := tr.WithinTx(ctx, func(ctx context.Context) error {
		_, err := database.Conn(ctx, db).ExecContext(ctx, db.Rebind(
			"INSERT INTO materials (id, designation, created_at, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)"),
			"m-1", "Drill")
		if err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	if got := countMaterials(t, ctx, db); got != 0 {
		t.Errorf("expected rollback, got %d materials", got)
	}
}

func TestWithinTx_NestedCallsJoinOuter(t *testing.T) {
	db := dbtest.New(t)
	tr := database.NewTransactor(db)
	ctx := context.Background()
	boom := errors.New("outer failure")

	err := tr.WithinTx(ctx, func(ctx context.Context) error {
		inner := tr.WithinTx(ctx, func(ctx context.Context) error {
			_, err := database.Conn(ctx, db).ExecContext(ctx, db.Rebind(
				"INSERT INTO materials (id, designation, created_at, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)"),
				"m-1", "Drill")
			return err
		})
		if inner != nil {
			return inner
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected outer failure, got %v", err)
	}

	if got := countMaterials(t, ctx, db); got != 0 {
		t.Errorf("inner write should roll back with outer, got %d materials", got)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	db := dbtest.New(t)
	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}
