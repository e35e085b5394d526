package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	materialrepo "github.com/fekuna/omnipos-ledger-service/internal/material/repository"
	materialuc "github.com/fekuna/omnipos-ledger-service/internal/material/usecase"
	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/internal/movement"
	movementdto "github.com/fekuna/omnipos-ledger-service/internal/movement/dto"
	movementrepo "github.com/fekuna/omnipos-ledger-service/internal/movement/repository"
	movementuc "github.com/fekuna/omnipos-ledger-service/internal/movement/usecase"
	"github.com/fekuna/omnipos-ledger-service/internal/stock"
	"github.com/fekuna/omnipos-ledger-service/internal/stock/dto"
	"github.com/fekuna/omnipos-ledger-service/internal/stock/repository"
	"github.com/fekuna/omnipos-ledger-service/pkg/clock"
	"github.com/fekuna/omnipos-ledger-service/pkg/database"
	"github.com/fekuna/omnipos-ledger-service/pkg/database/dbtest"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
	"go.uber.org/zap/zaptest"
)

type harness struct {
	uc        stock.UseCase
	movements movement.Recorder
	clock     *clock.Fake
}

func newHarness(t *testing.T, opts Options) *harness {
	t.Helper()
	db := dbtest.New(t)
	log := logger.FromZap(zaptest.NewLogger(t))
	clk := clock.NewFake(time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC))

	materials := materialuc.NewMaterialUseCase(materialrepo.NewSQLRepository(db), nil, clk, log)
	for _, id := range []string{"m-1", "m-2"} {
		if err := materials.SyncMaterial(context.Background(), &model.Material{ID: id, Designation: "Projector " + id}); err != nil {
			t.Fatalf("seed material: %v", err)
		}
	}

	movements := movementuc.NewMovementUseCase(movementrepo.NewSQLRepository(db), log)
	return &harness{
		uc:        NewStockUseCase(repository.NewSQLRepository(db), movements, materials, database.NewTransactor(db), clk, log, opts),
		movements: movements,
		clock:     clk,
	}
}

func (h *harness) stockIn(t *testing.T, materialID string, qty int64) {
	t.Helper()
	if _, err := h.uc.AdjustStock(context.Background(), &dto.AdjustStockInput{MaterialID: materialID, Delta: qty, Reason: "delivery"}); err != nil {
		t.Fatalf("stock in: %v", err)
	}
}

func (h *harness) history(t *testing.T, materialID string) []model.Movement {
	t.Helper()
	items, err := h.movements.ListMovements(context.Background(), movementdto.HistoryFilter{MaterialID: materialID}, 1000)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	return items
}

func (h *harness) assertConsistent(t *testing.T, materialID string) {
	t.Helper()
	rec, err := h.uc.GetStock(context.Background(), materialID)
	if err != nil {
		t.Fatalf("GetStock: %v", err)
	}
	if rec.QuantityReserved < 0 || rec.QuantityReserved > rec.QuantityStock {
		t.Errorf("invariant broken: stock=%d reserved=%d", rec.QuantityStock, rec.QuantityReserved)
	}

	stockSum, reservedSum, err := h.movements.Balance(context.Background(), materialID)
	if err != nil {
		t.Fatalf("Balance: %v", err)
	}
	if stockSum != rec.QuantityStock || reservedSum != rec.QuantityReserved {
		t.Errorf("history replays to %d/%d, record holds %d/%d",
			stockSum, reservedSum, rec.QuantityStock, rec.QuantityReserved)
	}
}

func TestAdjustStock_FirstEntreeCreatesRecord(t *testing.T) {
	h := newHarness(t, Options{})
	ctx := context.Background()

	rec, err := h.uc.AdjustStock(ctx, &dto.AdjustStockInput{MaterialID: "m-1", Delta: 10, ActorID: "u-7"})
	if err != nil {
		t.Fatalf("AdjustStock: %v", err)
	}
	if rec.QuantityStock != 10 || rec.QuantityReserved != 0 || rec.Available() != 10 {
		t.Errorf("unexpected record: %+v", rec)
	}

	moves := h.history(t, "m-1")
	if len(moves) != 1 {
		t.Fatalf("expected 1 movement, got %d", len(moves))
	}
	m := moves[0]
	if m.Type != model.MovementEntree || m.Quantity != 10 || m.StockAfter != 10 {
		t.Errorf("unexpected movement: %+v", m)
	}
	if m.ReferenceType != model.ReferenceManual {
		t.Errorf("expected manual reference, got %q", m.ReferenceType)
	}
	if m.CreatedBy == nil || *m.CreatedBy != "u-7" {
		t.Errorf("expected created_by u-7, got %v", m.CreatedBy)
	}
}

func TestAdjustStock_InsufficientStock(t *testing.T) {
	h := newHarness(t, Options{})
	h.stockIn(t, "m-1", 10)

	_, err := h.uc.AdjustStock(context.Background(), &dto.AdjustStockInput{
		MaterialID: "m-1", Delta: -11, MovementType: model.MovementSortie,
	})
	if !errors.Is(err, model.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	rec, _ := h.uc.GetStock(context.Background(), "m-1")
	if rec.QuantityStock != 10 || rec.QuantityReserved != 0 {
		t.Errorf("stock changed on failure: %d/%d", rec.QuantityStock, rec.QuantityReserved)
	}
	if n := len(h.history(t, "m-1")); n != 1 {
		t.Errorf("expected no movement for a failed adjustment, got %d", n)
	}
}

func TestAdjustStock_SortieCannotTouchReserved(t *testing.T) {
	h := newHarness(t, Options{})
	ctx := context.Background()
	h.stockIn(t, "m-1", 10)

	if _, err := h.uc.Reserve(ctx, &dto.ReserveInput{MaterialID: "m-1", Quantity: 6}); err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	if _, err := h.uc.AdjustStock(ctx, &dto.AdjustStockInput{MaterialID: "m-1", Delta: -5}); !errors.Is(err, model.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	rec, err := h.uc.AdjustStock(ctx, &dto.AdjustStockInput{MaterialID: "m-1", Delta: -4})
	if err != nil {
		t.Fatalf("AdjustStock -4: %v", err)
	}
	if rec.QuantityStock != 6 || rec.Available() != 0 {
		t.Errorf("unexpected record: %+v", rec)
	}
	h.assertConsistent(t, "m-1")
}

func TestAdjustStock_Validation(t *testing.T) {
	h := newHarness(t, Options{})
	h.stockIn(t, "m-1", 5)

	tests := []struct {
		name    string
		input   dto.AdjustStockInput
		wantErr error
	}{
		{"zero delta", dto.AdjustStockInput{MaterialID: "m-1"}, model.ErrInvalidQuantity},
		{"entree with negative delta", dto.AdjustStockInput{MaterialID: "m-1", Delta: -1, MovementType: model.MovementEntree}, model.ErrInvalidArgument},
		{"sortie with positive delta", dto.AdjustStockInput{MaterialID: "m-1", Delta: 1, MovementType: model.MovementSortie}, model.ErrInvalidArgument},
		{"reservation type", dto.AdjustStockInput{MaterialID: "m-1", Delta: 1, MovementType: model.MovementReservation}, model.ErrInvalidArgument},
		{"missing material id", dto.AdjustStockInput{Delta: 1}, model.ErrInvalidArgument},
		{"unknown material", dto.AdjustStockInput{MaterialID: "ghost", Delta: 1}, model.ErrNotFound},
		{"sortie without record", dto.AdjustStockInput{MaterialID: "m-2", Delta: -1}, model.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.uc.AdjustStock(context.Background(), &tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestReserveAndRelease(t *testing.T) {
	h := newHarness(t, Options{})
	ctx := context.Background()
	h.stockIn(t, "m-1", 10)

	rec, err := h.uc.Reserve(ctx, &dto.ReserveInput{MaterialID: "m-1", Quantity: 4, ReferenceType: "request", ReferenceID: "r-1"})
	if err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	if rec.QuantityReserved != 4 || rec.Available() != 6 {
		t.Errorf("unexpected record after reserve: %+v", rec)
	}

	if _, err := h.uc.Reserve(ctx, &dto.ReserveInput{MaterialID: "m-1", Quantity: 7}); !errors.Is(err, model.ErrInsufficientStock) {
		t.Errorf("expected ErrInsufficientStock, got %v", err)
	}
	if _, err := h.uc.Release(ctx, &dto.ReleaseInput{MaterialID: "m-1", Quantity: 5}); !errors.Is(err, model.ErrInvalidReleaseAmount) {
		t.Errorf("expected ErrInvalidReleaseAmount, got %v", err)
	}
	if _, err := h.uc.Release(ctx, &dto.ReleaseInput{MaterialID: "m-1", Quantity: 0}); !errors.Is(err, model.ErrInvalidQuantity) {
		t.Errorf("expected ErrInvalidQuantity, got %v", err)
	}
	if _, err := h.uc.Reserve(ctx, &dto.ReserveInput{MaterialID: "m-1", Quantity: -2}); !errors.Is(err, model.ErrInvalidQuantity) {
		t.Errorf("expected ErrInvalidQuantity, got %v", err)
	}

	rec, err = h.uc.Release(ctx, &dto.ReleaseInput{MaterialID: "m-1", Quantity: 4})
	if err != nil {
		t.Fatalf("Release: %v", err)
	}
	if rec.QuantityReserved != 0 || rec.Available() != 10 {
		t.Errorf("unexpected record after release: %+v", rec)
	}

	moves := h.history(t, "m-1")
	want := []model.MovementType{model.MovementEntree, model.MovementReservation, model.MovementDereservation}
	if len(moves) != len(want) {
		t.Fatalf("expected %d movements, got %d", len(want), len(moves))
	}
	for i, typ := range want {
		if moves[i].Type != typ {
			t.Errorf("movement %d: expected %s, got %s", i, typ, moves[i].Type)
		}
	}
	if moves[1].ReservedAfter != 4 || moves[1].ReferenceID != "r-1" {
		t.Errorf("unexpected reservation movement: %+v", moves[1])
	}
	h.assertConsistent(t, "m-1")
}

func TestAvailable(t *testing.T) {
	h := newHarness(t, Options{})
	ctx := context.Background()

	got, err := h.uc.Available(ctx, "m-2")
	if err != nil || got != 0 {
		t.Errorf("known material without stock: got %d, %v", got, err)
	}
	if _, err := h.uc.Available(ctx, "ghost"); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	h.stockIn(t, "m-1", 8)
	if _, err := h.uc.Reserve(ctx, &dto.ReserveInput{MaterialID: "m-1", Quantity: 3}); err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	if got, _ := h.uc.Available(ctx, "m-1"); got != 5 {
		t.Errorf("expected 5 available, got %d", got)
	}
}

func TestConfigureStockAndListLowStock(t *testing.T) {
	h := newHarness(t, Options{})
	ctx := context.Background()

	rec, err := h.uc.ConfigureStock(ctx, &dto.ConfigureStockInput{MaterialID: "m-2", AlertThreshold: 3, Location: "B-12"})
	if err != nil {
		t.Fatalf("ConfigureStock: %v", err)
	}
	if rec.QuantityStock != 0 || rec.AlertThreshold != 3 || rec.Location != "B-12" {
		t.Errorf("unexpected record: %+v", rec)
	}
	if n := len(h.history(t, "m-2")); n != 0 {
		t.Errorf("configuration must not record movements, got %d", n)
	}

	h.stockIn(t, "m-1", 10)
	if _, err := h.uc.ConfigureStock(ctx, &dto.ConfigureStockInput{MaterialID: "m-1", AlertThreshold: 2}); err != nil {
		t.Fatalf("ConfigureStock: %v", err)
	}

	low, total, err := h.uc.ListLowStock(ctx, 1, 10)
	if err != nil {
		t.Fatalf("ListLowStock: %v", err)
	}
	if total != 1 || len(low) != 1 || low[0].MaterialID != "m-2" {
		t.Errorf("expected only m-2 low, got %d %+v", total, low)
	}

	if _, err := h.uc.AdjustStock(ctx, &dto.AdjustStockInput{MaterialID: "m-1", Delta: -8}); err != nil {
		t.Fatalf("AdjustStock: %v", err)
	}
	_, total, _ = h.uc.ListLowStock(ctx, 1, 10)
	if total != 2 {
		t.Errorf("expected 2 low stock records, got %d", total)
	}

	if _, err := h.uc.ConfigureStock(ctx, &dto.ConfigureStockInput{MaterialID: "ghost"}); !errors.Is(err, model.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := h.uc.ConfigureStock(ctx, &dto.ConfigureStockInput{MaterialID: "m-1", AlertThreshold: -1}); !errors.Is(err, model.ErrInvalidQuantity) {
		t.Errorf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestConcurrentSortieNeverOversells(t *testing.T) {
	h := newHarness(t, Options{})
	h.stockIn(t, "m-1", 10)

	const workers = 25
	var wg sync.WaitGroup
	var ok, rejected atomic.Int32
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := h.uc.AdjustStock(context.Background(), &dto.AdjustStockInput{MaterialID: "m-1", Delta: -1})
			switch {
			case err == nil:
				ok.Add(1)
			case errors.Is(err, model.ErrInsufficientStock):
				rejected.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if ok.Load() != 10 || rejected.Load() != workers-10 {
		t.Errorf("expected 10 successes and %d rejections, got %d and %d", workers-10, ok.Load(), rejected.Load())
	}
	if got, _ := h.uc.Available(context.Background(), "m-1"); got != 0 {
		t.Errorf("expected 0 available, got %d", got)
	}
	h.assertConsistent(t, "m-1")
}

type stubLocker struct {
	mu       sync.Mutex
	held     map[string]string
	acquired int
	released int
}

func (l *stubLocker) AcquireLock(_ context.Context, key, value string, _ time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.held[key]; ok {
		return false, nil
	}
	l.held[key] = value
	l.acquired++
	return true, nil
}

func (l *stubLocker) ReleaseLock(_ context.Context, key, value string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held[key] == value {
		delete(l.held, key)
		l.released++
	}
	return nil
}

func TestLocker(t *testing.T) {
	locker := &stubLocker{held: map[string]string{}}
	h := newHarness(t, Options{Locker: locker, LockTTL: time.Second})
	ctx := context.Background()

	h.stockIn(t, "m-1", 3)
	if locker.acquired != 1 || locker.released != 1 {
		t.Errorf("expected lock taken and released once, got %d/%d", locker.acquired, locker.released)
	}

	locker.held["lock:stock:m-1"] = "someone-else"
	_, err := h.uc.AdjustStock(ctx, &dto.AdjustStockInput{MaterialID: "m-1", Delta: -1})
	if !errors.Is(err, model.ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}
	if got, _ := h.uc.Available(ctx, "m-1"); got != 3 {
		t.Errorf("busy adjustment must not apply, available=%d", got)
	}
}
