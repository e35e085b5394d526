package stock

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/internal/stock/dto"
)

// Repository mutations are compare-and-swap updates: they report false
// when the guard rejected the change or the record does not exist, and
// never leave a partial write.
type Repository interface {
	FindByMaterial(ctx context.Context, materialID string) (*model.StockRecord, error)
	FindAll(ctx context.Context, f *dto.StockFilters) ([]model.StockRecord, int, error)
	// Create inserts rec unless a record already exists for the material.
	Create(ctx context.Context, rec *model.StockRecord) (bool, error)

	// ApplyStockDelta adds delta to quantity_stock while it stays at or
	// above quantity_reserved.
	ApplyStockDelta(ctx context.Context, materialID string, delta int64, at time.Time) (bool, error)
	// ApplyReserve moves quantity from available to reserved.
	ApplyReserve(ctx context.Context, materialID string, quantity int64, at time.Time) (bool, error)
	// ApplyRelease moves quantity from reserved back to available.
	ApplyRelease(ctx context.Context, materialID string, quantity int64, at time.Time) (bool, error)
	UpdateSettings(ctx context.Context, materialID string, alertThreshold int64, location string, at time.Time) (bool, error)
}
