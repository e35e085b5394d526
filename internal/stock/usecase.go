package stock

import (
	"context"

	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/internal/stock/dto"
)

type UseCase interface {
	AdjustStock(ctx context.Context, input *dto.AdjustStockInput) (*model.StockRecord, error)
	Reserve(ctx context.Context, input *dto.ReserveInput) (*model.StockRecord, error)
	Release(ctx context.Context, input *dto.ReleaseInput) (*model.StockRecord, error)
	Available(ctx context.Context, materialID string) (int64, error)

	GetStock(ctx context.Context, materialID string) (*model.StockRecord, error)
	ListLowStock(ctx context.Context, page, pageSize int) ([]model.StockRecord, int, error)
	ConfigureStock(ctx context.Context, input *dto.ConfigureStockInput) (*model.StockRecord, error)
}
