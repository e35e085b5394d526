package usecase

import (
	"context"
	"fmt"
	"iter"

	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/internal/movement"
	"github.com/fekuna/omnipos-ledger-service/internal/movement/dto"
	"github.com/fekuna/omnipos-ledger-service/pkg/database"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultBatchSize = 100
	maxBatchSize     = 1000
)

type movementUseCase struct {
	repo   movement.Repository
	logger logger.ZapLogger
}

func NewMovementUseCase(repo movement.Repository, log logger.ZapLogger) movement.Recorder {
	return &movementUseCase{
		repo:   repo,
		logger: log,
	}
}

func (uc *movementUseCase) Append(ctx context.Context, m *model.Movement) error {
	if !database.InTx(ctx) {
		return database.ErrTxRequired
	}
	if m == nil || m.MaterialID == "" {
		return fmt.Errorf("%w: movement material is required", model.ErrInvalidArgument)
	}
	if _, err := model.ParseMovementType(string(m.Type)); err != nil {
		return err
	}
	if m.Quantity <= 0 {
		return fmt.Errorf("%w: movement quantity must be positive", model.ErrInvalidQuantity)
	}
	if m.CreatedAt.IsZero() {
		return fmt.Errorf("%w: movement timestamp is required", model.ErrInvalidArgument)
	}

	if m.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("generate movement id: %w", err)
		}
		m.ID = id.String()
	}

	if err := uc.repo.Insert(ctx, m); err != nil {
		return err
	}

	uc.logger.Debug("movement appended",
		zap.String("movement_id", m.ID),
		zap.String("material_id", m.MaterialID),
		zap.String("type", string(m.Type)),
		zap.Int64("quantity", m.Quantity),
	)
	return nil
}

func (uc *movementUseCase) History(ctx context.Context, f dto.HistoryFilter) iter.Seq2[model.Movement, error] {
	return func(yield func(model.Movement, error) bool) {
		batch := f.BatchSize
		if batch <= 0 {
			batch = defaultBatchSize
		}
		if batch > maxBatchSize {
			batch = maxBatchSize
		}

		var cursor *dto.Cursor
		if f.AfterID != "" {
			m, err := uc.repo.FindByID(ctx, f.AfterID)
			if err != nil {
				yield(model.Movement{}, fmt.Errorf("resolve cursor %s: %w", f.AfterID, err))
				return
			}
			if m == nil {
				yield(model.Movement{}, fmt.Errorf("movement %s: %w", f.AfterID, model.ErrNotFound))
				return
			}
			cursor = &dto.Cursor{CreatedAt: m.CreatedAt, ID: m.ID}
		}

		for {
			if err := ctx.Err(); err != nil {
				yield(model.Movement{}, err)
				return
			}

			page, err := uc.repo.ListPage(ctx, &f, cursor, batch)
			if err != nil {
				yield(model.Movement{}, fmt.Errorf("list movements: %w", err))
				return
			}
			for _, m := range page {
				if !yield(m, nil) {
					return
				}
			}
			if len(page) < batch {
				return
			}
			last := page[len(page)-1]
			cursor = &dto.Cursor{CreatedAt: last.CreatedAt, ID: last.ID}
		}
	}
}

func (uc *movementUseCase) ListMovements(ctx context.Context, f dto.HistoryFilter, limit int) ([]model.Movement, error) {
	if limit <= 0 {
		limit = defaultBatchSize
	}
	if f.BatchSize <= 0 || f.BatchSize > limit {
		f.BatchSize = limit
	}

	items := make([]model.Movement, 0, f.BatchSize)
	for m, err := range uc.History(ctx, f) {
		if err != nil {
			return nil, err
		}
		items = append(items, m)
		if len(items) == limit {
			break
		}
	}
	return items, nil
}

func (uc *movementUseCase) Balance(ctx context.Context, materialID string) (int64, int64, error) {
	if materialID == "" {
		return 0, 0, fmt.Errorf("%w: material id is required", model.ErrInvalidArgument)
	}

	var stock, reserved int64
	for m, err := range uc.History(ctx, dto.HistoryFilter{MaterialID: materialID, BatchSize: maxBatchSize}) {
		if err != nil {
			return 0, 0, err
		}
		ds, dr := m.Type.StockEffect(m.Quantity)
		stock += ds
		reserved += dr
	}
	return stock, reserved, nil
}
