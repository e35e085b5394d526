package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-ledger-service/internal/auth"
	"github.com/fekuna/omnipos-ledger-service/internal/material"
	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/internal/movement"
	"github.com/fekuna/omnipos-ledger-service/internal/stock"
	"github.com/fekuna/omnipos-ledger-service/internal/stock/dto"
	"github.com/fekuna/omnipos-ledger-service/pkg/clock"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	lockAttempts   = 3
	lockRetryDelay = 100 * time.Millisecond
)

// Transactor is satisfied by *database.Transactor.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Locker is satisfied by *cache.RedisClient.
type Locker interface {
	AcquireLock(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key, value string) error
}

type Options struct {
	// Locker, when set, serializes mutations per material across instances.
	Locker  Locker
	LockTTL time.Duration
}

type stockUseCase struct {
	repo      stock.Repository
	movements movement.Appender
	materials material.UseCase
	tx        Transactor
	clock     clock.Clock
	logger    logger.ZapLogger
	locker    Locker
	lockTTL   time.Duration
}

func NewStockUseCase(
	repo stock.Repository,
	movements movement.Appender,
	materials material.UseCase,
	tx Transactor,
	clk clock.Clock,
	log logger.ZapLogger,
	opts Options,
) stock.UseCase {
	ttl := opts.LockTTL
	if ttl <= 0 {
		ttl = 5 * time.Second
	}
	return &stockUseCase{
		repo:      repo,
		movements: movements,
		materials: materials,
		tx:        tx,
		clock:     clk,
		logger:    log,
		locker:    opts.Locker,
		lockTTL:   ttl,
	}
}

func (uc *stockUseCase) GetStock(ctx context.Context, materialID string) (*model.StockRecord, error) {
	if materialID == "" {
		return nil, fmt.Errorf("%w: material id is required", model.ErrInvalidArgument)
	}

	rec, err := uc.repo.FindByMaterial(ctx, materialID)
	if err != nil {
		return nil, fmt.Errorf("find stock %s: %w", materialID, err)
	}
	if rec != nil {
		return rec, nil
	}

	// A known material that never entered inventory holds nothing.
	if _, err := uc.materials.GetMaterial(ctx, materialID); err != nil {
		return nil, err
	}
	return &model.StockRecord{MaterialID: materialID}, nil
}

func (uc *stockUseCase) Available(ctx context.Context, materialID string) (int64, error) {
	rec, err := uc.GetStock(ctx, materialID)
	if err != nil {
		return 0, err
	}
	return rec.Available(), nil
}

func (uc *stockUseCase) ListLowStock(ctx context.Context, page, pageSize int) ([]model.StockRecord, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	return uc.repo.FindAll(ctx, &dto.StockFilters{
		LowStock: true,
		Page:     page,
		PageSize: pageSize,
	})
}

func (uc *stockUseCase) ConfigureStock(ctx context.Context, input *dto.ConfigureStockInput) (*model.StockRecord, error) {
	if input.MaterialID == "" {
		return nil, fmt.Errorf("%w: material id is required", model.ErrInvalidArgument)
	}
	if input.AlertThreshold < 0 {
		return nil, fmt.Errorf("%w: alert threshold must not be negative", model.ErrInvalidQuantity)
	}

	var rec *model.StockRecord
	err := uc.tx.WithinTx(ctx, func(ctx context.Context) error {
		now := uc.clock.Now()
		if err := uc.ensureRecord(ctx, input.MaterialID, now); err != nil {
			return err
		}
		if _, err := uc.repo.UpdateSettings(ctx, input.MaterialID, input.AlertThreshold, input.Location, now); err != nil {
			return fmt.Errorf("configure stock %s: %w", input.MaterialID, err)
		}

		var err error
		rec, err = uc.repo.FindByMaterial(ctx, input.MaterialID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (uc *stockUseCase) AdjustStock(ctx context.Context, input *dto.AdjustStockInput) (*model.StockRecord, error) {
	if input.MaterialID == "" {
		return nil, fmt.Errorf("%w: material id is required", model.ErrInvalidArgument)
	}
	typ, err := adjustmentType(input.Delta, input.MovementType)
	if err != nil {
		return nil, err
	}

	quantity := input.Delta
	if quantity < 0 {
		quantity = -quantity
	}

	var rec *model.StockRecord
	err = uc.withLock(ctx, input.MaterialID, func() error {
		return uc.tx.WithinTx(ctx, func(ctx context.Context) error {
			now := uc.clock.Now()

			if typ == model.MovementEntree {
				if err := uc.ensureRecord(ctx, input.MaterialID, now); err != nil {
					return err
				}
			}

			ok, err := uc.repo.ApplyStockDelta(ctx, input.MaterialID, input.Delta, now)
			if err != nil {
				return fmt.Errorf("adjust stock %s: %w", input.MaterialID, err)
			}
			if !ok {
				return uc.rejection(ctx, input.MaterialID,
					fmt.Errorf("%w: cannot remove %d of material %s", model.ErrInsufficientStock, quantity, input.MaterialID))
			}

			rec, err = uc.record(ctx, input.MaterialID, &model.Movement{
				Type:          typ,
				Quantity:      quantity,
				ReferenceType: input.ReferenceType,
				ReferenceID:   input.ReferenceID,
				Reason:        input.Reason,
				CreatedBy:     auth.ActorPtr(input.ActorID),
				CreatedAt:     now,
			})
			return err
		})
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("stock adjusted",
		zap.String("material_id", input.MaterialID),
		zap.String("type", string(typ)),
		zap.Int64("delta", input.Delta),
		zap.Int64("quantity_stock", rec.QuantityStock),
	)
	uc.warnIfLow(rec)
	return rec, nil
}

func (uc *stockUseCase) Reserve(ctx context.Context, input *dto.ReserveInput) (*model.StockRecord, error) {
	if input.MaterialID == "" {
		return nil, fmt.Errorf("%w: material id is required", model.ErrInvalidArgument)
	}
	if input.Quantity <= 0 {
		return nil, fmt.Errorf("%w: reservation must be positive, got %d", model.ErrInvalidQuantity, input.Quantity)
	}

	var rec *model.StockRecord
	err := uc.withLock(ctx, input.MaterialID, func() error {
		return uc.tx.WithinTx(ctx, func(ctx context.Context) error {
			now := uc.clock.Now()

			ok, err := uc.repo.ApplyReserve(ctx, input.MaterialID, input.Quantity, now)
			if err != nil {
				return fmt.Errorf("reserve stock %s: %w", input.MaterialID, err)
			}
			if !ok {
				return uc.rejection(ctx, input.MaterialID,
					fmt.Errorf("%w: cannot reserve %d of material %s", model.ErrInsufficientStock, input.Quantity, input.MaterialID))
			}

			rec, err = uc.record(ctx, input.MaterialID, &model.Movement{
				Type:          model.MovementReservation,
				Quantity:      input.Quantity,
				ReferenceType: input.ReferenceType,
				ReferenceID:   input.ReferenceID,
				Reason:        input.Reason,
				CreatedBy:     auth.ActorPtr(input.ActorID),
				CreatedAt:     now,
			})
			return err
		})
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("stock reserved",
		zap.String("material_id", input.MaterialID),
		zap.Int64("quantity", input.Quantity),
		zap.Int64("quantity_reserved", rec.QuantityReserved),
	)
	uc.warnIfLow(rec)
	return rec, nil
}

func (uc *stockUseCase) Release(ctx context.Context, input *dto.ReleaseInput) (*model.StockRecord, error) {
	if input.MaterialID == "" {
		return nil, fmt.Errorf("%w: material id is required", model.ErrInvalidArgument)
	}
	if input.Quantity <= 0 {
		return nil, fmt.Errorf("%w: release must be positive, got %d", model.ErrInvalidQuantity, input.Quantity)
	}

	var rec *model.StockRecord
	err := uc.withLock(ctx, input.MaterialID, func() error {
		return uc.tx.WithinTx(ctx, func(ctx context.Context) error {
			now := uc.clock.Now()

			ok, err := uc.repo.ApplyRelease(ctx, input.MaterialID, input.Quantity, now)
			if err != nil {
				return fmt.Errorf("release stock %s: %w", input.MaterialID, err)
			}
			if !ok {
				return uc.rejection(ctx, input.MaterialID,
					fmt.Errorf("%w: cannot release %d of material %s", model.ErrInvalidReleaseAmount, input.Quantity, input.MaterialID))
			}

			rec, err = uc.record(ctx, input.MaterialID, &model.Movement{
				Type:          model.MovementDereservation,
				Quantity:      input.Quantity,
				ReferenceType: input.ReferenceType,
				ReferenceID:   input.ReferenceID,
				Reason:        input.Reason,
				CreatedBy:     auth.ActorPtr(input.ActorID),
				CreatedAt:     now,
			})
			return err
		})
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("stock released",
		zap.String("material_id", input.MaterialID),
		zap.Int64("quantity", input.Quantity),
		zap.Int64("quantity_reserved", rec.QuantityReserved),
	)
	return rec, nil
}

// adjustmentType checks that the movement type agrees with the sign of delta.
func adjustmentType(delta int64, typ model.MovementType) (model.MovementType, error) {
	if delta == 0 {
		return "", fmt.Errorf("%w: adjustment delta must not be zero", model.ErrInvalidQuantity)
	}

	switch typ {
	case "":
		if delta > 0 {
			return model.MovementEntree, nil
		}
		return model.MovementSortie, nil
	case model.MovementEntree:
		if delta < 0 {
			return "", fmt.Errorf("%w: ENTREE requires a positive delta", model.ErrInvalidArgument)
		}
	case model.MovementSortie:
		if delta > 0 {
			return "", fmt.Errorf("%w: SORTIE requires a negative delta", model.ErrInvalidArgument)
		}
	default:
		return "", fmt.Errorf("%w: %s is not a stock adjustment", model.ErrInvalidArgument, typ)
	}
	return typ, nil
}

// ensureRecord creates an empty stock record for a known material.
func (uc *stockUseCase) ensureRecord(ctx context.Context, materialID string, now time.Time) error {
	rec, err := uc.repo.FindByMaterial(ctx, materialID)
	if err != nil {
		return fmt.Errorf("find stock %s: %w", materialID, err)
	}
	if rec != nil {
		return nil
	}

	if _, err := uc.materials.GetMaterial(ctx, materialID); err != nil {
		return err
	}

	if _, err := uc.repo.Create(ctx, &model.StockRecord{
		MaterialID: materialID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}); err != nil {
		return err
	}
	return nil
}

// rejection turns a refused compare-and-swap into NotFound when there is
// no record to compare against, and into cause otherwise.
func (uc *stockUseCase) rejection(ctx context.Context, materialID string, cause error) error {
	rec, err := uc.repo.FindByMaterial(ctx, materialID)
	if err != nil {
		return fmt.Errorf("find stock %s: %w", materialID, err)
	}
	if rec == nil {
		return fmt.Errorf("stock record for material %s: %w", materialID, model.ErrNotFound)
	}
	return cause
}

// record reads back the updated row and appends the movement describing
// the change.
func (uc *stockUseCase) record(ctx context.Context, materialID string, m *model.Movement) (*model.StockRecord, error) {
	rec, err := uc.repo.FindByMaterial(ctx, materialID)
	if err != nil {
		return nil, fmt.Errorf("find stock %s: %w", materialID, err)
	}
	if rec == nil {
		return nil, fmt.Errorf("stock record for material %s: %w", materialID, model.ErrNotFound)
	}

	if m.ReferenceType == "" {
		m.ReferenceType = model.ReferenceManual
	}
	m.MaterialID = materialID
	m.StockAfter = rec.QuantityStock
	m.ReservedAfter = rec.QuantityReserved

	if err := uc.movements.Append(ctx, m); err != nil {
		return nil, fmt.Errorf("append movement: %w", err)
	}
	return rec, nil
}

func (uc *stockUseCase) withLock(ctx context.Context, materialID string, fn func() error) error {
	if uc.locker == nil {
		return fn()
	}

	lockKey := "lock:stock:" + materialID
	lockValue := uuid.New().String()

	acquired := false
	for i := 0; i < lockAttempts; i++ {
		ok, err := uc.locker.AcquireLock(ctx, lockKey, lockValue, uc.lockTTL)
		if err != nil {
			uc.logger.Error("failed to acquire stock lock", zap.String("key", lockKey), zap.Error(err))
		}
		if ok {
			acquired = true
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(lockRetryDelay):
		}
	}
	if !acquired {
		return fmt.Errorf("%w: stock lock for material %s", model.ErrBusy, materialID)
	}

	defer func() {
		if err := uc.locker.ReleaseLock(context.WithoutCancel(ctx), lockKey, lockValue); err != nil {
			uc.logger.Warn("failed to release stock lock", zap.String("key", lockKey), zap.Error(err))
		}
	}()
	return fn()
}

func (uc *stockUseCase) warnIfLow(rec *model.StockRecord) {
	if rec.LowStock() {
		uc.logger.Warn("stock below alert threshold",
			zap.String("material_id", rec.MaterialID),
			zap.Int64("available", rec.Available()),
			zap.Int64("alert_threshold", rec.AlertThreshold),
		)
	}
}
