package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-ledger-service/internal/material"
	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/pkg/cache"
	"github.com/fekuna/omnipos-ledger-service/pkg/clock"
	"github.com/fekuna/omnipos-ledger-service/pkg/database"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
	"go.uber.org/zap"
)

const cacheTTL = 5 * time.Minute

// Cache is satisfied by *cache.RedisClient.
type Cache interface {
	GetJSON(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type materialUseCase struct {
	repo   material.Repository
	cache  Cache
	clock  clock.Clock
	logger logger.ZapLogger
}

// NewMaterialUseCase builds the lookup; cache may be nil.
func NewMaterialUseCase(repo material.Repository, cache Cache, clk clock.Clock, log logger.ZapLogger) material.UseCase {
	return &materialUseCase{
		repo:   repo,
		cache:  cache,
		clock:  clk,
		logger: log,
	}
}

func cacheKey(id string) string {
	return "materials:" + id
}

func (uc *materialUseCase) GetMaterial(ctx context.Context, id string) (*model.Material, error) {
	// Inside a transaction the row must come from the store, not a cache.
	useCache := uc.cache != nil && !database.InTx(ctx)

	if useCache {
		var m model.Material
		err := uc.cache.GetJSON(ctx, cacheKey(id), &m)
		if err == nil {
			return &m, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			uc.logger.Warn("material cache read failed", zap.String("material_id", id), zap.Error(err))
		}
	}

	m, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find material %s: %w", id, err)
	}
	if m == nil {
		return nil, fmt.Errorf("material %s: %w", id, model.ErrNotFound)
	}

	if useCache {
		if err := uc.cache.SetJSON(ctx, cacheKey(id), m, cacheTTL); err != nil {
			uc.logger.Warn("material cache write failed", zap.String("material_id", id), zap.Error(err))
		}
	}
	return m, nil
}

func (uc *materialUseCase) SyncMaterial(ctx context.Context, m *model.Material) error {
	if m == nil || m.ID == "" || m.Designation == "" {
		return fmt.Errorf("%w: material id and designation are required", model.ErrInvalidArgument)
	}

	now := uc.clock.Now()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now

	if err := uc.repo.Upsert(ctx, m); err != nil {
		return fmt.Errorf("upsert material %s: %w", m.ID, err)
	}

	if uc.cache != nil {
		if err := uc.cache.Delete(ctx, cacheKey(m.ID)); err != nil {
			uc.logger.Warn("material cache invalidation failed", zap.String("material_id", m.ID), zap.Error(err))
		}
	}
	return nil
}
