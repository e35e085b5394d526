package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/fekuna/omnipos-ledger-service/internal/material/repository"
	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/pkg/cache"
	"github.com/fekuna/omnipos-ledger-service/pkg/clock"
	"github.com/fekuna/omnipos-ledger-service/pkg/database/dbtest"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
)

type memCache struct {
	mu   sync.Mutex
	data map[string][]byte
	hits int
}

func newMemCache() *memCache { return &memCache{data: map[string][]byte{}} }

func (c *memCache) GetJSON(_ context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	c.hits++
	return json.Unmarshal(b, dest)
}

func (c *memCache) SetJSON(_ context.Context, key string, value interface{}, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.data[key] = b
	c.mu.Unlock()
	return nil
}

func (c *memCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	for _, k := range keys {
		delete(c.data, k)
	}
	c.mu.Unlock()
	return nil
}

func TestMaterialUseCase_SyncAndGet(t *testing.T) {
	db := dbtest.New(t)
	mc := newMemCache()
	clk := clock.NewFake(time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC))
	uc := NewMaterialUseCase(repository.NewSQLRepository(db), mc, clk, logger.NewNop())
	ctx := context.Background()

	if err := uc.SyncMaterial(ctx, &model.Material{ID: "m-1", Designation: "Laptop", Type: "IT", Condition: "new"}); err != nil {
		t.Fatalf("SyncMaterial: %v", err)
	}

	got, err := uc.GetMaterial(ctx, "m-1")
	if err != nil {
		t.Fatalf("GetMaterial: %v", err)
	}
	if got.Designation != "Laptop" || got.Type != "IT" || got.Condition != "new" {
		t.Errorf("unexpected material: %+v", got)
	}

	if _, err := uc.GetMaterial(ctx, "m-1"); err != nil {
		t.Fatalf("second GetMaterial: %v", err)
	}
	if mc.hits != 1 {
		t.Errorf("expected 1 cache hit, got %d", mc.hits)
	}

	clk.Advance(time.Hour)
	if err := uc.SyncMaterial(ctx, &model.Material{ID: "m-1", Designation: "Laptop 14", Type: "IT", Condition: "used"}); err != nil {
		t.Fatalf("resync: %v", err)
	}
	got, err = uc.GetMaterial(ctx, "m-1")
	if err != nil {
		t.Fatalf("GetMaterial after resync: %v", err)
	}
	if got.Designation != "Laptop 14" || got.Condition != "used" {
		t.Errorf("resync should invalidate cache, got %+v", got)
	}
}

func TestMaterialUseCase_NotFound(t *testing.T) {
	db := dbtest.New(t)
	uc := NewMaterialUseCase(repository.NewSQLRepository(db), nil, clock.Real(), logger.NewNop())

	_, err := uc.GetMaterial(context.Background(), "missing")
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMaterialUseCase_SyncValidates(t *testing.T) {
	db := dbtest.New(t)
	uc := NewMaterialUseCase(repository.NewSQLRepository(db), nil, clock.Real(), logger.NewNop())

	err := uc.SyncMaterial(context.Background(), &model.Material{ID: "m-1"})
	if !errors.Is(err, model.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}
