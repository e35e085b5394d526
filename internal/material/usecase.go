package material

import (
	"context"

	"github.com/fekuna/omnipos-ledger-service/internal/model"
)

type UseCase interface {
	// GetMaterial returns model.ErrNotFound for unknown ids.
	GetMaterial(ctx context.Context, id string) (*model.Material, error)
	// SyncMaterial stores reference data published by the catalog module.
	SyncMaterial(ctx context.Context, m *model.Material) error
}
