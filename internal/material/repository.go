package material

import (
	"context"

	"github.com/fekuna/omnipos-ledger-service/internal/model"
)

type Repository interface {
	FindByID(ctx context.Context, id string) (*model.Material, error)
	Upsert(ctx context.Context, m *model.Material) error
}
