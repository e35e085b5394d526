package requestline

import (
	"context"

	"github.com/fekuna/omnipos-ledger-service/internal/model"
)

type Repository interface {
	FindByID(ctx context.Context, id string) (*model.RequestLine, error)
	Upsert(ctx context.Context, line *model.RequestLine) error

	FindClaim(ctx context.Context, lineID string) (*model.RequestLineClaim, error)
	// InsertClaim reports false when the line is already claimed.
	InsertClaim(ctx context.Context, claim *model.RequestLineClaim) (bool, error)
	DeleteClaim(ctx context.Context, lineID string) error
}
