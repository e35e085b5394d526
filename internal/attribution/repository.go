package attribution

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-ledger-service/internal/attribution/dto"
	"github.com/fekuna/omnipos-ledger-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, a *model.Attribution) error
	FindByID(ctx context.Context, id string) (*model.Attribution, error)
	// FindAll evaluates an OVERDUE filter against now.
	FindAll(ctx context.Context, f *dto.AttributionFilters, now time.Time) ([]model.Attribution, int, error)
	// MarkReturned moves an IN_POSSESSION row to RETURNED and reports
	// false when the row was not in possession.
	MarkReturned(ctx context.Context, id string, at time.Time) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
