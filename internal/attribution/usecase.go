package attribution

import (
	"context"

	"github.com/fekuna/omnipos-ledger-service/internal/attribution/dto"
	"github.com/fekuna/omnipos-ledger-service/internal/model"
)

// UseCase hands material out to requesters and takes it back. Every
// attribution it returns carries its effective status.
type UseCase interface {
	Create(ctx context.Context, input *dto.CreateAttributionInput) (*model.Attribution, error)
	MarkReturned(ctx context.Context, id, actorID string) (*model.Attribution, error)
	UpdateStatus(ctx context.Context, id string, status model.AttributionStatus, actorID string) (*model.Attribution, error)
	Delete(ctx context.Context, id, actorID string) error

	Get(ctx context.Context, id string) (*model.Attribution, error)
	List(ctx context.Context, f *dto.AttributionFilters) ([]model.Attribution, int, error)
}
