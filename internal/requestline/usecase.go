package requestline

import (
	"context"

	"github.com/fekuna/omnipos-ledger-service/internal/model"
)

// Linker guarantees at most one attribution per request line.
type Linker interface {
	// IsUnclaimed is advisory only. Claim is the authoritative check.
	IsUnclaimed(ctx context.Context, lineID string) (bool, error)
	// Claim fails with model.ErrDuplicateAttribution if the line is taken.
	Claim(ctx context.Context, lineID, attributionID string) error
	Unclaim(ctx context.Context, lineID string) error

	GetLine(ctx context.Context, id string) (*model.RequestLine, error)
	SyncLine(ctx context.Context, line *model.RequestLine) error
}
