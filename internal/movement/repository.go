package movement

import (
	"context"

	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/internal/movement/dto"
)

// Repository is append-only: there is no update or delete.
type Repository interface {
	Insert(ctx context.Context, m *model.Movement) error
	FindByID(ctx context.Context, id string) (*model.Movement, error)
	// ListPage returns up to limit movements strictly after cursor, in
	// (created_at, id) order. A nil cursor starts from the beginning.
	ListPage(ctx context.Context, f *dto.HistoryFilter, after *dto.Cursor, limit int) ([]model.Movement, error)
}
