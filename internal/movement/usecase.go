package movement

import (
	"context"
	"iter"

	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/internal/movement/dto"
)

// Appender is the write side of the audit trail. Only the stock ledger
// holds one, and Append refuses to run outside a transaction.
type Appender interface {
	Append(ctx context.Context, m *model.Movement) error
}

type Recorder interface {
	Appender

	// History is lazy and time-ordered. Each range over the returned
	// sequence starts again from the filter's position.
	History(ctx context.Context, f dto.HistoryFilter) iter.Seq2[model.Movement, error]
	ListMovements(ctx context.Context, f dto.HistoryFilter, limit int) ([]model.Movement, error)
	// Balance replays a material's history from zero.
	Balance(ctx context.Context, materialID string) (stock, reserved int64, err error)
}
