package repair

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/internal/repair/dto"
)

type Repository interface {
	Create(ctx context.Context, t *model.RepairTicket) error
	FindByID(ctx context.Context, id string) (*model.RepairTicket, error)
	FindAll(ctx context.Context, f *dto.TicketFilters) ([]model.RepairTicket, int, error)
	// Transition sets status to `to` only when the current status is one
	// of from, and reports whether it did.
	Transition(ctx context.Context, id string, from []model.RepairStatus, to model.RepairStatus, at time.Time, closedAt *time.Time) (bool, error)
}
