package repair

import (
	"context"

	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/internal/repair/dto"
)

type UseCase interface {
	Create(ctx context.Context, input *dto.CreateTicketInput) (*model.RepairTicket, error)
	UpdateStatus(ctx context.Context, id string, target model.RepairStatus) (*model.RepairTicket, error)
	Get(ctx context.Context, id string) (*model.RepairTicket, error)
	List(ctx context.Context, f *dto.TicketFilters) ([]model.RepairTicket, int, error)
}
