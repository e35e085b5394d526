package dto

import "github.com/fekuna/omnipos-ledger-service/internal/model"

type TicketFilters struct {
	MaterialID  string
	RequesterID string
	Status      model.RepairStatus
	Page        int
	PageSize    int
}
