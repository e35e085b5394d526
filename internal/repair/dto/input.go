package dto

import "github.com/fekuna/omnipos-ledger-service/internal/model"

type CreateTicketInput struct {
	MaterialID  string
	RequesterID string
	Description string
	// Status is accepted for compatibility with callers that send one and
	// is ignored: tickets always open as REPORTED.
	Status model.RepairStatus
}
