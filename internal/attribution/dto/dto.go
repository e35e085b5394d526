package dto

import "github.com/fekuna/omnipos-ledger-service/internal/model"

type AttributionFilters struct {
	MaterialID  string
	RequesterID string
	// Status filters on the effective status, so OVERDUE is accepted.
	Status   model.AttributionStatus
	Page     int
	PageSize int
}
