package model

import (
	"fmt"
	"time"
)

type AttributionStatus string

const (
	AttributionInPossession AttributionStatus = "IN_POSSESSION"
	AttributionReturned     AttributionStatus = "RETURNED"
	// AttributionOverdue is never stored. It is derived from due_date
	// whenever an attribution still in possession is read.
	AttributionOverdue AttributionStatus = "OVERDUE"
)

func ParseAttributionStatus(s string) (AttributionStatus, error) {
	switch st := AttributionStatus(s); st {
	case AttributionInPossession, AttributionReturned, AttributionOverdue:
		return st, nil
	}
	return "", fmt.Errorf("%w: unknown attribution status %q", ErrInvalidArgument, s)
}

type Attribution struct {
	ID                 string            `db:"id" json:"id"`
	MaterialID         string            `db:"material_id" json:"material_id"`
	RequesterID        string            `db:"requester_id" json:"requester_id"`
	RequestLineID      *string           `db:"request_line_id" json:"request_line_id"`
	QuantityAttributed int64             `db:"quantity_attributed" json:"quantity_attributed"`
	DateAttributed     time.Time         `db:"date_attributed" json:"date_attributed"`
	DueDate            *time.Time        `db:"due_date" json:"due_date"`
	Status             AttributionStatus `db:"status" json:"status"`
	ReturnedAt         *time.Time        `db:"returned_at" json:"returned_at"`
	CreatedBy          *string           `db:"created_by" json:"created_by"`
	UpdatedAt          time.Time         `db:"updated_at" json:"updated_at"`
}

// Definitive attributions have no due date and never become overdue.
func (a Attribution) Definitive() bool {
	return a.DueDate == nil
}

// EffectiveStatus is the status callers see at time now.
func (a Attribution) EffectiveStatus(now time.Time) AttributionStatus {
	if a.Status == AttributionInPossession && a.DueDate != nil && a.DueDate.Before(now) {
		return AttributionOverdue
	}
	return a.Status
}

// Resolve returns a copy whose Status field holds the effective status.
func (a Attribution) Resolve(now time.Time) Attribution {
	a.Status = a.EffectiveStatus(now)
	return a
}
