package model

import "time"

// RequestLine belongs to the requisition workflow; the engine reads it to
// bound and link attributions.
type RequestLine struct {
	ID                string    `db:"id" json:"id"`
	RequestID         string    `db:"request_id" json:"request_id"`
	MaterialID        string    `db:"material_id" json:"material_id"`
	QuantityRequested int64     `db:"quantity_requested" json:"quantity_requested"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

type RequestLineClaim struct {
	RequestLineID string    `db:"request_line_id"`
	AttributionID string    `db:"attribution_id"`
	ClaimedAt     time.Time `db:"claimed_at"`
}
