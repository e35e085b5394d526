package dto

import "time"

// HistoryFilter selects movements by material, by reference, or both.
type HistoryFilter struct {
	MaterialID    string
	ReferenceType string
	ReferenceID   string
	// AfterID resumes the sequence after the movement with this id.
	AfterID string
	// BatchSize is the number of rows fetched per round trip.
	BatchSize int
}

// Cursor is a keyset position in (created_at, id) order.
type Cursor struct {
	CreatedAt time.Time
	ID        string
}
