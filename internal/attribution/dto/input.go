package dto

import "time"

type CreateAttributionInput struct {
	MaterialID  string
	RequesterID string
	// RequestLineID is empty for a hand-out not tied to a requisition.
	RequestLineID string
	Quantity      int64
	// DueDate nil makes the attribution definitive.
	DueDate *time.Time
	ActorID string
}
