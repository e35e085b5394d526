package dto

import "github.com/fekuna/omnipos-ledger-service/internal/model"

type AdjustStockInput struct {
	MaterialID string
	Delta      int64
	// MovementType is ENTREE or SORTIE. Empty derives it from the sign of Delta.
	MovementType  model.MovementType
	ReferenceType string
	ReferenceID   string
	Reason        string
	ActorID       string
}

type ReserveInput struct {
	MaterialID    string
	Quantity      int64
	ReferenceType string
	ReferenceID   string
	Reason        string
	ActorID       string
}

type ReleaseInput struct {
	MaterialID    string
	Quantity      int64
	ReferenceType string
	ReferenceID   string
	Reason        string
	ActorID       string
}

type ConfigureStockInput struct {
	MaterialID     string
	AlertThreshold int64
	Location       string
}
