package model

import (
	"fmt"
	"time"
)

type StockRecord struct {
	MaterialID       string    `db:"material_id" json:"material_id"`
	QuantityStock    int64     `db:"quantity_stock" json:"quantity_stock"`
	QuantityReserved int64     `db:"quantity_reserved" json:"quantity_reserved"`
	AlertThreshold   int64     `db:"alert_threshold" json:"alert_threshold"`
	Location         string    `db:"location" json:"location"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// Available is recomputed on every read and never stored.
func (s StockRecord) Available() int64 {
	return s.QuantityStock - s.QuantityReserved
}

// LowStock reports whether an alert threshold is set and reached.
func (s StockRecord) LowStock() bool {
	return s.AlertThreshold > 0 && s.Available() <= s.AlertThreshold
}

type MovementType string

const (
	MovementEntree        MovementType = "ENTREE"
	MovementSortie        MovementType = "SORTIE"
	MovementReservation   MovementType = "RESERVATION"
	MovementDereservation MovementType = "DERESERVATION"
)

func ParseMovementType(s string) (MovementType, error) {
	switch t := MovementType(s); t {
	case MovementEntree, MovementSortie, MovementReservation, MovementDereservation:
		return t, nil
	}
	return "", fmt.Errorf("%w: unknown movement type %q", ErrInvalidArgument, s)
}

// StockEffect is the signed change a movement of quantity q applies to
// quantity_stock and quantity_reserved.
func (t MovementType) StockEffect(q int64) (stock, reserved int64) {
	switch t {
	case MovementEntree:
		return q, 0
	case MovementSortie:
		return -q, 0
	case MovementReservation:
		return 0, q
	case MovementDereservation:
		return 0, -q
	}
	return 0, 0
}

type Movement struct {
	ID            string       `db:"id" json:"id"`
	MaterialID    string       `db:"material_id" json:"material_id"`
	Type          MovementType `db:"movement_type" json:"movement_type"`
	Quantity      int64        `db:"quantity" json:"quantity"`
	StockAfter    int64        `db:"stock_after" json:"stock_after"`
	ReservedAfter int64        `db:"reserved_after" json:"reserved_after"`
	ReferenceType string       `db:"reference_type" json:"reference_type"`
	ReferenceID   string       `db:"reference_id" json:"reference_id"`
	Reason        string       `db:"reason" json:"reason"`
	CreatedBy     *string      `db:"created_by" json:"created_by"`
	CreatedAt     time.Time    `db:"created_at" json:"created_at"`
}

// Reference ties a movement to the record that caused it.
type Reference struct {
	Type string
	ID   string
}

const (
	ReferenceManual      = "manual"
	ReferenceAttribution = "attribution"
)
