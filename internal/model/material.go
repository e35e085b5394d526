package model

import "time"

// Material is reference data owned by the catalog module. The engine only
// reads it and keeps a synced copy.
type Material struct {
	ID          string    `db:"id" json:"id"`
	Designation string    `db:"designation" json:"designation"`
	Type        string    `db:"material_type" json:"type"`
	Condition   string    `db:"material_condition" json:"condition"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
