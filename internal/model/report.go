package model

import "time"

// DashboardStats is computed from current rows on every request.
type DashboardStats struct {
	Materials                int64     `db:"materials" json:"materials"`
	StockUnits               int64     `db:"stock_units" json:"stock_units"`
	ReservedUnits            int64     `db:"reserved_units" json:"reserved_units"`
	AvailableUnits           int64     `db:"available_units" json:"available_units"`
	LowStock                 int64     `db:"low_stock" json:"low_stock"`
	AttributionsInPossession int64     `db:"attributions_in_possession" json:"attributions_in_possession"`
	AttributionsOverdue      int64     `db:"attributions_overdue" json:"attributions_overdue"`
	AttributionsReturned     int64     `db:"attributions_returned" json:"attributions_returned"`
	TicketsReported          int64     `db:"tickets_reported" json:"tickets_reported"`
	TicketsInProgress        int64     `db:"tickets_in_progress" json:"tickets_in_progress"`
	TicketsResolved          int64     `db:"tickets_resolved" json:"tickets_resolved"`
	TicketsIrreparable       int64     `db:"tickets_irreparable" json:"tickets_irreparable"`
	GeneratedAt              time.Time `db:"-" json:"generated_at"`
}

// AlertReport lists what needs attention at GeneratedAt.
type AlertReport struct {
	GeneratedAt time.Time     `json:"generated_at"`
	LowStock    []StockRecord `json:"low_stock"`
	Overdue     []Attribution `json:"overdue"`
}

func (r AlertReport) Empty() bool {
	return len(r.LowStock) == 0 && len(r.Overdue) == 0
}
