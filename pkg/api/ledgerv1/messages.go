// Package ledgerv1 defines the ledger's gRPC services and their messages.
// Messages travel as JSON (content-subtype "json"), so they are plain
// structs with json tags.
package ledgerv1

import "time"

type Empty struct{}

// Stock

type StockEntry struct {
	MaterialID        string    `json:"material_id"`
	QuantityStock     int64     `json:"quantity_stock"`
	QuantityReserved  int64     `json:"quantity_reserved"`
	QuantityAvailable int64     `json:"quantity_available"`
	AlertThreshold    int64     `json:"alert_threshold"`
	Location          string    `json:"location"`
	LowStock          bool      `json:"low_stock"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type AdjustStockRequest struct {
	MaterialID    string `json:"material_id"`
	Delta         int64  `json:"delta"`
	MovementType  string `json:"movement_type,omitempty"`
	Reason        string `json:"reason"`
	ReferenceType string `json:"reference_type,omitempty"`
	ReferenceID   string `json:"reference_id,omitempty"`
}

type ReserveStockRequest struct {
	MaterialID    string `json:"material_id"`
	Quantity      int64  `json:"quantity"`
	Reason        string `json:"reason,omitempty"`
	ReferenceType string `json:"reference_type,omitempty"`
	ReferenceID   string `json:"reference_id,omitempty"`
}

type ReleaseStockRequest struct {
	MaterialID    string `json:"material_id"`
	Quantity      int64  `json:"quantity"`
	Reason        string `json:"reason,omitempty"`
	ReferenceType string `json:"reference_type,omitempty"`
	ReferenceID   string `json:"reference_id,omitempty"`
}

type ConfigureStockRequest struct {
	MaterialID     string `json:"material_id"`
	AlertThreshold int64  `json:"alert_threshold"`
	Location       string `json:"location"`
}

type GetStockRequest struct {
	MaterialID string `json:"material_id"`
}

type ListLowStockRequest struct {
	Page     int32 `json:"page"`
	PageSize int32 `json:"page_size"`
}

type ListLowStockResponse struct {
	Items []*StockEntry `json:"items"`
	Total int32         `json:"total"`
}

// Movements

type MovementEntry struct {
	ID            string    `json:"id"`
	MaterialID    string    `json:"material_id"`
	MovementType  string    `json:"movement_type"`
	Quantity      int64     `json:"quantity"`
	StockAfter    int64     `json:"stock_after"`
	ReservedAfter int64     `json:"reserved_after"`
	ReferenceType string    `json:"reference_type"`
	ReferenceID   string    `json:"reference_id"`
	Reason        string    `json:"reason"`
	CreatedBy     string    `json:"created_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type ListMovementsRequest struct {
	MaterialID    string `json:"material_id,omitempty"`
	ReferenceType string `json:"reference_type,omitempty"`
	ReferenceID   string `json:"reference_id,omitempty"`
	// After resumes the list after the movement with this id.
	After string `json:"after,omitempty"`
	Limit int32  `json:"limit,omitempty"`
}

type ListMovementsResponse struct {
	Items []*MovementEntry `json:"items"`
	// NextAfter is set when the page was full.
	NextAfter string `json:"next_after,omitempty"`
}

// Attributions

type AttributionEntry struct {
	ID                 string     `json:"id"`
	MaterialID         string     `json:"material_id"`
	RequesterID        string     `json:"requester_id"`
	RequestLineID      string     `json:"request_line_id,omitempty"`
	QuantityAttributed int64      `json:"quantity_attributed"`
	DateAttributed     time.Time  `json:"date_attributed"`
	DueDate            *time.Time `json:"due_date,omitempty"`
	Status             string     `json:"status"`
	ReturnedAt         *time.Time `json:"returned_at,omitempty"`
	CreatedBy          string     `json:"created_by,omitempty"`
}

type CreateAttributionRequest struct {
	MaterialID    string     `json:"material_id"`
	RequesterID   string     `json:"requester_id"`
	RequestLineID string     `json:"request_line_id,omitempty"`
	Quantity      int64      `json:"quantity"`
	DueDate       *time.Time `json:"due_date,omitempty"`
}

type GetAttributionRequest struct {
	ID string `json:"id"`
}

type ListAttributionsRequest struct {
	MaterialID  string `json:"material_id,omitempty"`
	RequesterID string `json:"requester_id,omitempty"`
	Status      string `json:"status,omitempty"`
	Page        int32  `json:"page"`
	PageSize    int32  `json:"page_size"`
}

type ListAttributionsResponse struct {
	Items []*AttributionEntry `json:"items"`
	Total int32               `json:"total"`
}

type UpdateAttributionStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type DeleteAttributionRequest struct {
	ID string `json:"id"`
}

// Repair tickets

type RepairTicketEntry struct {
	ID           string     `json:"id"`
	MaterialID   string     `json:"material_id"`
	RequesterID  string     `json:"requester_id"`
	Description  string     `json:"description"`
	Status       string     `json:"status"`
	DateReported time.Time  `json:"date_reported"`
	UpdatedAt    time.Time  `json:"updated_at"`
	ClosedAt     *time.Time `json:"closed_at,omitempty"`
}

type CreateRepairTicketRequest struct {
	MaterialID  string `json:"material_id"`
	RequesterID string `json:"requester_id"`
	Description string `json:"description"`
	// Status is ignored; tickets open as REPORTED.
	Status string `json:"status,omitempty"`
}

type GetRepairTicketRequest struct {
	ID string `json:"id"`
}

type ListRepairTicketsRequest struct {
	MaterialID  string `json:"material_id,omitempty"`
	RequesterID string `json:"requester_id,omitempty"`
	Status      string `json:"status,omitempty"`
	Page        int32  `json:"page"`
	PageSize    int32  `json:"page_size"`
}

type ListRepairTicketsResponse struct {
	Items []*RepairTicketEntry `json:"items"`
	Total int32                `json:"total"`
}

type UpdateRepairTicketStatusRequest struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Reports

type GetDashboardRequest struct{}

type DashboardResponse struct {
	Materials                int64     `json:"materials"`
	StockUnits               int64     `json:"stock_units"`
	ReservedUnits            int64     `json:"reserved_units"`
	AvailableUnits           int64     `json:"available_units"`
	LowStock                 int64     `json:"low_stock"`
	AttributionsInPossession int64     `json:"attributions_in_possession"`
	AttributionsOverdue      int64     `json:"attributions_overdue"`
	AttributionsReturned     int64     `json:"attributions_returned"`
	TicketsReported          int64     `json:"tickets_reported"`
	TicketsInProgress        int64     `json:"tickets_in_progress"`
	TicketsResolved          int64     `json:"tickets_resolved"`
	TicketsIrreparable       int64     `json:"tickets_irreparable"`
	GeneratedAt              time.Time `json:"generated_at"`
}
