package dto

type StockFilters struct {
	LowStock bool // available <= alert_threshold, threshold set
	Page     int
	PageSize int
}
