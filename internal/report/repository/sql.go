package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/pkg/database"
	"github.com/jmoiron/sqlx"
)

type SQLRepository struct {
	DB *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

const dashboardQuery = `
    SELECT
        (SELECT count(*) FROM materials) AS materials,
        (SELECT CAST(COALESCE(SUM(quantity_stock), 0) AS BIGINT) FROM stock_records) AS stock_units,
        (SELECT CAST(COALESCE(SUM(quantity_reserved), 0) AS BIGINT) FROM stock_records) AS reserved_units,
        (SELECT CAST(COALESCE(SUM(quantity_stock - quantity_reserved), 0) AS BIGINT) FROM stock_records) AS available_units,
        (SELECT count(*) FROM stock_records
            WHERE alert_threshold > 0 AND quantity_stock - quantity_reserved <= alert_threshold) AS low_stock,
        (SELECT count(*) FROM attributions
            WHERE status = 'IN_POSSESSION' AND (due_date IS NULL OR due_date >= ?)) AS attributions_in_possession,
        (SELECT count(*) FROM attributions
            WHERE status = 'IN_POSSESSION' AND due_date IS NOT NULL AND due_date < ?) AS attributions_overdue,
        (SELECT count(*) FROM attributions WHERE status = 'RETURNED') AS attributions_returned,
        (SELECT count(*) FROM repair_tickets WHERE status = 'REPORTED') AS tickets_reported,
        (SELECT count(*) FROM repair_tickets WHERE status = 'IN_PROGRESS') AS tickets_in_progress,
        (SELECT count(*) FROM repair_tickets WHERE status = 'RESOLVED') AS tickets_resolved,
        (SELECT count(*) FROM repair_tickets WHERE status = 'IRREPARABLE') AS tickets_irreparable
`

func (r *SQLRepository) Dashboard(ctx context.Context, now time.Time) (*model.DashboardStats, error) {
	q := database.Conn(ctx, r.DB)

	var stats model.DashboardStats
	if err := q.GetContext(ctx, &stats, q.Rebind(dashboardQuery), now, now); err != nil {
		return nil, fmt.Errorf("failed to load dashboard: %w", err)
	}
	stats.GeneratedAt = now
	return &stats, nil
}
