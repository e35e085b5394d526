package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/internal/stock/dto"
	"github.com/fekuna/omnipos-ledger-service/pkg/database"
	"github.com/jmoiron/sqlx"
)

const stockColumns = `material_id, quantity_stock, quantity_reserved, alert_threshold, location, created_at, updated_at`

type SQLRepository struct {
	DB *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) FindByMaterial(ctx context.Context, materialID string) (*model.StockRecord, error) {
	q := database.Conn(ctx, r.DB)

	var rec model.StockRecord
	err := q.GetContext(ctx, &rec, q.Rebind("SELECT "+stockColumns+" FROM stock_records WHERE material_id = ?"), materialID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // caller decides between NotFound and an empty record
		}
		return nil, err
	}
	return &rec, nil
}

func (r *SQLRepository) FindAll(ctx context.Context, f *dto.StockFilters) ([]model.StockRecord, int, error) {
	q := database.Conn(ctx, r.DB)

	conditions := []string{}
	if f.LowStock {
		conditions = append(conditions, "alert_threshold > 0 AND quantity_stock - quantity_reserved <= alert_threshold")
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var count int
	if err := q.GetContext(ctx, &count, "SELECT count(*) FROM stock_records"+whereClause); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + stockColumns + " FROM stock_records" + whereClause +
		" ORDER BY quantity_stock - quantity_reserved ASC, material_id ASC"
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, (page-1)*f.PageSize)
	}

	var items []model.StockRecord
	if err := q.SelectContext(ctx, &items, query); err != nil {
		return nil, 0, err
	}
	return items, count, nil
}

func (r *SQLRepository) Create(ctx context.Context, rec *model.StockRecord) (bool, error) {
	query := `
        INSERT INTO stock_records (material_id, quantity_stock, quantity_reserved, alert_threshold, location, created_at, updated_at)
        VALUES (:material_id, :quantity_stock, :quantity_reserved, :alert_threshold, :location, :created_at, :updated_at)
        ON CONFLICT (material_id) DO NOTHING
    `
	res, err := database.Conn(ctx, r.DB).NamedExecContext(ctx, query, rec)
	if err != nil {
		return false, fmt.Errorf("failed to create stock record: %w", err)
	}
	return affected(res)
}

func (r *SQLRepository) ApplyStockDelta(ctx context.Context, materialID string, delta int64, at time.Time) (bool, error) {
	return r.exec(ctx, `
        UPDATE stock_records
        SET quantity_stock = quantity_stock + ?, updated_at = ?
        WHERE material_id = ? AND quantity_stock + ? >= quantity_reserved
    `, delta, at, materialID, delta)
}

func (r *SQLRepository) ApplyReserve(ctx context.Context, materialID string, quantity int64, at time.Time) (bool, error) {
	return r.exec(ctx, `
        UPDATE stock_records
        SET quantity_reserved = quantity_reserved + ?, updated_at = ?
        WHERE material_id = ? AND quantity_stock - quantity_reserved >= ?
    `, quantity, at, materialID, quantity)
}

func (r *SQLRepository) ApplyRelease(ctx context.Context, materialID string, quantity int64, at time.Time) (bool, error) {
	return r.exec(ctx, `
        UPDATE stock_records
        SET quantity_reserved = quantity_reserved - ?, updated_at = ?
        WHERE material_id = ? AND quantity_reserved >= ?
    `, quantity, at, materialID, quantity)
}

func (r *SQLRepository) UpdateSettings(ctx context.Context, materialID string, alertThreshold int64, location string, at time.Time) (bool, error) {
	return r.exec(ctx, `
        UPDATE stock_records
        SET alert_threshold = ?, location = ?, updated_at = ?
        WHERE material_id = ?
    `, alertThreshold, location, at, materialID)
}

func (r *SQLRepository) exec(ctx context.Context, query string, args ...interface{}) (bool, error) {
	q := database.Conn(ctx, r.DB)
	res, err := q.ExecContext(ctx, q.Rebind(query), args...)
	if err != nil {
		return false, err
	}
	return affected(res)
}

func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
