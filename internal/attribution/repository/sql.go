package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/omnipos-ledger-service/internal/attribution/dto"
	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/pkg/database"
	"github.com/jmoiron/sqlx"
)

const attributionColumns = `id, material_id, requester_id, request_line_id, quantity_attributed,
    date_attributed, due_date, status, returned_at, created_by, updated_at`

type SQLRepository struct {
	DB *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) Create(ctx context.Context, a *model.Attribution) error {
	query := `
        INSERT INTO attributions (
            id, material_id, requester_id, request_line_id, quantity_attributed,
            date_attributed, due_date, status, returned_at, created_by, updated_at
        )
        VALUES (
            :id, :material_id, :requester_id, :request_line_id, :quantity_attributed,
            :date_attributed, :due_date, :status, :returned_at, :created_by, :updated_at
        )
    `
	if _, err := database.Conn(ctx, r.DB).NamedExecContext(ctx, query, a); err != nil {
		return fmt.Errorf("failed to create attribution: %w", err)
	}
	return nil
}

func (r *SQLRepository) FindByID(ctx context.Context, id string) (*model.Attribution, error) {
	q := database.Conn(ctx, r.DB)

	var a model.Attribution
	err := q.GetContext(ctx, &a, q.Rebind("SELECT "+attributionColumns+" FROM attributions WHERE id = ?"), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *SQLRepository) FindAll(ctx context.Context, f *dto.AttributionFilters, now time.Time) ([]model.Attribution, int, error) {
	q := database.Conn(ctx, r.DB)

	conditions := []string{}
	args := []interface{}{}

	if f.MaterialID != "" {
		conditions = append(conditions, "material_id = ?")
		args = append(args, f.MaterialID)
	}
	if f.RequesterID != "" {
		conditions = append(conditions, "requester_id = ?")
		args = append(args, f.RequesterID)
	}
	switch f.Status {
	case model.AttributionReturned:
		conditions = append(conditions, "status = ?")
		args = append(args, string(model.AttributionReturned))
	case model.AttributionInPossession:
		conditions = append(conditions, "status = ? AND (due_date IS NULL OR due_date >= ?)")
		args = append(args, string(model.AttributionInPossession), now)
	case model.AttributionOverdue:
		conditions = append(conditions, "status = ? AND due_date IS NOT NULL AND due_date < ?")
		args = append(args, string(model.AttributionInPossession), now)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var count int
	if err := q.GetContext(ctx, &count, q.Rebind("SELECT count(*) FROM attributions"+whereClause), args...); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + attributionColumns + " FROM attributions" + whereClause + " ORDER BY date_attributed DESC, id DESC"
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, (page-1)*f.PageSize)
	}

	var items []model.Attribution
	if err := q.SelectContext(ctx, &items, q.Rebind(query), args...); err != nil {
		return nil, 0, err
	}
	return items, count, nil
}

func (r *SQLRepository) MarkReturned(ctx context.Context, id string, at time.Time) (bool, error) {
	q := database.Conn(ctx, r.DB)
	res, err := q.ExecContext(ctx, q.Rebind(`
        UPDATE attributions
        SET status = ?, returned_at = ?, updated_at = ?
        WHERE id = ? AND status = ?
    `), string(model.AttributionReturned), at, at, id, string(model.AttributionInPossession))
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *SQLRepository) Delete(ctx context.Context, id string) (bool, error) {
	q := database.Conn(ctx, r.DB)
	res, err := q.ExecContext(ctx, q.Rebind(`DELETE FROM attributions WHERE id = ?`), id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
