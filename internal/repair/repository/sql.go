package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/internal/repair/dto"
	"github.com/fekuna/omnipos-ledger-service/pkg/database"
	"github.com/jmoiron/sqlx"
)

const ticketColumns = `id, material_id, requester_id, description, status, date_reported, updated_at, closed_at`

type SQLRepository struct {
	DB *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) Create(ctx context.Context, t *model.RepairTicket) error {
	query := `
        INSERT INTO repair_tickets (id, material_id, requester_id, description, status, date_reported, updated_at, closed_at)
        VALUES (:id, :material_id, :requester_id, :description, :status, :date_reported, :updated_at, :closed_at)
    `
	if _, err := database.Conn(ctx, r.DB).NamedExecContext(ctx, query, t); err != nil {
		return fmt.Errorf("failed to create repair ticket: %w", err)
	}
	return nil
}

func (r *SQLRepository) FindByID(ctx context.Context, id string) (*model.RepairTicket, error) {
	q := database.Conn(ctx, r.DB)

	var t model.RepairTicket
	err := q.GetContext(ctx, &t, q.Rebind("SELECT "+ticketColumns+" FROM repair_tickets WHERE id = ?"), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *SQLRepository) FindAll(ctx context.Context, f *dto.TicketFilters) ([]model.RepairTicket, int, error) {
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
	if f.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, string(f.Status))
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var count int
	if err := q.GetContext(ctx, &count, q.Rebind("SELECT count(*) FROM repair_tickets"+whereClause), args...); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + ticketColumns + " FROM repair_tickets" + whereClause + " ORDER BY date_reported DESC, id DESC"
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, (page-1)*f.PageSize)
	}

	var items []model.RepairTicket
	if err := q.SelectContext(ctx, &items, q.Rebind(query), args...); err != nil {
		return nil, 0, err
	}
	return items, count, nil
}

func (r *SQLRepository) Transition(ctx context.Context, id string, from []model.RepairStatus, to model.RepairStatus, at time.Time, closedAt *time.Time) (bool, error) {
	if len(from) == 0 {
		return false, nil
	}

	states := make([]string, len(from))
	for i, st := range from {
		states[i] = string(st)
	}

	q := database.Conn(ctx, r.DB)
	query, args, err := sqlx.In(`
        UPDATE repair_tickets
        SET status = ?, updated_at = ?, closed_at = ?
        WHERE id = ? AND status IN (?)
    `, string(to), at, closedAt, id, states)
	if err != nil {
		return false, err
	}

	res, err := q.ExecContext(ctx, q.Rebind(query), args...)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}
