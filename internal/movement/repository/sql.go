package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/internal/movement/dto"
	"github.com/fekuna/omnipos-ledger-service/pkg/database"
	"github.com/jmoiron/sqlx"
)

const movementColumns = `id, material_id, movement_type, quantity, stock_after, reserved_after,
    reference_type, reference_id, reason, created_by, created_at`

type SQLRepository struct {
	DB *sqlx.DB
}

func NewSQLRepository(db *sqlx.DB) *SQLRepository {
	return &SQLRepository{DB: db}
}

func (r *SQLRepository) Insert(ctx context.Context, m *model.Movement) error {
	query := `
        INSERT INTO movements (
            id, material_id, movement_type, quantity, stock_after, reserved_after,
            reference_type, reference_id, reason, created_by, created_at
        )
        VALUES (
            :id, :material_id, :movement_type, :quantity, :stock_after, :reserved_after,
            :reference_type, :reference_id, :reason, :created_by, :created_at
        )
    `
	if _, err := database.Conn(ctx, r.DB).NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to log movement: %w", err)
	}
	return nil
}

func (r *SQLRepository) FindByID(ctx context.Context, id string) (*model.Movement, error) {
	q := database.Conn(ctx, r.DB)

	var m model.Movement
	err := q.GetContext(ctx, &m, q.Rebind("SELECT "+movementColumns+" FROM movements WHERE id = ?"), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *SQLRepository) ListPage(ctx context.Context, f *dto.HistoryFilter, after *dto.Cursor, limit int) ([]model.Movement, error) {
	q := database.Conn(ctx, r.DB)

	conditions := []string{}
	args := []interface{}{}

	if f.MaterialID != "" {
		conditions = append(conditions, "material_id = ?")
		args = append(args, f.MaterialID)
	}
	if f.ReferenceType != "" {
		conditions = append(conditions, "reference_type = ?")
		args = append(args, f.ReferenceType)
	}
	if f.ReferenceID != "" {
		conditions = append(conditions, "reference_id = ?")
		args = append(args, f.ReferenceID)
	}
	if after != nil {
		conditions = append(conditions, "(created_at > ? OR (created_at = ? AND id > ?))")
		args = append(args, after.CreatedAt, after.CreatedAt, after.ID)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	query := "SELECT " + movementColumns + " FROM movements" + whereClause +
		" ORDER BY created_at ASC, id ASC" + fmt.Sprintf(" LIMIT %d", limit)

	var items []model.Movement
	if err := q.SelectContext(ctx, &items, q.Rebind(query), args...); err != nil {
		return nil, err
	}
	return items, nil
}
