package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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

func (r *SQLRepository) FindByID(ctx context.Context, id string) (*model.RequestLine, error) {
	q := database.Conn(ctx, r.DB)

	var line model.RequestLine
	query := q.Rebind(`SELECT id, request_id, material_id, quantity_requested, updated_at FROM request_lines WHERE id = ?`)
	if err := q.GetContext(ctx, &line, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &line, nil
}

func (r *SQLRepository) Upsert(ctx context.Context, line *model.RequestLine) error {
	query := `
        INSERT INTO request_lines (id, request_id, material_id, quantity_requested, updated_at)
        VALUES (:id, :request_id, :material_id, :quantity_requested, :updated_at)
        ON CONFLICT (id) DO UPDATE SET
            request_id = EXCLUDED.request_id,
            material_id = EXCLUDED.material_id,
            quantity_requested = EXCLUDED.quantity_requested,
            updated_at = EXCLUDED.updated_at
    `
	if _, err := database.Conn(ctx, r.DB).NamedExecContext(ctx, query, line); err != nil {
		return fmt.Errorf("failed to upsert request line: %w", err)
	}
	return nil
}

func (r *SQLRepository) FindClaim(ctx context.Context, lineID string) (*model.RequestLineClaim, error) {
	q := database.Conn(ctx, r.DB)

	var claim model.RequestLineClaim
	query := q.Rebind(`SELECT request_line_id, attribution_id, claimed_at FROM request_line_claims WHERE request_line_id = ?`)
	if err := q.GetContext(ctx, &claim, query, lineID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &claim, nil
}

func (r *SQLRepository) InsertClaim(ctx context.Context, claim *model.RequestLineClaim) (bool, error) {
	query := `
        INSERT INTO request_line_claims (request_line_id, attribution_id, claimed_at)
        VALUES (:request_line_id, :attribution_id, :claimed_at)
        ON CONFLICT (request_line_id) DO NOTHING
    `
	res, err := database.Conn(ctx, r.DB).NamedExecContext(ctx, query, claim)
	if err != nil {
		return false, fmt.Errorf("failed to claim request line: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *SQLRepository) DeleteClaim(ctx context.Context, lineID string) error {
	q := database.Conn(ctx, r.DB)
	_, err := q.ExecContext(ctx, q.Rebind(`DELETE FROM request_line_claims WHERE request_line_id = ?`), lineID)
	return err
}
