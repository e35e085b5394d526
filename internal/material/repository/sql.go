package repository

import (
	"context"
	"database/sql"
	"errors"

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

func (r *SQLRepository) FindByID(ctx context.Context, id string) (*model.Material, error) {
	q := database.Conn(ctx, r.DB)

	var m model.Material
	query := q.Rebind(`
        SELECT id, designation, material_type, material_condition, created_at, updated_at
        FROM materials WHERE id = ?`)
	err := q.GetContext(ctx, &m, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &m, nil
}

func (r *SQLRepository) Upsert(ctx context.Context, m *model.Material) error {
	query := `
        INSERT INTO materials (id, designation, material_type, material_condition, created_at, updated_at)
        VALUES (:id, :designation, :material_type, :material_condition, :created_at, :updated_at)
        ON CONFLICT (id) DO UPDATE SET
            designation = EXCLUDED.designation,
            material_type = EXCLUDED.material_type,
            material_condition = EXCLUDED.material_condition,
            updated_at = EXCLUDED.updated_at
    `
	// Identity and created_at are immutable once a material is known.
	_, err := database.Conn(ctx, r.DB).NamedExecContext(ctx, query, m)
	return err
}
