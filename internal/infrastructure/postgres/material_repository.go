package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/buildmate/buildmate-api/internal/domain/entity"
	"github.com/buildmate/buildmate-api/internal/domain/repository"
)

var _ repository.MaterialRepository = (*MaterialRepo)(nil)

// MaterialRepo implements the MaterialRepository port on PostgreSQL.
type MaterialRepo struct {
	q Querier
}

// NewMaterialRepository builds the catalog adapter. Pass a pool or tx (Querier).
func NewMaterialRepository(q Querier) *MaterialRepo {
	return &MaterialRepo{q: q}
}

const materialColumns = `id, name, category, manufacturer, COALESCE(grade, ''), COALESCE(type, ''), COALESCE(description, ''), unit, created_at`

// Create persists a catalog entry.
func (r *MaterialRepo) Create(ctx context.Context, m *entity.Material) error {
	query := `
		INSERT INTO materials (id, name, category, manufacturer, grade, type, description, unit, created_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), $8, $9)`
	_, err := r.q.Exec(ctx, query,
		m.ID, m.Name, m.Category, m.Manufacturer, m.Grade, m.Type, m.Description, m.Unit, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert material: %w", err)
	}
	return nil
}

// GetByID fetches a catalog entry; nil when absent.
func (r *MaterialRepo) GetByID(ctx context.Context, id string) (*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials WHERE id = $1`
	var m entity.Material
	err := r.q.QueryRow(ctx, query, id).Scan(
		&m.ID, &m.Name, &m.Category, &m.Manufacturer, &m.Grade, &m.Type, &m.Description, &m.Unit, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material: %w", err)
	}
	return &m, nil
}

// List returns materials ordered by category, manufacturer, name; empty
// category means no filter.
func (r *MaterialRepo) List(ctx context.Context, category string) ([]*entity.Material, error) {
	query := `SELECT ` + materialColumns + ` FROM materials`
	var args []any
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY category, manufacturer, name`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	defer rows.Close()
	var list []*entity.Material
	for rows.Next() {
		var m entity.Material
		if err := rows.Scan(&m.ID, &m.Name, &m.Category, &m.Manufacturer, &m.Grade, &m.Type, &m.Description, &m.Unit, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan material: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

// Update replaces the entry's fields. Returns rows affected.
func (r *MaterialRepo) Update(ctx context.Context, m *entity.Material) (int64, error) {
	query := `
		UPDATE materials
		SET name = $2, category = $3, manufacturer = $4, grade = NULLIF($5, ''),
		    type = NULLIF($6, ''), description = NULLIF($7, ''), unit = $8
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		m.ID, m.Name, m.Category, m.Manufacturer, m.Grade, m.Type, m.Description, m.Unit,
	)
	if err != nil {
		return 0, fmt.Errorf("update material: %w", err)
	}
	return tag.RowsAffected(), nil
}

// Delete removes the entry. Returns rows affected.
func (r *MaterialRepo) Delete(ctx context.Context, id string) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM materials WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete material: %w", err)
	}
	return tag.RowsAffected(), nil
}
