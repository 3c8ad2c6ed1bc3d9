package postgres

import (
	"context"
	"fmt"

	"github.com/buildmate/buildmate-api/internal/domain/entity"
	"github.com/buildmate/buildmate-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implements the InventoryRepository port on PostgreSQL.
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository builds the stock adapter. Pass a pool or tx (Querier).
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// Upsert inserts or replaces the quantity for the (distributor, material)
// pair. The single ON CONFLICT statement leaves no check-then-write window,
// so two concurrent updates can never produce duplicate rows.
func (r *InventoryRepo) Upsert(ctx context.Context, rec *entity.InventoryRecord) error {
	query := `
		INSERT INTO inventory (id, distributor_id, material_id, quantity, last_updated)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (distributor_id, material_id)
		DO UPDATE SET quantity = EXCLUDED.quantity, last_updated = now()`
	_, err := r.q.Exec(ctx, query, rec.ID, rec.DistributorID, rec.MaterialID, rec.Quantity)
	if err != nil {
		return fmt.Errorf("upsert inventory: %w", err)
	}
	return nil
}

// ListByDistributor returns the distributor's rows joined with material fields.
func (r *InventoryRepo) ListByDistributor(ctx context.Context, distributorID string) ([]repository.InventoryItem, error) {
	query := `
		SELECT i.id, i.distributor_id, i.material_id, i.quantity, i.last_updated,
		       m.name, m.category, m.manufacturer, COALESCE(m.grade, ''), COALESCE(m.type, ''), m.unit
		FROM inventory i
		JOIN materials m ON m.id = i.material_id
		WHERE i.distributor_id = $1
		ORDER BY m.category, m.name`
	rows, err := r.q.Query(ctx, query, distributorID)
	if err != nil {
		return nil, fmt.Errorf("list inventory: %w", err)
	}
	defer rows.Close()

	var list []repository.InventoryItem
	for rows.Next() {
		var it repository.InventoryItem
		if err := rows.Scan(
			&it.ID, &it.DistributorID, &it.MaterialID, &it.Quantity, &it.LastUpdated,
			&it.MaterialName, &it.Category, &it.Manufacturer, &it.Grade, &it.Type, &it.Unit,
		); err != nil {
			return nil, fmt.Errorf("scan inventory: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// ListStocked returns in-stock rows joined with material fields and the
// distributor's current price. The lateral subquery picks the row with the
// maximum effective date per material, ties broken by latest created_at then
// highest id, so the result is deterministic for a given dataset.
func (r *InventoryRepo) ListStocked(ctx context.Context, distributorID string) ([]repository.StockedItem, error) {
	query := `
		SELECT i.id, i.distributor_id, i.material_id, i.quantity, i.last_updated,
		       m.name, m.category, m.manufacturer, COALESCE(m.grade, ''), COALESCE(m.type, ''), m.unit,
		       p.price, p.effective_date
		FROM inventory i
		JOIN materials m ON m.id = i.material_id
		LEFT JOIN LATERAL (
			SELECT price, effective_date
			FROM prices
			WHERE distributor_id = i.distributor_id AND material_id = i.material_id
			ORDER BY effective_date DESC, created_at DESC, id DESC
			LIMIT 1
		) p ON TRUE
		WHERE i.distributor_id = $1 AND i.quantity > 0
		ORDER BY m.category, m.name`
	rows, err := r.q.Query(ctx, query, distributorID)
	if err != nil {
		return nil, fmt.Errorf("list stocked inventory: %w", err)
	}
	defer rows.Close()

	var list []repository.StockedItem
	for rows.Next() {
		var it repository.StockedItem
		if err := rows.Scan(
			&it.ID, &it.DistributorID, &it.MaterialID, &it.Quantity, &it.LastUpdated,
			&it.MaterialName, &it.Category, &it.Manufacturer, &it.Grade, &it.Type, &it.Unit,
			&it.Price, &it.EffectiveDate,
		); err != nil {
			return nil, fmt.Errorf("scan stocked inventory: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}
