package postgres

import (
	"context"
	"fmt"

	"github.com/buildmate/buildmate-api/internal/domain/entity"
	"github.com/buildmate/buildmate-api/internal/domain/repository"
)

var _ repository.PriceRepository = (*PriceRepo)(nil)

// PriceRepo implements the PriceRepository port on PostgreSQL. The table is
// append-only: no method updates or deletes rows.
type PriceRepo struct {
	q Querier
}

// NewPriceRepository builds the price-ledger adapter. Pass a pool or tx (Querier).
func NewPriceRepository(q Querier) *PriceRepo {
	return &PriceRepo{q: q}
}

// Insert appends one price fact.
func (r *PriceRepo) Insert(ctx context.Context, rec *entity.PriceRecord) error {
	query := `
		INSERT INTO prices (id, distributor_id, material_id, price, effective_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		rec.ID, rec.DistributorID, rec.MaterialID, rec.Price, rec.EffectiveDate, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert price: %w", err)
	}
	return nil
}

// currentPrices derives one current row per (distributor, material) pair:
// DISTINCT ON keeps the first row of each pair under the ordering
// effective_date DESC, created_at DESC, id DESC — the documented tie-break.
const currentPrices = `
	SELECT DISTINCT ON (distributor_id, material_id)
	       id, distributor_id, material_id, price, effective_date
	FROM prices
	ORDER BY distributor_id, material_id, effective_date DESC, created_at DESC, id DESC`

// CurrentByDistributor returns the distributor's current price per material,
// joined with material fields, ordered by category, name.
func (r *PriceRepo) CurrentByDistributor(ctx context.Context, distributorID string) ([]repository.PriceItem, error) {
	query := `
		SELECT p.id, p.distributor_id, p.material_id, p.price, p.effective_date,
		       m.name, m.category, m.manufacturer, COALESCE(m.grade, ''), COALESCE(m.type, ''), m.unit
		FROM (` + currentPrices + `) p
		JOIN materials m ON m.id = p.material_id
		WHERE p.distributor_id = $1
		ORDER BY m.category, m.name`
	rows, err := r.q.Query(ctx, query, distributorID)
	if err != nil {
		return nil, fmt.Errorf("current prices by distributor: %w", err)
	}
	defer rows.Close()

	var list []repository.PriceItem
	for rows.Next() {
		var it repository.PriceItem
		if err := scanPriceItem(rows, &it); err != nil {
			return nil, err
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// CurrentWithInventory returns the distributor's current prices LEFT JOINed
// with their own stock quantities.
func (r *PriceRepo) CurrentWithInventory(ctx context.Context, distributorID string) ([]repository.OwnPriceItem, error) {
	query := `
		SELECT p.id, p.distributor_id, p.material_id, p.price, p.effective_date,
		       m.name, m.category, m.manufacturer, COALESCE(m.grade, ''), COALESCE(m.type, ''), m.unit,
		       i.quantity
		FROM (` + currentPrices + `) p
		JOIN materials m ON m.id = p.material_id
		LEFT JOIN inventory i ON i.material_id = p.material_id AND i.distributor_id = p.distributor_id
		WHERE p.distributor_id = $1
		ORDER BY m.category, m.name`
	rows, err := r.q.Query(ctx, query, distributorID)
	if err != nil {
		return nil, fmt.Errorf("current prices with inventory: %w", err)
	}
	defer rows.Close()

	var list []repository.OwnPriceItem
	for rows.Next() {
		var it repository.OwnPriceItem
		if err := rows.Scan(
			&it.ID, &it.DistributorID, &it.MaterialID, &it.Price, &it.EffectiveDate,
			&it.MaterialName, &it.Category, &it.Manufacturer, &it.Grade, &it.Type, &it.Unit,
			&it.Quantity,
		); err != nil {
			return nil, fmt.Errorf("scan own price: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// CurrentAll returns every distributor's current price per material, joined
// with the distributor's public profile, ordered by category, name, price.
func (r *PriceRepo) CurrentAll(ctx context.Context) ([]repository.MarketPriceItem, error) {
	query := `
		SELECT p.id, p.distributor_id, p.material_id, p.price, p.effective_date,
		       m.name, m.category, m.manufacturer, COALESCE(m.grade, ''), COALESCE(m.type, ''), m.unit,
		       u.name, COALESCE(u.address, ''), COALESCE(u.phone, '')
		FROM (` + currentPrices + `) p
		JOIN materials m ON m.id = p.material_id
		JOIN users u ON u.id = p.distributor_id
		ORDER BY m.category, m.name, p.price`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("current prices all: %w", err)
	}
	defer rows.Close()

	var list []repository.MarketPriceItem
	for rows.Next() {
		var it repository.MarketPriceItem
		if err := rows.Scan(
			&it.ID, &it.DistributorID, &it.MaterialID, &it.Price, &it.EffectiveDate,
			&it.MaterialName, &it.Category, &it.Manufacturer, &it.Grade, &it.Type, &it.Unit,
			&it.DistributorName, &it.DistributorAddress, &it.DistributorPhone,
		); err != nil {
			return nil, fmt.Errorf("scan market price: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// History returns every price row for the pair, newest first.
func (r *PriceRepo) History(ctx context.Context, distributorID, materialID string) ([]*entity.PriceRecord, error) {
	query := `
		SELECT id, distributor_id, material_id, price, effective_date, created_at
		FROM prices
		WHERE distributor_id = $1 AND material_id = $2
		ORDER BY effective_date DESC, created_at DESC, id DESC`
	rows, err := r.q.Query(ctx, query, distributorID, materialID)
	if err != nil {
		return nil, fmt.Errorf("price history: %w", err)
	}
	defer rows.Close()

	var list []*entity.PriceRecord
	for rows.Next() {
		var rec entity.PriceRecord
		if err := rows.Scan(&rec.ID, &rec.DistributorID, &rec.MaterialID, &rec.Price, &rec.EffectiveDate, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan price record: %w", err)
		}
		list = append(list, &rec)
	}
	return list, rows.Err()
}

type priceItemScanner interface {
	Scan(dest ...any) error
}

func scanPriceItem(row priceItemScanner, it *repository.PriceItem) error {
	if err := row.Scan(
		&it.ID, &it.DistributorID, &it.MaterialID, &it.Price, &it.EffectiveDate,
		&it.MaterialName, &it.Category, &it.Manufacturer, &it.Grade, &it.Type, &it.Unit,
	); err != nil {
		return fmt.Errorf("scan price item: %w", err)
	}
	return nil
}
