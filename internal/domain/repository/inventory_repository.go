package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/buildmate/buildmate-api/internal/domain/entity"
)

// InventoryItem is an inventory row joined with its material fields.
type InventoryItem struct {
	ID            string
	DistributorID string
	MaterialID    string
	Quantity      decimal.Decimal
	LastUpdated   time.Time
	MaterialName  string
	Category      string
	Manufacturer  string
	Grade         string
	Type          string
	Unit          string
}

// StockedItem is an inventory row joined with material fields and the
// distributor's current price for that material (nil when never priced).
type StockedItem struct {
	InventoryItem
	Price         *decimal.Decimal
	EffectiveDate *time.Time
}

// InventoryRepository persistence port for per-distributor stock.
type InventoryRepository interface {
	// Upsert inserts or replaces the quantity for the (distributor, material)
	// pair as a single atomic statement.
	Upsert(ctx context.Context, record *entity.InventoryRecord) error
	// ListByDistributor returns the distributor's own rows joined with
	// material fields, ordered by category, name.
	ListByDistributor(ctx context.Context, distributorID string) ([]InventoryItem, error)
	// ListStocked returns rows with quantity > 0 joined with material fields
	// and the distributor's current price, for the consumer-facing view.
	ListStocked(ctx context.Context, distributorID string) ([]StockedItem, error)
}
