package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/buildmate/buildmate-api/internal/domain/entity"
)

// PriceItem is a current-price row joined with its material fields.
type PriceItem struct {
	ID            string
	DistributorID string
	MaterialID    string
	Price         decimal.Decimal
	EffectiveDate time.Time
	MaterialName  string
	Category      string
	Manufacturer  string
	Grade         string
	Type          string
	Unit          string
}

// OwnPriceItem adds the distributor's stock on hand for the material
// (nil when the material has no inventory row).
type OwnPriceItem struct {
	PriceItem
	Quantity *decimal.Decimal
}

// MarketPriceItem adds the distributor's public profile for the
// consumer-facing price comparison.
type MarketPriceItem struct {
	PriceItem
	DistributorName    string
	DistributorAddress string
	DistributorPhone   string
}

// PriceRepository persistence port for the append-only price ledger.
// There is no update or delete: setting a price is always an insert, and the
// current price is derived as the row with the maximum effective date per
// (distributor, material) pair — ties broken by latest created_at, then id.
type PriceRepository interface {
	Insert(ctx context.Context, record *entity.PriceRecord) error
	// CurrentByDistributor returns one current price per material for the
	// distributor, ordered by category, name.
	CurrentByDistributor(ctx context.Context, distributorID string) ([]PriceItem, error)
	// CurrentWithInventory is CurrentByDistributor joined with the
	// distributor's own stock quantities.
	CurrentWithInventory(ctx context.Context, distributorID string) ([]OwnPriceItem, error)
	// CurrentAll returns every distributor's current price per material,
	// ordered by category, name, price.
	CurrentAll(ctx context.Context) ([]MarketPriceItem, error)
	// History returns every price row for the pair, newest effective date first.
	History(ctx context.Context, distributorID, materialID string) ([]*entity.PriceRecord, error)
}
