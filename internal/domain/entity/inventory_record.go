package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRecord is the quantity a distributor has on hand for one material.
// At most one record exists per (distributor, material) pair; writes go through
// an atomic upsert keyed on that pair.
type InventoryRecord struct {
	ID            string
	DistributorID string
	MaterialID    string
	Quantity      decimal.Decimal
	LastUpdated   time.Time
}
