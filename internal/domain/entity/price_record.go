package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceRecord is one append-only price fact. Rows are never updated or deleted;
// the current price of a (distributor, material) pair is the row with the
// maximum effective date, ties broken by latest created_at then highest id.
type PriceRecord struct {
	ID            string
	DistributorID string
	MaterialID    string
	Price         decimal.Decimal
	EffectiveDate time.Time // date precision
	CreatedAt     time.Time
}
