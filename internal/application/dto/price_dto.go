package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SetPriceRequest body for POST /api/prices. EffectiveDate is YYYY-MM-DD and
// defaults to today when empty. Setting a price is always an insert.
type SetPriceRequest struct {
	MaterialID    string          `json:"materialId" validate:"required"`
	Price         decimal.Decimal `json:"price"`
	EffectiveDate string          `json:"effectiveDate" validate:"omitempty,datetime=2006-01-02"`
}

// PriceItemResponse a current-price row joined with material fields.
type PriceItemResponse struct {
	ID            string          `json:"id"`
	DistributorID string          `json:"distributor_id"`
	MaterialID    string          `json:"material_id"`
	Price         decimal.Decimal `json:"price"`
	EffectiveDate string          `json:"effective_date"`
	MaterialName  string          `json:"material_name"`
	Category      string          `json:"category"`
	Manufacturer  string          `json:"manufacturer"`
	Grade         string          `json:"grade,omitempty"`
	Type          string          `json:"type,omitempty"`
	Unit          string          `json:"unit"`
}

// OwnPriceItemResponse adds stock on hand for the distributor's own listing.
type OwnPriceItemResponse struct {
	PriceItemResponse
	Quantity *decimal.Decimal `json:"quantity"`
}

// MarketPriceItemResponse adds the distributor's public profile for the
// consumer price comparison.
type MarketPriceItemResponse struct {
	PriceItemResponse
	DistributorName    string `json:"distributor_name"`
	DistributorAddress string `json:"distributor_address,omitempty"`
	DistributorPhone   string `json:"distributor_phone,omitempty"`
}

// PriceHistoryResponse one row of a pair's full price history.
type PriceHistoryResponse struct {
	ID            string          `json:"id"`
	Price         decimal.Decimal `json:"price"`
	EffectiveDate string          `json:"effective_date"`
	CreatedAt     time.Time       `json:"created_at"`
}
