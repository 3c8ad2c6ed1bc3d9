package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// UpdateInventoryRequest body for PUT /api/inventory/:materialId.
type UpdateInventoryRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}

// InventoryItemResponse an inventory row joined with material fields.
type InventoryItemResponse struct {
	ID            string          `json:"id"`
	DistributorID string          `json:"distributor_id"`
	MaterialID    string          `json:"material_id"`
	Quantity      decimal.Decimal `json:"quantity"`
	LastUpdated   time.Time       `json:"last_updated"`
	MaterialName  string          `json:"material_name"`
	Category      string          `json:"category"`
	Manufacturer  string          `json:"manufacturer"`
	Grade         string          `json:"grade,omitempty"`
	Type          string          `json:"type,omitempty"`
	Unit          string          `json:"unit"`
}

// StockedItemResponse adds the distributor's current price for the
// consumer-facing distributor view. Price is null when never priced.
type StockedItemResponse struct {
	InventoryItemResponse
	Price         *decimal.Decimal `json:"price"`
	EffectiveDate *string          `json:"effective_date"`
}
