package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInquiryRequest body for POST /api/inquiries.
type CreateInquiryRequest struct {
	DistributorID string           `json:"distributorId" validate:"required"`
	MaterialID    string           `json:"materialId" validate:"required"`
	Quantity      *decimal.Decimal `json:"quantity"`
	Message       string           `json:"message" validate:"omitempty,max=2000"`
}

// UpdateInquiryStatusRequest body for PUT /api/inquiries/:id/status.
type UpdateInquiryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending responded closed"`
}

// InquiryResponse an inquiry joined with the counterparty profile and
// material fields. Counterparty fields name the consumer in a distributor's
// received list and the distributor in a consumer's sent list.
type InquiryResponse struct {
	ID                  string           `json:"id"`
	ConsumerID          string           `json:"consumer_id"`
	DistributorID       string           `json:"distributor_id"`
	MaterialID          string           `json:"material_id"`
	Quantity            *decimal.Decimal `json:"quantity"`
	Message             string           `json:"message,omitempty"`
	Status              string           `json:"status"`
	CreatedAt           time.Time        `json:"created_at"`
	CounterpartyName    string           `json:"counterparty_name"`
	CounterpartyEmail   string           `json:"counterparty_email"`
	CounterpartyPhone   string           `json:"counterparty_phone,omitempty"`
	CounterpartyAddress string           `json:"counterparty_address,omitempty"`
	MaterialName        string           `json:"material_name"`
	Category            string           `json:"category"`
	Manufacturer        string           `json:"manufacturer"`
	Unit                string           `json:"unit"`
}
