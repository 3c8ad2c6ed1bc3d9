package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Inquiry statuses. The lifecycle is pending -> responded -> closed (or
// pending -> closed directly). Reopening a closed inquiry is a UI convention,
// not enforced here.
const (
	InquiryPending   = "pending"
	InquiryResponded = "responded"
	InquiryClosed    = "closed"
)

// ValidInquiryStatus reports whether s is one of the closed status set.
func ValidInquiryStatus(s string) bool {
	switch s {
	case InquiryPending, InquiryResponded, InquiryClosed:
		return true
	}
	return false
}

// Inquiry is a consumer's request to a distributor about a material.
// Only the addressed distributor may change its status.
type Inquiry struct {
	ID            string
	ConsumerID    string
	DistributorID string
	MaterialID    string
	Quantity      decimal.NullDecimal
	Message       string
	Status        string
	CreatedAt     time.Time
}
