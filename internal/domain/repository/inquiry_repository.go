package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/buildmate/buildmate-api/internal/domain/entity"
)

// InquiryDetail is an inquiry joined with the counterparty's profile and the
// material fields. For a distributor's received list the counterparty is the
// consumer; for a consumer's sent list it is the distributor.
type InquiryDetail struct {
	ID                  string
	ConsumerID          string
	DistributorID       string
	MaterialID          string
	Quantity            decimal.NullDecimal
	Message             string
	Status              string
	CreatedAt           time.Time
	CounterpartyName    string
	CounterpartyEmail   string
	CounterpartyPhone   string
	CounterpartyAddress string
	MaterialName        string
	Category            string
	Manufacturer        string
	Unit                string
}

// InquiryRepository persistence port for the inquiry workflow.
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *entity.Inquiry) error
	// ListReceived returns inquiries addressed to the distributor, newest first.
	ListReceived(ctx context.Context, distributorID string) ([]InquiryDetail, error)
	// ListSent returns inquiries created by the consumer, newest first.
	ListSent(ctx context.Context, consumerID string) ([]InquiryDetail, error)
	// UpdateStatus changes status only when the inquiry is addressed to the
	// given distributor. Returns rows affected; zero maps to not-found.
	UpdateStatus(ctx context.Context, id, distributorID, status string) (int64, error)
}
