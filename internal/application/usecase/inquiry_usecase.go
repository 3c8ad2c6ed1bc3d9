package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/buildmate/buildmate-api/internal/application/dto"
	"github.com/buildmate/buildmate-api/internal/domain"
	"github.com/buildmate/buildmate-api/internal/domain/entity"
	"github.com/buildmate/buildmate-api/internal/domain/repository"
	"github.com/buildmate/buildmate-api/pkg/logger"
)

// InquiryUseCase consumer-to-distributor inquiry workflow.
type InquiryUseCase struct {
	inquiries     repository.InquiryRepository
	materials     repository.MaterialRepository
	notifications repository.NotificationRepository
	log           *logger.Logger
}

// NewInquiryUseCase builds the use case.
func NewInquiryUseCase(
	inquiries repository.InquiryRepository,
	materials repository.MaterialRepository,
	notifications repository.NotificationRepository,
	log *logger.Logger,
) *InquiryUseCase {
	return &InquiryUseCase{inquiries: inquiries, materials: materials, notifications: notifications, log: log}
}

// Create opens an inquiry in pending status and notifies the addressed
// distributor. A failed notification is logged, never returned.
func (uc *InquiryUseCase) Create(ctx context.Context, consumerID string, in dto.CreateInquiryRequest) (*dto.CreatedResponse, error) {
	if in.DistributorID == "" || in.MaterialID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity != nil && in.Quantity.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	material, err := uc.materials.GetByID(ctx, in.MaterialID)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	inquiry := &entity.Inquiry{
		ID:            uuid.New().String(),
		ConsumerID:    consumerID,
		DistributorID: in.DistributorID,
		MaterialID:    in.MaterialID,
		Message:       in.Message,
		Status:        entity.InquiryPending,
		CreatedAt:     time.Now(),
	}
	if in.Quantity != nil {
		inquiry.Quantity = decimal.NewNullDecimal(*in.Quantity)
	}
	if err := uc.inquiries.Create(ctx, inquiry); err != nil {
		return nil, err
	}

	message := fmt.Sprintf("Inquiry received for %s", material.Name)
	if in.Quantity != nil {
		message = fmt.Sprintf("Inquiry received for %s (%s units)", material.Name, in.Quantity.String())
	}
	notification := &entity.Notification{
		ID:         uuid.New().String(),
		FromUserID: consumerID,
		ToUserID:   in.DistributorID,
		Title:      "New Inquiry",
		Message:    message,
		Type:       entity.NotificationInquiry,
		CreatedAt:  time.Now(),
	}
	if err := uc.notifications.Create(ctx, notification); err != nil {
		uc.log.Error().Err(err).Str("inquiry_id", inquiry.ID).Msg("inquiry notification failed")
	}

	return &dto.CreatedResponse{Message: "Inquiry sent successfully", ID: inquiry.ID}, nil
}

// Received lists inquiries addressed to the distributor, newest first.
func (uc *InquiryUseCase) Received(ctx context.Context, distributorID string) ([]dto.InquiryResponse, error) {
	items, err := uc.inquiries.ListReceived(ctx, distributorID)
	if err != nil {
		return nil, err
	}
	return toInquiryResponses(items), nil
}

// Sent lists inquiries created by the consumer, newest first.
func (uc *InquiryUseCase) Sent(ctx context.Context, consumerID string) ([]dto.InquiryResponse, error) {
	items, err := uc.inquiries.ListSent(ctx, consumerID)
	if err != nil {
		return nil, err
	}
	return toInquiryResponses(items), nil
}

// UpdateStatus moves an inquiry to a new status. Only the addressed
// distributor may do this; a wrong owner sees ErrNotFound and never mutates
// the row.
func (uc *InquiryUseCase) UpdateStatus(ctx context.Context, id, distributorID, status string) error {
	if !entity.ValidInquiryStatus(status) {
		return domain.ErrInvalidInput
	}
	affected, err := uc.inquiries.UpdateStatus(ctx, id, distributorID, status)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func toInquiryResponses(items []repository.InquiryDetail) []dto.InquiryResponse {
	out := make([]dto.InquiryResponse, 0, len(items))
	for _, it := range items {
		resp := dto.InquiryResponse{
			ID:                  it.ID,
			ConsumerID:          it.ConsumerID,
			DistributorID:       it.DistributorID,
			MaterialID:          it.MaterialID,
			Message:             it.Message,
			Status:              it.Status,
			CreatedAt:           it.CreatedAt,
			CounterpartyName:    it.CounterpartyName,
			CounterpartyEmail:   it.CounterpartyEmail,
			CounterpartyPhone:   it.CounterpartyPhone,
			CounterpartyAddress: it.CounterpartyAddress,
			MaterialName:        it.MaterialName,
			Category:            it.Category,
			Manufacturer:        it.Manufacturer,
			Unit:                it.Unit,
		}
		if it.Quantity.Valid {
			q := it.Quantity.Decimal
			resp.Quantity = &q
		}
		out = append(out, resp)
	}
	return out
}
