package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/buildmate/buildmate-api/internal/application/dto"
	"github.com/buildmate/buildmate-api/internal/domain"
	"github.com/buildmate/buildmate-api/internal/domain/entity"
	"github.com/buildmate/buildmate-api/internal/domain/repository"
	"github.com/buildmate/buildmate-api/pkg/logger"
)

// PriceUseCase append-only price ledger plus the derived current-price views.
type PriceUseCase struct {
	prices        repository.PriceRepository
	materials     repository.MaterialRepository
	notifications repository.NotificationRepository
	log           *logger.Logger
}

// NewPriceUseCase builds the use case.
func NewPriceUseCase(
	prices repository.PriceRepository,
	materials repository.MaterialRepository,
	notifications repository.NotificationRepository,
	log *logger.Logger,
) *PriceUseCase {
	return &PriceUseCase{prices: prices, materials: materials, notifications: notifications, log: log}
}

// SetPrice appends a price row; it never updates in place so the full history
// stays queryable. Missing effective date defaults to today (UTC). On success
// it broadcasts a price_update notification to consumers; a failed broadcast
// is logged and does not fail the insert.
func (uc *PriceUseCase) SetPrice(ctx context.Context, distributorID string, in dto.SetPriceRequest) (*dto.CreatedResponse, error) {
	if in.MaterialID == "" || in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	effective := time.Now().UTC().Truncate(24 * time.Hour)
	if in.EffectiveDate != "" {
		d, err := time.Parse("2006-01-02", in.EffectiveDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		effective = d
	}
	material, err := uc.materials.GetByID(ctx, in.MaterialID)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	record := &entity.PriceRecord{
		ID:            uuid.New().String(),
		DistributorID: distributorID,
		MaterialID:    in.MaterialID,
		Price:         in.Price,
		EffectiveDate: effective,
		CreatedAt:     time.Now(),
	}
	if err := uc.prices.Insert(ctx, record); err != nil {
		return nil, err
	}

	notification := &entity.Notification{
		ID:         uuid.New().String(),
		FromUserID: distributorID,
		ToRole:     entity.RoleConsumer,
		Title:      "Price Update",
		Message:    fmt.Sprintf("New price for %s: ₹%s", material.Name, in.Price.String()),
		Type:       entity.NotificationPriceUpdate,
		CreatedAt:  time.Now(),
	}
	if err := uc.notifications.Create(ctx, notification); err != nil {
		uc.log.Error().Err(err).Str("material_id", in.MaterialID).Msg("price update broadcast failed")
	}

	return &dto.CreatedResponse{Message: "Price updated successfully", ID: record.ID}, nil
}

// CurrentByDistributor returns one current price per material for the distributor.
func (uc *PriceUseCase) CurrentByDistributor(ctx context.Context, distributorID string) ([]dto.PriceItemResponse, error) {
	items, err := uc.prices.CurrentByDistributor(ctx, distributorID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PriceItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toPriceItemResponse(it))
	}
	return out, nil
}

// MyPrices returns the distributor's current prices with stock on hand.
func (uc *PriceUseCase) MyPrices(ctx context.Context, distributorID string) ([]dto.OwnPriceItemResponse, error) {
	items, err := uc.prices.CurrentWithInventory(ctx, distributorID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OwnPriceItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.OwnPriceItemResponse{
			PriceItemResponse: toPriceItemResponse(it.PriceItem),
			Quantity:          it.Quantity,
		})
	}
	return out, nil
}

// AllCurrent returns every distributor's current price per material for the
// consumer comparison view, ordered by category, name, price.
func (uc *PriceUseCase) AllCurrent(ctx context.Context) ([]dto.MarketPriceItemResponse, error) {
	items, err := uc.prices.CurrentAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MarketPriceItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.MarketPriceItemResponse{
			PriceItemResponse:  toPriceItemResponse(it.PriceItem),
			DistributorName:    it.DistributorName,
			DistributorAddress: it.DistributorAddress,
			DistributorPhone:   it.DistributorPhone,
		})
	}
	return out, nil
}

// History returns the full price history of the distributor's pair, newest first.
func (uc *PriceUseCase) History(ctx context.Context, distributorID, materialID string) ([]dto.PriceHistoryResponse, error) {
	records, err := uc.prices.History(ctx, distributorID, materialID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PriceHistoryResponse, 0, len(records))
	for _, r := range records {
		out = append(out, dto.PriceHistoryResponse{
			ID:            r.ID,
			Price:         r.Price,
			EffectiveDate: r.EffectiveDate.Format("2006-01-02"),
			CreatedAt:     r.CreatedAt,
		})
	}
	return out, nil
}

func toPriceItemResponse(it repository.PriceItem) dto.PriceItemResponse {
	return dto.PriceItemResponse{
		ID:            it.ID,
		DistributorID: it.DistributorID,
		MaterialID:    it.MaterialID,
		Price:         it.Price,
		EffectiveDate: it.EffectiveDate.Format("2006-01-02"),
		MaterialName:  it.MaterialName,
		Category:      it.Category,
		Manufacturer:  it.Manufacturer,
		Grade:         it.Grade,
		Type:          it.Type,
		Unit:          it.Unit,
	}
}
