package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/buildmate/buildmate-api/internal/application/dto"
	"github.com/buildmate/buildmate-api/internal/domain"
	"github.com/buildmate/buildmate-api/internal/domain/entity"
	"github.com/buildmate/buildmate-api/internal/domain/repository"
)

// InventoryUseCase per-distributor stock. The distributor identity always
// comes from the verified token, so a distributor cannot touch another's rows.
type InventoryUseCase struct {
	repo repository.InventoryRepository
}

// NewInventoryUseCase builds the use case.
func NewInventoryUseCase(repo repository.InventoryRepository) *InventoryUseCase {
	return &InventoryUseCase{repo: repo}
}

// Upsert sets the quantity for the (distributor, material) pair as one atomic
// insert-or-update. Negative quantities are rejected.
func (uc *InventoryUseCase) Upsert(ctx context.Context, distributorID, materialID string, quantity decimal.Decimal) error {
	if materialID == "" || quantity.IsNegative() {
		return domain.ErrInvalidInput
	}
	record := &entity.InventoryRecord{
		ID:            uuid.New().String(),
		DistributorID: distributorID,
		MaterialID:    materialID,
		Quantity:      quantity,
		LastUpdated:   time.Now(),
	}
	return uc.repo.Upsert(ctx, record)
}

// ListOwn returns the distributor's inventory joined with material fields.
func (uc *InventoryUseCase) ListOwn(ctx context.Context, distributorID string) ([]dto.InventoryItemResponse, error) {
	items, err := uc.repo.ListByDistributor(ctx, distributorID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, toInventoryItemResponse(it))
	}
	return out, nil
}

// ListStocked returns a distributor's in-stock items with current prices,
// for any authenticated caller.
func (uc *InventoryUseCase) ListStocked(ctx context.Context, distributorID string) ([]dto.StockedItemResponse, error) {
	items, err := uc.repo.ListStocked(ctx, distributorID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockedItemResponse, 0, len(items))
	for _, it := range items {
		resp := dto.StockedItemResponse{
			InventoryItemResponse: toInventoryItemResponse(it.InventoryItem),
			Price:                 it.Price,
		}
		if it.EffectiveDate != nil {
			d := it.EffectiveDate.Format("2006-01-02")
			resp.EffectiveDate = &d
		}
		out = append(out, resp)
	}
	return out, nil
}

func toInventoryItemResponse(it repository.InventoryItem) dto.InventoryItemResponse {
	return dto.InventoryItemResponse{
		ID:            it.ID,
		DistributorID: it.DistributorID,
		MaterialID:    it.MaterialID,
		Quantity:      it.Quantity,
		LastUpdated:   it.LastUpdated,
		MaterialName:  it.MaterialName,
		Category:      it.Category,
		Manufacturer:  it.Manufacturer,
		Grade:         it.Grade,
		Type:          it.Type,
		Unit:          it.Unit,
	}
}
