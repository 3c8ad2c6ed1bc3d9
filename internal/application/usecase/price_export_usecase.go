package usecase

import (
	"context"

	"github.com/buildmate/buildmate-api/internal/domain"
	"github.com/buildmate/buildmate-api/internal/domain/entity"
	"github.com/buildmate/buildmate-api/internal/domain/repository"
)

// PriceListPDFGenerator renders a distributor's current price list as a PDF.
// Implemented by the maroto adapter in infrastructure/pdf.
type PriceListPDFGenerator interface {
	GeneratePriceList(ctx context.Context, distributor *entity.User, items []repository.OwnPriceItem) ([]byte, error)
}

// PriceExportUseCase builds the downloadable price-list document.
type PriceExportUseCase struct {
	prices repository.PriceRepository
	users  repository.UserRepository
	pdf    PriceListPDFGenerator
}

// NewPriceExportUseCase builds the use case.
func NewPriceExportUseCase(prices repository.PriceRepository, users repository.UserRepository, pdf PriceListPDFGenerator) *PriceExportUseCase {
	return &PriceExportUseCase{prices: prices, users: users, pdf: pdf}
}

// Export renders the distributor's current prices (with stock on hand) as a PDF.
func (uc *PriceExportUseCase) Export(ctx context.Context, distributorID string) ([]byte, error) {
	distributor, err := uc.users.GetByID(ctx, distributorID)
	if err != nil {
		return nil, err
	}
	if distributor == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.prices.CurrentWithInventory(ctx, distributorID)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GeneratePriceList(ctx, distributor, items)
}
