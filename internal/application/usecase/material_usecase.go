package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/buildmate/buildmate-api/internal/application/dto"
	"github.com/buildmate/buildmate-api/internal/domain"
	"github.com/buildmate/buildmate-api/internal/domain/entity"
	"github.com/buildmate/buildmate-api/internal/domain/repository"
)

// MaterialUseCase CRUD over the shared catalog.
type MaterialUseCase struct {
	repo repository.MaterialRepository
}

// NewMaterialUseCase builds the use case.
func NewMaterialUseCase(repo repository.MaterialRepository) *MaterialUseCase {
	return &MaterialUseCase{repo: repo}
}

// Create adds a catalog entry. Unit defaults to "piece".
func (uc *MaterialUseCase) Create(ctx context.Context, in dto.MaterialRequest) (*dto.MaterialResponse, error) {
	if in.Name == "" || in.Category == "" || in.Manufacturer == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	unit := in.Unit
	if unit == "" {
		unit = "piece"
	}
	material := &entity.Material{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Category:     in.Category,
		Manufacturer: in.Manufacturer,
		Grade:        in.Grade,
		Type:         in.Type,
		Description:  in.Description,
		Unit:         unit,
		CreatedAt:    time.Now(),
	}
	if err := uc.repo.Create(ctx, material); err != nil {
		return nil, err
	}
	return toMaterialResponse(material), nil
}

// GetByID returns a catalog entry or ErrNotFound.
func (uc *MaterialUseCase) GetByID(ctx context.Context, id string) (*dto.MaterialResponse, error) {
	material, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if material == nil {
		return nil, domain.ErrNotFound
	}
	return toMaterialResponse(material), nil
}

// List returns the catalog, optionally filtered by category.
func (uc *MaterialUseCase) List(ctx context.Context, category string) ([]dto.MaterialResponse, error) {
	if category != "" && !entity.ValidCategory(category) {
		return nil, domain.ErrInvalidInput
	}
	materials, err := uc.repo.List(ctx, category)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MaterialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, *toMaterialResponse(m))
	}
	return out, nil
}

// GroupedByCategory returns the whole catalog keyed by category.
func (uc *MaterialUseCase) GroupedByCategory(ctx context.Context) (map[string][]dto.MaterialResponse, error) {
	materials, err := uc.repo.List(ctx, "")
	if err != nil {
		return nil, err
	}
	grouped := make(map[string][]dto.MaterialResponse)
	for _, m := range materials {
		grouped[m.Category] = append(grouped[m.Category], *toMaterialResponse(m))
	}
	return grouped, nil
}

// Update replaces a catalog entry's fields. ErrNotFound when the row is absent.
func (uc *MaterialUseCase) Update(ctx context.Context, id string, in dto.MaterialRequest) error {
	if in.Name == "" || in.Category == "" || in.Manufacturer == "" {
		return domain.ErrInvalidInput
	}
	if !entity.ValidCategory(in.Category) {
		return domain.ErrInvalidInput
	}
	unit := in.Unit
	if unit == "" {
		unit = "piece"
	}
	material := &entity.Material{
		ID:           id,
		Name:         in.Name,
		Category:     in.Category,
		Manufacturer: in.Manufacturer,
		Grade:        in.Grade,
		Type:         in.Type,
		Description:  in.Description,
		Unit:         unit,
	}
	affected, err := uc.repo.Update(ctx, material)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes a catalog entry. ErrNotFound when the row is absent.
func (uc *MaterialUseCase) Delete(ctx context.Context, id string) error {
	affected, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func toMaterialResponse(m *entity.Material) *dto.MaterialResponse {
	return &dto.MaterialResponse{
		ID:           m.ID,
		Name:         m.Name,
		Category:     m.Category,
		Manufacturer: m.Manufacturer,
		Grade:        m.Grade,
		Type:         m.Type,
		Description:  m.Description,
		Unit:         m.Unit,
		CreatedAt:    m.CreatedAt,
	}
}
