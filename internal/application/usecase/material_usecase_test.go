package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildmate/buildmate-api/internal/application/dto"
	"github.com/buildmate/buildmate-api/internal/application/usecase"
	"github.com/buildmate/buildmate-api/internal/domain"
	"github.com/buildmate/buildmate-api/internal/domain/entity"
)

func TestCreateMaterial_DefaultsUnitToPiece(t *testing.T) {
	uc := usecase.NewMaterialUseCase(newFakeMaterialRepo())

	created, err := uc.Create(context.Background(), dto.MaterialRequest{
		Name:         "TMT Bar 8mm",
		Category:     entity.CategorySteel,
		Manufacturer: "TATA Steel",
		Grade:        "Fe 500",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "piece", created.Unit)
}

func TestCreateMaterial_InvalidCategory(t *testing.T) {
	uc := usecase.NewMaterialUseCase(newFakeMaterialRepo())

	_, err := uc.Create(context.Background(), dto.MaterialRequest{
		Name:         "Plywood Sheet",
		Category:     "wood",
		Manufacturer: "Greenply",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetMaterial_Unknown(t *testing.T) {
	uc := usecase.NewMaterialUseCase(newFakeMaterialRepo())

	_, err := uc.GetByID(context.Background(), "30000000-0000-0000-0000-00000000dead")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListMaterials_CategoryFilter(t *testing.T) {
	repo := newFakeMaterialRepo(
		cementMaterial(),
		&entity.Material{ID: "m-steel", Name: "TMT Bar 10mm", Category: entity.CategorySteel, Manufacturer: "TATA Steel", Unit: "kg"},
	)
	uc := usecase.NewMaterialUseCase(repo)
	ctx := context.Background()

	all, err := uc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	steel, err := uc.List(ctx, entity.CategorySteel)
	require.NoError(t, err)
	require.Len(t, steel, 1)
	assert.Equal(t, "TMT Bar 10mm", steel[0].Name)

	_, err = uc.List(ctx, "wood")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGroupedByCategory(t *testing.T) {
	repo := newFakeMaterialRepo(
		cementMaterial(),
		&entity.Material{ID: "m-steel", Name: "TMT Bar 10mm", Category: entity.CategorySteel, Manufacturer: "TATA Steel", Unit: "kg"},
	)
	uc := usecase.NewMaterialUseCase(repo)

	grouped, err := uc.GroupedByCategory(context.Background())
	require.NoError(t, err)
	assert.Len(t, grouped[entity.CategoryCement], 1)
	assert.Len(t, grouped[entity.CategorySteel], 1)
}

func TestUpdateAndDeleteMaterial_Unknown(t *testing.T) {
	uc := usecase.NewMaterialUseCase(newFakeMaterialRepo())
	ctx := context.Background()

	err := uc.Update(ctx, "30000000-0000-0000-0000-00000000dead", dto.MaterialRequest{
		Name:         "OPC 43 Grade",
		Category:     entity.CategoryCement,
		Manufacturer: "ACC",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete(ctx, "30000000-0000-0000-0000-00000000dead")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
