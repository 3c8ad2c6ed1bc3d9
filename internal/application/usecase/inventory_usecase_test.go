package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildmate/buildmate-api/internal/application/usecase"
	"github.com/buildmate/buildmate-api/internal/domain"
	"github.com/buildmate/buildmate-api/internal/domain/entity"
	"github.com/buildmate/buildmate-api/internal/domain/repository"
)

// fakeInventoryRepo keyed by (distributor, material), mirroring the unique
// constraint the real table enforces.
type fakeInventoryRepo struct {
	rows map[string]*entity.InventoryRecord
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{rows: make(map[string]*entity.InventoryRecord)}
}

func (f *fakeInventoryRepo) Upsert(_ context.Context, record *entity.InventoryRecord) error {
	key := record.DistributorID + "/" + record.MaterialID
	if existing, ok := f.rows[key]; ok {
		existing.Quantity = record.Quantity
		existing.LastUpdated = record.LastUpdated
		return nil
	}
	cp := *record
	f.rows[key] = &cp
	return nil
}

func (f *fakeInventoryRepo) ListByDistributor(_ context.Context, distributorID string) ([]repository.InventoryItem, error) {
	var out []repository.InventoryItem
	for _, r := range f.rows {
		if r.DistributorID == distributorID {
			out = append(out, repository.InventoryItem{
				ID:            r.ID,
				DistributorID: r.DistributorID,
				MaterialID:    r.MaterialID,
				Quantity:      r.Quantity,
				LastUpdated:   r.LastUpdated,
			})
		}
	}
	return out, nil
}

func (f *fakeInventoryRepo) ListStocked(_ context.Context, distributorID string) ([]repository.StockedItem, error) {
	items, _ := f.ListByDistributor(nil, distributorID)
	var out []repository.StockedItem
	for _, it := range items {
		if it.Quantity.IsPositive() {
			out = append(out, repository.StockedItem{InventoryItem: it})
		}
	}
	return out, nil
}

func TestInventoryUpsert_CreatesThenOverwrites(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc := usecase.NewInventoryUseCase(repo)
	ctx := context.Background()

	require.NoError(t, uc.Upsert(ctx, distributorID, cementID, decimal.NewFromInt(120)))
	require.NoError(t, uc.Upsert(ctx, distributorID, cementID, decimal.NewFromInt(80)))

	items, err := uc.ListOwn(ctx, distributorID)
	require.NoError(t, err)
	require.Len(t, items, 1, "one row per (distributor, material) pair")
	assert.True(t, items[0].Quantity.Equal(decimal.NewFromInt(80)),
		"second write overwrites the quantity")
}

func TestInventoryUpsert_RejectsNegative(t *testing.T) {
	uc := usecase.NewInventoryUseCase(newFakeInventoryRepo())

	err := uc.Upsert(context.Background(), distributorID, cementID, decimal.NewFromInt(-5))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Zero quantity stays listed in the owner's view but drops off the stocked view.
func TestInventory_ZeroQuantityHiddenFromStockedView(t *testing.T) {
	repo := newFakeInventoryRepo()
	uc := usecase.NewInventoryUseCase(repo)
	ctx := context.Background()

	require.NoError(t, uc.Upsert(ctx, distributorID, cementID, decimal.Zero))

	own, err := uc.ListOwn(ctx, distributorID)
	require.NoError(t, err)
	assert.Len(t, own, 1)

	stocked, err := uc.ListStocked(ctx, distributorID)
	require.NoError(t, err)
	assert.Empty(t, stocked)
}
