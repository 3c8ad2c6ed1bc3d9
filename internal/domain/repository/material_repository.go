package repository

import (
	"context"

	"github.com/buildmate/buildmate-api/internal/domain/entity"
)

// MaterialRepository persistence port for the shared catalog.
type MaterialRepository interface {
	Create(ctx context.Context, material *entity.Material) error
	GetByID(ctx context.Context, id string) (*entity.Material, error)
	// List returns materials ordered by category, manufacturer, name.
	// An empty category means no filter.
	List(ctx context.Context, category string) ([]*entity.Material, error)
	// Update and Delete return rows affected; zero means the row is absent.
	Update(ctx context.Context, material *entity.Material) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}
