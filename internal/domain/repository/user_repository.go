package repository

import (
	"context"

	"github.com/buildmate/buildmate-api/internal/domain/entity"
)

// UserRepository persistence port for User.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// UpdateProfile mutates only name, phone and address. Returns the number
	// of rows affected so callers can map zero to not-found.
	UpdateProfile(ctx context.Context, id, name, phone, address string) (int64, error)
	ListDistributors(ctx context.Context) ([]*entity.User, error)
}
