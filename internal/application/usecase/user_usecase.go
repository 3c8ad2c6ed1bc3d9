package usecase

import (
	"context"

	"github.com/buildmate/buildmate-api/internal/application/auth"
	"github.com/buildmate/buildmate-api/internal/application/dto"
	"github.com/buildmate/buildmate-api/internal/domain"
	"github.com/buildmate/buildmate-api/internal/domain/repository"
)

// UserUseCase profile reads and updates plus the distributor directory.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase builds the use case.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Profile returns the caller's public profile.
func (uc *UserUseCase) Profile(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return auth.ToUserResponse(user), nil
}

// UpdateProfile mutates name, phone and address only; email and role are
// immutable once registered.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, userID string, in dto.UpdateProfileRequest) error {
	if in.Name == "" {
		return domain.ErrInvalidInput
	}
	affected, err := uc.repo.UpdateProfile(ctx, userID, in.Name, in.Phone, in.Address)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Distributors returns the public distributor directory ordered by name.
func (uc *UserUseCase) Distributors(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.repo.ListDistributors(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *auth.ToUserResponse(u))
	}
	return out, nil
}
