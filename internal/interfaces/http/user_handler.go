package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/buildmate/buildmate-api/internal/application/dto"
	"github.com/buildmate/buildmate-api/internal/application/usecase"
	"github.com/buildmate/buildmate-api/pkg/validate"
)

// UserHandler exposes the caller's profile and the distributor directory.
type UserHandler struct {
	uc *usecase.UserUseCase
}

func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Profile returns the caller's own account.
// GET /api/users/profile
func (h *UserHandler) Profile(c *fiber.Ctx) error {
	user, err := h.uc.Profile(c.Context(), GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(user)
}

// UpdateProfile updates the caller's name, phone and address.
// PUT /api/users/profile
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.uc.UpdateProfile(c.Context(), GetUserID(c), req); err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "profile updated"})
}

// Distributors lists every distributor account, for the consumer browse view.
// GET /api/users/distributors
func (h *UserHandler) Distributors(c *fiber.Ctx) error {
	items, err := h.uc.Distributors(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(items)
}
