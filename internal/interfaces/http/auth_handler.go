package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/buildmate/buildmate-api/internal/application/auth"
	"github.com/buildmate/buildmate-api/internal/application/dto"
	"github.com/buildmate/buildmate-api/pkg/validate"
)

// AuthHandler exposes registration and login.
type AuthHandler struct {
	uc *auth.UseCase
}

func NewAuthHandler(uc *auth.UseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register creates an account and returns the created user.
// POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}
	user, err := h.uc.Register(c.Context(), req)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Login verifies credentials and returns a signed token plus the profile.
// POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}
	resp, err := h.uc.Login(c.Context(), req)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(resp)
}
