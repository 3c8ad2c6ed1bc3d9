package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/buildmate/buildmate-api/internal/application/dto"
	"github.com/buildmate/buildmate-api/internal/application/usecase"
	"github.com/buildmate/buildmate-api/pkg/validate"
)

// MaterialHandler exposes the shared materials catalog.
type MaterialHandler struct {
	uc *usecase.MaterialUseCase
}

func NewMaterialHandler(uc *usecase.MaterialUseCase) *MaterialHandler {
	return &MaterialHandler{uc: uc}
}

// Create adds a material to the catalog.
// POST /api/materials
func (h *MaterialHandler) Create(c *fiber.Ctx) error {
	var req dto.MaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}
	created, err := h.uc.Create(c.Context(), req)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// List returns the catalog, optionally filtered by ?category=.
// GET /api/materials
func (h *MaterialHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context(), c.Query("category"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(items)
}

// Grouped returns the catalog keyed by category.
// GET /api/materials/grouped/categories
func (h *MaterialHandler) Grouped(c *fiber.Ctx) error {
	grouped, err := h.uc.GroupedByCategory(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(grouped)
}

// GetByID returns a single material.
// GET /api/materials/:id
func (h *MaterialHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(item)
}

// Update replaces a material's mutable fields.
// PUT /api/materials/:id
func (h *MaterialHandler) Update(c *fiber.Ctx) error {
	var req dto.MaterialRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.uc.Update(c.Context(), c.Params("id"), req); err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "material updated"})
}

// Delete removes a material from the catalog.
// DELETE /api/materials/:id
func (h *MaterialHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "material deleted"})
}
