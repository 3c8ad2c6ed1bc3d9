package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/buildmate/buildmate-api/internal/application/dto"
	"github.com/buildmate/buildmate-api/internal/application/usecase"
)

// InventoryHandler exposes per-distributor stock levels.
type InventoryHandler struct {
	uc *usecase.InventoryUseCase
}

func NewInventoryHandler(uc *usecase.InventoryUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// Upsert sets the caller's stock level for one material. Creates the row on
// first write, overwrites the quantity afterwards.
// PUT /api/inventory/:materialId
func (h *InventoryHandler) Upsert(c *fiber.Ctx) error {
	var req dto.UpdateInventoryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if err := h.uc.Upsert(c.Context(), GetUserID(c), c.Params("materialId"), req.Quantity); err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "inventory updated"})
}

// ListOwn returns the caller's full inventory, including zero-quantity rows.
// GET /api/inventory
func (h *InventoryHandler) ListOwn(c *fiber.Ctx) error {
	items, err := h.uc.ListOwn(c.Context(), GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(items)
}

// ListStocked returns a distributor's in-stock items with current prices,
// for the consumer browsing view.
// GET /api/inventory/distributor/:id
func (h *InventoryHandler) ListStocked(c *fiber.Ctx) error {
	items, err := h.uc.ListStocked(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(items)
}
