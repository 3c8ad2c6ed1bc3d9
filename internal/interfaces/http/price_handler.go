package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/buildmate/buildmate-api/internal/application/dto"
	"github.com/buildmate/buildmate-api/internal/application/usecase"
	"github.com/buildmate/buildmate-api/pkg/validate"
)

// PriceHandler exposes the append-only price ledger and its derived views.
type PriceHandler struct {
	uc     *usecase.PriceUseCase
	export *usecase.PriceExportUseCase
}

func NewPriceHandler(uc *usecase.PriceUseCase, export *usecase.PriceExportUseCase) *PriceHandler {
	return &PriceHandler{uc: uc, export: export}
}

// Set appends a price record for the caller. Earlier records for the same
// material are never modified.
// POST /api/prices
func (h *PriceHandler) Set(c *fiber.Ctx) error {
	var req dto.SetPriceRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}
	created, err := h.uc.SetPrice(c.Context(), GetUserID(c), req)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// MyPrices returns the caller's current price list with stock levels.
// GET /api/prices/my-prices
func (h *PriceHandler) MyPrices(c *fiber.Ctx) error {
	items, err := h.uc.MyPrices(c.Context(), GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(items)
}

// All returns current prices across every distributor, for market comparison.
// GET /api/prices/all
func (h *PriceHandler) All(c *fiber.Ctx) error {
	items, err := h.uc.AllCurrent(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(items)
}

// ByDistributor returns one distributor's current price list.
// GET /api/prices/distributor/:id
func (h *PriceHandler) ByDistributor(c *fiber.Ctx) error {
	items, err := h.uc.CurrentByDistributor(c.Context(), c.Params("id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(items)
}

// History returns every recorded price for one of the caller's materials,
// newest first.
// GET /api/prices/history/:materialId
func (h *PriceHandler) History(c *fiber.Ctx) error {
	items, err := h.uc.History(c.Context(), GetUserID(c), c.Params("materialId"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(items)
}

// Export renders the caller's current price list as a downloadable PDF.
// GET /api/prices/export
func (h *PriceHandler) Export(c *fiber.Ctx) error {
	pdfBytes, err := h.export.Export(c.Context(), GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	filename := fmt.Sprintf("price-list-%s.pdf", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(pdfBytes)
}
