package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/buildmate/buildmate-api/internal/application/dto"
	"github.com/buildmate/buildmate-api/internal/application/usecase"
	"github.com/buildmate/buildmate-api/pkg/validate"
)

// InquiryHandler exposes the consumer-to-distributor inquiry workflow.
type InquiryHandler struct {
	uc *usecase.InquiryUseCase
}

func NewInquiryHandler(uc *usecase.InquiryUseCase) *InquiryHandler {
	return &InquiryHandler{uc: uc}
}

// Create opens a pending inquiry from the caller to a distributor.
// POST /api/inquiries
func (h *InquiryHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateInquiryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}
	created, err := h.uc.Create(c.Context(), GetUserID(c), req)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Received returns inquiries addressed to the calling distributor.
// GET /api/inquiries/received
func (h *InquiryHandler) Received(c *fiber.Ctx) error {
	items, err := h.uc.Received(c.Context(), GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(items)
}

// Sent returns inquiries the calling consumer has opened.
// GET /api/inquiries/sent
func (h *InquiryHandler) Sent(c *fiber.Ctx) error {
	items, err := h.uc.Sent(c.Context(), GetUserID(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(items)
}

// UpdateStatus moves one of the caller's received inquiries to a new status.
// PUT /api/inquiries/:id/status
func (h *InquiryHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateInquiryStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}
	if err := h.uc.UpdateStatus(c.Context(), c.Params("id"), GetUserID(c), req.Status); err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "inquiry updated"})
}
