package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/buildmate/buildmate-api/internal/application/dto"
	"github.com/buildmate/buildmate-api/internal/application/usecase"
	"github.com/buildmate/buildmate-api/pkg/validate"
)

// NotificationHandler exposes personal and role-broadcast notifications.
type NotificationHandler struct {
	uc *usecase.NotificationUseCase
}

func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// Send addresses a notification to one user or broadcasts it to a role.
// POST /api/notifications
func (h *NotificationHandler) Send(c *fiber.Ctx) error {
	var req dto.SendNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid JSON body")
	}
	if err := validate.Struct(req); err != nil {
		return badRequest(c, err.Error())
	}
	created, err := h.uc.Send(c.Context(), GetUserID(c), req)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// List returns the caller's notifications, newest first.
// GET /api/notifications
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context(), GetUserID(c), GetRole(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(items)
}

// UnreadCount returns how many of the caller's notifications are unread.
// GET /api/notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	count, err := h.uc.UnreadCount(c.Context(), GetUserID(c), GetRole(c))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(dto.UnreadCountResponse{Count: count})
}

// MarkRead marks a single notification of the caller as read.
// PUT /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.uc.MarkRead(c.Context(), c.Params("id"), GetUserID(c), GetRole(c)); err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "notification marked as read"})
}

// MarkAllRead marks every notification of the caller as read.
// PUT /api/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	if err := h.uc.MarkAllRead(c.Context(), GetUserID(c), GetRole(c)); err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "all notifications marked as read"})
}

// Delete removes one of the caller's notifications.
// DELETE /api/notifications/:id
func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id"), GetUserID(c), GetRole(c)); err != nil {
		return domainError(c, err)
	}
	return c.JSON(fiber.Map{"message": "notification deleted"})
}
