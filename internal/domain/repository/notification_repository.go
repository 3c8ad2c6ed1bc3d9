package repository

import (
	"context"

	"github.com/buildmate/buildmate-api/internal/domain/entity"
)

// NotificationItem is a notification joined with the sender's name and role.
type NotificationItem struct {
	entity.Notification
	FromUserName string
	FromUserRole string
}

// NotificationRepository persistence port for the notification fan-out.
// All read and mutate operations are scoped to the recipient: a user sees the
// union of notifications addressed to them personally and to their role.
type NotificationRepository interface {
	Create(ctx context.Context, n *entity.Notification) error
	// ListForRecipient returns notifications addressed to the user or their
	// role, newest first, capped at limit.
	ListForRecipient(ctx context.Context, userID, role string, limit int) ([]NotificationItem, error)
	UnreadCount(ctx context.Context, userID, role string) (int64, error)
	// MarkRead and Delete return rows affected; zero means the notification
	// is absent or not addressed to the caller.
	MarkRead(ctx context.Context, id, userID, role string) (int64, error)
	MarkAllRead(ctx context.Context, userID, role string) error
	Delete(ctx context.Context, id, userID, role string) (int64, error)
}
