package postgres

import (
	"context"
	"fmt"

	"github.com/buildmate/buildmate-api/internal/domain/entity"
	"github.com/buildmate/buildmate-api/internal/domain/repository"
)

var _ repository.NotificationRepository = (*NotificationRepo)(nil)

// NotificationRepo implements the NotificationRepository port on PostgreSQL.
// Recipient scoping is always the same predicate: addressed to the user, or a
// role broadcast (to_user_id IS NULL) for the user's role.
type NotificationRepo struct {
	q Querier
}

// NewNotificationRepository builds the notification adapter. Pass a pool or tx (Querier).
func NewNotificationRepository(q Querier) *NotificationRepo {
	return &NotificationRepo{q: q}
}

// Create persists a notification. Empty ToUserID/ToRole are stored as NULL.
func (r *NotificationRepo) Create(ctx context.Context, n *entity.Notification) error {
	query := `
		INSERT INTO notifications (id, from_user_id, to_user_id, to_role, title, message, type, is_read, created_at)
		VALUES ($1, $2, NULLIF($3, '')::uuid, NULLIF($4, ''), $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		n.ID, n.FromUserID, n.ToUserID, n.ToRole, n.Title, n.Message, n.Type, n.IsRead, n.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// ListForRecipient returns the user's notifications (personal + role
// broadcast), joined with the sender's name and role, newest first.
func (r *NotificationRepo) ListForRecipient(ctx context.Context, userID, role string, limit int) ([]repository.NotificationItem, error) {
	query := `
		SELECT n.id, n.from_user_id, COALESCE(n.to_user_id::text, ''), COALESCE(n.to_role, ''),
		       n.title, n.message, n.type, n.is_read, n.created_at,
		       u.name, u.role
		FROM notifications n
		JOIN users u ON u.id = n.from_user_id
		WHERE n.to_user_id = $1 OR (n.to_role = $2 AND n.to_user_id IS NULL)
		ORDER BY n.created_at DESC
		LIMIT $3`
	rows, err := r.q.Query(ctx, query, userID, role, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var list []repository.NotificationItem
	for rows.Next() {
		var it repository.NotificationItem
		if err := rows.Scan(
			&it.ID, &it.FromUserID, &it.ToUserID, &it.ToRole,
			&it.Title, &it.Message, &it.Type, &it.IsRead, &it.CreatedAt,
			&it.FromUserName, &it.FromUserRole,
		); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

// UnreadCount counts the user's unread notifications.
func (r *NotificationRepo) UnreadCount(ctx context.Context, userID, role string) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM notifications
		WHERE (to_user_id = $1 OR (to_role = $2 AND to_user_id IS NULL))
		  AND is_read = FALSE`
	var count int64
	if err := r.q.QueryRow(ctx, query, userID, role).Scan(&count); err != nil {
		return 0, fmt.Errorf("unread count: %w", err)
	}
	return count, nil
}

// MarkRead flips the read flag when the notification is addressed to the
// caller. Returns rows affected.
func (r *NotificationRepo) MarkRead(ctx context.Context, id, userID, role string) (int64, error) {
	query := `
		UPDATE notifications SET is_read = TRUE
		WHERE id = $1 AND (to_user_id = $2 OR (to_role = $3 AND to_user_id IS NULL))`
	tag, err := r.q.Exec(ctx, query, id, userID, role)
	if err != nil {
		return 0, fmt.Errorf("mark notification read: %w", err)
	}
	return tag.RowsAffected(), nil
}

// MarkAllRead flips the read flag on everything addressed to the caller.
func (r *NotificationRepo) MarkAllRead(ctx context.Context, userID, role string) error {
	query := `
		UPDATE notifications SET is_read = TRUE
		WHERE to_user_id = $1 OR (to_role = $2 AND to_user_id IS NULL)`
	if _, err := r.q.Exec(ctx, query, userID, role); err != nil {
		return fmt.Errorf("mark all notifications read: %w", err)
	}
	return nil
}

// Delete removes a notification the caller is addressed by. Returns rows affected.
func (r *NotificationRepo) Delete(ctx context.Context, id, userID, role string) (int64, error) {
	query := `
		DELETE FROM notifications
		WHERE id = $1 AND (to_user_id = $2 OR (to_role = $3 AND to_user_id IS NULL))`
	tag, err := r.q.Exec(ctx, query, id, userID, role)
	if err != nil {
		return 0, fmt.Errorf("delete notification: %w", err)
	}
	return tag.RowsAffected(), nil
}
