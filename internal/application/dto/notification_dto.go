package dto

import "time"

// SendNotificationRequest body for POST /api/notifications.
// Exactly one of ToUserID or ToRole must be set.
type SendNotificationRequest struct {
	ToUserID string `json:"toUserId"`
	ToRole   string `json:"toRole" validate:"omitempty,oneof=distributor consumer manufacturer"`
	Title    string `json:"title" validate:"required,max=200"`
	Message  string `json:"message" validate:"required,max=2000"`
	Type     string `json:"type" validate:"omitempty,max=50"`
}

// NotificationResponse a notification joined with the sender's name and role.
type NotificationResponse struct {
	ID           string    `json:"id"`
	FromUserID   string    `json:"from_user_id"`
	ToUserID     string    `json:"to_user_id,omitempty"`
	ToRole       string    `json:"to_role,omitempty"`
	Title        string    `json:"title"`
	Message      string    `json:"message"`
	Type         string    `json:"type"`
	IsRead       bool      `json:"is_read"`
	CreatedAt    time.Time `json:"created_at"`
	FromUserName string    `json:"from_user_name"`
	FromUserRole string    `json:"from_user_role"`
}

// UnreadCountResponse body for GET /api/notifications/unread-count.
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
