package entity

import "time"

// Notification types emitted by the system. Users may also send free-form
// notifications with any type tag; "info" is the default.
const (
	NotificationInfo        = "info"
	NotificationInquiry     = "inquiry"
	NotificationPriceUpdate = "price_update"
)

// Notification is a directional message: either targeted at one user
// (ToUserID set) or broadcast to every holder of a role (ToRole set,
// ToUserID empty). The read flag is per-notification, so a role broadcast
// shares one flag across all recipients.
type Notification struct {
	ID         string
	FromUserID string
	ToUserID   string // empty for role broadcasts
	ToRole     string // empty for targeted notifications
	Title      string
	Message    string
	Type       string
	IsRead     bool
	CreatedAt  time.Time
}
