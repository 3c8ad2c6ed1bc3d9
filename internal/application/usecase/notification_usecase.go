package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/buildmate/buildmate-api/internal/application/dto"
	"github.com/buildmate/buildmate-api/internal/domain"
	"github.com/buildmate/buildmate-api/internal/domain/entity"
	"github.com/buildmate/buildmate-api/internal/domain/repository"
)

// listCap is the maximum number of notifications returned by List.
const listCap = 100

// NotificationUseCase notification fan-out. Every read and mutation is scoped
// to the caller: notifications addressed to them personally or to their role.
type NotificationUseCase struct {
	repo repository.NotificationRepository
}

// NewNotificationUseCase builds the use case.
func NewNotificationUseCase(repo repository.NotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{repo: repo}
}

// Send creates a notification addressed to one user or broadcast to a role.
// Exactly one of ToUserID / ToRole must be set.
func (uc *NotificationUseCase) Send(ctx context.Context, fromUserID string, in dto.SendNotificationRequest) (*dto.CreatedResponse, error) {
	if in.Title == "" || in.Message == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.ToUserID == "" && in.ToRole == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.ToRole != "" && !entity.ValidRole(in.ToRole) {
		return nil, domain.ErrInvalidInput
	}
	typ := in.Type
	if typ == "" {
		typ = entity.NotificationInfo
	}
	n := &entity.Notification{
		ID:         uuid.New().String(),
		FromUserID: fromUserID,
		ToUserID:   in.ToUserID,
		ToRole:     in.ToRole,
		Title:      in.Title,
		Message:    in.Message,
		Type:       typ,
		CreatedAt:  time.Now(),
	}
	if err := uc.repo.Create(ctx, n); err != nil {
		return nil, err
	}
	return &dto.CreatedResponse{Message: "Notification sent successfully", ID: n.ID}, nil
}

// List returns the caller's notifications, newest first, capped at 100.
func (uc *NotificationUseCase) List(ctx context.Context, userID, role string) ([]dto.NotificationResponse, error) {
	items, err := uc.repo.ListForRecipient(ctx, userID, role, listCap)
	if err != nil {
		return nil, err
	}
	out := make([]dto.NotificationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.NotificationResponse{
			ID:           it.ID,
			FromUserID:   it.FromUserID,
			ToUserID:     it.ToUserID,
			ToRole:       it.ToRole,
			Title:        it.Title,
			Message:      it.Message,
			Type:         it.Type,
			IsRead:       it.IsRead,
			CreatedAt:    it.CreatedAt,
			FromUserName: it.FromUserName,
			FromUserRole: it.FromUserRole,
		})
	}
	return out, nil
}

// UnreadCount returns the caller's number of unread notifications.
func (uc *NotificationUseCase) UnreadCount(ctx context.Context, userID, role string) (int64, error) {
	return uc.repo.UnreadCount(ctx, userID, role)
}

// MarkRead flips the read flag. ErrNotFound when the notification is absent
// or not addressed to the caller. For role broadcasts the flag is shared by
// every recipient of that role.
func (uc *NotificationUseCase) MarkRead(ctx context.Context, id, userID, role string) error {
	affected, err := uc.repo.MarkRead(ctx, id, userID, role)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// MarkAllRead flips the read flag on everything addressed to the caller or
// their role.
func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, userID, role string) error {
	return uc.repo.MarkAllRead(ctx, userID, role)
}

// Delete removes a notification the caller is addressed by. ErrNotFound when
// absent or not theirs.
func (uc *NotificationUseCase) Delete(ctx context.Context, id, userID, role string) error {
	affected, err := uc.repo.Delete(ctx, id, userID, role)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
