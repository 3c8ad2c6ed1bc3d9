package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildmate/buildmate-api/internal/application/dto"
	"github.com/buildmate/buildmate-api/internal/application/usecase"
	"github.com/buildmate/buildmate-api/internal/domain"
	"github.com/buildmate/buildmate-api/internal/domain/entity"
)

const senderID = "50000000-0000-0000-0000-000000000001"

func TestSendNotification_Personal(t *testing.T) {
	repo := &fakeNotificationRepo{}
	uc := usecase.NewNotificationUseCase(repo)

	created, err := uc.Send(context.Background(), senderID, dto.SendNotificationRequest{
		ToUserID: consumerID,
		Title:    "Order ready",
		Message:  "Your cement order is ready for pickup",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	require.Len(t, repo.created, 1)
	n := repo.created[0]
	assert.Equal(t, senderID, n.FromUserID)
	assert.Equal(t, consumerID, n.ToUserID)
	assert.Equal(t, entity.NotificationInfo, n.Type, "type defaults to info")
	assert.False(t, n.IsRead)
}

func TestSendNotification_RoleBroadcast(t *testing.T) {
	repo := &fakeNotificationRepo{}
	uc := usecase.NewNotificationUseCase(repo)

	_, err := uc.Send(context.Background(), senderID, dto.SendNotificationRequest{
		ToRole:  entity.RoleDistributor,
		Title:   "Maintenance window",
		Message: "The platform will be down Sunday night",
	})
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	assert.Equal(t, entity.RoleDistributor, repo.created[0].ToRole)
	assert.Empty(t, repo.created[0].ToUserID)
}

// Exactly one of toUserId / toRole must be set, and the role must be real.
func TestSendNotification_AddressingValidation(t *testing.T) {
	uc := usecase.NewNotificationUseCase(&fakeNotificationRepo{})
	ctx := context.Background()

	_, err := uc.Send(ctx, senderID, dto.SendNotificationRequest{
		Title: "t", Message: "m",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "unaddressed notification")

	_, err = uc.Send(ctx, senderID, dto.SendNotificationRequest{
		ToRole: "admin", Title: "t", Message: "m",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "unknown role")

	_, err = uc.Send(ctx, senderID, dto.SendNotificationRequest{
		ToUserID: consumerID, Message: "m",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "missing title")
}

// A recipient sees their personal notifications plus their role's broadcasts,
// and nobody else's.
func TestListNotifications_RecipientScoping(t *testing.T) {
	repo := &fakeNotificationRepo{}
	uc := usecase.NewNotificationUseCase(repo)
	ctx := context.Background()

	_, err := uc.Send(ctx, senderID, dto.SendNotificationRequest{
		ToUserID: consumerID, Title: "personal", Message: "m",
	})
	require.NoError(t, err)
	_, err = uc.Send(ctx, senderID, dto.SendNotificationRequest{
		ToRole: entity.RoleConsumer, Title: "broadcast", Message: "m",
	})
	require.NoError(t, err)
	_, err = uc.Send(ctx, senderID, dto.SendNotificationRequest{
		ToRole: entity.RoleDistributor, Title: "other role", Message: "m",
	})
	require.NoError(t, err)

	items, err := uc.List(ctx, consumerID, entity.RoleConsumer)
	require.NoError(t, err)
	require.Len(t, items, 2)

	count, err := uc.UnreadCount(ctx, consumerID, entity.RoleConsumer)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestMarkRead_AndMarkAllRead(t *testing.T) {
	repo := &fakeNotificationRepo{}
	uc := usecase.NewNotificationUseCase(repo)
	ctx := context.Background()

	first, err := uc.Send(ctx, senderID, dto.SendNotificationRequest{
		ToUserID: consumerID, Title: "one", Message: "m",
	})
	require.NoError(t, err)
	_, err = uc.Send(ctx, senderID, dto.SendNotificationRequest{
		ToUserID: consumerID, Title: "two", Message: "m",
	})
	require.NoError(t, err)

	require.NoError(t, uc.MarkRead(ctx, first.ID, consumerID, entity.RoleConsumer))
	count, err := uc.UnreadCount(ctx, consumerID, entity.RoleConsumer)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.NoError(t, uc.MarkAllRead(ctx, consumerID, entity.RoleConsumer))
	count, err = uc.UnreadCount(ctx, consumerID, entity.RoleConsumer)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

// Mutations are recipient-scoped: acting on someone else's notification is
// indistinguishable from acting on a missing one.
func TestMarkReadAndDelete_NotTheCallers(t *testing.T) {
	repo := &fakeNotificationRepo{}
	uc := usecase.NewNotificationUseCase(repo)
	ctx := context.Background()

	created, err := uc.Send(ctx, senderID, dto.SendNotificationRequest{
		ToUserID: consumerID, Title: "t", Message: "m",
	})
	require.NoError(t, err)

	err = uc.MarkRead(ctx, created.ID, distributorID, entity.RoleDistributor)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Delete(ctx, created.ID, distributorID, entity.RoleDistributor)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, repo.created, 1, "foreign delete must not remove the row")

	require.NoError(t, uc.Delete(ctx, created.ID, consumerID, entity.RoleConsumer))
	assert.Empty(t, repo.created)
}
