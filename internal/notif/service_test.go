package notif

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"socialnet/internal/common"
	"socialnet/internal/dbmysql"
)

func TestNotificationService_ListForUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockNotificationRepository(ctrl)
	svc := NewNotificationService(repo)
	ctx := context.Background()

	expected := []dbmysql.Notification{
		{NotificationID: 2, UserID: 7, Message: "newer"},
		{NotificationID: 1, UserID: 7, Message: "older"},
	}
	repo.EXPECT().ListByUser(ctx, uint64(7)).Return(expected, nil)

	got, err := svc.ListForUser(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, expected, got)
}

func TestNotificationService_UnreadCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := NewMockNotificationRepository(ctrl)
	svc := NewNotificationService(repo)
	ctx := context.Background()

	repo.EXPECT().CountUnread(ctx, uint64(7)).Return(int64(3), nil)

	count, err := svc.UnreadCount(ctx, 7)
	require.NoError(t, err)
	require.Equal(t, int64(3), count)
}

func TestNotificationService_MarkRead(t *testing.T) {
	ctx := context.Background()

	t.Run("owner marks unread notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := NewMockNotificationRepository(ctrl)
		svc := NewNotificationService(repo)

		repo.EXPECT().GetByID(ctx, uint64(5)).Return(&dbmysql.Notification{NotificationID: 5, UserID: 7}, nil)
		repo.EXPECT().MarkRead(ctx, uint64(5)).Return(nil)

		require.NoError(t, svc.MarkRead(ctx, 5, 7))
	})

	t.Run("already read is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := NewMockNotificationRepository(ctrl)
		svc := NewNotificationService(repo)

		repo.EXPECT().GetByID(ctx, uint64(5)).Return(&dbmysql.Notification{NotificationID: 5, UserID: 7, Read: true}, nil)

		require.NoError(t, svc.MarkRead(ctx, 5, 7))
	})

	t.Run("someone else's notification is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := NewMockNotificationRepository(ctrl)
		svc := NewNotificationService(repo)

		repo.EXPECT().GetByID(ctx, uint64(5)).Return(&dbmysql.Notification{NotificationID: 5, UserID: 7}, nil)

		err := svc.MarkRead(ctx, 5, 8)
		require.ErrorIs(t, err, common.ErrPermission)
	})

	t.Run("missing notification", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := NewMockNotificationRepository(ctrl)
		svc := NewNotificationService(repo)

		repo.EXPECT().GetByID(ctx, uint64(99)).Return(nil, gorm.ErrRecordNotFound)

		err := svc.MarkRead(ctx, 99, 7)
		require.ErrorIs(t, err, common.ErrNotFound)
	})
}
