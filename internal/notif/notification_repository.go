package notif

import (
	"context"

	"gorm.io/gorm"

	"socialnet/internal/dbmysql"
)

type NotificationRepository interface {
	GetByID(ctx context.Context, id uint64) (*dbmysql.Notification, error)
	ListByUser(ctx context.Context, userID uint64) ([]dbmysql.Notification, error)
	CountUnread(ctx context.Context, userID uint64) (int64, error)
	MarkRead(ctx context.Context, id uint64) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) GetByID(ctx context.Context, id uint64) (*dbmysql.Notification, error) {
	var n dbmysql.Notification
	err := r.db.WithContext(ctx).Where("notification_id = ?", id).First(&n).Error
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID uint64) ([]dbmysql.Notification, error) {
	var notifications []dbmysql.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepository) CountUnread(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.Notification{}).
		Where("user_id = ? AND `read` = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (r *notificationRepository) MarkRead(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).
		Model(&dbmysql.Notification{}).
		Where("notification_id = ?", id).
		Update("read", true).Error
}
