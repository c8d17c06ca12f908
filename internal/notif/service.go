package notif

import (
	"context"

	"socialnet/internal/common"
	"socialnet/internal/dbmysql"
)

// NotificationService exposes the read surface of the notification store.
// No write path here creates rows; nothing in the application currently
// produces notifications from likes, comments or friend requests.
type NotificationService interface {
	ListForUser(ctx context.Context, userID uint64) ([]dbmysql.Notification, error)
	UnreadCount(ctx context.Context, userID uint64) (int64, error)
	MarkRead(ctx context.Context, notificationID, actingUserID uint64) error
}

type notificationService struct {
	repo NotificationRepository
}

func NewNotificationService(repo NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) ListForUser(ctx context.Context, userID uint64) ([]dbmysql.Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *notificationService) UnreadCount(ctx context.Context, userID uint64) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

// MarkRead flips the read flag; only the addressed user may do it.
func (s *notificationService) MarkRead(ctx context.Context, notificationID, actingUserID uint64) error {
	n, err := s.repo.GetByID(ctx, notificationID)
	if err != nil {
		if common.IsRecordNotFound(err) {
			return common.ErrNotFound
		}
		return err
	}
	if n.UserID != actingUserID {
		return common.ErrPermission
	}
	if n.Read {
		return nil
	}
	return s.repo.MarkRead(ctx, notificationID)
}
