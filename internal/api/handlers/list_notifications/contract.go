package list_notifications

import (
	"context"

	"github.com/a7jazili/hall-booking-service/internal/service/notifications/models"
)

type NotificationService interface {
	GetUserNotifications(ctx context.Context, userID int64, unreadOnly bool) (*models.NotificationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
