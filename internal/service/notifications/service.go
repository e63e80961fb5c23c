package notifications

import (
	"context"
	"errors"
	"fmt"

	"github.com/a7jazili/hall-booking-service/internal/domain"
	notificationRepo "github.com/a7jazili/hall-booking-service/internal/infra/storage/notification"
	"github.com/a7jazili/hall-booking-service/internal/service/notifications/models"
)

// Service сервис уведомлений: диспетчеризация при смене статуса
// бронирования и выдача уведомлений пользователю
type Service struct {
	repo   NotificationRepository
	logger Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(repo NotificationRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Dispatch переводит смену статуса бронирования в уведомление пользователю
// Вызывается сервисом бронирований синхронно ПОСЛЕ фиксации перехода.
// Best-effort: ошибка записи логируется и проглатывается - неудачное
// уведомление никогда не откатывает состоявшийся переход.
// Возвращает созданное уведомление или nil, если уведомление не предусмотрено
// (статус без шаблона, анонимное бронирование) либо запись не удалась.
func (s *Service) Dispatch(ctx context.Context, booking *domain.Booking, hallName string, newStatus domain.BookingStatus) *domain.Notification {
	n := buildNotification(booking, hallName, newStatus)
	if n == nil {
		return nil
	}

	created, err := s.repo.Create(ctx, n)
	if err != nil {
		s.logger.Error("Dispatch: failed to write notification for booking id=%d, user=%d, status=%s: %v",
			booking.ID, *booking.UserID, newStatus, err)
		return nil
	}

	s.logger.Info("Dispatch: notification id=%d type=%s created for user=%d, booking id=%d",
		created.ID, created.Type, created.UserID, booking.ID)
	return created
}

// GetUserNotifications получает уведомления пользователя со счётчиком непрочитанных
func (s *Service) GetUserNotifications(ctx context.Context, userID int64, unreadOnly bool) (*models.NotificationListResponse, error) {
	list, err := s.repo.GetByUserID(ctx, userID, unreadOnly)
	if err != nil {
		s.logger.Error("GetUserNotifications: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserNotifications - repository error: %v", ErrInternal, err)
	}

	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserNotifications: failed to count unread for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserNotifications - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainNotificationList(list, unread), nil
}

// MarkAsRead помечает уведомление пользователя прочитанным
func (s *Service) MarkAsRead(ctx context.Context, id, userID int64) error {
	if err := s.repo.MarkAsRead(ctx, id, userID); err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			s.logger.Warn("MarkAsRead: notification id=%d not found for user=%d", id, userID)
			return ErrNotificationNotFound
		}
		s.logger.Error("MarkAsRead: repository error for notification id=%d: %v", id, err)
		return fmt.Errorf("%w: MarkAsRead - repository error: %v", ErrInternal, err)
	}

	return nil
}
