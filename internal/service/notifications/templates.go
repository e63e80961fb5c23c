package notifications

import (
	"fmt"

	"github.com/a7jazili/hall-booking-service/internal/domain"
)

// template шаблон уведомления для одного целевого статуса
type template struct {
	notificationType domain.NotificationType
	title            string
	message          string // fmt-шаблон: %s - название события, %s - название зала
}

// statusTemplates фиксированная таблица статус -> содержимое уведомления
// pending и статусы вне таблицы уведомлений не порождают
var statusTemplates = map[domain.BookingStatus]template{
	domain.StatusApproved: {
		notificationType: domain.NotificationBookingApproved,
		title:            "Ваше бронирование подтверждено!",
		message:          "Бронирование «%s» в зале %s подтверждено. Мы свяжемся с вами для уточнения деталей.",
	},
	domain.StatusRejected: {
		notificationType: domain.NotificationBookingRejected,
		title:            "Ваше бронирование отклонено",
		message:          "К сожалению, бронирование «%s» в зале %s отклонено. Свяжитесь с нами для уточнения причин.",
	},
	domain.StatusCancelled: {
		notificationType: domain.NotificationBookingCancelled,
		title:            "Ваше бронирование отменено",
		message:          "Бронирование «%s» в зале %s отменено.",
	},
	domain.StatusCompleted: {
		notificationType: domain.NotificationBookingCompleted,
		title:            "Ваше бронирование завершено",
		message:          "Бронирование «%s» в зале %s успешно завершено. Спасибо, что выбрали нас!",
	},
}

// buildNotification собирает уведомление по таблице шаблонов
// Возвращает nil, если для статуса уведомление не предусмотрено
func buildNotification(booking *domain.Booking, hallName string, status domain.BookingStatus) *domain.Notification {
	tpl, ok := statusTemplates[status]
	if !ok {
		return nil
	}
	if booking.UserID == nil {
		return nil
	}

	return &domain.Notification{
		UserID:    *booking.UserID,
		BookingID: &booking.ID,
		Type:      tpl.notificationType,
		Title:     tpl.title,
		Message:   fmt.Sprintf(tpl.message, booking.EventTitle, hallName),
	}
}
