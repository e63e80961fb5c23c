package models

import (
	"time"

	"github.com/a7jazili/hall-booking-service/internal/domain"
)

// NotificationResponse ответ с данными уведомления
type NotificationResponse struct {
	ID        int64     `json:"id"`
	BookingID *int64    `json:"bookingId,omitempty"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// NotificationListResponse ответ со списком уведомлений
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	UnreadCount   int                    `json:"unreadCount"`
}

// FromDomainNotification конвертирует domain модель в DTO
func FromDomainNotification(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		BookingID: n.BookingID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

// FromDomainNotificationList конвертирует список domain моделей в DTO
func FromDomainNotificationList(list []*domain.Notification, unreadCount int) *NotificationListResponse {
	resp := &NotificationListResponse{
		Notifications: make([]NotificationResponse, len(list)),
		UnreadCount:   unreadCount,
	}
	for i, n := range list {
		resp.Notifications[i] = FromDomainNotification(n)
	}
	return resp
}
