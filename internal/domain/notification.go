package domain

import "time"

// NotificationType represents the kind of a user notification
type NotificationType string

const (
	NotificationBookingApproved  NotificationType = "booking_approved"
	NotificationBookingRejected  NotificationType = "booking_rejected"
	NotificationBookingCancelled NotificationType = "booking_cancelled"
	NotificationBookingCompleted NotificationType = "booking_completed"
	NotificationBookingReminder  NotificationType = "booking_reminder"
	NotificationGeneral          NotificationType = "general"
)

// Notification is a user-facing record created as a side effect of a
// booking status change. Never created directly by a user action.
type Notification struct {
	ID        int64
	UserID    int64
	BookingID *int64
	Type      NotificationType
	Title     string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}
