package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/a7jazili/hall-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByHallWithFilter(ctx context.Context, filter domain.HallBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) error
	SetAdminNotes(ctx context.Context, id int64, notes string) error
	GetServices(ctx context.Context, bookingID int64) ([]*domain.BookingService, error)
	GetMeals(ctx context.Context, bookingID int64) ([]*domain.BookingMeal, error)
}

// HallRepository интерфейс репозитория залов
type HallRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hall, error)
}

// NotificationDispatcher интерфейс диспетчера уведомлений
// Вызывается синхронно после успешного перехода статуса; сбои записи
// диспетчер обрабатывает сам (best-effort)
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, booking *domain.Booking, hallName string, newStatus domain.BookingStatus) *domain.Notification
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
