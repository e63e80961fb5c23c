package create_booking

import (
	"context"
	"time"

	"github.com/a7jazili/hall-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetOverlapping(ctx context.Context, hallID int64, start, end time.Time, excludeID *int64) ([]*domain.Booking, error)
	AddService(ctx context.Context, item *domain.BookingService) error
	AddMeal(ctx context.Context, item *domain.BookingMeal) error
}

// HallRepository интерфейс репозитория залов
type HallRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hall, error)
	GetServiceByID(ctx context.Context, hallID, serviceID int64) (*domain.HallService, error)
	GetMealByID(ctx context.Context, hallID, mealID int64) (*domain.HallMeal, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
