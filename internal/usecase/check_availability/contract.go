package check_availability

import (
	"context"
	"time"

	"github.com/a7jazili/hall-booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetOverlapping(ctx context.Context, hallID int64, start, end time.Time, excludeID *int64) ([]*domain.Booking, error)
}

// HallRepository интерфейс репозитория залов
type HallRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hall, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
