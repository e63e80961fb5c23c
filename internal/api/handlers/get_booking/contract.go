package get_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/a7jazili/hall-booking-service/internal/service/bookings/models"
)

type BookingService interface {
	GetByBookingID(ctx context.Context, bookingID uuid.UUID, userID int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
