package create_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/a7jazili/hall-booking-service/internal/domain"
)

var (
	// ErrHallNotFound возвращается, когда зал не найден
	ErrHallNotFound = errors.New("create_booking: hall not found")

	// ErrHallNotBookable возвращается, когда зал не принимает бронирования
	ErrHallNotBookable = errors.New("create_booking: hall is not accepting bookings")

	// ErrCapacityExceeded возвращается, когда число гостей превышает вместимость зала
	ErrCapacityExceeded = errors.New("create_booking: attendees count exceeds hall capacity")

	// ErrSlotConflict возвращается, когда запрошенный интервал пересекается
	// с активным бронированием
	ErrSlotConflict = errors.New("create_booking: time slot is already taken")

	// ErrDateInPast возвращается, когда начало бронирования в прошлом
	ErrDateInPast = errors.New("create_booking: start datetime is in the past")

	// ErrServiceNotAvailable возвращается в строгом режиме, когда выбранная
	// услуга не найдена в зале или недоступна
	ErrServiceNotAvailable = errors.New("create_booking: service is not available")

	// ErrMealNotAvailable возвращается в строгом режиме, когда выбранное
	// блюдо не найдено в зале или недоступно
	ErrMealNotAvailable = errors.New("create_booking: meal is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ConflictError несёт первое пересекающееся окно занятости.
// Разворачивается в ErrSlotConflict для проверок через errors.Is.
type ConflictError struct {
	Start time.Time
	End   time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%v: occupied from %s to %s",
		ErrSlotConflict,
		e.Start.Format(domain.DateTimeFormat),
		e.End.Format(domain.DateTimeFormat),
	)
}

func (e *ConflictError) Unwrap() error {
	return ErrSlotConflict
}
