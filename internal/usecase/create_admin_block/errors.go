package create_admin_block

import (
	"errors"
	"fmt"
	"time"

	"github.com/a7jazili/hall-booking-service/internal/domain"
)

var (
	// ErrHallNotFound возвращается, когда зал не найден
	ErrHallNotFound = errors.New("create_admin_block: hall not found")

	// ErrAccessDenied возвращается, когда пользователь не является менеджером зала
	ErrAccessDenied = errors.New("create_admin_block: access denied")

	// ErrSlotConflict возвращается, когда интервал блокировки пересекается
	// с активным бронированием
	ErrSlotConflict = errors.New("create_admin_block: time slot is already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_admin_block: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_admin_block: internal error")
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
