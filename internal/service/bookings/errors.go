package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrHallNotFound возвращается, когда зал бронирования не найден
	ErrHallNotFound = errors.New("bookings: hall not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("bookings: access denied")

	// ErrInvalidTransition возвращается при попытке перехода из терминального
	// статуса или по неопределённому ребру графа статусов
	ErrInvalidTransition = errors.New("bookings: invalid status transition")

	// ErrTransitionConflict возвращается, когда статус изменён параллельным
	// запросом между чтением и условным обновлением
	ErrTransitionConflict = errors.New("bookings: booking status changed concurrently")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("bookings: internal error")
)
