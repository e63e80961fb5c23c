package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrStatusConflict возвращается, когда условное обновление статуса не затронуло строку
	// (статус уже изменён параллельным запросом)
	ErrStatusConflict = errors.New("booking.repository: booking status changed concurrently")

	// ErrDuplicateLineItem возвращается при нарушении уникальности позиции заказа
	ErrDuplicateLineItem = errors.New("booking.repository: duplicate line item")

	// ErrSlotTaken возвращается при нарушении exclusion constraint на пересечение интервалов
	ErrSlotTaken = errors.New("booking.repository: time slot already taken")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
