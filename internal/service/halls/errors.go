package halls

import "errors"

var (
	// ErrHallNotFound возвращается, когда зал не найден
	ErrHallNotFound = errors.New("halls: hall not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена в зале
	ErrServiceNotFound = errors.New("halls: service not found")

	// ErrMealNotFound возвращается, когда блюдо не найдено в зале
	ErrMealNotFound = errors.New("halls: meal not found")

	// ErrAccessDenied возвращается, когда пользователь не является менеджером зала
	ErrAccessDenied = errors.New("halls: access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("halls: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("halls: internal error")
)
