package hall

import "errors"

var (
	// ErrHallNotFound возвращается, когда зал не найден
	ErrHallNotFound = errors.New("hall.repository: hall not found")

	// ErrServiceNotFound возвращается, когда услуга не найдена или принадлежит другому залу
	ErrServiceNotFound = errors.New("hall.repository: hall service not found")

	// ErrMealNotFound возвращается, когда блюдо не найдено или принадлежит другому залу
	ErrMealNotFound = errors.New("hall.repository: hall meal not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("hall.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("hall.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("hall.repository: failed to scan row")
)
