package domain

// Business validation constants
const (
	MinBookingDurationMinutes = 30
	MaxEventTitleLength       = 200
	MaxCustomerNameLength     = 200
	MaxNotesLength            = 500
	MaxLineItemQuantity       = 10000
)

// Time format constants
const (
	DateFormat     = "2006-01-02"          // YYYY-MM-DD
	DateTimeFormat = "2006-01-02T15:04:05" // локальное время без зоны (вход из формы)
)

// MoneyScale число знаков после запятой для всех денежных значений
const MoneyScale = 2

// BlockingStatuses статусы, при которых бронирование удерживает слот
// Используется в проверке доступности: pending и approved блокируют пересечения
var BlockingStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
}

// InactiveStatuses статусы, исключаемые из выдачи активных бронирований
var InactiveStatuses = []BookingStatus{
	StatusRejected,
	StatusCancelled,
	StatusCompleted,
}
