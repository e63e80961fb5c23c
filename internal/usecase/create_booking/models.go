package create_booking

import (
	"time"

	"github.com/a7jazili/hall-booking-service/pkg/types"
)

// ServiceSelection выбранная услуга зала
type ServiceSelection struct {
	ServiceID int64   // ID услуги из каталога зала
	Quantity  int     // Количество
	Notes     *string // Заметки (опционально)
}

// MealSelection выбранное блюдо зала
type MealSelection struct {
	MealID      int64            // ID блюда из каталога зала
	Quantity    int              // Количество порций
	ServingTime types.TimeString // Время подачи (например, "14:30")
	Notes       *string          // Заметки (опционально)
}

// Request модель запроса на создание бронирования
type Request struct {
	HallID int64  // ID зала
	UserID *int64 // ID пользователя (nil для анонимных заявок)

	CustomerName  string // Имя клиента
	CustomerEmail string // Email клиента
	CustomerPhone string // Телефон клиента

	EventTitle       string // Название мероприятия
	EventDescription string // Описание мероприятия
	AttendeesCount   int    // Ожидаемое число гостей

	StartDatetime time.Time // Начало аренды
	EndDatetime   time.Time // Конец аренды (полуоткрытый интервал)

	Services []ServiceSelection // Дополнительные услуги (опционально)
	Meals    []MealSelection    // Блюда (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64  // Внутренний ID бронирования
	BookingID string // Внешний UUID
	HallID    int64  // ID зала
	UserID    *int64 // ID пользователя

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	EventTitle       string
	EventDescription string
	AttendeesCount   int

	StartDatetime time.Time
	EndDatetime   time.Time

	TotalPrice string // Итоговая стоимость, строка с двумя знаками
	Status     string // Всегда pending при создании

	ServicesCount int // Число принятых позиций услуг
	MealsCount    int // Число принятых позиций блюд

	CreatedAt time.Time
	UpdatedAt time.Time
}
