package create_admin_block

import "time"

// Request модель запроса на административную блокировку интервала
type Request struct {
	HallID        int64     // ID зала
	UserID        int64     // ID менеджера зала
	StartDatetime time.Time // Начало блокировки
	EndDatetime   time.Time // Конец блокировки (полуоткрытый интервал)
	Reason        string    // Причина блокировки (например, ремонт)
}

// Response модель ответа с созданной блокировкой
type Response struct {
	ID            int64     // Внутренний ID
	BookingID     string    // Внешний UUID
	HallID        int64     // ID зала
	StartDatetime time.Time // Начало блокировки
	EndDatetime   time.Time // Конец блокировки
	Status        string    // Всегда approved: блокировка сразу удерживает слот
	Reason        string    // Причина блокировки
	CreatedAt     time.Time
}
