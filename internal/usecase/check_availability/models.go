package check_availability

import "time"

// Request модель запроса проверки доступности
type Request struct {
	HallID           int64      // ID зала
	StartDatetime    time.Time  // Начало интервала
	EndDatetime      time.Time  // Конец интервала (полуоткрытый)
	ExcludeBookingID *int64     // Бронирование, исключаемое из проверки (при переносе)
}

// ConflictWindow окно занятости, пересекающееся с запрошенным интервалом
type ConflictWindow struct {
	StartDatetime time.Time `json:"startDatetime"`
	EndDatetime   time.Time `json:"endDatetime"`
}

// Response модель ответа проверки доступности.
// Conflict заполняется первым пересекающимся окном, когда слот занят.
type Response struct {
	Available bool            `json:"available"`
	Conflict  *ConflictWindow `json:"conflict,omitempty"`
}
