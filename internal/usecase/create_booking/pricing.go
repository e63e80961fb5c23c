package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/a7jazili/hall-booking-service/internal/domain"
)

const (
	hoursPerDay      = 24
	secondsPerHour   = 3600
	secondsPerDayInt = hoursPerDay * secondsPerHour
)

// computeBasePrice вычисляет базовую стоимость аренды зала.
//
// Для суточной аренды (обе границы в полночь, длительность кратна 24 часам)
// цена считается целыми днями: price_per_hour * 24 * days. Иначе почасово:
// price_per_hour * часы, включая дробную часть. Длительность считается
// в секундах, остаток меньше минуты тоже оплачивается.
func computeBasePrice(hall *domain.Hall, start, end time.Time) decimal.Decimal {
	seconds := int64(end.Sub(start) / time.Second)

	if domain.IsFullDayRange(start, end) {
		days := seconds / secondsPerDayInt
		return hall.PricePerHour.
			Mul(decimal.NewFromInt(hoursPerDay)).
			Mul(decimal.NewFromInt(days)).
			Round(domain.MoneyScale)
	}

	hours := decimal.NewFromInt(seconds).Div(decimal.NewFromInt(secondsPerHour))

	return hall.PricePerHour.Mul(hours).Round(domain.MoneyScale)
}

// sumLineItems возвращает суммарную стоимость принятых позиций
func sumLineItems(services []*domain.BookingService, meals []*domain.BookingMeal) decimal.Decimal {
	total := decimal.Zero

	for _, item := range services {
		total = total.Add(item.TotalPrice())
	}

	for _, item := range meals {
		total = total.Add(item.TotalPrice)
	}

	return total
}
