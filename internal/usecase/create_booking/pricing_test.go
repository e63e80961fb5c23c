package create_booking

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/a7jazili/hall-booking-service/internal/domain"
)

func hallWithPrice(price string) *domain.Hall {
	return &domain.Hall{
		ID:           1,
		Capacity:     200,
		PricePerHour: decimal.RequireFromString(price),
		Status:       domain.HallStatusAvailable,
	}
}

func TestComputeBasePrice_Hourly(t *testing.T) {
	hall := hallWithPrice("100.00")
	start := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{"three hours", 3 * time.Hour, "300.00"},
		{"half hour", 30 * time.Minute, "50.00"},
		{"ninety minutes", 90 * time.Minute, "150.00"},
		{"one hour", time.Hour, "100.00"},
		// длительность считается в секундах: неполная минута не отбрасывается
		{"hour and thirty seconds", time.Hour + 30*time.Second, "100.83"},
		{"ninety seconds", 90 * time.Second, "2.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := computeBasePrice(hall, start, start.Add(tt.duration))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestComputeBasePrice_Linearity(t *testing.T) {
	hall := hallWithPrice("120.00")
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	oneHour := computeBasePrice(hall, start, start.Add(time.Hour))
	twoHours := computeBasePrice(hall, start, start.Add(2*time.Hour))

	assert.True(t, twoHours.Equal(oneHour.Mul(decimal.NewFromInt(2))))
}

func TestComputeBasePrice_FullDay(t *testing.T) {
	hall := hallWithPrice("100.00")
	midnight := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	oneDay := computeBasePrice(hall, midnight, midnight.AddDate(0, 0, 1))
	assert.True(t, oneDay.Equal(decimal.RequireFromString("2400.00")), "got %s", oneDay)

	// 48 часов посуточно дают ту же сумму, что и почасовой расчет
	twoDays := computeBasePrice(hall, midnight, midnight.AddDate(0, 0, 2))
	hourly := hall.PricePerHour.Mul(decimal.NewFromInt(48))
	assert.True(t, twoDays.Equal(hourly), "got %s, want %s", twoDays, hourly)
}

func TestSumLineItems(t *testing.T) {
	services := []*domain.BookingService{
		{Quantity: 2, Price: decimal.RequireFromString("500.00")},
		{Quantity: 1, Price: decimal.RequireFromString("300.00")},
	}

	meal := &domain.BookingMeal{Quantity: 40, PricePerPerson: decimal.RequireFromString("25.00")}
	meal.RecalcTotal()

	total := sumLineItems(services, []*domain.BookingMeal{meal})
	assert.True(t, total.Equal(decimal.RequireFromString("2300.00")), "got %s", total)
}

func TestSumLineItems_Empty(t *testing.T) {
	total := sumLineItems(nil, nil)
	assert.True(t, total.IsZero())
}
