package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{"pending to approved", StatusPending, StatusApproved, true},
		{"pending to rejected", StatusPending, StatusRejected, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending to completed", StatusPending, StatusCompleted, false},
		{"approved to completed", StatusApproved, StatusCompleted, true},
		{"approved to cancelled", StatusApproved, StatusCancelled, true},
		{"approved to rejected", StatusApproved, StatusRejected, false},
		{"approved to pending", StatusApproved, StatusPending, false},
		{"rejected is terminal", StatusRejected, StatusApproved, false},
		{"cancelled is terminal", StatusCancelled, StatusPending, false},
		{"completed is terminal", StatusCompleted, StatusCancelled, false},
		{"same status is not a transition", StatusPending, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusApproved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
}

func TestBookingStatus_Valid(t *testing.T) {
	for _, s := range []BookingStatus{StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusCompleted} {
		assert.True(t, s.Valid(), s)
	}
	assert.False(t, BookingStatus("confirmed").Valid())
	assert.False(t, BookingStatus("").Valid())
}

func TestBooking_BlocksSlot(t *testing.T) {
	b := &Booking{Status: StatusPending}
	assert.True(t, b.BlocksSlot())

	b.Status = StatusApproved
	assert.True(t, b.BlocksSlot())

	for _, s := range []BookingStatus{StatusRejected, StatusCancelled, StatusCompleted} {
		b.Status = s
		assert.False(t, b.BlocksSlot(), s)
	}
}

func TestBooking_Overlaps(t *testing.T) {
	base := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	booking := &Booking{
		StartDatetime: base,
		EndDatetime:   base.Add(3 * time.Hour), // 14:00 - 17:00
	}

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		overlaps bool
	}{
		{"fully inside", base.Add(time.Hour), base.Add(2 * time.Hour), true},
		{"covers booking", base.Add(-time.Hour), base.Add(4 * time.Hour), true},
		{"partial left", base.Add(-time.Hour), base.Add(time.Hour), true},
		{"partial right", base.Add(2 * time.Hour), base.Add(5 * time.Hour), true},
		{"touching at start is not overlap", base.Add(-2 * time.Hour), base, false},
		{"touching at end is not overlap", base.Add(3 * time.Hour), base.Add(5 * time.Hour), false},
		{"disjoint before", base.Add(-5 * time.Hour), base.Add(-3 * time.Hour), false},
		{"disjoint after", base.Add(5 * time.Hour), base.Add(7 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, booking.Overlaps(tt.start, tt.end))
		})
	}
}

func TestIsFullDayRange(t *testing.T) {
	midnight := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, IsFullDayRange(midnight, midnight.AddDate(0, 0, 1)))
	assert.True(t, IsFullDayRange(midnight, midnight.AddDate(0, 0, 2)))

	// не полночь
	assert.False(t, IsFullDayRange(midnight.Add(time.Hour), midnight.Add(25*time.Hour)))
	// конец не в полночь
	assert.False(t, IsFullDayRange(midnight, midnight.Add(36*time.Hour)))
	// нулевой интервал
	assert.False(t, IsFullDayRange(midnight, midnight))
}

func TestBooking_CanBeCancelledByCustomer(t *testing.T) {
	b := &Booking{Status: StatusPending}
	assert.True(t, b.CanBeCancelledByCustomer())

	for _, s := range []BookingStatus{StatusApproved, StatusRejected, StatusCancelled, StatusCompleted} {
		b.Status = s
		assert.False(t, b.CanBeCancelledByCustomer(), s)
	}
}

func TestBookingService_TotalPrice(t *testing.T) {
	item := &BookingService{
		Quantity: 3,
		Price:    decimal.RequireFromString("150.50"),
	}

	assert.True(t, item.TotalPrice().Equal(decimal.RequireFromString("451.50")))
}

func TestBookingMeal_RecalcTotal(t *testing.T) {
	meal := &BookingMeal{
		Quantity:       40,
		PricePerPerson: decimal.RequireFromString("25.00"),
	}

	meal.RecalcTotal()
	require.True(t, meal.TotalPrice.Equal(decimal.RequireFromString("1000.00")))

	// пересчет после изменения количества затирает прежнее значение
	meal.Quantity = 10
	meal.RecalcTotal()
	require.True(t, meal.TotalPrice.Equal(decimal.RequireFromString("250.00")))
}
