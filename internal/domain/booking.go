package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/a7jazili/hall-booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusApproved  BookingStatus = "approved"
	StatusRejected  BookingStatus = "rejected"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// transitions defines the allowed edges of the booking status machine.
// rejected, cancelled and completed are terminal.
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:  {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved: {StatusCompleted, StatusCancelled},
}

// Valid returns true if the status is one of the known booking statuses
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// IsTerminal returns true if no transition leaves the status
func (s BookingStatus) IsTerminal() bool {
	return s.Valid() && len(transitions[s]) == 0
}

// CanTransitionTo returns true if the status machine allows the edge s -> target
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Booking represents a reservation of a hall over a time interval
type Booking struct {
	ID        int64
	BookingID uuid.UUID // immutable external reference
	HallID    int64
	UserID    *int64 // nil for anonymous bookings

	CustomerName  string
	CustomerEmail string
	CustomerPhone string

	EventTitle       string
	EventDescription string
	AttendeesCount   int

	StartDatetime time.Time
	EndDatetime   time.Time

	TotalPrice   decimal.Decimal
	Status       BookingStatus
	AdminNotes   *string
	IsAdminBlock bool // synthetic booking that only blocks the slot

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration returns the booked interval length
func (b *Booking) Duration() time.Duration {
	return b.EndDatetime.Sub(b.StartDatetime)
}

// BlocksSlot returns true if the booking holds its time slot
// (pending requests soft-reserve the slot the moment they are submitted)
func (b *Booking) BlocksSlot() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// CanBeCancelledByCustomer returns true if the customer may self-cancel
func (b *Booking) CanBeCancelledByCustomer() bool {
	return b.Status == StatusPending
}

// Overlaps reports whether the booking interval intersects [start, end)
// under half-open semantics: touching boundaries are not an overlap
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartDatetime.Before(end) && b.EndDatetime.After(start)
}

// IsFullDay returns true when both boundaries are exactly midnight and
// the duration is a whole multiple of 24 hours
func (b *Booking) IsFullDay() bool {
	return IsFullDayRange(b.StartDatetime, b.EndDatetime)
}

// IsFullDayRange reports the full-day property for an arbitrary interval
func IsFullDayRange(start, end time.Time) bool {
	if !isMidnight(start) || !isMidnight(end) {
		return false
	}
	d := end.Sub(start)
	return d > 0 && d%(24*time.Hour) == 0
}

func isMidnight(t time.Time) bool {
	return t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0
}

// BookingService is a service line item snapshotted at booking time.
// Price is copied from the catalog so later catalog changes do not
// retroactively alter historical bookings.
type BookingService struct {
	ID        int64
	BookingID int64
	ServiceID int64
	Quantity  int
	Price     decimal.Decimal
	Notes     *string
	CreatedAt time.Time
}

// TotalPrice returns quantity x snapshotted unit price
func (s *BookingService) TotalPrice() decimal.Decimal {
	return s.Price.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

// BookingMeal is a meal line item snapshotted at booking time.
// Unique per (booking, meal, serving time).
type BookingMeal struct {
	ID             int64
	BookingID      int64
	MealID         int64
	Quantity       int
	PricePerPerson decimal.Decimal
	TotalPrice     decimal.Decimal
	ServingTime    types.TimeString
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RecalcTotal recomputes TotalPrice as quantity x price per person.
// TotalPrice is derived and never independently settable.
func (m *BookingMeal) RecalcTotal() {
	m.TotalPrice = m.PricePerPerson.Mul(decimal.NewFromInt(int64(m.Quantity)))
}

// HallBookingsFilter фильтр для получения бронирований зала
type HallBookingsFilter struct {
	HallID          int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли завершённые/отклонённые/отменённые
}
