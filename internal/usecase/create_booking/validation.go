package create_booking

import (
	"fmt"
	"time"

	"github.com/a7jazili/hall-booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if req.HallID <= 0 {
		return fmt.Errorf("%w: hallID must be positive", ErrInvalidInput)
	}

	if req.UserID != nil && *req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.CustomerName == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}

	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName is too long", ErrInvalidInput)
	}

	if req.CustomerEmail == "" {
		return fmt.Errorf("%w: customerEmail is required", ErrInvalidInput)
	}

	if req.CustomerPhone == "" {
		return fmt.Errorf("%w: customerPhone is required", ErrInvalidInput)
	}

	if req.EventTitle == "" {
		return fmt.Errorf("%w: eventTitle is required", ErrInvalidInput)
	}

	if len(req.EventTitle) > domain.MaxEventTitleLength {
		return fmt.Errorf("%w: eventTitle is too long", ErrInvalidInput)
	}

	if req.AttendeesCount <= 0 {
		return fmt.Errorf("%w: attendeesCount must be positive", ErrInvalidInput)
	}

	if err := validateInterval(req.StartDatetime, req.EndDatetime, now); err != nil {
		return err
	}

	for i, item := range req.Services {
		if item.ServiceID <= 0 {
			return fmt.Errorf("%w: services[%d].serviceID must be positive", ErrInvalidInput, i)
		}
		if item.Quantity <= 0 || item.Quantity > domain.MaxLineItemQuantity {
			return fmt.Errorf("%w: services[%d].quantity is out of range", ErrInvalidInput, i)
		}
		if item.Notes != nil && len(*item.Notes) > domain.MaxNotesLength {
			return fmt.Errorf("%w: services[%d].notes is too long", ErrInvalidInput, i)
		}
	}

	for i, item := range req.Meals {
		if item.MealID <= 0 {
			return fmt.Errorf("%w: meals[%d].mealID must be positive", ErrInvalidInput, i)
		}
		if item.Quantity <= 0 || item.Quantity > domain.MaxLineItemQuantity {
			return fmt.Errorf("%w: meals[%d].quantity is out of range", ErrInvalidInput, i)
		}
		if item.ServingTime.IsZero() {
			return fmt.Errorf("%w: meals[%d].servingTime is required", ErrInvalidInput, i)
		}
		if err := item.ServingTime.Validate(); err != nil {
			return fmt.Errorf("%w: meals[%d].servingTime is invalid: %v", ErrInvalidInput, i, err)
		}
		if item.Notes != nil && len(*item.Notes) > domain.MaxNotesLength {
			return fmt.Errorf("%w: meals[%d].notes is too long", ErrInvalidInput, i)
		}
	}

	return nil
}

// validateInterval проверяет интервал аренды: порядок границ, минимальную
// длительность и что начало не в прошлом
func validateInterval(start, end, now time.Time) error {
	if start.IsZero() {
		return fmt.Errorf("%w: startDatetime is required", ErrInvalidInput)
	}

	if end.IsZero() {
		return fmt.Errorf("%w: endDatetime is required", ErrInvalidInput)
	}

	if !end.After(start) {
		return fmt.Errorf("%w: endDatetime must be after startDatetime", ErrInvalidInput)
	}

	if end.Sub(start) < domain.MinBookingDurationMinutes*time.Minute {
		return fmt.Errorf("%w: booking must be at least %d minutes long", ErrInvalidInput, domain.MinBookingDurationMinutes)
	}

	if start.Before(now) {
		return ErrDateInPast
	}

	return nil
}
