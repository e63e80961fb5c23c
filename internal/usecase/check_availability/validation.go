package check_availability

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.HallID <= 0 {
		return fmt.Errorf("%w: hallID must be positive", ErrInvalidInput)
	}

	if req.StartDatetime.IsZero() {
		return fmt.Errorf("%w: startDatetime is required", ErrInvalidInput)
	}

	if req.EndDatetime.IsZero() {
		return fmt.Errorf("%w: endDatetime is required", ErrInvalidInput)
	}

	if !req.EndDatetime.After(req.StartDatetime) {
		return fmt.Errorf("%w: endDatetime must be after startDatetime", ErrInvalidInput)
	}

	if req.ExcludeBookingID != nil && *req.ExcludeBookingID <= 0 {
		return fmt.Errorf("%w: excludeBookingID must be positive", ErrInvalidInput)
	}

	return nil
}
