package create_admin_block

import (
	"fmt"

	"github.com/a7jazili/hall-booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.HallID <= 0 {
		return fmt.Errorf("%w: hallID must be positive", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
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

	if len(req.Reason) > domain.MaxNotesLength {
		return fmt.Errorf("%w: reason is too long", ErrInvalidInput)
	}

	return nil
}
