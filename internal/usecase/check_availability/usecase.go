package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/a7jazili/hall-booking-service/internal/domain"
	hallRepo "github.com/a7jazili/hall-booking-service/internal/infra/storage/hall"
)

// UseCase use case проверки доступности зала на интервал
type UseCase struct {
	bookingRepo BookingRepository
	hallRepo    HallRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, hallRepo HallRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		hallRepo:    hallRepo,
		logger:      logger,
	}
}

// Execute проверяет, свободен ли зал на запрошенный интервал.
// Интервал полуоткрытый: бронирование, заканчивающееся ровно в момент
// начала запрошенного, конфликтом не считается. Слот удерживают только
// pending и approved бронирования.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	if _, err := uc.hallRepo.GetByID(ctx, req.HallID); err != nil {
		if errors.Is(err, hallRepo.ErrHallNotFound) {
			uc.logger.Warn("CheckAvailability: hall id=%d not found", req.HallID)
			return nil, ErrHallNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get hall id=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: failed to get hall: %v", ErrInternal, err)
	}

	overlapping, err := uc.bookingRepo.GetOverlapping(ctx, req.HallID, req.StartDatetime, req.EndDatetime, req.ExcludeBookingID)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get overlapping bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get overlapping bookings: %v", ErrInternal, err)
	}

	if len(overlapping) == 0 {
		return &Response{Available: true}, nil
	}

	first := overlapping[0]
	uc.logger.Info("CheckAvailability: hall=%d is occupied %s - %s",
		req.HallID,
		first.StartDatetime.Format(domain.DateTimeFormat),
		first.EndDatetime.Format(domain.DateTimeFormat),
	)

	return &Response{
		Available: false,
		Conflict: &ConflictWindow{
			StartDatetime: first.StartDatetime,
			EndDatetime:   first.EndDatetime,
		},
	}, nil
}
