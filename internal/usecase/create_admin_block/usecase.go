package create_admin_block

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/a7jazili/hall-booking-service/internal/domain"
	bookingRepo "github.com/a7jazili/hall-booking-service/internal/infra/storage/booking"
	hallRepo "github.com/a7jazili/hall-booking-service/internal/infra/storage/hall"
)

// Системные значения для обязательных полей клиента: блокировка не связана
// с реальным заказчиком
const (
	blockCustomerName  = "Администрация зала"
	blockCustomerEmail = "system@internal"
	blockCustomerPhone = "-"
	blockEventTitle    = "Техническая блокировка"
)

// UseCase use case административной блокировки интервала
type UseCase struct {
	bookingRepo  BookingRepository
	hallRepo     HallRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, hallRepo HallRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		hallRepo:     hallRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute создает административную блокировку: бронирование со статусом
// approved, нулевой стоимостью и признаком is_admin_block. Блокировка
// удерживает слот наравне с обычными бронированиями, но не порождает
// уведомлений.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAdminBlock: hall=%d, user=%d, start=%s, end=%s",
		req.HallID, req.UserID,
		req.StartDatetime.Format(domain.DateTimeFormat),
		req.EndDatetime.Format(domain.DateTimeFormat),
	)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAdminBlock: validation failed: %v", err)
		return nil, err
	}

	hall, err := uc.hallRepo.GetByID(ctx, req.HallID)
	if err != nil {
		if errors.Is(err, hallRepo.ErrHallNotFound) {
			uc.logger.Warn("CreateAdminBlock: hall id=%d not found", req.HallID)
			return nil, ErrHallNotFound
		}
		uc.logger.Error("CreateAdminBlock: failed to get hall id=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: failed to get hall: %v", ErrInternal, err)
	}

	if !hall.IsManagedBy(req.UserID) {
		uc.logger.Warn("CreateAdminBlock: user id=%d is not a manager of hall id=%d", req.UserID, req.HallID)
		return nil, ErrAccessDenied
	}

	eventTitle := blockEventTitle
	if req.Reason != "" {
		eventTitle = req.Reason
	}

	var result *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		overlapping, err := uc.bookingRepo.GetOverlapping(txCtx, req.HallID, req.StartDatetime, req.EndDatetime, nil)
		if err != nil {
			uc.logger.Error("CreateAdminBlock: failed to check overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to check overlapping bookings: %v", ErrInternal, err)
		}

		if len(overlapping) > 0 {
			first := overlapping[0]
			uc.logger.Warn("CreateAdminBlock: slot conflict with booking id=%d", first.ID)
			return &ConflictError{Start: first.StartDatetime, End: first.EndDatetime}
		}

		block := &domain.Booking{
			BookingID:      uuid.New(),
			HallID:         req.HallID,
			UserID:         nil,
			CustomerName:   blockCustomerName,
			CustomerEmail:  blockCustomerEmail,
			CustomerPhone:  blockCustomerPhone,
			EventTitle:     eventTitle,
			AttendeesCount: 0,
			StartDatetime:  req.StartDatetime,
			EndDatetime:    req.EndDatetime,
			TotalPrice:     decimal.Zero,
			Status:         domain.StatusApproved,
			IsAdminBlock:   true,
		}

		created, err := uc.bookingRepo.Create(txCtx, block)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return &ConflictError{Start: req.StartDatetime, End: req.EndDatetime}
			}
			uc.logger.Error("CreateAdminBlock: failed to create block: %v", err)
			return fmt.Errorf("%w: failed to create block: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAdminBlock: successfully created block id=%d, bookingID=%s", result.ID, result.BookingID)

	return &Response{
		ID:            result.ID,
		BookingID:     result.BookingID.String(),
		HallID:        result.HallID,
		StartDatetime: result.StartDatetime,
		EndDatetime:   result.EndDatetime,
		Status:        string(result.Status),
		Reason:        result.EventTitle,
		CreatedAt:     result.CreatedAt,
	}, nil
}
