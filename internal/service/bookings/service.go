package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/a7jazili/hall-booking-service/internal/domain"
	"github.com/a7jazili/hall-booking-service/internal/infra/storage/booking"
	hallstorage "github.com/a7jazili/hall-booking-service/internal/infra/storage/hall"
	"github.com/a7jazili/hall-booking-service/internal/service/bookings/models"
	"github.com/a7jazili/hall-booking-service/pkg/ptr"
)

// Service сервис управления жизненным циклом бронирований
type Service struct {
	bookingRepo BookingRepository
	hallRepo    HallRepository
	dispatcher  NotificationDispatcher
	logger      Logger
}

// NewService создает новый сервис бронирований
func NewService(bookingRepo BookingRepository, hallRepo HallRepository, dispatcher NotificationDispatcher, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		hallRepo:    hallRepo,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

// GetByBookingID возвращает бронирование по внешнему UUID с позициями услуг и блюд.
// Доступ имеют владелец бронирования и менеджер зала.
func (s *Service) GetByBookingID(ctx context.Context, bookingID uuid.UUID, userID int64) (*models.BookingResponse, error) {
	b, err := s.bookingRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: GetByBookingID - booking %s not found", ErrBookingNotFound, bookingID)
		}
		s.logger.Error("[GetByBookingID] Failed to get booking %s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: GetByBookingID - failed to get booking: %v", ErrInternal, err)
	}

	if err := s.checkReadAccess(ctx, b, userID); err != nil {
		return nil, err
	}

	resp := models.FromDomainBooking(b)

	services, err := s.bookingRepo.GetServices(ctx, b.ID)
	if err != nil {
		s.logger.Error("[GetByBookingID] Failed to get booking services, bookingID=%d: %v", b.ID, err)
		return nil, fmt.Errorf("%w: GetByBookingID - failed to get services: %v", ErrInternal, err)
	}

	meals, err := s.bookingRepo.GetMeals(ctx, b.ID)
	if err != nil {
		s.logger.Error("[GetByBookingID] Failed to get booking meals, bookingID=%d: %v", b.ID, err)
		return nil, fmt.Errorf("%w: GetByBookingID - failed to get meals: %v", ErrInternal, err)
	}

	resp.AttachLineItems(services, meals)

	return resp, nil
}

// GetUserBookings возвращает бронирования пользователя, опционально по статусу
func (s *Service) GetUserBookings(ctx context.Context, userID int64, status *string) (*models.BookingListResponse, error) {
	var domainStatus *domain.BookingStatus
	if status != nil {
		st, err := models.ToDomainBookingStatus(*status)
		if err != nil {
			return nil, fmt.Errorf("%w: GetUserBookings - invalid status %q", ErrInvalidInput, *status)
		}
		domainStatus = &st
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, userID, domainStatus)
	if err != nil {
		s.logger.Error("[GetUserBookings] Failed to get bookings, userID=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - failed to get bookings: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// GetHallBookings возвращает бронирования зала за период.
// Доступен только менеджеру зала: список включает контактные данные клиентов.
func (s *Service) GetHallBookings(ctx context.Context, req *models.GetHallBookingsRequest) (*models.BookingListResponse, error) {
	hall, err := s.getHall(ctx, req.HallID, "GetHallBookings")
	if err != nil {
		return nil, err
	}

	if !hall.IsManagedBy(req.UserID) {
		return nil, fmt.Errorf("%w: GetHallBookings - user %d is not a manager of hall %d", ErrAccessDenied, req.UserID, req.HallID)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		return nil, fmt.Errorf("%w: GetHallBookings - %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.GetByHallWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("[GetHallBookings] Failed to get bookings, hallID=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: GetHallBookings - failed to get bookings: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование.
// Владелец может отменить только pending бронирование; менеджер зала
// отменяет любое не-терминальное, причина сохраняется в admin_notes.
func (s *Service) Cancel(ctx context.Context, bookingID uuid.UUID, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	b, err := s.bookingRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: Cancel - booking %s not found", ErrBookingNotFound, bookingID)
		}
		s.logger.Error("[Cancel] Failed to get booking %s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Cancel - failed to get booking: %v", ErrInternal, err)
	}

	hall, err := s.getHall(ctx, b.HallID, "Cancel")
	if err != nil {
		return nil, err
	}

	isOwner := b.UserID != nil && *b.UserID == req.UserID
	isManager := hall.IsManagedBy(req.UserID)

	if !isOwner && !isManager {
		return nil, fmt.Errorf("%w: Cancel - user %d cannot cancel booking %s", ErrAccessDenied, req.UserID, bookingID)
	}

	// Владелец может отменять только до одобрения
	if isOwner && !isManager && !b.CanBeCancelledByCustomer() {
		return nil, fmt.Errorf("%w: Cancel - booking %s in status %s cannot be cancelled by customer", ErrInvalidTransition, bookingID, b.Status)
	}

	if !b.Status.CanTransitionTo(domain.StatusCancelled) {
		return nil, fmt.Errorf("%w: Cancel - transition %s -> %s is not allowed", ErrInvalidTransition, b.Status, domain.StatusCancelled)
	}

	if isManager && req.Reason != "" {
		if err := s.bookingRepo.SetAdminNotes(ctx, b.ID, req.Reason); err != nil {
			s.logger.Error("[Cancel] Failed to set admin notes, bookingID=%d: %v", b.ID, err)
			return nil, fmt.Errorf("%w: Cancel - failed to set admin notes: %v", ErrInternal, err)
		}
		b.AdminNotes = ptr.Ptr(req.Reason)
	}

	if err := s.applyTransition(ctx, b, hall, domain.StatusCancelled); err != nil {
		return nil, err
	}

	return models.FromDomainBooking(b), nil
}

// UpdateStatus переводит бронирование в новый статус (только менеджер зала).
// Переходы ограничены графом статусов; условное обновление защищает от
// конкурентных изменений между чтением и записью.
func (s *Service) UpdateStatus(ctx context.Context, bookingID uuid.UUID, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - invalid status %q", ErrInvalidInput, req.Status)
	}

	b, err := s.bookingRepo.GetByBookingID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			return nil, fmt.Errorf("%w: UpdateStatus - booking %s not found", ErrBookingNotFound, bookingID)
		}
		s.logger.Error("[UpdateStatus] Failed to get booking %s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - failed to get booking: %v", ErrInternal, err)
	}

	hall, err := s.getHall(ctx, b.HallID, "UpdateStatus")
	if err != nil {
		return nil, err
	}

	if !hall.IsManagedBy(req.UserID) {
		return nil, fmt.Errorf("%w: UpdateStatus - user %d is not a manager of hall %d", ErrAccessDenied, req.UserID, b.HallID)
	}

	if !b.Status.CanTransitionTo(newStatus) {
		return nil, fmt.Errorf("%w: UpdateStatus - transition %s -> %s is not allowed", ErrInvalidTransition, b.Status, newStatus)
	}

	if req.AdminNotes != nil {
		if err := s.bookingRepo.SetAdminNotes(ctx, b.ID, *req.AdminNotes); err != nil {
			s.logger.Error("[UpdateStatus] Failed to set admin notes, bookingID=%d: %v", b.ID, err)
			return nil, fmt.Errorf("%w: UpdateStatus - failed to set admin notes: %v", ErrInternal, err)
		}
		b.AdminNotes = req.AdminNotes
	}

	if err := s.applyTransition(ctx, b, hall, newStatus); err != nil {
		return nil, err
	}

	return models.FromDomainBooking(b), nil
}

// applyTransition выполняет условное обновление статуса и отправляет уведомление.
// Уведомление отправляется ровно один раз на успешный переход; пропускается
// для административных блокировок и бронирований без привязки к пользователю.
func (s *Service) applyTransition(ctx context.Context, b *domain.Booking, hall *domain.Hall, newStatus domain.BookingStatus) error {
	if err := s.bookingRepo.UpdateStatus(ctx, b.ID, b.Status, newStatus); err != nil {
		if errors.Is(err, booking.ErrStatusConflict) {
			s.logger.Warn("[applyTransition] Concurrent status change, bookingID=%d, expected=%s", b.ID, b.Status)
			return fmt.Errorf("%w: applyTransition - booking %d status changed concurrently", ErrTransitionConflict, b.ID)
		}
		s.logger.Error("[applyTransition] Failed to update status, bookingID=%d: %v", b.ID, err)
		return fmt.Errorf("%w: applyTransition - failed to update status: %v", ErrInternal, err)
	}

	oldStatus := b.Status
	b.Status = newStatus

	s.logger.Info("[applyTransition] Booking %s transitioned %s -> %s", b.BookingID, oldStatus, newStatus)

	if b.IsAdminBlock || b.UserID == nil {
		return nil
	}

	s.dispatcher.Dispatch(ctx, b, hall.Name, newStatus)

	return nil
}

func (s *Service) checkReadAccess(ctx context.Context, b *domain.Booking, userID int64) error {
	if b.UserID != nil && *b.UserID == userID {
		return nil
	}

	hall, err := s.getHall(ctx, b.HallID, "checkReadAccess")
	if err != nil {
		return err
	}

	if !hall.IsManagedBy(userID) {
		return fmt.Errorf("%w: checkReadAccess - user %d has no access to booking %s", ErrAccessDenied, userID, b.BookingID)
	}

	return nil
}

func (s *Service) getHall(ctx context.Context, hallID int64, method string) (*domain.Hall, error) {
	hall, err := s.hallRepo.GetByID(ctx, hallID)
	if err != nil {
		if errors.Is(err, hallstorage.ErrHallNotFound) {
			return nil, fmt.Errorf("%w: %s - hall %d not found", ErrHallNotFound, method, hallID)
		}
		s.logger.Error("[%s] Failed to get hall %d: %v", method, hallID, err)
		return nil, fmt.Errorf("%w: %s - failed to get hall: %v", ErrInternal, method, err)
	}
	return hall, nil
}
