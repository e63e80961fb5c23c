package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/a7jazili/hall-booking-service/internal/domain"
	bookingRepo "github.com/a7jazili/hall-booking-service/internal/infra/storage/booking"
	hallRepo "github.com/a7jazili/hall-booking-service/internal/infra/storage/hall"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo     BookingRepository
	hallRepo        HallRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	strictLineItems bool
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	hallRepo HallRepository,
	txManager TransactionManager,
	strictLineItems bool,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:     bookingRepo,
		hallRepo:        hallRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		strictLineItems: strictLineItems,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка занятости и запись выполняются в одной сериализуемой транзакции,
// чтобы два конкурентных запроса не получили один и тот же слот.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: hall=%d, start=%s, end=%s, attendees=%d",
		req.HallID,
		req.StartDatetime.Format(domain.DateTimeFormat),
		req.EndDatetime.Format(domain.DateTimeFormat),
		req.AttendeesCount,
	)

	now := uc.timeProvider.Now()

	// 1. Валидация входных данных
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем зал
	hall, err := uc.hallRepo.GetByID(ctx, req.HallID)
	if err != nil {
		if errors.Is(err, hallRepo.ErrHallNotFound) {
			uc.logger.Warn("CreateBooking: hall id=%d not found", req.HallID)
			return nil, ErrHallNotFound
		}
		uc.logger.Error("CreateBooking: failed to get hall id=%d: %v", req.HallID, err)
		return nil, fmt.Errorf("%w: failed to get hall: %v", ErrInternal, err)
	}

	// 3. Зал должен принимать бронирования
	if !hall.IsBookable() {
		uc.logger.Warn("CreateBooking: hall id=%d is not bookable, status=%s", hall.ID, hall.Status)
		return nil, ErrHallNotBookable
	}

	// 4. Проверяем вместимость до любых записей в БД
	if req.AttendeesCount > hall.Capacity {
		uc.logger.Warn("CreateBooking: attendees %d exceed capacity %d of hall id=%d",
			req.AttendeesCount, hall.Capacity, hall.ID)
		return nil, fmt.Errorf("%w: %d attendees, capacity %d", ErrCapacityExceeded, req.AttendeesCount, hall.Capacity)
	}

	var result *domain.Booking
	var services []*domain.BookingService
	var meals []*domain.BookingMeal

	// 5. Проверка занятости и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Пересечения с активными бронированиями (FOR UPDATE)
		overlapping, err := uc.bookingRepo.GetOverlapping(txCtx, req.HallID, req.StartDatetime, req.EndDatetime, nil)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to check overlapping bookings: %v", ErrInternal, err)
		}

		if len(overlapping) > 0 {
			first := overlapping[0]
			uc.logger.Warn("CreateBooking: slot conflict with booking id=%d (%s - %s)",
				first.ID,
				first.StartDatetime.Format(domain.DateTimeFormat),
				first.EndDatetime.Format(domain.DateTimeFormat),
			)
			return &ConflictError{Start: first.StartDatetime, End: first.EndDatetime}
		}

		// 5.2. Собираем позиции услуг и блюд со снимками цен из каталога
		services, err = uc.resolveServices(txCtx, hall.ID, req.Services)
		if err != nil {
			return err
		}

		meals, err = uc.resolveMeals(txCtx, hall.ID, req.Meals)
		if err != nil {
			return err
		}

		// 5.3. Итоговая стоимость: аренда + принятые позиции
		totalPrice := computeBasePrice(hall, req.StartDatetime, req.EndDatetime).
			Add(sumLineItems(services, meals))

		booking := &domain.Booking{
			BookingID:        uuid.New(),
			HallID:           req.HallID,
			UserID:           req.UserID,
			CustomerName:     req.CustomerName,
			CustomerEmail:    req.CustomerEmail,
			CustomerPhone:    req.CustomerPhone,
			EventTitle:       req.EventTitle,
			EventDescription: req.EventDescription,
			AttendeesCount:   req.AttendeesCount,
			StartDatetime:    req.StartDatetime,
			EndDatetime:      req.EndDatetime,
			TotalPrice:       totalPrice,
			Status:           domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: slot taken at insert, hall=%d", req.HallID)
				return &ConflictError{Start: req.StartDatetime, End: req.EndDatetime}
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 5.4. Сохраняем позиции
		for _, item := range services {
			item.BookingID = created.ID
			if err := uc.bookingRepo.AddService(txCtx, item); err != nil {
				uc.logger.Error("CreateBooking: failed to add service item: %v", err)
				return fmt.Errorf("%w: failed to add service item: %v", ErrInternal, err)
			}
		}

		for _, item := range meals {
			item.BookingID = created.ID
			if err := uc.bookingRepo.AddMeal(txCtx, item); err != nil {
				uc.logger.Error("CreateBooking: failed to add meal item: %v", err)
				return fmt.Errorf("%w: failed to add meal item: %v", ErrInternal, err)
			}
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, bookingID=%s, total=%s",
		result.ID, result.BookingID, result.TotalPrice.StringFixed(domain.MoneyScale))

	return &Response{
		ID:               result.ID,
		BookingID:        result.BookingID.String(),
		HallID:           result.HallID,
		UserID:           result.UserID,
		CustomerName:     result.CustomerName,
		CustomerEmail:    result.CustomerEmail,
		CustomerPhone:    result.CustomerPhone,
		EventTitle:       result.EventTitle,
		EventDescription: result.EventDescription,
		AttendeesCount:   result.AttendeesCount,
		StartDatetime:    result.StartDatetime,
		EndDatetime:      result.EndDatetime,
		TotalPrice:       result.TotalPrice.StringFixed(domain.MoneyScale),
		Status:           string(result.Status),
		ServicesCount:    len(services),
		MealsCount:       len(meals),
		CreatedAt:        result.CreatedAt,
		UpdatedAt:        result.UpdatedAt,
	}, nil
}

// resolveServices строит позиции услуг со снимками цен.
// Недоступные и чужие услуги пропускаются либо отклоняют запрос
// в зависимости от strictLineItems.
func (uc *UseCase) resolveServices(ctx context.Context, hallID int64, selections []ServiceSelection) ([]*domain.BookingService, error) {
	items := make([]*domain.BookingService, 0, len(selections))

	for _, sel := range selections {
		service, err := uc.hallRepo.GetServiceByID(ctx, hallID, sel.ServiceID)
		if err != nil {
			if errors.Is(err, hallRepo.ErrServiceNotFound) {
				if uc.strictLineItems {
					return nil, fmt.Errorf("%w: service id=%d", ErrServiceNotAvailable, sel.ServiceID)
				}
				uc.logger.Warn("CreateBooking: skipping unknown service id=%d for hall id=%d", sel.ServiceID, hallID)
				continue
			}
			uc.logger.Error("CreateBooking: failed to get service id=%d: %v", sel.ServiceID, err)
			return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}

		if !service.IsAvailable {
			if uc.strictLineItems {
				return nil, fmt.Errorf("%w: service id=%d", ErrServiceNotAvailable, sel.ServiceID)
			}
			uc.logger.Warn("CreateBooking: skipping unavailable service id=%d", sel.ServiceID)
			continue
		}

		items = append(items, &domain.BookingService{
			ServiceID: service.ID,
			Quantity:  sel.Quantity,
			Price:     service.Price,
			Notes:     sel.Notes,
		})
	}

	return items, nil
}

// resolveMeals строит позиции блюд со снимками цен и пересчитанной суммой
func (uc *UseCase) resolveMeals(ctx context.Context, hallID int64, selections []MealSelection) ([]*domain.BookingMeal, error) {
	items := make([]*domain.BookingMeal, 0, len(selections))

	for _, sel := range selections {
		meal, err := uc.hallRepo.GetMealByID(ctx, hallID, sel.MealID)
		if err != nil {
			if errors.Is(err, hallRepo.ErrMealNotFound) {
				if uc.strictLineItems {
					return nil, fmt.Errorf("%w: meal id=%d", ErrMealNotAvailable, sel.MealID)
				}
				uc.logger.Warn("CreateBooking: skipping unknown meal id=%d for hall id=%d", sel.MealID, hallID)
				continue
			}
			uc.logger.Error("CreateBooking: failed to get meal id=%d: %v", sel.MealID, err)
			return nil, fmt.Errorf("%w: failed to get meal: %v", ErrInternal, err)
		}

		if !meal.IsAvailable || sel.Quantity < meal.MinOrder {
			if uc.strictLineItems {
				return nil, fmt.Errorf("%w: meal id=%d", ErrMealNotAvailable, sel.MealID)
			}
			uc.logger.Warn("CreateBooking: skipping meal id=%d (available=%t, quantity=%d, minOrder=%d)",
				sel.MealID, meal.IsAvailable, sel.Quantity, meal.MinOrder)
			continue
		}

		item := &domain.BookingMeal{
			MealID:         meal.ID,
			Quantity:       sel.Quantity,
			PricePerPerson: meal.PricePerPerson,
			ServingTime:    sel.ServingTime,
			Notes:          sel.Notes,
		}
		item.RecalcTotal()

		items = append(items, item)
	}

	return items, nil
}
