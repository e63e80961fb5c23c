package create_booking

import (
	"errors"
	"net/http"

	"github.com/a7jazili/hall-booking-service/internal/api/handlers"
	"github.com/a7jazili/hall-booking-service/internal/api/middleware"
	createBooking "github.com/a7jazili/hall-booking-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDatetime    = "некорректный формат даты и времени, ожидается YYYY-MM-DDTHH:MM:SS"
	msgHallNotFound       = "зал не найден"
	msgHallNotBookable    = "зал не принимает бронирования"
	msgCapacityExceeded   = "число гостей превышает вместимость зала"
	msgSlotConflict       = "выбранный интервал уже занят"
	msgDateInPast         = "дата начала бронирования в прошлом"
	msgServiceUnavailable = "выбранная услуга недоступна"
	msgMealUnavailable    = "выбранное блюдо недоступно"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
// Заголовок X-User-ID опционален: заявка без него создается анонимной
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var userID *int64
	if id, ok := middleware.GetUserID(r.Context()); ok {
		userID = &id
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDatetime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: hall_id=%d", req.HallID)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createBooking.ErrHallNotFound):
			h.logger.Warn("POST /bookings - Hall not found: hall_id=%d", req.HallID)
			handlers.RespondNotFound(w, msgHallNotFound)

		case errors.Is(err, createBooking.ErrHallNotBookable):
			h.logger.Warn("POST /bookings - Hall not bookable: hall_id=%d", req.HallID)
			handlers.RespondError(w, http.StatusConflict, msgHallNotBookable)

		case errors.Is(err, createBooking.ErrCapacityExceeded):
			h.logger.Warn("POST /bookings - Capacity exceeded: hall_id=%d, attendees=%d", req.HallID, req.AttendeesCount)
			handlers.RespondBadRequest(w, msgCapacityExceeded)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Start datetime in past: hall_id=%d", req.HallID)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrServiceNotAvailable):
			h.logger.Warn("POST /bookings - Service not available: hall_id=%d", req.HallID)
			handlers.RespondBadRequest(w, msgServiceUnavailable)

		case errors.Is(err, createBooking.ErrMealNotAvailable):
			h.logger.Warn("POST /bookings - Meal not available: hall_id=%d", req.HallID)
			handlers.RespondBadRequest(w, msgMealUnavailable)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: hall_id=%d, error=%v", req.HallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, hall_id=%d",
		result.BookingID, req.HallID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
