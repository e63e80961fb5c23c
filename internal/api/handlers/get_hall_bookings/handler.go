package get_hall_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/a7jazili/hall-booking-service/internal/api/handlers"
	"github.com/a7jazili/hall-booking-service/internal/api/middleware"
	"github.com/a7jazili/hall-booking-service/internal/domain"
	"github.com/a7jazili/hall-booking-service/internal/service/bookings"
	"github.com/a7jazili/hall-booking-service/internal/service/bookings/models"
)

const (
	msgInvalidHallID = "некорректный ID зала"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStatus = "некорректный статус бронирования"
	msgMissingUserID = "отсутствует ID пользователя"
	msgHallNotFound  = "зал не найден"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/halls/{hallId}/bookings[?startDate=&endDate=&status=&includeInactive=]
// Доступен только менеджеру зала
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	hallID, err := strconv.ParseInt(vars["hallId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /halls/{id}/bookings - Invalid hall ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHallID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /halls/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	query := r.URL.Query()

	req := &models.GetHallBookingsRequest{
		UserID: userID,
		HallID: hallID,
	}

	if raw := query.Get("startDate"); raw != "" {
		startDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /halls/{id}/bookings - Invalid startDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &startDate
	}

	if raw := query.Get("endDate"); raw != "" {
		endDate, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /halls/{id}/bookings - Invalid endDate: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &endDate
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	if raw := query.Get("includeInactive"); raw != "" {
		req.IncludeInactive = raw == "true"
	}

	result, err := h.service.GetHallBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrHallNotFound):
			h.logger.Warn("GET /halls/{id}/bookings - Hall not found: hall_id=%d", hallID)
			handlers.RespondNotFound(w, msgHallNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /halls/{id}/bookings - Access denied: hall_id=%d, user_id=%d", hallID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /halls/{id}/bookings - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /halls/{id}/bookings - Failed to get bookings: hall_id=%d, error=%v", hallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /halls/{id}/bookings - Bookings retrieved successfully: hall_id=%d, user_id=%d, count=%d",
		hallID, userID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
