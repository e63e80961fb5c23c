package check_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/a7jazili/hall-booking-service/internal/api/handlers"
	"github.com/a7jazili/hall-booking-service/internal/domain"
	checkAvailability "github.com/a7jazili/hall-booking-service/internal/usecase/check_availability"
)

const (
	msgInvalidHallID    = "некорректный ID зала"
	msgInvalidDatetime  = "некорректный формат даты и времени, ожидается YYYY-MM-DDTHH:MM:SS"
	msgInvalidExcludeID = "некорректный ID исключаемого бронирования"
	msgHallNotFound     = "зал не найден"
	msgInvalidInterval  = "некорректный интервал"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/halls/{hallId}/availability?start=&end=[&excludeBookingId=]
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	hallID, err := strconv.ParseInt(vars["hallId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /halls/{id}/availability - Invalid hall ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHallID)
		return
	}

	query := r.URL.Query()

	start, err := time.Parse(domain.DateTimeFormat, query.Get("start"))
	if err != nil {
		h.logger.Warn("GET /halls/{id}/availability - Invalid start: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDatetime)
		return
	}

	end, err := time.Parse(domain.DateTimeFormat, query.Get("end"))
	if err != nil {
		h.logger.Warn("GET /halls/{id}/availability - Invalid end: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDatetime)
		return
	}

	var excludeBookingID *int64
	if raw := query.Get("excludeBookingId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /halls/{id}/availability - Invalid excludeBookingId: %v", err)
			handlers.RespondBadRequest(w, msgInvalidExcludeID)
			return
		}
		excludeBookingID = &id
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		HallID:           hallID,
		StartDatetime:    start,
		EndDatetime:      end,
		ExcludeBookingID: excludeBookingID,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrHallNotFound):
			h.logger.Warn("GET /halls/{id}/availability - Hall not found: hall_id=%d", hallID)
			handlers.RespondNotFound(w, msgHallNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /halls/{id}/availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		default:
			h.logger.Error("GET /halls/{id}/availability - Failed to check availability: hall_id=%d, error=%v", hallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /halls/{id}/availability - Checked: hall_id=%d, available=%t", hallID, result.Available)
	handlers.RespondJSON(w, http.StatusOK, result)
}
