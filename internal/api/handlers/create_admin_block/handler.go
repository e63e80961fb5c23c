package create_admin_block

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/a7jazili/hall-booking-service/internal/api/handlers"
	"github.com/a7jazili/hall-booking-service/internal/api/middleware"
	createAdminBlock "github.com/a7jazili/hall-booking-service/internal/usecase/create_admin_block"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidHallID      = "некорректный ID зала"
	msgInvalidDatetime    = "некорректный формат даты и времени, ожидается YYYY-MM-DDTHH:MM:SS"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgHallNotFound       = "зал не найден"
	msgForbidden          = "доступ запрещен"
	msgSlotConflict       = "выбранный интервал уже занят"
)

type Handler struct {
	useCase CreateAdminBlockUseCase
	logger  Logger
}

func NewHandler(useCase CreateAdminBlockUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/halls/{hallId}/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	hallID, err := strconv.ParseInt(vars["hallId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /halls/{id}/blocks - Invalid hall ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHallID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /halls/{id}/blocks - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateAdminBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /halls/{id}/blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(hallID, userID)
	if err != nil {
		h.logger.Warn("POST /halls/{id}/blocks - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDatetime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAdminBlock.ErrHallNotFound):
			h.logger.Warn("POST /halls/{id}/blocks - Hall not found: hall_id=%d", hallID)
			handlers.RespondNotFound(w, msgHallNotFound)

		case errors.Is(err, createAdminBlock.ErrAccessDenied):
			h.logger.Warn("POST /halls/{id}/blocks - Access denied: hall_id=%d, user_id=%d", hallID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createAdminBlock.ErrSlotConflict):
			h.logger.Warn("POST /halls/{id}/blocks - Slot conflict: hall_id=%d", hallID)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createAdminBlock.ErrInvalidInput):
			h.logger.Warn("POST /halls/{id}/blocks - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /halls/{id}/blocks - Failed to create block: hall_id=%d, error=%v", hallID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /halls/{id}/blocks - Block created successfully: booking_id=%s, hall_id=%d, user_id=%d",
		result.BookingID, hallID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
