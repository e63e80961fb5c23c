package manage_hall_meals

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/a7jazili/hall-booking-service/internal/api/handlers"
	"github.com/a7jazili/hall-booking-service/internal/api/middleware"
	"github.com/a7jazili/hall-booking-service/internal/service/halls"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidHallID      = "некорректный ID зала"
	msgInvalidMealID      = "некорректный ID блюда"
	msgInvalidPrice       = "некорректный формат цены"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgHallNotFound       = "зал не найден"
	msgMealNotFound       = "блюдо не найдено"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	service HallService
	logger  Logger
}

func NewHandler(service HallService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleCreate POST /api/v1/halls/{hallId}/meals
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	hallID, userID, ok := h.parseCommon(w, r, "POST /halls/{id}/meals")
	if !ok {
		return
	}

	var req CreateMealRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /halls/{id}/meals - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(hallID, userID)
	if err != nil {
		h.logger.Warn("POST /halls/{id}/meals - Invalid price: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPrice)
		return
	}

	result, err := h.service.CreateMeal(r.Context(), serviceReq)
	if err != nil {
		h.respondServiceError(w, "POST /halls/{id}/meals", hallID, userID, err)
		return
	}

	h.logger.Info("POST /halls/{id}/meals - Meal created: hall_id=%d, meal_id=%d", hallID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PATCH /api/v1/halls/{hallId}/meals/{mealId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	hallID, userID, ok := h.parseCommon(w, r, "PATCH /halls/{id}/meals/{mealId}")
	if !ok {
		return
	}

	mealID, err := strconv.ParseInt(mux.Vars(r)["mealId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /halls/{id}/meals/{mealId} - Invalid meal ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMealID)
		return
	}

	var req UpdateMealRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /halls/{id}/meals/{mealId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(hallID, mealID, userID)
	if err != nil {
		h.logger.Warn("PATCH /halls/{id}/meals/{mealId} - Invalid price: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPrice)
		return
	}

	result, err := h.service.UpdateMeal(r.Context(), serviceReq)
	if err != nil {
		h.respondServiceError(w, "PATCH /halls/{id}/meals/{mealId}", hallID, userID, err)
		return
	}

	h.logger.Info("PATCH /halls/{id}/meals/{mealId} - Meal updated: hall_id=%d, meal_id=%d", hallID, mealID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/halls/{hallId}/meals/{mealId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	hallID, userID, ok := h.parseCommon(w, r, "DELETE /halls/{id}/meals/{mealId}")
	if !ok {
		return
	}

	mealID, err := strconv.ParseInt(mux.Vars(r)["mealId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /halls/{id}/meals/{mealId} - Invalid meal ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMealID)
		return
	}

	if err := h.service.DeleteMeal(r.Context(), hallID, mealID, userID); err != nil {
		h.respondServiceError(w, "DELETE /halls/{id}/meals/{mealId}", hallID, userID, err)
		return
	}

	h.logger.Info("DELETE /halls/{id}/meals/{mealId} - Meal deleted: hall_id=%d, meal_id=%d", hallID, mealID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) parseCommon(w http.ResponseWriter, r *http.Request, route string) (hallID, userID int64, ok bool) {
	hallID, err := strconv.ParseInt(mux.Vars(r)["hallId"], 10, 64)
	if err != nil {
		h.logger.Warn("%s - Invalid hall ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidHallID)
		return 0, 0, false
	}

	userID, authOK := middleware.GetUserID(r.Context())
	if !authOK {
		h.logger.Warn("%s - Missing user ID", route)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return 0, 0, false
	}

	return hallID, userID, true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, hallID, userID int64, err error) {
	switch {
	case errors.Is(err, halls.ErrHallNotFound):
		h.logger.Warn("%s - Hall not found: hall_id=%d", route, hallID)
		handlers.RespondNotFound(w, msgHallNotFound)

	case errors.Is(err, halls.ErrMealNotFound):
		h.logger.Warn("%s - Meal not found: hall_id=%d", route, hallID)
		handlers.RespondNotFound(w, msgMealNotFound)

	case errors.Is(err, halls.ErrAccessDenied):
		h.logger.Warn("%s - Access denied: hall_id=%d, user_id=%d", route, hallID, userID)
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, halls.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, err.Error())

	default:
		h.logger.Error("%s - Request failed: hall_id=%d, error=%v", route, hallID, err)
		handlers.RespondInternalError(w)
	}
}
