package manage_hall_services

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
	msgInvalidServiceID   = "некорректный ID услуги"
	msgInvalidPrice       = "некорректный формат цены"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgHallNotFound       = "зал не найден"
	msgServiceNotFound    = "услуга не найдена"
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

// HandleCreate POST /api/v1/halls/{hallId}/services
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	hallID, userID, ok := h.parseCommon(w, r, "POST /halls/{id}/services")
	if !ok {
		return
	}

	var req CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /halls/{id}/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(hallID, userID)
	if err != nil {
		h.logger.Warn("POST /halls/{id}/services - Invalid price: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPrice)
		return
	}

	result, err := h.service.CreateService(r.Context(), serviceReq)
	if err != nil {
		h.respondServiceError(w, "POST /halls/{id}/services", hallID, userID, err)
		return
	}

	h.logger.Info("POST /halls/{id}/services - Service created: hall_id=%d, service_id=%d", hallID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleUpdate PATCH /api/v1/halls/{hallId}/services/{serviceId}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	hallID, userID, ok := h.parseCommon(w, r, "PATCH /halls/{id}/services/{serviceId}")
	if !ok {
		return
	}

	serviceID, err := strconv.ParseInt(mux.Vars(r)["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /halls/{id}/services/{serviceId} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	var req UpdateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /halls/{id}/services/{serviceId} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(hallID, serviceID, userID)
	if err != nil {
		h.logger.Warn("PATCH /halls/{id}/services/{serviceId} - Invalid price: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPrice)
		return
	}

	result, err := h.service.UpdateService(r.Context(), serviceReq)
	if err != nil {
		h.respondServiceError(w, "PATCH /halls/{id}/services/{serviceId}", hallID, userID, err)
		return
	}

	h.logger.Info("PATCH /halls/{id}/services/{serviceId} - Service updated: hall_id=%d, service_id=%d", hallID, serviceID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleDelete DELETE /api/v1/halls/{hallId}/services/{serviceId}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	hallID, userID, ok := h.parseCommon(w, r, "DELETE /halls/{id}/services/{serviceId}")
	if !ok {
		return
	}

	serviceID, err := strconv.ParseInt(mux.Vars(r)["serviceId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /halls/{id}/services/{serviceId} - Invalid service ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidServiceID)
		return
	}

	if err := h.service.DeleteService(r.Context(), hallID, serviceID, userID); err != nil {
		h.respondServiceError(w, "DELETE /halls/{id}/services/{serviceId}", hallID, userID, err)
		return
	}

	h.logger.Info("DELETE /halls/{id}/services/{serviceId} - Service deleted: hall_id=%d, service_id=%d", hallID, serviceID)
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

	case errors.Is(err, halls.ErrServiceNotFound):
		h.logger.Warn("%s - Service not found: hall_id=%d", route, hallID)
		handlers.RespondNotFound(w, msgServiceNotFound)

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
