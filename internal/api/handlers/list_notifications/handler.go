package list_notifications

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/a7jazili/hall-booking-service/internal/api/handlers"
	"github.com/a7jazili/hall-booking-service/internal/api/middleware"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgMissingUserID = "отсутствует ID пользователя"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/notifications[?unread=true]
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	pathUserID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{id}/notifications - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	authUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{id}/notifications - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if pathUserID != authUserID {
		h.logger.Warn("GET /users/{id}/notifications - Access denied: path_user_id=%d, auth_user_id=%d", pathUserID, authUserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	unreadOnly := r.URL.Query().Get("unread") == "true"

	result, err := h.service.GetUserNotifications(r.Context(), authUserID, unreadOnly)
	if err != nil {
		h.logger.Error("GET /users/{id}/notifications - Failed to get notifications: user_id=%d, error=%v", authUserID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{id}/notifications - Notifications retrieved successfully: user_id=%d, count=%d",
		authUserID, len(result.Notifications))
	handlers.RespondJSON(w, http.StatusOK, result)
}
