package mark_notification_read

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/a7jazili/hall-booking-service/internal/api/handlers"
	"github.com/a7jazili/hall-booking-service/internal/api/middleware"
	"github.com/a7jazili/hall-booking-service/internal/service/notifications"
)

const (
	msgInvalidNotificationID = "некорректный ID уведомления"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgNotFound              = "уведомление не найдено"
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

// Handle PATCH /api/v1/notifications/{notificationId}/read
// Уведомление можно пометить прочитанным только своему получателю:
// чужой ID дает 404, а не 403, чтобы не раскрывать существование
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	notificationID, err := strconv.ParseInt(vars["notificationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /notifications/{id}/read - Invalid notification ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNotificationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /notifications/{id}/read - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.MarkAsRead(r.Context(), notificationID, userID); err != nil {
		switch {
		case errors.Is(err, notifications.ErrNotificationNotFound):
			h.logger.Warn("PATCH /notifications/{id}/read - Notification not found: notification_id=%d, user_id=%d",
				notificationID, userID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /notifications/{id}/read - Failed to mark as read: notification_id=%d, error=%v",
				notificationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /notifications/{id}/read - Marked as read: notification_id=%d, user_id=%d",
		notificationID, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
