package notification_permission

import (
	"context"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
)

type Notifier interface {
	RequestPermission(ctx context.Context) bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// PermissionResponse HTTP response model
type PermissionResponse struct {
	Granted bool `json:"granted"`
}

type Handler struct {
	notifier Notifier
	logger   Logger
}

func NewHandler(notifier Notifier, logger Logger) *Handler {
	return &Handler{
		notifier: notifier,
		logger:   logger,
	}
}

// Handle POST /api/v1/admin/notifications/permission
// Повторно запрашивает разрешение на доставку напоминаний
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	granted := h.notifier.RequestPermission(r.Context())
	if !granted {
		h.logger.Warn("POST /admin/notifications/permission - Permission denied, reminders will not be delivered")
	} else {
		h.logger.Info("POST /admin/notifications/permission - Permission granted")
	}
	handlers.RespondJSON(w, http.StatusOK, &PermissionResponse{Granted: granted})
}
