package clear_appointments

import (
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
)

const (
	msgConfirmationRequired = "удаление всех записей необратимо, повторите запрос с confirm=true"
)

// ClearResponse HTTP response model
type ClearResponse struct {
	Removed int `json:"removed"`
}

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/appointments?confirm=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("confirm") != "true" {
		h.logger.Warn("DELETE /admin/appointments - Missing confirmation")
		handlers.RespondBadRequest(w, msgConfirmationRequired)
		return
	}

	removed, err := h.service.ClearAll(r.Context())
	if err != nil {
		h.logger.Error("DELETE /admin/appointments - Failed to clear appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Warn("DELETE /admin/appointments - All appointments removed: count=%d", removed)
	handlers.RespondJSON(w, http.StatusOK, &ClearResponse{Removed: removed})
}
