package export_appointments

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	exportAppointments "github.com/m04kA/SMC-SalonService/internal/usecase/export_appointments"
)

const (
	msgNoAppointments = "нет записей для экспорта"
)

type Handler struct {
	useCase ExportAppointmentsUseCase
	logger  Logger
}

func NewHandler(useCase ExportAppointmentsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/appointments/export
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		if errors.Is(err, exportAppointments.ErrNoAppointments) {
			h.logger.Warn("GET /admin/appointments/export - Nothing to export")
			handlers.RespondNotFound(w, msgNoAppointments)
			return
		}
		h.logger.Error("GET /admin/appointments/export - Failed to export appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Content); err != nil {
		h.logger.Error("GET /admin/appointments/export - Failed to write file: %v", err)
		return
	}

	h.logger.Info("GET /admin/appointments/export - Exported %d appointments to %s", result.Rows, result.Filename)
}
