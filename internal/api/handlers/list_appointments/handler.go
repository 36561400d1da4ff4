package list_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments"
)

const (
	msgInvalidFilter = "некорректный фильтр: status должен быть pending, confirmed или cancelled"
)

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

// Handle GET /api/v1/admin/appointments?date=&status=&phone=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &appointments.ListRequest{
		Date:   optional(query.Get("date")),
		Status: optional(query.Get("status")),
		Phone:  optional(query.Get("phone")),
	}

	views, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, appointments.ErrInvalidInput) {
			h.logger.Warn("GET /admin/appointments - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)
			return
		}
		h.logger.Error("GET /admin/appointments - Failed to list appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromViews(views))
}

// HandleStats GET /api/v1/admin/appointments/stats
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats := h.service.Stats(r.Context())
	handlers.RespondJSON(w, http.StatusOK, &StatsResponse{
		Total:     stats.Total,
		Today:     stats.Today,
		Confirmed: stats.Confirmed,
	})
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
