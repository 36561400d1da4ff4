package get_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments"
)

const (
	msgNotFound = "запись не найдена"
)

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID            string `json:"id"`
	ServiceID     string `json:"serviceId"`
	ServiceName   string `json:"serviceName"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Status        string `json:"status"`
	ReminderSent  bool   `json:"reminderSent"`
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

// Handle GET /api/v1/admin/appointments/{appointmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]

	view, err := h.service.Get(r.Context(), appointmentID)
	if err != nil {
		if errors.Is(err, appointments.ErrAppointmentNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /admin/appointments/{id} - Failed to get appointment: appointment_id=%s, error=%v", appointmentID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &AppointmentResponse{
		ID:            view.ID,
		ServiceID:     view.ServiceID,
		ServiceName:   view.ServiceName,
		CustomerName:  view.CustomerName,
		CustomerPhone: view.CustomerPhone,
		Date:          view.Date,
		Time:          view.Time,
		Status:        string(view.Status),
		ReminderSent:  view.ReminderSent,
	})
}
