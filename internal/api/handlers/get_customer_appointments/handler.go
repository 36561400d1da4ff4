package get_customer_appointments

import (
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments"
)

const (
	msgPhoneRequired = "укажите номер телефона в параметре phone"
)

// AppointmentResponse запись клиента без служебных полей
type AppointmentResponse struct {
	ID          string `json:"id"`
	ServiceName string `json:"serviceName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Status      string `json:"status"`
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

// Handle GET /api/v1/appointments?phone=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	phone := r.URL.Query().Get("phone")
	if domain.NormalizePhone(phone) == "" {
		handlers.RespondBadRequest(w, msgPhoneRequired)
		return
	}

	views, err := h.service.List(r.Context(), &appointments.ListRequest{Phone: &phone})
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list customer appointments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	result := make([]AppointmentResponse, 0, len(views))
	for _, v := range views {
		result = append(result, AppointmentResponse{
			ID:          v.ID,
			ServiceName: v.ServiceName,
			Date:        v.Date,
			Time:        v.Time,
			Status:      string(v.Status),
		})
	}

	h.logger.Info("GET /appointments - Found %d appointments for customer", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
