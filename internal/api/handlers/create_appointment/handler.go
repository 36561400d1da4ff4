package create_appointment

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments"
	createAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "не заполнены обязательные поля записи"
	msgInvalidDate        = "некорректная дата записи, ожидается YYYY-MM-DD не ранее сегодняшнего дня"
	msgInvalidTimeSlot    = "время не входит в сетку слотов рабочего дня"
	msgSlotNotAvailable   = "выбранный временной слот уже занят"
	msgServiceNotFound    = "услуга не найдена"
	msgInvalidDateTime    = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	service AppointmentService
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, service AppointmentService, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.create(w, r, createAppointment.SourceCustomer, "POST /appointments")
}

// HandleAdmin POST /api/v1/admin/appointments[?force=true]
// force=true создаёт запись без проверки занятости слота
func (h *Handler) HandleAdmin(w http.ResponseWriter, r *http.Request) {
	if strings.EqualFold(r.URL.Query().Get("force"), "true") {
		h.forceCreate(w, r)
		return
	}
	h.create(w, r, createAppointment.SourceAdmin, "POST /admin/appointments")
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request, source createAppointment.Source, route string) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(source))
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("%s - Slot not available: date=%s, time=%s", route, req.Date, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrServiceNotFound):
			h.logger.Warn("%s - Service not found: service_id=%s", route, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createAppointment.ErrInvalidDate):
			h.logger.Warn("%s - Invalid date: %s", route, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("%s - Invalid time slot: %s", route, req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: %v", route, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("%s - Failed to create appointment: error=%v", route, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Appointment created successfully: appointment_id=%s", route, result.Appointment.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func (h *Handler) forceCreate(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/appointments?force=true - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.ServiceID == "" || req.Date == "" || req.Time == "" {
		h.logger.Warn("POST /admin/appointments?force=true - Missing required fields")
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	appointment, err := h.service.Create(r.Context(), req.ToServiceRequest())
	if err != nil {
		if errors.Is(err, appointments.ErrInvalidInput) {
			h.logger.Warn("POST /admin/appointments?force=true - Invalid date or time: date=%s, time=%s", req.Date, req.Time)
			handlers.RespondBadRequest(w, msgInvalidDateTime)
			return
		}
		h.logger.Error("POST /admin/appointments?force=true - Failed to create appointment: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Warn("POST /admin/appointments?force=true - Appointment created without availability check: appointment_id=%s, date=%s, time=%s",
		appointment.ID, appointment.Date, appointment.Time)
	handlers.RespondJSON(w, http.StatusCreated, &AppointmentResponse{
		ID:            appointment.ID,
		ServiceID:     appointment.ServiceID,
		CustomerName:  appointment.CustomerName,
		CustomerPhone: appointment.CustomerPhone,
		Date:          appointment.Date,
		Time:          appointment.Time,
		Status:        string(appointment.Status),
		ReminderSent:  appointment.ReminderSent,
	})
}
