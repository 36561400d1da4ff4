package create_appointment

import (
	"github.com/m04kA/SMC-SalonService/internal/service/appointments"
	createAppointment "github.com/m04kA/SMC-SalonService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ServiceID     string `json:"serviceId"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	Date          string `json:"date"` // "2024-06-01"
	Time          string `json:"time"` // "14:00"
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID             string `json:"id"`
	ServiceID      string `json:"serviceId"`
	ServiceName    string `json:"serviceName,omitempty"`
	CustomerName   string `json:"customerName"`
	CustomerPhone  string `json:"customerPhone"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Status         string `json:"status"`
	ReminderSent   bool   `json:"reminderSent"`
	SuccessMessage string `json:"successMessage,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(source createAppointment.Source) *createAppointment.Request {
	return &createAppointment.Request{
		ServiceID:     r.ServiceID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Date:          r.Date,
		Time:          r.Time,
		Source:        source,
	}
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateAppointmentRequest) ToServiceRequest() *appointments.CreateRequest {
	return &appointments.CreateRequest{
		ServiceID:     r.ServiceID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Date:          r.Date,
		Time:          r.Time,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	a := resp.Appointment
	return &AppointmentResponse{
		ID:             a.ID,
		ServiceID:      a.ServiceID,
		ServiceName:    resp.ServiceName,
		CustomerName:   a.CustomerName,
		CustomerPhone:  a.CustomerPhone,
		Date:           a.Date,
		Time:           a.Time,
		Status:         string(a.Status),
		ReminderSent:   a.ReminderSent,
		SuccessMessage: resp.SuccessMessage,
	}
}
