package cancel_appointment

import "github.com/m04kA/SMC-SalonService/internal/domain"

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID            string `json:"id"`
	ServiceID     string `json:"serviceId"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Status        string `json:"status"`
	ReminderSent  bool   `json:"reminderSent"`
}

// FromDomain конвертирует запись в HTTP response
func FromDomain(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:            a.ID,
		ServiceID:     a.ServiceID,
		CustomerName:  a.CustomerName,
		CustomerPhone: a.CustomerPhone,
		Date:          a.Date,
		Time:          a.Time,
		Status:        string(a.Status),
		ReminderSent:  a.ReminderSent,
	}
}
