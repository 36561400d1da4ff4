package list_appointments

import "github.com/m04kA/SMC-SalonService/internal/service/appointments"

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

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// StatsResponse сводка для панели администратора
type StatsResponse struct {
	Total     int `json:"total"`
	Today     int `json:"today"`
	Confirmed int `json:"confirmed"`
}

// FromViews конвертирует записи сервиса в HTTP response
func FromViews(views []appointments.AppointmentView) *AppointmentListResponse {
	result := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(views)),
		Total:        len(views),
	}
	for _, v := range views {
		result.Appointments = append(result.Appointments, AppointmentResponse{
			ID:            v.ID,
			ServiceID:     v.ServiceID,
			ServiceName:   v.ServiceName,
			CustomerName:  v.CustomerName,
			CustomerPhone: v.CustomerPhone,
			Date:          v.Date,
			Time:          v.Time,
			Status:        string(v.Status),
			ReminderSent:  v.ReminderSent,
		})
	}
	return result
}
