package domain

// Notification user-visible alert dispatched by the notification collaborator
type Notification struct {
	AppointmentID string `json:"appointmentId"`
	Title         string `json:"title"`
	Body          string `json:"body"`
	Icon          string `json:"icon,omitempty"`
}
