package notifier

import (
	"sync/atomic"
	"time"
)

// Событие, публикуемое в Kafka
const EventTypeReminder = "appointment.reminder"

// ReminderEvent тело сообщения о напоминании
type ReminderEvent struct {
	AppointmentID string    `json:"appointmentId"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	Icon          string    `json:"icon,omitempty"`
	SentAt        time.Time `json:"sentAt"`
}

// permission состояние разрешения на уведомления
type permission struct {
	granted atomic.Bool
}

// Granted возвращает текущее состояние разрешения
func (p *permission) Granted() bool {
	return p.granted.Load()
}
