package domain

import (
	"fmt"
	"time"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment represents a customer booking for a salon service
type Appointment struct {
	ID            string            `json:"id"`
	ServiceID     string            `json:"serviceId"`
	CustomerName  string            `json:"customerName"`
	CustomerPhone string            `json:"customerPhone"`
	Date          string            `json:"date"` // YYYY-MM-DD
	Time          string            `json:"time"` // HH:MM, выровнено по сетке слотов
	Status        AppointmentStatus `json:"status"`
	ReminderSent  bool              `json:"reminderSent"`
}

// IsActive returns true if the appointment occupies its slot.
// pending никогда не создаётся, но если встретится в сохранённых данных - слот занят
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// CanBeCancelled returns true if the appointment can move to cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusPending || a.Status == StatusConfirmed
}

// NeedsReminder returns true if the reminder scheduler should look at the appointment
func (a *Appointment) NeedsReminder() bool {
	return a.Status == StatusConfirmed && !a.ReminderSent
}

// StartsAt combines date and time into a single instant in loc
func (a *Appointment) StartsAt(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation(DateFormat+" "+TimeFormat, a.Date+" "+a.Time, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("appointment %s: invalid date/time %q %q: %w", a.ID, a.Date, a.Time, err)
	}
	return t, nil
}

// AppointmentsFilter фильтр для получения списка записей
type AppointmentsFilter struct {
	Date   *string            // Конкретная дата (опционально)
	Status *AppointmentStatus // Фильтр по статусу (опционально)
	Phone  *string            // Телефон клиента (опционально, для "мои записи")
}

// Matches проверяет, подходит ли запись под фильтр
func (f AppointmentsFilter) Matches(a *Appointment) bool {
	if f.Date != nil && a.Date != *f.Date {
		return false
	}
	if f.Status != nil && a.Status != *f.Status {
		return false
	}
	if f.Phone != nil && NormalizePhone(a.CustomerPhone) != NormalizePhone(*f.Phone) {
		return false
	}
	return true
}

// AppointmentStats сводка для панели администратора
type AppointmentStats struct {
	Total     int
	Today     int
	Confirmed int
}

// ParseAppointmentStatus конвертирует строку в AppointmentStatus с валидацией
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	switch status := AppointmentStatus(s); status {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return status, nil
	default:
		return "", fmt.Errorf("unknown appointment status %q", s)
	}
}
