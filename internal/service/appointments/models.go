package appointments

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Источник создания записи, используется в метриках
const (
	SourceCustomer = "customer"
	SourceAdmin    = "admin"
	SourceForced   = "admin_forced"
)

// CreateRequest данные новой записи
type CreateRequest struct {
	ServiceID     string
	CustomerName  string
	CustomerPhone string
	Date          string // YYYY-MM-DD
	Time          string // HH:MM
}

// validateSchedule проверяет формат даты YYYY-MM-DD и времени HH:MM
// Сетка слотов и занятость здесь не проверяются
func (r *CreateRequest) validateSchedule() error {
	if _, err := time.Parse(domain.DateFormat, r.Date); err != nil || len(r.Date) != len(domain.DateFormat) {
		return fmt.Errorf("%w: invalid date %q", ErrInvalidInput, r.Date)
	}
	if _, err := time.Parse(domain.TimeFormat, r.Time); err != nil || len(r.Time) != len(domain.TimeFormat) {
		return fmt.Errorf("%w: invalid time %q", ErrInvalidInput, r.Time)
	}
	return nil
}

// ToDomain собирает запись в начальном состоянии: confirmed, напоминание не отправлено
func (r *CreateRequest) ToDomain(id string) domain.Appointment {
	return domain.Appointment{
		ID:            id,
		ServiceID:     r.ServiceID,
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Date:          r.Date,
		Time:          r.Time,
		Status:        domain.StatusConfirmed,
		ReminderSent:  false,
	}
}

// ListRequest запрос списка записей
type ListRequest struct {
	Date   *string
	Status *string
	Phone  *string
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		Date:  r.Date,
		Phone: r.Phone,
	}

	if r.Status != nil {
		status, err := domain.ParseAppointmentStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// AppointmentView запись с денормализованным названием услуги
type AppointmentView struct {
	domain.Appointment
	ServiceName string
}
