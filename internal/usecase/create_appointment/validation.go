package create_appointment

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// normalizeRequest обрезает пробелы во входных строках
func normalizeRequest(req *Request) {
	req.ServiceID = strings.TrimSpace(req.ServiceID)
	req.CustomerName = strings.TrimSpace(req.CustomerName)
	req.CustomerPhone = strings.TrimSpace(req.CustomerPhone)
	req.Date = strings.TrimSpace(req.Date)
	req.Time = strings.TrimSpace(req.Time)
	if req.Source == "" {
		req.Source = SourceCustomer
	}
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}

	if req.CustomerName == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName is too long", ErrInvalidInput)
	}

	if domain.NormalizePhone(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: customerPhone is required", ErrInvalidInput)
	}
	if len(req.CustomerPhone) > domain.MaxCustomerPhoneLength {
		return fmt.Errorf("%w: customerPhone is too long", ErrInvalidInput)
	}

	if req.Time == "" {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if req.Source != SourceCustomer && req.Source != SourceAdmin {
		return fmt.Errorf("%w: unknown source %q", ErrInvalidInput, req.Source)
	}

	return nil
}

// validateDate проверяет формат даты; клиент не может записаться на прошедший день
func validateDate(date string, source Source, now time.Time) error {
	parsed, err := time.ParseInLocation(domain.DateFormat, date, now.Location())
	if err != nil {
		return fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidDate, date)
	}

	if source == SourceCustomer {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if parsed.Before(today) {
			return fmt.Errorf("%w: %s is in the past", ErrInvalidDate, date)
		}
	}

	return nil
}

// validateTimeSlot проверяет, что время лежит на сетке слотов рабочего дня
func validateTimeSlot(t string, settings domain.SiteSettings) error {
	if !domain.IsOnSlotGrid(t, settings.StartHour, settings.EndHour) {
		return fmt.Errorf("%w: %s is outside %02d:00-%02d:00 grid", ErrInvalidTimeSlot, t, settings.StartHour, settings.EndHour)
	}
	return nil
}
