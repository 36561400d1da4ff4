package domain

import "fmt"

// TimeSlot represents a slot of the booking grid with its availability
type TimeSlot struct {
	Time      string
	Available bool
}

// GenerateSlots возвращает упорядоченную сетку слотов "HH:00" и "HH:30"
// для каждого часа из [startHour, endHour).
// Порядок часов не валидируется: при endHour <= startHour сетка пустая
func GenerateSlots(startHour, endHour int) []string {
	if endHour <= startHour {
		return []string{}
	}

	slots := make([]string, 0, SlotsPerHour*(endHour-startHour))
	for hour := startHour; hour < endHour; hour++ {
		for minute := 0; minute < 60; minute += SlotDurationMinutes {
			slots = append(slots, fmt.Sprintf("%02d:%02d", hour, minute))
		}
	}
	return slots
}

// IsOnSlotGrid проверяет, что время входит в сетку слотов рабочего окна
func IsOnSlotGrid(t string, startHour, endHour int) bool {
	for _, slot := range GenerateSlots(startHour, endHour) {
		if slot == t {
			return true
		}
	}
	return false
}

// BusySlots возвращает множество занятых слотов на дату:
// время всех записей с точным совпадением даты и статусом, отличным от cancelled
func BusySlots(date string, appointments []Appointment) map[string]struct{} {
	busy := make(map[string]struct{})
	for i := range appointments {
		app := &appointments[i]
		if app.Date != date || !app.IsActive() {
			continue
		}
		busy[app.Time] = struct{}{}
	}
	return busy
}

// IsSlotBusy проверяет, занят ли конкретный слот на дату
func IsSlotBusy(date, t string, appointments []Appointment) bool {
	_, ok := BusySlots(date, appointments)[t]
	return ok
}
