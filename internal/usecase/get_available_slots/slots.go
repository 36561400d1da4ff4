package get_available_slots

import "github.com/m04kA/SMC-SalonService/internal/domain"

// markAvailability помечает слоты сетки, занятые активными записями на дату
func markAvailability(grid []string, busy map[string]struct{}) []Slot {
	slots := make([]Slot, 0, len(grid))
	for _, t := range grid {
		_, taken := busy[t]
		slots = append(slots, Slot{Time: t, Available: !taken})
	}
	return slots
}

// countAvailable считает свободные слоты
func countAvailable(slots []Slot) int {
	var n int
	for _, s := range slots {
		if s.Available {
			n++
		}
	}
	return n
}

// buildSlots строит сетку рабочего дня и отмечает занятость
func buildSlots(date string, settings domain.SiteSettings, appointments []domain.Appointment) []Slot {
	grid := domain.GenerateSlots(settings.StartHour, settings.EndHour)
	return markAvailability(grid, domain.BusySlots(date, appointments))
}
