package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP response model для одного слота
type SlotResponse struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date           string         `json:"date"`
	StartHour      int            `json:"startHour"`
	EndHour        int            `json:"endHour"`
	AvailableCount int            `json:"availableCount"`
	Slots          []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует use case response в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	result := &AvailableSlotsResponse{
		Date:      resp.Date,
		StartHour: resp.StartHour,
		EndHour:   resp.EndHour,
		Slots:     make([]SlotResponse, 0, len(resp.Slots)),
	}
	for _, slot := range resp.Slots {
		if slot.Available {
			result.AvailableCount++
		}
		result.Slots = append(result.Slots, SlotResponse{
			Time:      slot.Time,
			Available: slot.Available,
		})
	}
	return result
}
