package domain

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSlots_Scenario(t *testing.T) {
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, GenerateSlots(9, 11))
}

func TestGenerateSlots_Properties(t *testing.T) {
	pattern := regexp.MustCompile(`^([01]\d|2[0-3]):(00|30)$`)

	for start := 0; start < 24; start++ {
		for end := start + 1; end <= 24; end++ {
			slots := GenerateSlots(start, end)
			require.Len(t, slots, 2*(end-start), "start=%d end=%d", start, end)

			for i, slot := range slots {
				assert.Regexp(t, pattern, slot)
				if i > 0 {
					assert.Less(t, slots[i-1], slot, "slots must be strictly increasing")
				}
			}
		}
	}
}

func TestGenerateSlots_EmptyWindow(t *testing.T) {
	tests := []struct {
		name  string
		start int
		end   int
	}{
		{name: "equal hours", start: 10, end: 10},
		{name: "reversed hours", start: 18, end: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := GenerateSlots(tt.start, tt.end)
			assert.NotNil(t, slots)
			assert.Empty(t, slots)
		})
	}
}

func TestIsOnSlotGrid(t *testing.T) {
	assert.True(t, IsOnSlotGrid("09:00", 9, 19))
	assert.True(t, IsOnSlotGrid("18:30", 9, 19))
	assert.False(t, IsOnSlotGrid("19:00", 9, 19))
	assert.False(t, IsOnSlotGrid("09:15", 9, 19))
	assert.False(t, IsOnSlotGrid("08:30", 9, 19))
}

func TestBusySlots(t *testing.T) {
	appointments := []Appointment{
		{ID: "a", Date: "2024-06-01", Time: "14:00", Status: StatusConfirmed},
		{ID: "b", Date: "2024-06-01", Time: "15:00", Status: StatusCancelled},
		{ID: "c", Date: "2024-06-01", Time: "16:30", Status: StatusPending},
		{ID: "d", Date: "2024-06-02", Time: "14:00", Status: StatusConfirmed},
	}

	busy := BusySlots("2024-06-01", appointments)

	assert.Len(t, busy, 2)
	assert.Contains(t, busy, "14:00")
	assert.Contains(t, busy, "16:30")
	assert.NotContains(t, busy, "15:00", "cancelled appointments never occupy a slot")

	assert.True(t, IsSlotBusy("2024-06-02", "14:00", appointments))
	assert.False(t, IsSlotBusy("2024-06-02", "15:00", appointments))
	assert.Empty(t, BusySlots("2024-06-03", appointments))
	assert.Empty(t, BusySlots("2024-06-01", nil))
}
