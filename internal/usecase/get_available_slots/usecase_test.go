package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/collections"
	"github.com/m04kA/SMC-SalonService/internal/store"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

func newTestStore(t *testing.T, startHour, endHour int, appointments ...domain.Appointment) *store.Store {
	t.Helper()

	ctx := context.Background()
	st := store.New(collections.NewMemoryRepository(), store.RetryConfig{MaxRetries: 1, InitialInterval: time.Millisecond}, nil, logger.NewNop())
	require.NoError(t, st.Load(ctx))
	require.NoError(t, st.Mutate(ctx, func(s *store.State) ([]domain.Collection, error) {
		s.Settings.StartHour = startHour
		s.Settings.EndHour = endHour
		s.Appointments = append(s.Appointments, appointments...)
		return []domain.Collection{domain.CollectionSettings, domain.CollectionAppointments}, nil
	}))
	return st
}

func TestUseCase_Execute(t *testing.T) {
	st := newTestStore(t, 9, 11,
		domain.Appointment{ID: "a1", Date: "2024-06-01", Time: "09:30", Status: domain.StatusConfirmed},
		domain.Appointment{ID: "a2", Date: "2024-06-01", Time: "10:00", Status: domain.StatusCancelled},
		domain.Appointment{ID: "a3", Date: "2024-06-02", Time: "10:30", Status: domain.StatusConfirmed},
		domain.Appointment{ID: "a4", Date: "2024-06-01", Time: "10:30", Status: domain.StatusPending},
	)
	uc := NewUseCase(st, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-06-01"})
	require.NoError(t, err)

	assert.Equal(t, []Slot{
		{Time: "09:00", Available: true},
		{Time: "09:30", Available: false},
		{Time: "10:00", Available: true},
		{Time: "10:30", Available: false},
	}, resp.Slots)
	assert.Equal(t, 9, resp.StartHour)
	assert.Equal(t, 11, resp.EndHour)
}

func TestUseCase_EmptyWindow(t *testing.T) {
	uc := NewUseCase(newTestStore(t, 12, 12), logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{Date: "2024-06-01"})
	require.NoError(t, err)
	assert.NotNil(t, resp.Slots)
	assert.Empty(t, resp.Slots)
}

func TestUseCase_InvalidDate(t *testing.T) {
	uc := NewUseCase(newTestStore(t, 9, 11), logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{Date: "2024/06/01"})
	assert.ErrorIs(t, err, ErrInvalidDate)
}
