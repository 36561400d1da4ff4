package appointments

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

type fakeMetrics struct {
	created   map[string]int
	cancelled int
}

func (m *fakeMetrics) IncAppointmentsCreated(source string) {
	if m.created == nil {
		m.created = make(map[string]int)
	}
	m.created[source]++
}

func (m *fakeMetrics) IncAppointmentsCancelled() { m.cancelled++ }

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func newTestService(t *testing.T, appointments ...domain.Appointment) (*Service, *store.Store, *collections.MemoryRepository, *fakeMetrics) {
	t.Helper()

	ctx := context.Background()
	repo := collections.NewMemoryRepository()
	st := store.New(repo, store.RetryConfig{MaxRetries: 1, InitialInterval: time.Millisecond}, nil, logger.NewNop())
	require.NoError(t, st.Load(ctx))

	if len(appointments) > 0 {
		require.NoError(t, st.Mutate(ctx, func(s *store.State) ([]domain.Collection, error) {
			s.Appointments = append(s.Appointments, appointments...)
			return []domain.Collection{domain.CollectionAppointments}, nil
		}))
	}

	m := &fakeMetrics{}
	svc := NewService(st, m, logger.NewNop())
	return svc, st, repo, m
}

func TestService_CreateDoesNotCheckAvailability(t *testing.T) {
	existing := domain.Appointment{ID: "a1", ServiceID: "1", CustomerName: "Ayşe", Date: "2024-06-01", Time: "14:00", Status: domain.StatusConfirmed}
	svc, st, _, m := newTestService(t, existing)

	created, err := svc.Create(context.Background(), &CreateRequest{
		ServiceID: "2", CustomerName: "Zeynep", CustomerPhone: "0555", Date: "2024-06-01", Time: "14:00",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.NotEqual(t, existing.ID, created.ID)
	assert.Equal(t, domain.StatusConfirmed, created.Status)
	assert.False(t, created.ReminderSent)
	assert.Equal(t, 1, m.created[SourceForced])

	var count int
	st.Read(func(s *store.State) {
		for _, a := range s.Appointments {
			if a.Date == "2024-06-01" && a.Time == "14:00" && a.IsActive() {
				count++
			}
		}
	})
	assert.Equal(t, 2, count)
}

func TestService_CreateRejectsMalformedDateTime(t *testing.T) {
	svc, st, _, m := newTestService(t)

	tests := []struct {
		name string
		date string
		time string
	}{
		{"hour out of range", "2024-06-01", "25:99"},
		{"single digit hour", "2024-06-01", "9:30"},
		{"not a time", "2024-06-01", "xx"},
		{"day out of range", "2024-02-30", "10:00"},
		{"wrong date layout", "01.06.2024", "10:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &CreateRequest{
				ServiceID: "1", CustomerName: "Ayşe", CustomerPhone: "0555", Date: tt.date, Time: tt.time,
			})
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	st.Read(func(s *store.State) {
		assert.Empty(t, s.Appointments)
	})
	assert.Zero(t, m.created[SourceForced])

	// вне сетки слотов, но формат корректный
	_, err := svc.Create(context.Background(), &CreateRequest{
		ServiceID: "1", CustomerName: "Ayşe", CustomerPhone: "0555", Date: "2024-06-01", Time: "22:15",
	})
	assert.NoError(t, err)
}

func TestService_CancelIsIdempotent(t *testing.T) {
	original := domain.Appointment{ID: "a1", ServiceID: "1", CustomerName: "Ayşe", CustomerPhone: "0555", Date: "2024-06-01", Time: "14:00", Status: domain.StatusConfirmed}
	svc, st, repo, m := newTestService(t, original)
	ctx := context.Background()
	savesBefore := repo.Saves()

	first, err := svc.Cancel(ctx, "a1")
	require.NoError(t, err)
	afterFirst := st.Snapshot()

	second, err := svc.Cancel(ctx, "a1")
	require.NoError(t, err)
	afterSecond := st.Snapshot()

	assert.Equal(t, first, second)
	assert.Equal(t, afterFirst, afterSecond)
	assert.Equal(t, 1, m.cancelled)
	assert.Equal(t, savesBefore+1, repo.Saves())

	expected := original
	expected.Status = domain.StatusCancelled
	assert.Equal(t, expected, *first)
}

func TestService_CancelUnknownID(t *testing.T) {
	svc, _, repo, _ := newTestService(t)
	savesBefore := repo.Saves()

	_, err := svc.Cancel(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
	assert.Equal(t, savesBefore, repo.Saves())
}

func TestService_CancelPending(t *testing.T) {
	svc, _, _, _ := newTestService(t, domain.Appointment{ID: "p1", Date: "2024-06-01", Time: "10:00", Status: domain.StatusPending})

	cancelled, err := svc.Cancel(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)
}

func TestService_ClearAll(t *testing.T) {
	svc, st, _, _ := newTestService(t,
		domain.Appointment{ID: "a1", Date: "2024-06-01", Time: "10:00", Status: domain.StatusConfirmed},
		domain.Appointment{ID: "a2", Date: "2024-06-01", Time: "10:30", Status: domain.StatusCancelled},
	)

	removed, err := svc.ClearAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Empty(t, st.Snapshot().Appointments)
}

func TestService_GetResolvesServiceName(t *testing.T) {
	svc, _, _, _ := newTestService(t,
		domain.Appointment{ID: "a1", ServiceID: "1", Date: "2024-06-01", Time: "10:00", Status: domain.StatusConfirmed},
		domain.Appointment{ID: "a2", ServiceID: "deleted", Date: "2024-06-01", Time: "10:30", Status: domain.StatusConfirmed},
	)
	ctx := context.Background()

	view, err := svc.Get(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultServices()[0].Name, view.ServiceName)

	view, err = svc.Get(ctx, "a2")
	require.NoError(t, err)
	assert.Equal(t, domain.UnknownServiceName, view.ServiceName)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_ListOrderAndFilters(t *testing.T) {
	svc, _, _, _ := newTestService(t,
		domain.Appointment{ID: "a1", CustomerPhone: "0555 111 22 33", Date: "2024-06-01", Time: "10:00", Status: domain.StatusConfirmed},
		domain.Appointment{ID: "a2", CustomerPhone: "05551112233", Date: "2024-06-02", Time: "09:00", Status: domain.StatusCancelled},
		domain.Appointment{ID: "a3", CustomerPhone: "0500", Date: "2024-06-01", Time: "15:30", Status: domain.StatusConfirmed},
	)
	ctx := context.Background()

	all, err := svc.List(ctx, &ListRequest{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"a2", "a3", "a1"}, []string{all[0].ID, all[1].ID, all[2].ID})

	phone := "0555-111-22-33"
	mine, err := svc.List(ctx, &ListRequest{Phone: &phone})
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	status := "confirmed"
	date := "2024-06-01"
	confirmed, err := svc.List(ctx, &ListRequest{Status: &status, Date: &date})
	require.NoError(t, err)
	assert.Len(t, confirmed, 2)

	bad := "archived"
	_, err = svc.List(ctx, &ListRequest{Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Stats(t *testing.T) {
	svc, _, _, _ := newTestService(t,
		domain.Appointment{ID: "a1", Date: "2024-06-01", Time: "10:00", Status: domain.StatusConfirmed},
		domain.Appointment{ID: "a2", Date: "2024-06-01", Time: "10:30", Status: domain.StatusCancelled},
		domain.Appointment{ID: "a3", Date: "2024-06-02", Time: "10:00", Status: domain.StatusConfirmed},
	)
	svc.timeProvider = fixedTime{now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.Local)}

	stats := svc.Stats(context.Background())
	assert.Equal(t, domain.AppointmentStats{Total: 3, Today: 2, Confirmed: 2}, stats)
}
