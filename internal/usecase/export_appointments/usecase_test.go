package export_appointments

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/collections"
	"github.com/m04kA/SMC-SalonService/internal/store"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func newTestUseCase(t *testing.T, appointments ...domain.Appointment) *UseCase {
	t.Helper()

	ctx := context.Background()
	st := store.New(collections.NewMemoryRepository(), store.RetryConfig{MaxRetries: 1, InitialInterval: time.Millisecond}, nil, logger.NewNop())
	require.NoError(t, st.Load(ctx))
	require.NoError(t, st.Mutate(ctx, func(s *store.State) ([]domain.Collection, error) {
		s.Appointments = append(s.Appointments, appointments...)
		return []domain.Collection{domain.CollectionAppointments}, nil
	}))

	uc := NewUseCase(st, logger.NewNop())
	uc.timeProvider = fixedTime{now: time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)}
	return uc
}

func TestUseCase_Execute(t *testing.T) {
	uc := newTestUseCase(t,
		domain.Appointment{ID: "a1", ServiceID: "1", CustomerName: `Ayşe "Ayşo" Yılmaz`, CustomerPhone: "0555", Date: "2024-06-01", Time: "14:00", Status: domain.StatusConfirmed},
		domain.Appointment{ID: "a2", ServiceID: "gone", CustomerName: "Zeynep, Kaya", CustomerPhone: "0556", Date: "2024-06-02", Time: "09:30", Status: domain.StatusCancelled},
		domain.Appointment{ID: "a3", ServiceID: "1", CustomerName: "Elif", CustomerPhone: "0557", Date: "2024-06-02", Time: "10:00", Status: domain.StatusPending},
	)

	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "appointments_2024-06-03.csv", resp.Filename)
	assert.Equal(t, "text/csv; charset=utf-8", resp.ContentType)
	assert.Equal(t, 3, resp.Rows)

	content := string(resp.Content)
	require.True(t, strings.HasPrefix(content, "\uFEFF"))

	assert.False(t, strings.HasSuffix(content, "\n"))

	lines := strings.Split(strings.TrimPrefix(content, "\uFEFF"), "\n")
	serviceName := domain.DefaultServices()[0].Name
	assert.Equal(t, []string{
		"Customer Name,Phone,Service Name,Date,Time,Status",
		`"Ayşe ""Ayşo"" Yılmaz","0555","` + serviceName + `","2024-06-01","14:00","Onaylandı"`,
		`"Zeynep, Kaya","0556","Bilinmeyen Hizmet","2024-06-02","09:30","İptal Edildi"`,
		`"Elif","0557","` + serviceName + `","2024-06-02","10:00","Beklemede"`,
	}, lines)
}

func TestUseCase_NoAppointments(t *testing.T) {
	uc := newTestUseCase(t)

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, ErrNoAppointments)
}
