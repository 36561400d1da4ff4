package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/store"
)

// StateStore интерфейс контейнера состояния
type StateStore interface {
	Mutate(ctx context.Context, fn store.MutateFunc) error
}

// Metrics интерфейс метрик создания записей
type Metrics interface {
	IncAppointmentsCreated(source string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
