package export_appointments

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/store"
)

// StateStore интерфейс контейнера состояния (только чтение)
type StateStore interface {
	Read(fn func(st *store.State))
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
