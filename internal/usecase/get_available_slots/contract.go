package get_available_slots

import "github.com/m04kA/SMC-SalonService/internal/store"

// StateStore интерфейс контейнера состояния (только чтение)
type StateStore interface {
	Read(fn func(st *store.State))
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
