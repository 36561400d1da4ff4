package catalog

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/store"
)

// StateStore интерфейс контейнера состояния
type StateStore interface {
	Read(fn func(st *store.State))
	Mutate(ctx context.Context, fn store.MutateFunc) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
