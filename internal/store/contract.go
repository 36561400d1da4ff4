package store

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Repository интерфейс хранилища снимков коллекций
type Repository interface {
	Load(ctx context.Context, key domain.Collection) ([]byte, error)
	Save(ctx context.Context, key domain.Collection, payload []byte) error
}

// Metrics интерфейс метрик хранилища
type Metrics interface {
	IncPersistenceFailures(collection string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
