package services

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
)

type CatalogService interface {
	ListServices(ctx context.Context) []domain.Service
	GetService(ctx context.Context, id string) (*domain.Service, error)
	AddService(ctx context.Context, in *catalog.ServiceInput) (*domain.Service, error)
	UpdateService(ctx context.Context, id string, in *catalog.ServiceInput) (*domain.Service, error)
	DeleteService(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
