package advice

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/integrations/advisor"
)

type Advisor interface {
	GetAdvice(ctx context.Context, prompt string, serviceNames []string) string
	AnalyzeImage(ctx context.Context, image advisor.Image) string
}

type CatalogService interface {
	ListServices(ctx context.Context) []domain.Service
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
