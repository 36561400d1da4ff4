package update_settings

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

type SettingsService interface {
	Update(ctx context.Context, patch domain.SettingsPatch) (domain.SiteSettings, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
