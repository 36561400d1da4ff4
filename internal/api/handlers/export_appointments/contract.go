package export_appointments

import (
	"context"

	exportAppointments "github.com/m04kA/SMC-SalonService/internal/usecase/export_appointments"
)

type ExportAppointmentsUseCase interface {
	Execute(ctx context.Context) (*exportAppointments.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
