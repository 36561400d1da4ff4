package list_appointments

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/appointments"
)

type AppointmentService interface {
	List(ctx context.Context, req *appointments.ListRequest) ([]appointments.AppointmentView, error)
	Stats(ctx context.Context) domain.AppointmentStats
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
