package get_appointment

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/appointments"
)

type AppointmentService interface {
	Get(ctx context.Context, id string) (*appointments.AppointmentView, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
