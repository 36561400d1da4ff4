package export_appointments

import "errors"

var (
	// ErrNoAppointments возвращается, когда выгружать нечего
	ErrNoAppointments = errors.New("export_appointments: no appointments to export")
)
