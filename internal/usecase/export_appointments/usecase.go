package export_appointments

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/store"
)

// UseCase use case для выгрузки записей в CSV
type UseCase struct {
	store        StateStore
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store StateStore, logger Logger) *UseCase {
	return &UseCase{
		store:        store,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выгружает все записи в порядке хранения
// Удалённые услуги выводятся как "Bilinmeyen Hizmet"
func (uc *UseCase) Execute(_ context.Context) (*Response, error) {
	var rows []row
	uc.store.Read(func(st *store.State) {
		rows = make([]row, 0, len(st.Appointments))
		for _, app := range st.Appointments {
			rows = append(rows, row{
				Appointment: app,
				ServiceName: st.ServiceName(app.ServiceID, domain.UnknownServiceName),
			})
		}
	})

	if len(rows) == 0 {
		uc.logger.Warn("ExportAppointments: nothing to export")
		return nil, ErrNoAppointments
	}

	filename := filenamePrefix + uc.timeProvider.Now().Format(domain.DateFormat) + ".csv"
	uc.logger.Info("ExportAppointments: exporting %d appointments to %s", len(rows), filename)

	return &Response{
		Filename:    filename,
		ContentType: csvContentType,
		Content:     render(rows),
		Rows:        len(rows),
	}, nil
}
