package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/store"
)

// UseCase use case для создания записи
type UseCase struct {
	store        StateStore
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store StateStore, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		store:        store,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания записи
// Проверка занятости слота и вставка выполняются в одной мутации хранилища,
// поэтому две одновременные записи на один слот не могут обе пройти
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	normalizeRequest(req)

	uc.logger.Info("CreateAppointment: source=%s, service=%s, date=%s, time=%s",
		req.Source, req.ServiceID, req.Date, req.Time)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация даты
	if err := validateDate(req.Date, req.Source, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	var result Response

	// 3. Проверяем услугу, сетку и занятость слота, затем вставляем запись
	err := uc.store.Mutate(ctx, func(st *store.State) ([]domain.Collection, error) {
		service := st.FindService(req.ServiceID)
		if service == nil {
			return nil, fmt.Errorf("%w: id=%s", ErrServiceNotFound, req.ServiceID)
		}

		if err := validateTimeSlot(req.Time, st.Settings); err != nil {
			return nil, err
		}

		if domain.IsSlotBusy(req.Date, req.Time, st.Appointments) {
			return nil, fmt.Errorf("%w: %s %s", ErrSlotNotAvailable, req.Date, req.Time)
		}

		appointment := domain.Appointment{
			ID:            uuid.NewString(),
			ServiceID:     service.ID,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			Date:          req.Date,
			Time:          req.Time,
			Status:        domain.StatusConfirmed,
		}
		st.Appointments = append(st.Appointments, appointment)

		result = Response{
			Appointment:    appointment,
			ServiceName:    service.Name,
			SuccessMessage: st.Settings.SuccessMessage,
		}
		return []domain.Collection{domain.CollectionAppointments}, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrServiceNotFound),
			errors.Is(err, ErrInvalidTimeSlot),
			errors.Is(err, ErrSlotNotAvailable):
			uc.logger.Warn("CreateAppointment: rejected: %v", err)
			return nil, err
		default:
			uc.logger.Error("CreateAppointment: failed to store appointment: %v", err)
			return nil, fmt.Errorf("%w: failed to store appointment: %v", ErrInternal, err)
		}
	}

	uc.metrics.IncAppointmentsCreated(string(req.Source))
	uc.logger.Info("CreateAppointment: appointment id=%s created for %s %s",
		result.Appointment.ID, req.Date, req.Time)

	return &result, nil
}
