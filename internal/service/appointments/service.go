package appointments

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/store"
)

// Service менеджер жизненного цикла записей
type Service struct {
	store        StateStore
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(store StateStore, metrics Metrics, logger Logger) *Service {
	return &Service{
		store:        store,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Create создает запись со статусом confirmed
// Доступность слота здесь не проверяется: это делает create_appointment.
// Вызывается напрямую только при принудительном создании администратором
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*domain.Appointment, error) {
	s.logger.Info("Create: service=%s, date=%s, time=%s", req.ServiceID, req.Date, req.Time)

	if err := req.validateSchedule(); err != nil {
		s.logger.Warn("Create: %v", err)
		return nil, err
	}

	appointment := req.ToDomain(uuid.NewString())

	err := s.store.Mutate(ctx, func(st *store.State) ([]domain.Collection, error) {
		st.Appointments = append(st.Appointments, appointment)
		return []domain.Collection{domain.CollectionAppointments}, nil
	})
	if err != nil {
		s.logger.Error("Create: failed to store appointment: %v", err)
		return nil, fmt.Errorf("%w: Create - store error: %v", ErrInternal, err)
	}

	s.metrics.IncAppointmentsCreated(SourceForced)
	s.logger.Info("Create: appointment id=%s created", appointment.ID)
	return &appointment, nil
}

// Cancel переводит запись в cancelled
// Повторная отмена уже отменённой записи ничего не меняет и не пишет в хранилище
func (s *Service) Cancel(ctx context.Context, id string) (*domain.Appointment, error) {
	s.logger.Info("Cancel: cancelling appointment id=%s", id)

	var (
		result    domain.Appointment
		cancelled bool
	)

	err := s.store.Mutate(ctx, func(st *store.State) ([]domain.Collection, error) {
		appointment := st.FindAppointment(id)
		if appointment == nil {
			return nil, ErrAppointmentNotFound
		}

		if appointment.IsCancelled() {
			result = *appointment
			return nil, nil
		}

		if !appointment.CanBeCancelled() {
			return nil, fmt.Errorf("%w: status=%s", ErrCannotCancel, appointment.Status)
		}

		appointment.Status = domain.StatusCancelled
		result = *appointment
		cancelled = true
		return []domain.Collection{domain.CollectionAppointments}, nil
	})
	if err != nil {
		return nil, s.translateError("Cancel", id, err)
	}

	if cancelled {
		s.metrics.IncAppointmentsCancelled()
		s.logger.Info("Cancel: appointment id=%s cancelled", id)
	} else {
		s.logger.Info("Cancel: appointment id=%s already cancelled", id)
	}
	return &result, nil
}

// ClearAll удаляет все записи и возвращает их количество
func (s *Service) ClearAll(ctx context.Context) (int, error) {
	s.logger.Warn("ClearAll: removing all appointments")

	var removed int
	err := s.store.Mutate(ctx, func(st *store.State) ([]domain.Collection, error) {
		removed = len(st.Appointments)
		st.Appointments = []domain.Appointment{}
		return []domain.Collection{domain.CollectionAppointments}, nil
	})
	if err != nil {
		s.logger.Error("ClearAll: failed to store appointments: %v", err)
		return 0, fmt.Errorf("%w: ClearAll - store error: %v", ErrInternal, err)
	}

	s.logger.Info("ClearAll: removed %d appointments", removed)
	return removed, nil
}

// Get получает запись по ID
func (s *Service) Get(_ context.Context, id string) (*AppointmentView, error) {
	var (
		result *AppointmentView
		found  bool
	)

	s.store.Read(func(st *store.State) {
		appointment := st.FindAppointment(id)
		if appointment == nil {
			return
		}
		found = true
		result = &AppointmentView{
			Appointment: *appointment,
			ServiceName: st.ServiceName(appointment.ServiceID, domain.UnknownServiceName),
		}
	})

	if !found {
		s.logger.Warn("Get: appointment id=%s not found", id)
		return nil, ErrAppointmentNotFound
	}
	return result, nil
}

// List получает записи по фильтру, новые первыми (по дате, затем по времени)
func (s *Service) List(_ context.Context, req *ListRequest) ([]AppointmentView, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	result := make([]AppointmentView, 0)
	s.store.Read(func(st *store.State) {
		for i := range st.Appointments {
			if !filter.Matches(&st.Appointments[i]) {
				continue
			}
			result = append(result, AppointmentView{
				Appointment: st.Appointments[i],
				ServiceName: st.ServiceName(st.Appointments[i].ServiceID, domain.UnknownServiceName),
			})
		}
	})

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date > result[j].Date
		}
		return result[i].Time > result[j].Time
	})

	return result, nil
}

// Stats считает сводку для панели администратора
func (s *Service) Stats(_ context.Context) domain.AppointmentStats {
	today := s.timeProvider.Now().Format(domain.DateFormat)

	var stats domain.AppointmentStats
	s.store.Read(func(st *store.State) {
		stats.Total = len(st.Appointments)
		for i := range st.Appointments {
			if st.Appointments[i].Date == today {
				stats.Today++
			}
			if st.Appointments[i].Status == domain.StatusConfirmed {
				stats.Confirmed++
			}
		}
	})

	return stats
}

func (s *Service) translateError(op, id string, err error) error {
	switch {
	case errors.Is(err, ErrAppointmentNotFound):
		s.logger.Warn("%s: appointment id=%s not found", op, id)
		return ErrAppointmentNotFound
	case errors.Is(err, ErrCannotCancel):
		s.logger.Warn("%s: appointment id=%s: %v", op, id, err)
		return err
	default:
		s.logger.Error("%s: store error for appointment id=%s: %v", op, id, err)
		return fmt.Errorf("%w: %s - store error: %v", ErrInternal, op, err)
	}
}
