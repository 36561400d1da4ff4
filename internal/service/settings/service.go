package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/store"
)

// Service сервис настроек сайта
type Service struct {
	store  StateStore
	logger Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(store StateStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// Get возвращает текущие настройки
func (s *Service) Get(_ context.Context) domain.SiteSettings {
	var result domain.SiteSettings
	s.store.Read(func(st *store.State) {
		result = st.Settings
	})
	return result
}

// Update накладывает патч на текущие настройки поле за полем
func (s *Service) Update(ctx context.Context, patch domain.SettingsPatch) (domain.SiteSettings, error) {
	s.logger.Info("Update: updating site settings")

	var result domain.SiteSettings
	err := s.store.Mutate(ctx, func(st *store.State) ([]domain.Collection, error) {
		merged := patch.ApplyTo(st.Settings)
		if !merged.HasValidHours() {
			return nil, fmt.Errorf("%w: start=%d end=%d", ErrInvalidHours, merged.StartHour, merged.EndHour)
		}
		st.Settings = merged
		result = merged
		return []domain.Collection{domain.CollectionSettings}, nil
	})
	if err != nil {
		if errors.Is(err, ErrInvalidHours) {
			s.logger.Warn("Update: %v", err)
			return domain.SiteSettings{}, err
		}
		s.logger.Error("Update: store error: %v", err)
		return domain.SiteSettings{}, fmt.Errorf("%w: Update - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: site settings updated, hours %02d-%02d", result.StartHour, result.EndHour)
	return result, nil
}
