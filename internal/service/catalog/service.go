package catalog

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/store"
)

// Service менеджер каталога: услуги и категории
type Service struct {
	store  StateStore
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(store StateStore, logger Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
	}
}

// ListServices возвращает все услуги в порядке добавления
func (s *Service) ListServices(_ context.Context) []domain.Service {
	var result []domain.Service
	s.store.Read(func(st *store.State) {
		result = append([]domain.Service{}, st.Services...)
	})
	return result
}

// GetService возвращает услугу по ID
func (s *Service) GetService(_ context.Context, id string) (*domain.Service, error) {
	var result *domain.Service
	s.store.Read(func(st *store.State) {
		if service := st.FindService(id); service != nil {
			copied := *service
			result = &copied
		}
	})
	if result == nil {
		return nil, ErrServiceNotFound
	}
	return result, nil
}

// AddService добавляет услугу; категория должна существовать
func (s *Service) AddService(ctx context.Context, in *ServiceInput) (*domain.Service, error) {
	in.normalize()
	s.logger.Info("AddService: name=%s, category=%s", in.Name, in.Category)

	if err := in.validate(); err != nil {
		s.logger.Warn("AddService: validation failed: %v", err)
		return nil, err
	}

	service := in.toDomain(uuid.NewString())

	err := s.store.Mutate(ctx, func(st *store.State) ([]domain.Collection, error) {
		if !st.HasCategory(service.Category) {
			return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, service.Category)
		}
		st.Services = append(st.Services, service)
		return []domain.Collection{domain.CollectionServices}, nil
	})
	if err != nil {
		return nil, s.translateError("AddService", err)
	}

	s.logger.Info("AddService: service id=%s created", service.ID)
	return &service, nil
}

// UpdateService заменяет поля услуги, ID сохраняется
func (s *Service) UpdateService(ctx context.Context, id string, in *ServiceInput) (*domain.Service, error) {
	in.normalize()
	s.logger.Info("UpdateService: id=%s", id)

	if err := in.validate(); err != nil {
		s.logger.Warn("UpdateService: validation failed: %v", err)
		return nil, err
	}

	updated := in.toDomain(id)

	err := s.store.Mutate(ctx, func(st *store.State) ([]domain.Collection, error) {
		service := st.FindService(id)
		if service == nil {
			return nil, ErrServiceNotFound
		}
		if !st.HasCategory(updated.Category) {
			return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, updated.Category)
		}
		*service = updated
		return []domain.Collection{domain.CollectionServices}, nil
	})
	if err != nil {
		return nil, s.translateError("UpdateService", err)
	}

	return &updated, nil
}

// DeleteService удаляет услугу
// Записи, ссылающиеся на услугу, сохраняются; её название подставляется при выводе
func (s *Service) DeleteService(ctx context.Context, id string) error {
	s.logger.Info("DeleteService: id=%s", id)

	err := s.store.Mutate(ctx, func(st *store.State) ([]domain.Collection, error) {
		for i := range st.Services {
			if st.Services[i].ID == id {
				st.Services = append(st.Services[:i], st.Services[i+1:]...)
				return []domain.Collection{domain.CollectionServices}, nil
			}
		}
		return nil, ErrServiceNotFound
	})
	if err != nil {
		return s.translateError("DeleteService", err)
	}
	return nil
}

// ListCategories возвращает категории в порядке добавления
func (s *Service) ListCategories(_ context.Context) []string {
	var result []string
	s.store.Read(func(st *store.State) {
		result = append([]string{}, st.Categories...)
	})
	return result
}

// AddCategory добавляет категорию
// Повторное добавление существующей категории ничего не делает и возвращает false
func (s *Service) AddCategory(ctx context.Context, name string) (bool, error) {
	name = domain.NormalizeCategory(name)
	if name == "" {
		return false, fmt.Errorf("%w: category name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > domain.MaxCategoryNameLength {
		return false, fmt.Errorf("%w: category name is too long", ErrInvalidInput)
	}

	var added bool
	err := s.store.Mutate(ctx, func(st *store.State) ([]domain.Collection, error) {
		if st.HasCategory(name) {
			return nil, nil
		}
		st.Categories = append(st.Categories, name)
		added = true
		return []domain.Collection{domain.CollectionCategories}, nil
	})
	if err != nil {
		return false, s.translateError("AddCategory", err)
	}

	if added {
		s.logger.Info("AddCategory: category %q added", name)
	} else {
		s.logger.Info("AddCategory: category %q already exists", name)
	}
	return added, nil
}

// DeleteCategory удаляет категорию, если на неё не ссылается ни одна услуга
func (s *Service) DeleteCategory(ctx context.Context, name string) error {
	name = domain.NormalizeCategory(name)
	s.logger.Info("DeleteCategory: name=%q", name)

	err := s.store.Mutate(ctx, func(st *store.State) ([]domain.Collection, error) {
		if st.CategoryInUse(name) {
			return nil, fmt.Errorf("%w: %q", ErrCategoryInUse, name)
		}
		for i, c := range st.Categories {
			if c == name {
				st.Categories = append(st.Categories[:i], st.Categories[i+1:]...)
				return []domain.Collection{domain.CollectionCategories}, nil
			}
		}
		return nil, ErrCategoryNotFound
	})
	if err != nil {
		return s.translateError("DeleteCategory", err)
	}
	return nil
}

func (s *Service) translateError(op string, err error) error {
	switch {
	case errors.Is(err, ErrServiceNotFound),
		errors.Is(err, ErrCategoryNotFound),
		errors.Is(err, ErrCategoryInUse),
		errors.Is(err, ErrInvalidInput):
		s.logger.Warn("%s: %v", op, err)
		return err
	default:
		s.logger.Error("%s: store error: %v", op, err)
		return fmt.Errorf("%w: %s - store error: %v", ErrInternal, op, err)
	}
}
