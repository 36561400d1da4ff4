package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/collections"
)

// RetryConfig параметры повторных попыток записи снимков
type RetryConfig struct {
	MaxRetries      uint
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// MutateFunc изменяет состояние и возвращает список изменённых коллекций
// Вернувшая ошибку мутация откатывается целиком
type MutateFunc func(st *State) ([]domain.Collection, error)

// Store явный контейнер состояния с единственным писателем
// Все мутации и запись их снимков выполняются в одной критической секции,
// поэтому порядок записей в хранилище совпадает с порядком мутаций
type Store struct {
	mu      sync.RWMutex
	state   *State
	repo    Repository
	retry   RetryConfig
	metrics Metrics
	logger  Logger
}

// New создает контейнер состояния с дефолтными коллекциями
// Для чтения сохранённых данных нужно вызвать Load
func New(repo Repository, retry RetryConfig, metrics Metrics, logger Logger) *Store {
	if retry.MaxRetries == 0 {
		retry.MaxRetries = 3
	}
	if retry.InitialInterval <= 0 {
		retry.InitialInterval = 100 * time.Millisecond
	}
	if retry.MaxInterval <= 0 {
		retry.MaxInterval = 2 * time.Second
	}
	return &Store{
		state:   DefaultState(),
		repo:    repo,
		retry:   retry,
		metrics: metrics,
		logger:  logger,
	}
}

// Load загружает все коллекции из хранилища
// Отсутствующие коллекции заменяются дефолтами, настройки сливаются с дефолтами поле за полем
func (s *Store) Load(ctx context.Context) error {
	st := DefaultState()

	for _, key := range domain.AllCollections {
		payload, err := s.repo.Load(ctx, key)
		if errors.Is(err, collections.ErrCollectionNotFound) {
			s.logger.Info("Store.Load: collection %s not found, using defaults", key)
			continue
		}
		if err != nil {
			return fmt.Errorf("%w: %s: %v", ErrLoad, key, err)
		}

		if err := decodeCollection(st, key, payload); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.state = st
	s.mu.Unlock()

	s.logger.Info("Store.Load: loaded %d appointments, %d services, %d categories",
		len(st.Appointments), len(st.Services), len(st.Categories))
	return nil
}

// Read выполняет fn под блокировкой чтения
// fn не должна сохранять ссылки на слайсы состояния после возврата
func (s *Store) Read(fn func(st *State)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.state)
}

// Snapshot возвращает независимую копию текущего состояния
func (s *Store) Snapshot() *State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Mutate выполняет fn под блокировкой записи и сохраняет изменённые коллекции
// При ошибке fn или ошибке сохранения состояние откатывается к снимку до мутации
func (s *Store) Mutate(ctx context.Context, fn MutateFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.state.Clone()

	changed, err := fn(s.state)
	if err != nil {
		s.state = before
		return err
	}

	for i, key := range changed {
		if err := s.persist(ctx, s.state, key); err != nil {
			s.logger.Error("Store.Mutate: failed to persist %s, rolling back: %v", key, err)
			if s.metrics != nil {
				s.metrics.IncPersistenceFailures(string(key))
			}
			s.state = before
			s.restore(ctx, before, changed[:i])
			return fmt.Errorf("%w: %s: %v", ErrPersistence, key, err)
		}
	}

	return nil
}

// restore пытается вернуть в хранилище снимки уже записанных коллекций
func (s *Store) restore(ctx context.Context, st *State, keys []domain.Collection) {
	for _, key := range keys {
		if err := s.persist(ctx, st, key); err != nil {
			s.logger.Error("Store.Mutate: failed to restore %s after rollback: %v", key, err)
		}
	}
}

// persist сериализует коллекцию и пишет её с экспоненциальными повторами
func (s *Store) persist(ctx context.Context, st *State, key domain.Collection) error {
	payload, err := encodeCollection(st, key)
	if err != nil {
		return err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.retry.InitialInterval
	b.MaxInterval = s.retry.MaxInterval

	_, err = backoff.Retry(ctx, func() (struct{}, error) {
		if err := s.repo.Save(ctx, key, payload); err != nil {
			if errors.Is(err, collections.ErrInvalidPayload) {
				return struct{}{}, backoff.Permanent(err)
			}
			s.logger.Warn("Store.persist: save %s failed, retrying: %v", key, err)
			return struct{}{}, err
		}
		return struct{}{}, nil
	}, backoff.WithBackOff(b), backoff.WithMaxTries(s.retry.MaxRetries))

	return err
}

func encodeCollection(st *State, key domain.Collection) ([]byte, error) {
	var v interface{}
	switch key {
	case domain.CollectionAppointments:
		v = st.Appointments
	case domain.CollectionServices:
		v = st.Services
	case domain.CollectionCategories:
		v = st.Categories
	case domain.CollectionSettings:
		v = st.Settings
	default:
		return nil, fmt.Errorf("store: unknown collection %q", key)
	}
	return json.Marshal(v)
}

func decodeCollection(st *State, key domain.Collection, payload []byte) error {
	var err error
	switch key {
	case domain.CollectionAppointments:
		var appointments []domain.Appointment
		if err = json.Unmarshal(payload, &appointments); err == nil && appointments != nil {
			st.Appointments = appointments
		}
	case domain.CollectionServices:
		var services []domain.Service
		if err = json.Unmarshal(payload, &services); err == nil && services != nil {
			st.Services = services
		}
	case domain.CollectionCategories:
		var categories []string
		if err = json.Unmarshal(payload, &categories); err == nil && categories != nil {
			st.Categories = categories
		}
	case domain.CollectionSettings:
		var patch domain.SettingsPatch
		if err = json.Unmarshal(payload, &patch); err == nil {
			st.Settings = patch.ApplyTo(domain.DefaultSettings())
		}
	default:
		return fmt.Errorf("store: unknown collection %q", key)
	}

	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrDecode, key, err)
	}
	return nil
}
