package collections

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// MemoryRepository хранит снимки коллекций в памяти процесса
// Используется в режиме storage.driver = "memory" и в тестах
type MemoryRepository struct {
	mu    sync.RWMutex
	data  map[domain.Collection][]byte
	saves int
}

// NewMemoryRepository создает пустое хранилище
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{data: make(map[domain.Collection][]byte)}
}

// Load получает копию снимка коллекции
func (r *MemoryRepository) Load(_ context.Context, key domain.Collection) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payload, ok := r.data[key]
	if !ok {
		return nil, ErrCollectionNotFound
	}
	return append([]byte(nil), payload...), nil
}

// Save сохраняет копию снимка коллекции
func (r *MemoryRepository) Save(_ context.Context, key domain.Collection, payload []byte) error {
	if !json.Valid(payload) {
		return fmt.Errorf("%w: Save - collection %s", ErrInvalidPayload, key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.data[key] = append([]byte(nil), payload...)
	r.saves++
	return nil
}

// Saves возвращает количество успешных записей
func (r *MemoryRepository) Saves() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.saves
}
