package collections

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// RedisRepository хранит снимки коллекций в Redis под ключами <prefix><collection>
type RedisRepository struct {
	client redis.Cmdable
	prefix string
}

// NewRedisRepository создает новый экземпляр репозитория коллекций в Redis
func NewRedisRepository(client redis.Cmdable, prefix string) *RedisRepository {
	return &RedisRepository{client: client, prefix: prefix}
}

// Load получает снимок коллекции
func (r *RedisRepository) Load(ctx context.Context, key domain.Collection) ([]byte, error) {
	payload, err := r.client.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCollectionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - get %s: %v", ErrExecQuery, key, err)
	}
	return payload, nil
}

// Save сохраняет снимок коллекции целиком, без TTL
func (r *RedisRepository) Save(ctx context.Context, key domain.Collection, payload []byte) error {
	if !json.Valid(payload) {
		return fmt.Errorf("%w: Save - collection %s", ErrInvalidPayload, key)
	}
	if err := r.client.Set(ctx, r.key(key), payload, 0).Err(); err != nil {
		return fmt.Errorf("%w: Save - set %s: %v", ErrExecQuery, key, err)
	}
	return nil
}

func (r *RedisRepository) key(key domain.Collection) string {
	return r.prefix + string(key)
}
