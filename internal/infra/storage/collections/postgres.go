package collections

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/psqlbuilder"
)

const tableName = "salon_collections"

// PostgresRepository хранит снимки коллекций в PostgreSQL
// Одна строка на коллекцию, payload - JSONB со всей коллекцией целиком
type PostgresRepository struct {
	db DBExecutor
}

// NewPostgresRepository создает новый экземпляр репозитория коллекций
func NewPostgresRepository(db DBExecutor) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Load получает снимок коллекции
// Возвращает ErrCollectionNotFound, если коллекция ещё не сохранялась (первый запуск)
func (r *PostgresRepository) Load(ctx context.Context, key domain.Collection) ([]byte, error) {
	query, args, err := psqlbuilder.Select("payload").
		From(tableName).
		Where(squirrel.Eq{"key": string(key)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Load - build select query: %v", ErrBuildQuery, err)
	}

	var payload []byte
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCollectionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Load - scan payload for %s: %v", ErrScanRow, key, err)
	}

	return payload, nil
}

// Save сохраняет снимок коллекции целиком (upsert по ключу)
func (r *PostgresRepository) Save(ctx context.Context, key domain.Collection, payload []byte) error {
	if !json.Valid(payload) {
		return fmt.Errorf("%w: Save - collection %s", ErrInvalidPayload, key)
	}

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("key", "payload").
		Values(string(key), string(payload)).
		Suffix("ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Save - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - execute upsert for %s: %v", ErrExecQuery, key, err)
	}

	return nil
}
