package collections

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

const (
	selectQuery = "SELECT payload FROM salon_collections WHERE key = $1"
	upsertQuery = "INSERT INTO salon_collections (key,payload) VALUES ($1,$2) " +
		"ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = NOW()"
)

func newMockRepository(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewPostgresRepository(db), mock
}

func TestPostgresRepository_Load(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(selectQuery).
		WithArgs("categories").
		WillReturnRows(sqlmock.NewRows([]string{"payload"}).AddRow([]byte(`["Saç"]`)))

	payload, err := repo.Load(context.Background(), domain.CollectionCategories)
	require.NoError(t, err)
	assert.JSONEq(t, `["Saç"]`, string(payload))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Load_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(selectQuery).
		WithArgs("settings").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Load(context.Background(), domain.CollectionSettings)
	assert.ErrorIs(t, err, ErrCollectionNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Load_DBError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(selectQuery).
		WithArgs("services").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.Load(context.Background(), domain.CollectionServices)
	assert.ErrorIs(t, err, ErrScanRow)
	assert.NotErrorIs(t, err, ErrCollectionNotFound)
}

func TestPostgresRepository_Save(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(upsertQuery).
		WithArgs("appointments", `[]`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Save(context.Background(), domain.CollectionAppointments, []byte(`[]`))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepository_Save_Errors(t *testing.T) {
	repo, mock := newMockRepository(t)

	err := repo.Save(context.Background(), domain.CollectionAppointments, []byte(`{broken`))
	assert.ErrorIs(t, err, ErrInvalidPayload)

	mock.ExpectExec(upsertQuery).
		WithArgs("appointments", `[]`).
		WillReturnError(errors.New("disk full"))

	err = repo.Save(context.Background(), domain.CollectionAppointments, []byte(`[]`))
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}
