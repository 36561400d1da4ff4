package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/collections"
	"github.com/m04kA/SMC-SalonService/internal/store"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

func newTestService(t *testing.T) (*Service, *collections.MemoryRepository) {
	t.Helper()

	repo := collections.NewMemoryRepository()
	st := store.New(repo, store.RetryConfig{MaxRetries: 1, InitialInterval: time.Millisecond}, nil, logger.NewNop())
	require.NoError(t, st.Load(context.Background()))
	return NewService(st, logger.NewNop()), repo
}

func TestService_DeleteCategoryGuard(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()
	before := svc.ListCategories(ctx)
	savesBefore := repo.Saves()

	err := svc.DeleteCategory(ctx, "Saç")
	assert.ErrorIs(t, err, ErrCategoryInUse)
	assert.Equal(t, before, svc.ListCategories(ctx))
	assert.Equal(t, savesBefore, repo.Saves())

	added, err := svc.AddCategory(ctx, "  Kaş & Kirpik ")
	require.NoError(t, err)
	assert.True(t, added)

	require.NoError(t, svc.DeleteCategory(ctx, "Kaş & Kirpik"))
	assert.Equal(t, before, svc.ListCategories(ctx))

	assert.ErrorIs(t, svc.DeleteCategory(ctx, "Yok"), ErrCategoryNotFound)
}

func TestService_CategoryFreedAfterServiceDeleted(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	var makeupID string
	for _, s := range svc.ListServices(ctx) {
		if s.Category == "Makyaj" {
			makeupID = s.ID
		}
	}
	require.NotEmpty(t, makeupID)

	assert.ErrorIs(t, svc.DeleteCategory(ctx, "Makyaj"), ErrCategoryInUse)
	require.NoError(t, svc.DeleteService(ctx, makeupID))
	assert.NoError(t, svc.DeleteCategory(ctx, "Makyaj"))
	assert.NotContains(t, svc.ListCategories(ctx), "Makyaj")
}

func TestService_AddCategoryIdempotent(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	added, err := svc.AddCategory(ctx, "Epilasyon")
	require.NoError(t, err)
	assert.True(t, added)
	saves := repo.Saves()

	added, err = svc.AddCategory(ctx, "Epilasyon")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Equal(t, saves, repo.Saves())

	_, err = svc.AddCategory(ctx, "   ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_ServiceCRUD(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.AddService(ctx, &ServiceInput{Name: " Kaş Laminasyonu ", Duration: 45, Price: 750, Category: "Cilt Bakımı"})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Kaş Laminasyonu", created.Name)

	got, err := svc.GetService(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	updated, err := svc.UpdateService(ctx, created.ID, &ServiceInput{Name: "Kaş Laminasyonu", Duration: 60, Price: 900, Category: "Cilt Bakımı"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 60, updated.Duration)

	require.NoError(t, svc.DeleteService(ctx, created.ID))
	_, err = svc.GetService(ctx, created.ID)
	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.ErrorIs(t, svc.DeleteService(ctx, created.ID), ErrServiceNotFound)
	assert.Len(t, svc.ListServices(ctx), len(domain.DefaultServices()))
}

func TestService_ServiceValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		in   ServiceInput
	}{
		{"empty name", ServiceInput{Duration: 30, Category: "Saç"}},
		{"zero duration", ServiceInput{Name: "X", Category: "Saç"}},
		{"negative price", ServiceInput{Name: "X", Duration: 30, Price: -1, Category: "Saç"}},
		{"no category", ServiceInput{Name: "X", Duration: 30}},
		{"unknown category", ServiceInput{Name: "X", Duration: 30, Category: "Yok"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := tt.in
			_, err := svc.AddService(ctx, &in)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	_, err := svc.UpdateService(ctx, "missing", &ServiceInput{Name: "X", Duration: 30, Category: "Saç"})
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
