package update_settings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/collections"
	"github.com/m04kA/SMC-SalonService/internal/service/settings"
	"github.com/m04kA/SMC-SalonService/internal/store"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

func newTestHandler(t *testing.T) (*Handler, *settings.Service) {
	t.Helper()

	st := store.New(collections.NewMemoryRepository(), store.RetryConfig{MaxRetries: 1, InitialInterval: time.Millisecond}, nil, logger.NewNop())
	require.NoError(t, st.Load(context.Background()))

	svc := settings.NewService(st, logger.NewNop())
	return NewHandler(svc, logger.NewNop()), svc
}

func TestHandler_PartialUpdate(t *testing.T) {
	h, svc := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPut, "/api/v1/admin/settings", strings.NewReader(`{"endHour":21}`)))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp domain.SiteSettings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 9, resp.StartHour)
	assert.Equal(t, 21, resp.EndHour)
	assert.Equal(t, domain.DefaultSettings().BannerTitle, resp.BannerTitle)
	assert.Equal(t, resp, svc.Get(context.Background()))
}

func TestHandler_InvalidHoursRejected(t *testing.T) {
	h, svc := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPut, "/api/v1/admin/settings", strings.NewReader(`{"startHour":20}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domain.DefaultSettings(), svc.Get(context.Background()))
}
