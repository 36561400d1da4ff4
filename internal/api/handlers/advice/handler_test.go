package advice

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/integrations/advisor"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

type fakeAdvisor struct {
	prompt string
	names  []string
	image  advisor.Image
}

func (f *fakeAdvisor) GetAdvice(_ context.Context, prompt string, serviceNames []string) string {
	f.prompt = prompt
	f.names = serviceNames
	return "cevap"
}

func (f *fakeAdvisor) AnalyzeImage(_ context.Context, image advisor.Image) string {
	f.image = image
	return "analiz"
}

type fakeCatalog struct{}

func (fakeCatalog) ListServices(_ context.Context) []domain.Service {
	return []domain.Service{{ID: "1", Name: "Klasik Cilt Bakımı"}, {ID: "2", Name: "Manikür"}}
}

func TestHandler_Advice(t *testing.T) {
	adv := &fakeAdvisor{}
	h := NewHandler(adv, fakeCatalog{}, logger.NewNop())

	rec := httptest.NewRecorder()
	h.HandleAdvice(rec, httptest.NewRequest(http.MethodPost, "/api/v1/advice", strings.NewReader(`{"prompt":" Cildim kuru "}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"answer":"cevap"}`, rec.Body.String())
	assert.Equal(t, "Cildim kuru", adv.prompt)
	assert.Equal(t, []string{"Klasik Cilt Bakımı", "Manikür"}, adv.names)
}

func TestHandler_AdviceEmptyPrompt(t *testing.T) {
	h := NewHandler(&fakeAdvisor{}, fakeCatalog{}, logger.NewNop())

	rec := httptest.NewRecorder()
	h.HandleAdvice(rec, httptest.NewRequest(http.MethodPost, "/api/v1/advice", strings.NewReader(`{"prompt":"  "}`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_SkinAnalysis(t *testing.T) {
	adv := &fakeAdvisor{}
	h := NewHandler(adv, fakeCatalog{}, logger.NewNop())
	encoded := base64.StdEncoding.EncodeToString([]byte("jpeg-bytes"))

	rec := httptest.NewRecorder()
	h.HandleSkinAnalysis(rec, httptest.NewRequest(http.MethodPost, "/api/v1/advice/skin-analysis",
		strings.NewReader(`{"image":"data:image/png;base64,`+encoded+`","mimeType":"image/png"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []byte("jpeg-bytes"), adv.image.Data)
	assert.Equal(t, "image/png", adv.image.MIMEType)

	rec = httptest.NewRecorder()
	h.HandleSkinAnalysis(rec, httptest.NewRequest(http.MethodPost, "/api/v1/advice/skin-analysis",
		strings.NewReader(`{"image":"not base64!"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
