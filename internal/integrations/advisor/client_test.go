package advisor

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recordingLogger) record(format string, v ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func (l *recordingLogger) Info(format string, v ...interface{})  { l.record(format, v...) }
func (l *recordingLogger) Warn(format string, v ...interface{})  { l.record(format, v...) }
func (l *recordingLogger) Error(format string, v ...interface{}) { l.record(format, v...) }

func candidateJSON(text string) string {
	b, _ := json.Marshal(map[string]interface{}{
		"candidates": []interface{}{
			map[string]interface{}{
				"content": map[string]interface{}{
					"parts": []interface{}{map[string]string{"text": text}},
				},
			},
		},
	})
	return string(b)
}

func TestClient_GetAdvice(t *testing.T) {
	var got generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-test:generateContent", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-goog-api-key"))
		assert.Empty(t, r.URL.RawQuery)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(candidateJSON(" HydraFacial öneririm. ")))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "secret", "gemini-test", time.Second, logger.NewNop())
	answer := c.GetAdvice(context.Background(), "Cildim kuru", []string{"HydraFacial", "Masaj"})

	assert.Equal(t, "HydraFacial öneririm.", answer)
	require.Len(t, got.Contents, 1)
	require.Len(t, got.Contents[0].Parts, 1)
	assert.Contains(t, got.Contents[0].Parts[0].Text, `"Cildim kuru"`)
	assert.Contains(t, got.Contents[0].Parts[0].Text, "HydraFacial, Masaj")
	require.NotNil(t, got.GenerationConfig)
	assert.Equal(t, 0.7, *got.GenerationConfig.Temperature)
}

func TestClient_AnalyzeImage(t *testing.T) {
	var got generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(candidateJSON("Karma cilt.")))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", "gemini-test", time.Second, logger.NewNop())
	answer := c.AnalyzeImage(context.Background(), Image{Data: []byte{0xff, 0xd8}})

	assert.Equal(t, "Karma cilt.", answer)
	require.Len(t, got.Contents[0].Parts, 2)
	inline := got.Contents[0].Parts[0].InlineData
	require.NotNil(t, inline)
	assert.Equal(t, "image/jpeg", inline.MimeType)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte{0xff, 0xd8}), inline.Data)
	assert.Equal(t, skinAnalysisPrompt, got.Contents[0].Parts[1].Text)
}

func TestClient_Fallbacks(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":{"code":500,"message":"internal","status":"INTERNAL"}}`))
		}},
		{"bad json", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}},
		{"no candidates", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"candidates":[]}`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := NewClient(srv.URL, "secret", "gemini-test", time.Second, logger.NewNop())
			assert.Equal(t, AdviceFallback, c.GetAdvice(context.Background(), "?", nil))
			assert.Equal(t, AnalysisFallback, c.AnalyzeImage(context.Background(), Image{Data: []byte{1}}))
		})
	}
}

func TestClient_NotConfigured(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", "", "gemini-test", time.Second, logger.NewNop())
	assert.Equal(t, AdviceFallback, c.GetAdvice(context.Background(), "?", nil))
}

func TestClient_TransportErrorDoesNotLogAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	log := &recordingLogger{}
	c := NewClient(addr, "SECRET-KEY-123", "gemini-test", time.Second, log)

	assert.Equal(t, AdviceFallback, c.GetAdvice(context.Background(), "Cildim kuru", nil))
	assert.Equal(t, AnalysisFallback, c.AnalyzeImage(context.Background(), Image{Data: []byte("x")}))

	require.NotEmpty(t, log.lines)
	for _, line := range log.lines {
		assert.False(t, strings.Contains(line, "SECRET-KEY-123"), line)
	}
}
