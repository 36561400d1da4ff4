package advisor

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const apiKeyHeader = "x-goog-api-key"

// Client клиент генеративной модели (Gemini generateContent)
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(baseURL, apiKey, model string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetAdvice отвечает на вопрос клиента с учётом услуг салона
// При любой ошибке возвращает AdviceFallback
func (c *Client) GetAdvice(ctx context.Context, prompt string, serviceNames []string) string {
	temperature := adviceTemperature
	req := generateRequest{
		Contents: []content{{
			Role:  "user",
			Parts: []part{{Text: advicePrompt(prompt, serviceNames)}},
		}},
		GenerationConfig: &generationConfig{Temperature: &temperature},
	}

	answer, err := c.generate(ctx, req)
	if err != nil {
		c.log.Error("GetAdvice: advisor unavailable, returning fallback: %v", err)
		return AdviceFallback
	}
	return answer
}

// AnalyzeImage комментирует фото кожи и предлагает подходящие услуги
// При любой ошибке возвращает AnalysisFallback
func (c *Client) AnalyzeImage(ctx context.Context, image Image) string {
	mimeType := image.MIMEType
	if mimeType == "" {
		mimeType = defaultImageMIME
	}

	req := generateRequest{
		Contents: []content{{
			Role: "user",
			Parts: []part{
				{InlineData: &inlineData{MimeType: mimeType, Data: base64.StdEncoding.EncodeToString(image.Data)}},
				{Text: skinAnalysisPrompt},
			},
		}},
	}

	answer, err := c.generate(ctx, req)
	if err != nil {
		c.log.Error("AnalyzeImage: advisor unavailable, returning fallback: %v", err)
		return AnalysisFallback
	}
	return answer
}

// generate выполняет запрос generateContent и возвращает текст первого кандидата
func (c *Client) generate(ctx context.Context, body generateRequest) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, url.PathEscape(c.model))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		var apiErr ErrorResponse
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("%w: status %d: %s", ErrInvalidResponse, resp.StatusCode, apiErr.Error.Message)
		}
		return "", fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	// Парсим ответ
	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	var sb strings.Builder
	if len(out.Candidates) > 0 {
		for _, p := range out.Candidates[0].Content.Parts {
			sb.WriteString(p.Text)
		}
	}

	answer := strings.TrimSpace(sb.String())
	if answer == "" {
		return "", ErrEmptyAnswer
	}
	return answer, nil
}
