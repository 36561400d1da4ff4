package advisor

// Ответы при недоступности сервиса
const (
	AdviceFallback   = "Şu an size yardımcı olamıyorum, lütfen daha sonra tekrar deneyiniz."
	AnalysisFallback = "Cilt analizi şu an gerçekleştirilemiyor."
)

const (
	adviceTemperature = 0.7
	defaultImageMIME  = "image/jpeg"
)

// Image изображение для анализа
type Image struct {
	Data     []byte
	MIMEType string
}

// generateRequest тело запроса generateContent
type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"` // base64
}

type generationConfig struct {
	Temperature *float64 `json:"temperature,omitempty"`
}

// generateResponse ответ generateContent
type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// ErrorResponse модель ошибки от API
type ErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}
