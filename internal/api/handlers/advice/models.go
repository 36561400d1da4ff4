package advice

// AdviceRequest вопрос клиента
type AdviceRequest struct {
	Prompt string `json:"prompt"`
}

// SkinAnalysisRequest фото кожи в base64
type SkinAnalysisRequest struct {
	Image    string `json:"image"`
	MIMEType string `json:"mimeType"`
}

// AnswerResponse HTTP response model
type AnswerResponse struct {
	Answer string `json:"answer"`
}
