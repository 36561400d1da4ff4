package advice

import (
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/integrations/advisor"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmptyPrompt        = "вопрос не может быть пустым"
	msgInvalidImage       = "изображение должно быть передано в base64"
)

type Handler struct {
	advisor Advisor
	catalog CatalogService
	logger  Logger
}

func NewHandler(advisor Advisor, catalog CatalogService, logger Logger) *Handler {
	return &Handler{
		advisor: advisor,
		catalog: catalog,
		logger:  logger,
	}
}

// HandleAdvice POST /api/v1/advice
func (h *Handler) HandleAdvice(w http.ResponseWriter, r *http.Request) {
	var req AdviceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /advice - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		handlers.RespondBadRequest(w, msgEmptyPrompt)
		return
	}

	services := h.catalog.ListServices(r.Context())
	names := make([]string, 0, len(services))
	for _, s := range services {
		names = append(names, s.Name)
	}

	answer := h.advisor.GetAdvice(r.Context(), prompt, names)
	handlers.RespondJSON(w, http.StatusOK, &AnswerResponse{Answer: answer})
}

// HandleSkinAnalysis POST /api/v1/advice/skin-analysis
func (h *Handler) HandleSkinAnalysis(w http.ResponseWriter, r *http.Request) {
	var req SkinAnalysisRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /advice/skin-analysis - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	data, err := decodeImage(req.Image)
	if err != nil || len(data) == 0 {
		h.logger.Warn("POST /advice/skin-analysis - Invalid image payload: %v", err)
		handlers.RespondBadRequest(w, msgInvalidImage)
		return
	}

	answer := h.advisor.AnalyzeImage(r.Context(), advisor.Image{Data: data, MIMEType: req.MIMEType})
	handlers.RespondJSON(w, http.StatusOK, &AnswerResponse{Answer: answer})
}

// decodeImage принимает как чистый base64, так и data URL
func decodeImage(raw string) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	if i := strings.Index(raw, ";base64,"); strings.HasPrefix(raw, "data:") && i >= 0 {
		raw = raw[i+len(";base64,"):]
	}
	return base64.StdEncoding.DecodeString(raw)
}
