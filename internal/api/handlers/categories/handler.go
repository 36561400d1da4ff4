package categories

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCategory    = "некорректное название категории"
	msgCategoryNotFound   = "категория не найдена"
	msgCategoryInUse      = "категория используется услугами и не может быть удалена"
)

// CategoryRequest HTTP request model
type CategoryRequest struct {
	Name string `json:"name"`
}

// CategoryResponse HTTP response model
type CategoryResponse struct {
	Name  string `json:"name"`
	Added bool   `json:"added"`
}

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleList GET /api/v1/categories
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.service.ListCategories(r.Context()))
}

// HandleCreate POST /api/v1/admin/categories
// 201 для новой категории, 200 если категория уже существует
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/categories - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	added, err := h.service.AddCategory(r.Context(), req.Name)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidInput) {
			h.logger.Warn("POST /admin/categories - Invalid category: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCategory)
			return
		}
		h.logger.Error("POST /admin/categories - Failed to add category: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	handlers.RespondJSON(w, status, &CategoryResponse{Name: domain.NormalizeCategory(req.Name), Added: added})
}

// HandleDelete DELETE /api/v1/admin/categories/{name}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	if err := h.service.DeleteCategory(r.Context(), name); err != nil {
		switch {
		case errors.Is(err, catalog.ErrCategoryInUse):
			h.logger.Warn("DELETE /admin/categories/{name} - Category in use: name=%q", name)
			handlers.RespondConflict(w, msgCategoryInUse)

		case errors.Is(err, catalog.ErrCategoryNotFound):
			handlers.RespondNotFound(w, msgCategoryNotFound)

		default:
			h.logger.Error("DELETE /admin/categories/{name} - Failed to delete category: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/categories/{name} - Category deleted: name=%q", name)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
