package handler

import (
	"net/http"

	"github.com/placecard/api/internal/model"
	"github.com/placecard/api/internal/service"
)

// CategoryHandler handles guest category endpoints
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// List handles GET /v1/events/{eventId}/categories
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventId")
	if eventID == "" {
		WriteError(w, model.NewBadRequestError("event ID required"))
		return
	}

	categories, err := h.categoryService.ListCategories(r.Context(), eventID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, categories, map[string]string{
		"self": "/v1/events/" + eventID + "/categories",
	})
}

// Create handles POST /v1/events/{eventId}/categories
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventId")
	if eventID == "" {
		WriteError(w, model.NewBadRequestError("event ID required"))
		return
	}

	var req model.CreateCategoryRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	category, err := h.categoryService.CreateCategory(r.Context(), eventID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, category, map[string]string{
		"self": "/v1/categories/" + category.ID,
	})
}

// Get handles GET /v1/categories/{categoryId}
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	categoryID := r.PathValue("categoryId")
	if categoryID == "" {
		WriteError(w, model.NewBadRequestError("category ID required"))
		return
	}

	category, err := h.categoryService.GetCategory(r.Context(), categoryID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, category, map[string]string{
		"self": "/v1/categories/" + category.ID,
	})
}

// Update handles PATCH /v1/categories/{categoryId}
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	categoryID := r.PathValue("categoryId")
	if categoryID == "" {
		WriteError(w, model.NewBadRequestError("category ID required"))
		return
	}

	var req model.UpdateCategoryRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	category, err := h.categoryService.UpdateCategory(r.Context(), categoryID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, category, map[string]string{
		"self": "/v1/categories/" + category.ID,
	})
}

// Delete handles DELETE /v1/categories/{categoryId}
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	categoryID := r.PathValue("categoryId")
	if categoryID == "" {
		WriteError(w, model.NewBadRequestError("category ID required"))
		return
	}

	if err := h.categoryService.DeleteCategory(r.Context(), categoryID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}
