package handler

import (
	"net/http"

	"github.com/placecard/api/internal/model"
	"github.com/placecard/api/internal/service"
)

// AnnotationHandler handles floor-plan note endpoints
type AnnotationHandler struct {
	floorPlanService *service.FloorPlanService
}

// NewAnnotationHandler creates a new annotation handler
func NewAnnotationHandler(floorPlanService *service.FloorPlanService) *AnnotationHandler {
	return &AnnotationHandler{
		floorPlanService: floorPlanService,
	}
}

// List handles GET /v1/events/{eventId}/annotations
func (h *AnnotationHandler) List(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventId")
	if eventID == "" {
		WriteError(w, model.NewBadRequestError("event ID required"))
		return
	}

	annotations, err := h.floorPlanService.ListAnnotations(r.Context(), eventID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, annotations, map[string]string{
		"self": "/v1/events/" + eventID + "/annotations",
	})
}

// Create handles POST /v1/events/{eventId}/annotations
func (h *AnnotationHandler) Create(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventId")
	if eventID == "" {
		WriteError(w, model.NewBadRequestError("event ID required"))
		return
	}

	var req model.CreateAnnotationRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	annotation, err := h.floorPlanService.CreateAnnotation(r.Context(), eventID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, annotation, map[string]string{
		"self": "/v1/annotations/" + annotation.ID,
	})
}

// Get handles GET /v1/annotations/{annotationId}
func (h *AnnotationHandler) Get(w http.ResponseWriter, r *http.Request) {
	annotationID := r.PathValue("annotationId")
	if annotationID == "" {
		WriteError(w, model.NewBadRequestError("annotation ID required"))
		return
	}

	annotation, err := h.floorPlanService.GetAnnotation(r.Context(), annotationID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, annotation, map[string]string{
		"self": "/v1/annotations/" + annotation.ID,
	})
}

// Update handles PATCH /v1/annotations/{annotationId}
func (h *AnnotationHandler) Update(w http.ResponseWriter, r *http.Request) {
	annotationID := r.PathValue("annotationId")
	if annotationID == "" {
		WriteError(w, model.NewBadRequestError("annotation ID required"))
		return
	}

	var req model.UpdateAnnotationRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	annotation, err := h.floorPlanService.UpdateAnnotation(r.Context(), annotationID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, annotation, map[string]string{
		"self": "/v1/annotations/" + annotation.ID,
	})
}

// Delete handles DELETE /v1/annotations/{annotationId}
func (h *AnnotationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	annotationID := r.PathValue("annotationId")
	if annotationID == "" {
		WriteError(w, model.NewBadRequestError("annotation ID required"))
		return
	}

	if err := h.floorPlanService.DeleteAnnotation(r.Context(), annotationID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}
