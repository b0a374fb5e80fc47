package handler

import (
	"net/http"

	"github.com/placecard/api/internal/model"
	"github.com/placecard/api/internal/service"
)

// TableHandler handles floor-plan table endpoints
type TableHandler struct {
	floorPlanService *service.FloorPlanService
	seatingService   *service.SeatingService
}

// NewTableHandler creates a new table handler
func NewTableHandler(floorPlanService *service.FloorPlanService, seatingService *service.SeatingService) *TableHandler {
	return &TableHandler{
		floorPlanService: floorPlanService,
		seatingService:   seatingService,
	}
}

// List handles GET /v1/events/{eventId}/tables
func (h *TableHandler) List(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventId")
	if eventID == "" {
		WriteError(w, model.NewBadRequestError("event ID required"))
		return
	}

	tables, err := h.floorPlanService.ListTables(r.Context(), eventID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, tables, map[string]string{
		"self": "/v1/events/" + eventID + "/tables",
	})
}

// Create handles POST /v1/events/{eventId}/tables
func (h *TableHandler) Create(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventId")
	if eventID == "" {
		WriteError(w, model.NewBadRequestError("event ID required"))
		return
	}

	var req model.CreateTableRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	table, err := h.floorPlanService.CreateTable(r.Context(), eventID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, table, map[string]string{
		"self": "/v1/tables/" + table.ID,
	})
}

// Get handles GET /v1/tables/{tableId}
func (h *TableHandler) Get(w http.ResponseWriter, r *http.Request) {
	tableID := r.PathValue("tableId")
	if tableID == "" {
		WriteError(w, model.NewBadRequestError("table ID required"))
		return
	}

	table, err := h.floorPlanService.GetTable(r.Context(), tableID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, table, map[string]string{
		"self":      "/v1/tables/" + table.ID,
		"occupancy": "/v1/tables/" + table.ID + "/occupancy",
	})
}

// Update handles PATCH /v1/tables/{tableId}
func (h *TableHandler) Update(w http.ResponseWriter, r *http.Request) {
	tableID := r.PathValue("tableId")
	if tableID == "" {
		WriteError(w, model.NewBadRequestError("table ID required"))
		return
	}

	var req model.UpdateTableRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	table, err := h.floorPlanService.UpdateTable(r.Context(), tableID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, table, map[string]string{
		"self": "/v1/tables/" + table.ID,
	})
}

// Delete handles DELETE /v1/tables/{tableId}
func (h *TableHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tableID := r.PathValue("tableId")
	if tableID == "" {
		WriteError(w, model.NewBadRequestError("table ID required"))
		return
	}

	if err := h.floorPlanService.DeleteTable(r.Context(), tableID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}

// Occupancy handles GET /v1/tables/{tableId}/occupancy
func (h *TableHandler) Occupancy(w http.ResponseWriter, r *http.Request) {
	tableID := r.PathValue("tableId")
	if tableID == "" {
		WriteError(w, model.NewBadRequestError("table ID required"))
		return
	}

	occupancy, err := h.seatingService.TableOccupancy(r.Context(), tableID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, occupancy, map[string]string{
		"self":  "/v1/tables/" + tableID + "/occupancy",
		"table": "/v1/tables/" + tableID,
	})
}
