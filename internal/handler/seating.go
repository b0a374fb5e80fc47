package handler

import (
	"net/http"

	"github.com/placecard/api/internal/model"
	"github.com/placecard/api/internal/service"
)

// SeatingHandler handles assignment, check-in, and RSVP endpoints
type SeatingHandler struct {
	seatingService *service.SeatingService
}

// NewSeatingHandler creates a new seating handler
func NewSeatingHandler(seatingService *service.SeatingService) *SeatingHandler {
	return &SeatingHandler{
		seatingService: seatingService,
	}
}

// Assign handles PUT /v1/guests/{guestId}/table. A capacity rejection comes
// back as a 409 carrying the table's capacity and occupancy.
func (h *SeatingHandler) Assign(w http.ResponseWriter, r *http.Request) {
	guestID := r.PathValue("guestId")
	if guestID == "" {
		WriteError(w, model.NewBadRequestError("guest ID required"))
		return
	}

	var req model.AssignRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if req.TableID == "" {
		WriteError(w, model.NewValidationError([]model.FieldError{
			{Field: "table_id", Message: "table_id is required"},
		}))
		return
	}

	guest, err := h.seatingService.Assign(r.Context(), guestID, req.TableID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, guest, map[string]string{
		"self":  "/v1/guests/" + guest.ID,
		"table": "/v1/tables/" + req.TableID,
	})
}

// Unassign handles DELETE /v1/guests/{guestId}/table
func (h *SeatingHandler) Unassign(w http.ResponseWriter, r *http.Request) {
	guestID := r.PathValue("guestId")
	if guestID == "" {
		WriteError(w, model.NewBadRequestError("guest ID required"))
		return
	}

	guest, err := h.seatingService.Unassign(r.Context(), guestID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, guest, map[string]string{
		"self": "/v1/guests/" + guest.ID,
	})
}

// Move handles POST /v1/guests/move - batch move onto one table. The
// response reports per-guest outcomes; a partial failure is still a 200.
func (h *SeatingHandler) Move(w http.ResponseWriter, r *http.Request) {
	var req model.MoveManyRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	var fieldErrors []model.FieldError
	if req.TableID == "" {
		fieldErrors = append(fieldErrors, model.FieldError{
			Field:   "table_id",
			Message: "table_id is required",
		})
	}
	if len(req.GuestIDs) == 0 {
		fieldErrors = append(fieldErrors, model.FieldError{
			Field:   "guest_ids",
			Message: "guest_ids must not be empty",
		})
	}
	if len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	result, err := h.seatingService.MoveMany(r.Context(), req.GuestIDs, req.TableID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, result, map[string]string{
		"table": "/v1/tables/" + req.TableID,
	})
}

// CheckIn handles PUT /v1/guests/{guestId}/checkin
func (h *SeatingHandler) CheckIn(w http.ResponseWriter, r *http.Request) {
	guestID := r.PathValue("guestId")
	if guestID == "" {
		WriteError(w, model.NewBadRequestError("guest ID required"))
		return
	}

	var req model.CheckInRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	guest, err := h.seatingService.SetCheckedIn(r.Context(), guestID, req.CheckedIn)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, guest, map[string]string{
		"self": "/v1/guests/" + guest.ID,
	})
}

// SetRSVP handles PUT /v1/guests/{guestId}/rsvp
func (h *SeatingHandler) SetRSVP(w http.ResponseWriter, r *http.Request) {
	guestID := r.PathValue("guestId")
	if guestID == "" {
		WriteError(w, model.NewBadRequestError("guest ID required"))
		return
	}

	var req model.SetRSVPRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	guest, err := h.seatingService.SetRSVPStatus(r.Context(), guestID, req.Status)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, guest, map[string]string{
		"self": "/v1/guests/" + guest.ID,
	})
}
