package handler

import (
	"net/http"

	"github.com/placecard/api/internal/model"
	"github.com/placecard/api/internal/service"
)

// GuestHandler handles guest roster endpoints
type GuestHandler struct {
	rosterService  *service.RosterService
	seatingService *service.SeatingService
}

// NewGuestHandler creates a new guest handler
func NewGuestHandler(rosterService *service.RosterService, seatingService *service.SeatingService) *GuestHandler {
	return &GuestHandler{
		rosterService:  rosterService,
		seatingService: seatingService,
	}
}

// List handles GET /v1/events/{eventId}/guests
func (h *GuestHandler) List(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventId")
	if eventID == "" {
		WriteError(w, model.NewBadRequestError("event ID required"))
		return
	}

	guests, err := h.rosterService.ListGuests(r.Context(), eventID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, guests, map[string]string{
		"self": "/v1/events/" + eventID + "/guests",
	})
}

// Create handles POST /v1/events/{eventId}/guests
func (h *GuestHandler) Create(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventId")
	if eventID == "" {
		WriteError(w, model.NewBadRequestError("event ID required"))
		return
	}

	var req model.CreateGuestRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	guest, err := h.rosterService.CreateGuest(r.Context(), eventID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, guest, map[string]string{
		"self": "/v1/guests/" + guest.ID,
	})
}

// Get handles GET /v1/guests/{guestId}
func (h *GuestHandler) Get(w http.ResponseWriter, r *http.Request) {
	guestID := r.PathValue("guestId")
	if guestID == "" {
		WriteError(w, model.NewBadRequestError("guest ID required"))
		return
	}

	guest, err := h.rosterService.GetGuest(r.Context(), guestID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, guest, map[string]string{
		"self": "/v1/guests/" + guest.ID,
	})
}

// Update handles PATCH /v1/guests/{guestId}
func (h *GuestHandler) Update(w http.ResponseWriter, r *http.Request) {
	guestID := r.PathValue("guestId")
	if guestID == "" {
		WriteError(w, model.NewBadRequestError("guest ID required"))
		return
	}

	var req model.UpdateGuestRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	guest, err := h.rosterService.UpdateGuest(r.Context(), guestID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, guest, map[string]string{
		"self": "/v1/guests/" + guest.ID,
	})
}

// Delete handles DELETE /v1/guests/{guestId}. Deletion goes through the
// seating service so any held table capacity is freed with the record.
func (h *GuestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	guestID := r.PathValue("guestId")
	if guestID == "" {
		WriteError(w, model.NewBadRequestError("guest ID required"))
		return
	}

	if err := h.seatingService.DeleteGuest(r.Context(), guestID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}
