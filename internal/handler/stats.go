package handler

import (
	"net/http"

	"github.com/placecard/api/internal/model"
	"github.com/placecard/api/internal/service"
)

// StatsHandler handles event statistics endpoints
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// Get handles GET /v1/events/{eventId}/stats. Statistics are recomputed from
// the current guest and table collections on every request.
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventId")
	if eventID == "" {
		WriteError(w, model.NewBadRequestError("event ID required"))
		return
	}

	stats, err := h.statsService.EventStats(r.Context(), eventID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, stats, map[string]string{
		"self":   "/v1/events/" + eventID + "/stats",
		"guests": "/v1/events/" + eventID + "/guests",
		"tables": "/v1/events/" + eventID + "/tables",
	})
}
