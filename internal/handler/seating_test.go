package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/placecard/api/internal/model"
	"github.com/placecard/api/internal/service"
)

// ============================================================================
// Mock Repositories
// ============================================================================

type mockGuestRepo struct {
	getFunc         func(ctx context.Context, guestID string) (*model.Guest, error)
	listByEventFunc func(ctx context.Context, eventID string) ([]*model.Guest, error)
	listByTableFunc func(ctx context.Context, tableID string) ([]*model.Guest, error)
	assignFunc      func(ctx context.Context, guestID, tableID string, partySize int) error
}

func (m *mockGuestRepo) Create(ctx context.Context, guest *model.Guest) error { return nil }

func (m *mockGuestRepo) Get(ctx context.Context, guestID string) (*model.Guest, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, guestID)
	}
	return nil, nil
}

func (m *mockGuestRepo) ListByEvent(ctx context.Context, eventID string) ([]*model.Guest, error) {
	if m.listByEventFunc != nil {
		return m.listByEventFunc(ctx, eventID)
	}
	return nil, nil
}

func (m *mockGuestRepo) ListByTable(ctx context.Context, tableID string) ([]*model.Guest, error) {
	if m.listByTableFunc != nil {
		return m.listByTableFunc(ctx, tableID)
	}
	return nil, nil
}

func (m *mockGuestRepo) Update(ctx context.Context, guestID string, updates map[string]interface{}) (*model.Guest, error) {
	return nil, nil
}

func (m *mockGuestRepo) Assign(ctx context.Context, guestID, tableID string, partySize int) error {
	if m.assignFunc != nil {
		return m.assignFunc(ctx, guestID, tableID, partySize)
	}
	return nil
}

func (m *mockGuestRepo) Unassign(ctx context.Context, guestID string) error { return nil }

func (m *mockGuestRepo) SetCheckedIn(ctx context.Context, guestID string, checkedIn bool) error {
	return nil
}

func (m *mockGuestRepo) SetRSVPStatus(ctx context.Context, guestID string, status model.RSVPStatus) error {
	return nil
}

func (m *mockGuestRepo) Delete(ctx context.Context, guestID string) error { return nil }

type mockTableRepo struct {
	getFunc         func(ctx context.Context, tableID string) (*model.Table, error)
	listByEventFunc func(ctx context.Context, eventID string) ([]*model.Table, error)
}

func (m *mockTableRepo) Create(ctx context.Context, table *model.Table) error { return nil }

func (m *mockTableRepo) Get(ctx context.Context, tableID string) (*model.Table, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, tableID)
	}
	return nil, nil
}

func (m *mockTableRepo) ListByEvent(ctx context.Context, eventID string) ([]*model.Table, error) {
	if m.listByEventFunc != nil {
		return m.listByEventFunc(ctx, eventID)
	}
	return nil, nil
}

func (m *mockTableRepo) Update(ctx context.Context, tableID string, updates map[string]interface{}) (*model.Table, error) {
	return nil, nil
}

func (m *mockTableRepo) Delete(ctx context.Context, tableID string) error { return nil }

// ============================================================================
// Helper Functions
// ============================================================================

func newSeatingMux(guestRepo *mockGuestRepo, tableRepo *mockTableRepo) *http.ServeMux {
	seatingService := service.NewSeatingService(guestRepo, tableRepo)
	h := NewSeatingHandler(seatingService)

	mux := http.NewServeMux()
	mux.HandleFunc("PUT /v1/guests/{guestId}/table", h.Assign)
	mux.HandleFunc("DELETE /v1/guests/{guestId}/table", h.Unassign)
	mux.HandleFunc("POST /v1/guests/move", h.Move)
	return mux
}

func doJSON(t *testing.T, mux *http.ServeMux, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

// ============================================================================
// Assign Endpoint Tests
// ============================================================================

func TestAssignEndpoint_Success(t *testing.T) {
	t.Parallel()

	guestRepo := &mockGuestRepo{
		getFunc: func(ctx context.Context, guestID string) (*model.Guest, error) {
			return &model.Guest{ID: guestID, PartySize: 2}, nil
		},
	}
	tableRepo := &mockTableRepo{
		getFunc: func(ctx context.Context, tableID string) (*model.Table, error) {
			return &model.Table{ID: tableID, Capacity: 8}, nil
		},
	}
	mux := newSeatingMux(guestRepo, tableRepo)

	rec := doJSON(t, mux, http.MethodPut, "/v1/guests/guest:1/table",
		model.AssignRequest{TableID: "table:1"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp DataResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	guest, ok := resp.Data.(map[string]interface{})
	if !ok {
		t.Fatal("expected guest object in data")
	}
	if guest["table_id"] != "table:1" {
		t.Errorf("expected table_id table:1, got %v", guest["table_id"])
	}
}

func TestAssignEndpoint_CapacityExceeded_Returns409WithNumbers(t *testing.T) {
	t.Parallel()

	guestRepo := &mockGuestRepo{
		getFunc: func(ctx context.Context, guestID string) (*model.Guest, error) {
			return &model.Guest{ID: guestID, PartySize: 4}, nil
		},
		listByTableFunc: func(ctx context.Context, tableID string) ([]*model.Guest, error) {
			seated := "table:1"
			return []*model.Guest{{ID: "guest:other", PartySize: 6, TableID: &seated}}, nil
		},
	}
	tableRepo := &mockTableRepo{
		getFunc: func(ctx context.Context, tableID string) (*model.Table, error) {
			return &model.Table{ID: tableID, Capacity: 8}, nil
		},
	}
	mux := newSeatingMux(guestRepo, tableRepo)

	rec := doJSON(t, mux, http.MethodPut, "/v1/guests/guest:1/table",
		model.AssignRequest{TableID: "table:1"})

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("expected problem+json content type, got %s", ct)
	}

	var problem model.ProblemDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
		t.Fatalf("decode problem: %v", err)
	}
	if problem.Code != model.ErrCodeCapacityExceeded {
		t.Errorf("expected capacity-exceeded code, got %d", problem.Code)
	}
	if problem.Capacity == nil || *problem.Capacity != 8 {
		t.Errorf("expected capacity 8 in problem, got %v", problem.Capacity)
	}
	if problem.Occupied == nil || *problem.Occupied != 6 {
		t.Errorf("expected occupied 6 in problem, got %v", problem.Occupied)
	}
}

func TestAssignEndpoint_MissingTableID_Returns422(t *testing.T) {
	t.Parallel()

	mux := newSeatingMux(&mockGuestRepo{}, &mockTableRepo{})

	rec := doJSON(t, mux, http.MethodPut, "/v1/guests/guest:1/table",
		model.AssignRequest{})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

func TestAssignEndpoint_GuestNotFound_Returns404(t *testing.T) {
	t.Parallel()

	mux := newSeatingMux(&mockGuestRepo{}, &mockTableRepo{})

	rec := doJSON(t, mux, http.MethodPut, "/v1/guests/guest:ghost/table",
		model.AssignRequest{TableID: "table:1"})

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestAssignEndpoint_GarbageGuestID_Returns422(t *testing.T) {
	t.Parallel()

	// An id that isn't record-shaped must read as a client error, never as a
	// store failure.
	mux := newSeatingMux(&mockGuestRepo{}, &mockTableRepo{})

	rec := doJSON(t, mux, http.MethodPut, "/v1/guests/not-a-record-id/table",
		model.AssignRequest{TableID: "table:1"})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}

	var problem model.ProblemDetails
	if err := json.Unmarshal(rec.Body.Bytes(), &problem); err != nil {
		t.Fatalf("decode problem: %v", err)
	}
	if problem.Code != model.ErrCodeValidation {
		t.Errorf("expected validation code, got %d", problem.Code)
	}
}

func TestAssignEndpoint_MalformedBody_Returns400(t *testing.T) {
	t.Parallel()

	mux := newSeatingMux(&mockGuestRepo{}, &mockTableRepo{})

	req := httptest.NewRequest(http.MethodPut, "/v1/guests/guest:1/table",
		bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

// ============================================================================
// Move Endpoint Tests
// ============================================================================

func TestMoveEndpoint_PartialFailure_Returns200WithOutcomes(t *testing.T) {
	t.Parallel()

	guests := map[string]*model.Guest{
		"guest:1": {ID: "guest:1", PartySize: 3},
		"guest:2": {ID: "guest:2", PartySize: 3},
	}
	guestRepo := &mockGuestRepo{
		getFunc: func(ctx context.Context, guestID string) (*model.Guest, error) {
			g, ok := guests[guestID]
			if !ok {
				return nil, nil
			}
			copied := *g
			return &copied, nil
		},
		listByTableFunc: func(ctx context.Context, tableID string) ([]*model.Guest, error) {
			var seated []*model.Guest
			for _, g := range guests {
				if g.TableID != nil && *g.TableID == tableID {
					copied := *g
					seated = append(seated, &copied)
				}
			}
			return seated, nil
		},
		assignFunc: func(ctx context.Context, guestID, tableID string, partySize int) error {
			guests[guestID].TableID = &tableID
			return nil
		},
	}
	tableRepo := &mockTableRepo{
		getFunc: func(ctx context.Context, tableID string) (*model.Table, error) {
			return &model.Table{ID: tableID, Capacity: 4}, nil
		},
	}
	mux := newSeatingMux(guestRepo, tableRepo)

	rec := doJSON(t, mux, http.MethodPost, "/v1/guests/move",
		model.MoveManyRequest{GuestIDs: []string{"guest:1", "guest:2"}, TableID: "table:1"})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Data model.MoveManyResult `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Data.Moved) != 1 || resp.Data.Moved[0] != "guest:1" {
		t.Errorf("expected only guest:1 moved, got %v", resp.Data.Moved)
	}
	if len(resp.Data.Failed) != 1 || resp.Data.Failed[0].GuestID != "guest:2" {
		t.Errorf("expected guest:2 to fail, got %v", resp.Data.Failed)
	}
}

func TestMoveEndpoint_EmptyGuestList_Returns422(t *testing.T) {
	t.Parallel()

	mux := newSeatingMux(&mockGuestRepo{}, &mockTableRepo{})

	rec := doJSON(t, mux, http.MethodPost, "/v1/guests/move",
		model.MoveManyRequest{TableID: "table:1"})

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}

// ============================================================================
// Unassign Endpoint Tests
// ============================================================================

func TestUnassignEndpoint_Idempotent(t *testing.T) {
	t.Parallel()

	guestRepo := &mockGuestRepo{
		getFunc: func(ctx context.Context, guestID string) (*model.Guest, error) {
			return &model.Guest{ID: guestID, PartySize: 1}, nil
		},
	}
	mux := newSeatingMux(guestRepo, &mockTableRepo{})

	rec := doJSON(t, mux, http.MethodDelete, "/v1/guests/guest:1/table", nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for already-unassigned guest, got %d", rec.Code)
	}
}
