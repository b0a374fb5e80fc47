package service

import (
	"context"

	"github.com/placecard/api/internal/model"
)

// RosterService handles guest roster reads and plain record editing.
// Everything that touches the assignment relation lives in SeatingService.
type RosterService struct {
	guests GuestRepositoryInterface
	tables TableRepositoryInterface
}

// NewRosterService creates a new roster service
func NewRosterService(guests GuestRepositoryInterface, tables TableRepositoryInterface) *RosterService {
	return &RosterService{
		guests: guests,
		tables: tables,
	}
}

// ListGuests retrieves all guests for an event
func (s *RosterService) ListGuests(ctx context.Context, eventID string) ([]*model.Guest, error) {
	if eventID == "" {
		return nil, ErrEventIDRequired
	}
	return s.guests.ListByEvent(ctx, eventID)
}

// GetGuest retrieves a guest by ID
func (s *RosterService) GetGuest(ctx context.Context, guestID string) (*model.Guest, error) {
	if guestID == "" {
		return nil, ErrGuestIDRequired
	}
	if err := requireRecordID(guestID, "guest"); err != nil {
		return nil, err
	}

	guest, err := s.guests.Get(ctx, guestID)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, ErrGuestNotFound
	}
	return guest, nil
}

// CreateGuest adds a guest to the roster. New guests start unassigned and
// not checked in; a missing RSVP status defaults to pending, and a missing
// or invalid party size defaults to 1.
func (s *RosterService) CreateGuest(ctx context.Context, eventID string, req *model.CreateGuestRequest) (*model.Guest, error) {
	if eventID == "" {
		return nil, ErrEventIDRequired
	}
	if req.Name == "" {
		return nil, ErrGuestNameRequired
	}

	status := req.RSVPStatus
	if status == "" {
		status = model.RSVPStatusPending
	}
	if !status.IsValid() {
		return nil, ErrInvalidRSVPStatus
	}

	partySize := 1
	if req.PartySize != nil && *req.PartySize >= 1 {
		partySize = *req.PartySize
	}

	guest := &model.Guest{
		EventID:    eventID,
		Name:       req.Name,
		Phone:      req.Phone,
		PartySize:  partySize,
		RSVPStatus: status,
		CategoryID: req.CategoryID,
	}

	if err := s.guests.Create(ctx, guest); err != nil {
		return nil, err
	}
	return guest, nil
}

// UpdateGuest applies plain field edits. Growing the party size of a seated
// guest is still capacity-checked: the roster edit routes through the same
// invariant the seating engine enforces, so an edit can never overbook a
// table silently.
func (s *RosterService) UpdateGuest(ctx context.Context, guestID string, req *model.UpdateGuestRequest) (*model.Guest, error) {
	if guestID == "" {
		return nil, ErrGuestIDRequired
	}
	if err := requireRecordID(guestID, "guest"); err != nil {
		return nil, err
	}

	guest, err := s.guests.Get(ctx, guestID)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, ErrGuestNotFound
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		if *req.Name == "" {
			return nil, ErrGuestNameRequired
		}
		updates["name"] = *req.Name
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.PartySize != nil {
		if *req.PartySize < 1 {
			return nil, ErrInvalidPartySize
		}
		if guest.IsAssigned() && *req.PartySize > guest.NormalizedPartySize() {
			if err := s.checkResize(ctx, guest, *req.PartySize); err != nil {
				return nil, err
			}
		}
		updates["party_size"] = *req.PartySize
	}

	if len(updates) == 0 {
		return guest, nil
	}

	updated, err := s.guests.Update(ctx, guest.ID, updates)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// checkResize verifies that a seated guest's larger party still fits its table
func (s *RosterService) checkResize(ctx context.Context, guest *model.Guest, newSize int) error {
	table, err := s.tables.Get(ctx, *guest.TableID)
	if err != nil {
		return err
	}
	if table == nil {
		// Assignment points at a table that no longer exists; the edit
		// itself is harmless, stale assignment shows up in stats.
		return nil
	}

	seated, err := s.guests.ListByTable(ctx, table.ID)
	if err != nil {
		return err
	}

	others := make([]*model.Guest, 0, len(seated))
	for _, g := range seated {
		if g.ID != guest.ID {
			others = append(others, g)
		}
	}
	occupied := model.PartySizeSum(others)

	if occupied+newSize > table.Capacity {
		return &CapacityExceededError{
			TableID:   table.ID,
			Capacity:  table.Capacity,
			Occupied:  occupied,
			PartySize: newSize,
		}
	}
	return nil
}
