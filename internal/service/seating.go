package service

import (
	"context"
	"errors"

	"github.com/placecard/api/internal/database"
	"github.com/placecard/api/internal/model"
)

// GuestRepositoryInterface defines the guest repository interface
type GuestRepositoryInterface interface {
	Create(ctx context.Context, guest *model.Guest) error
	Get(ctx context.Context, guestID string) (*model.Guest, error)
	ListByEvent(ctx context.Context, eventID string) ([]*model.Guest, error)
	ListByTable(ctx context.Context, tableID string) ([]*model.Guest, error)
	Update(ctx context.Context, guestID string, updates map[string]interface{}) (*model.Guest, error)
	Assign(ctx context.Context, guestID, tableID string, partySize int) error
	Unassign(ctx context.Context, guestID string) error
	SetCheckedIn(ctx context.Context, guestID string, checkedIn bool) error
	SetRSVPStatus(ctx context.Context, guestID string, status model.RSVPStatus) error
	Delete(ctx context.Context, guestID string) error
}

// TableRepositoryInterface defines the table repository interface
type TableRepositoryInterface interface {
	Create(ctx context.Context, table *model.Table) error
	Get(ctx context.Context, tableID string) (*model.Table, error)
	ListByEvent(ctx context.Context, eventID string) ([]*model.Table, error)
	Update(ctx context.Context, tableID string, updates map[string]interface{}) (*model.Table, error)
	Delete(ctx context.Context, tableID string) error
}

// SeatingService is the assignment engine: the only component that writes a
// guest's table assignment, and the sole enforcer of the capacity invariant.
type SeatingService struct {
	guests GuestRepositoryInterface
	tables TableRepositoryInterface
}

// NewSeatingService creates a new seating service
func NewSeatingService(guests GuestRepositoryInterface, tables TableRepositoryInterface) *SeatingService {
	return &SeatingService{
		guests: guests,
		tables: tables,
	}
}

// Assign seats a guest at a table. Re-assigning a guest already at that
// table is a no-op success. When the party does not fit, a
// CapacityExceededError is returned and nothing is written.
func (s *SeatingService) Assign(ctx context.Context, guestID, tableID string) (*model.Guest, error) {
	if guestID == "" {
		return nil, ErrGuestIDRequired
	}
	if tableID == "" {
		return nil, ErrTableIDRequired
	}
	if err := requireRecordID(guestID, "guest"); err != nil {
		return nil, err
	}
	if err := requireRecordID(tableID, "table"); err != nil {
		return nil, err
	}

	guest, err := s.guests.Get(ctx, guestID)
	if err != nil {
		return nil, err
	}
	if guest == nil {
		return nil, ErrGuestNotFound
	}

	table, err := s.tables.Get(ctx, tableID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, ErrTableNotFound
	}

	// Idempotent: already seated there
	if guest.TableID != nil && *guest.TableID == table.ID {
		return guest, nil
	}

	occupied, err := s.tableOccupancy(ctx, table.ID, guest.ID)
	if err != nil {
		return nil, err
	}

	partySize := guest.NormalizedPartySize()
	if occupied+partySize > table.Capacity {
		return nil, &CapacityExceededError{
			TableID:   table.ID,
			Capacity:  table.Capacity,
			Occupied:  occupied,
			PartySize: partySize,
		}
	}

	if err := s.guests.Assign(ctx, guest.ID, table.ID, partySize); err != nil {
		if errors.Is(err, database.ErrConflict) {
			// The store saw a newer occupancy than our advisory check did.
			// Re-read so the error carries the numbers that actually rejected
			// the write; the caller resynchronizes by reloading the event.
			if fresh, ferr := s.tableOccupancy(ctx, table.ID, guest.ID); ferr == nil {
				occupied = fresh
			}
			return nil, &CapacityExceededError{
				TableID:   table.ID,
				Capacity:  table.Capacity,
				Occupied:  occupied,
				PartySize: partySize,
			}
		}
		return nil, err
	}

	guest.TableID = &table.ID
	return guest, nil
}

// Unassign clears a guest's table assignment. Unassigning an already
// unassigned guest is a no-op success.
func (s *SeatingService) Unassign(ctx context.Context, guestID string) (*model.Guest, error) {
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

	if guest.TableID == nil {
		return guest, nil
	}

	if err := s.guests.Unassign(ctx, guest.ID); err != nil {
		return nil, err
	}

	guest.TableID = nil
	return guest, nil
}

// MoveMany assigns each guest in order to the target table, continuing past
// individual failures. Each capacity check sees the table's occupancy as of
// that point in the batch, so earlier successes consume capacity for later
// ones. Guests already moved stay moved; there is no rollback.
func (s *SeatingService) MoveMany(ctx context.Context, guestIDs []string, tableID string) (*model.MoveManyResult, error) {
	if tableID == "" {
		return nil, ErrTableIDRequired
	}
	if len(guestIDs) == 0 {
		return nil, ErrEmptyBatch
	}
	if err := requireRecordID(tableID, "table"); err != nil {
		return nil, err
	}

	table, err := s.tables.Get(ctx, tableID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, ErrTableNotFound
	}

	result := &model.MoveManyResult{
		Moved:  make([]string, 0, len(guestIDs)),
		Failed: make([]model.MoveFailure, 0),
	}

	for _, guestID := range guestIDs {
		if _, err := s.Assign(ctx, guestID, tableID); err != nil {
			result.Failed = append(result.Failed, model.MoveFailure{
				GuestID: guestID,
				Reason:  err.Error(),
			})
			continue
		}
		result.Moved = append(result.Moved, guestID)
	}

	return result, nil
}

// DeleteGuest removes a guest from the roster. Removal and the freeing of
// any held table capacity are one operation: occupancy is derived from the
// records, so a deleted guest can never hold phantom seats.
func (s *SeatingService) DeleteGuest(ctx context.Context, guestID string) error {
	if guestID == "" {
		return ErrGuestIDRequired
	}
	if err := requireRecordID(guestID, "guest"); err != nil {
		return err
	}

	guest, err := s.guests.Get(ctx, guestID)
	if err != nil {
		return err
	}
	if guest == nil {
		return ErrGuestNotFound
	}

	return s.guests.Delete(ctx, guest.ID)
}

// SetCheckedIn marks a guest as physically arrived (or reverts it). A plain
// field write with no capacity semantics.
func (s *SeatingService) SetCheckedIn(ctx context.Context, guestID string, checkedIn bool) (*model.Guest, error) {
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

	if err := s.guests.SetCheckedIn(ctx, guest.ID, checkedIn); err != nil {
		return nil, err
	}

	guest.CheckedIn = checkedIn
	return guest, nil
}

// SetRSVPStatus updates a guest's confirmation state. A plain field write
// with no capacity semantics.
func (s *SeatingService) SetRSVPStatus(ctx context.Context, guestID string, status model.RSVPStatus) (*model.Guest, error) {
	if guestID == "" {
		return nil, ErrGuestIDRequired
	}
	if !status.IsValid() {
		return nil, ErrInvalidRSVPStatus
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

	if err := s.guests.SetRSVPStatus(ctx, guest.ID, status); err != nil {
		return nil, err
	}

	guest.RSVPStatus = status
	return guest, nil
}

// TableOccupancy reports a table's live occupancy for staff views.
func (s *SeatingService) TableOccupancy(ctx context.Context, tableID string) (*model.TableOccupancy, error) {
	if tableID == "" {
		return nil, ErrTableIDRequired
	}
	if err := requireRecordID(tableID, "table"); err != nil {
		return nil, err
	}

	table, err := s.tables.Get(ctx, tableID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, ErrTableNotFound
	}

	assigned, err := s.tableOccupancy(ctx, table.ID, "")
	if err != nil {
		return nil, err
	}

	return &model.TableOccupancy{
		TableID:        table.ID,
		Capacity:       table.Capacity,
		AssignedPeople: assigned,
		Full:           assigned >= table.Capacity,
	}, nil
}

// tableOccupancy sums the party sizes seated at a table, excluding one guest
// (the one being placed) when excludeGuestID is non-empty.
func (s *SeatingService) tableOccupancy(ctx context.Context, tableID, excludeGuestID string) (int, error) {
	seated, err := s.guests.ListByTable(ctx, tableID)
	if err != nil {
		return 0, err
	}

	if excludeGuestID != "" {
		others := make([]*model.Guest, 0, len(seated))
		for _, g := range seated {
			if g.ID != excludeGuestID {
				others = append(others, g)
			}
		}
		seated = others
	}
	return model.PartySizeSum(seated), nil
}
