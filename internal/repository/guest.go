package repository

import (
	"context"
	"errors"

	"github.com/placecard/api/internal/database"
	"github.com/placecard/api/internal/model"
)

// GuestRepository handles guest roster data access
type GuestRepository struct {
	db database.Database
}

// NewGuestRepository creates a new guest repository
func NewGuestRepository(db database.Database) *GuestRepository {
	return &GuestRepository{db: db}
}

// Create creates a new guest
func (r *GuestRepository) Create(ctx context.Context, guest *model.Guest) error {
	query := `
		CREATE guest CONTENT {
			event_id: $event_id,
			name: $name,
			phone: $phone,
			party_size: $party_size,
			rsvp_status: $rsvp_status,
			table_id: $table_id,
			checked_in: $checked_in,
			category_id: $category_id,
			created_on: time::now(),
			updated_on: time::now()
		}
	`
	vars := map[string]interface{}{
		"event_id":    guest.EventID,
		"name":        guest.Name,
		"phone":       guest.Phone,
		"party_size":  guest.NormalizedPartySize(),
		"rsvp_status": string(guest.RSVPStatus),
		"table_id":    guest.TableID,
		"checked_in":  guest.CheckedIn,
		"category_id": guest.CategoryID,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := extractCreatedRecord(result)
	if err != nil {
		return err
	}

	guest.ID = created.ID
	guest.PartySize = guest.NormalizedPartySize()
	guest.CreatedOn = created.CreatedOn
	guest.UpdatedOn = created.UpdatedOn
	return nil
}

// Get retrieves a guest by ID
func (r *GuestRepository) Get(ctx context.Context, guestID string) (*model.Guest, error) {
	query := `SELECT * FROM type::record($guest_id)`
	vars := map[string]interface{}{"guest_id": guestID}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parseGuestResult(result)
}

// ListByEvent retrieves all guests for an event
func (r *GuestRepository) ListByEvent(ctx context.Context, eventID string) ([]*model.Guest, error) {
	query := `
		SELECT * FROM guest
		WHERE event_id = $event_id
		ORDER BY created_on ASC
	`
	vars := map[string]interface{}{"event_id": eventID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return parseGuestsResult(result), nil
}

// ListByTable retrieves the guests currently assigned to a table
func (r *GuestRepository) ListByTable(ctx context.Context, tableID string) ([]*model.Guest, error) {
	query := `
		SELECT * FROM guest
		WHERE table_id = $table_id
		ORDER BY created_on ASC
	`
	vars := map[string]interface{}{"table_id": tableID}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return parseGuestsResult(result), nil
}

// Update applies a partial update to a guest's plain fields. Assignment must
// go through Assign/Unassign so the capacity re-check is never bypassed.
func (r *GuestRepository) Update(ctx context.Context, guestID string, updates map[string]interface{}) (*model.Guest, error) {
	query := `UPDATE guest SET updated_on = time::now()`
	vars := map[string]interface{}{"guest_id": guestID}

	for key, value := range updates {
		query += ", " + key + " = $" + key
		vars[key] = value
	}

	query += ` WHERE id = type::record($guest_id) RETURN AFTER`

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	return parseGuestResult(result)
}

// Assign writes a guest's table assignment behind a commit-time capacity
// re-check. The service's local check is advisory only; this transaction
// recomputes the table's occupancy (excluding the guest being placed) and
// THROWs the conflict marker when the party no longer fits, in which case
// the returned error matches database.ErrConflict and nothing is written.
func (r *GuestRepository) Assign(ctx context.Context, guestID, tableID string, partySize int) error {
	query := `
		BEGIN TRANSACTION;
		LET $tbl = (SELECT * FROM ONLY type::record($table_id));
		LET $occupied = math::sum((
			SELECT VALUE (IF party_size > 0 THEN party_size ELSE 1 END)
			FROM guest
			WHERE table_id = $table_id AND id != type::record($guest_id)
		));
		IF $occupied + $party_size > $tbl.capacity {
			THROW "` + database.ConflictMarker + `: table capacity exceeded";
		};
		UPDATE type::record($guest_id) SET table_id = $table_id, updated_on = time::now();
		COMMIT TRANSACTION;
	`
	vars := map[string]interface{}{
		"guest_id":   guestID,
		"table_id":   tableID,
		"party_size": partySize,
	}

	return r.db.Execute(ctx, query, vars)
}

// Unassign clears a guest's table assignment
func (r *GuestRepository) Unassign(ctx context.Context, guestID string) error {
	query := `UPDATE type::record($guest_id) SET table_id = NONE, updated_on = time::now()`
	vars := map[string]interface{}{"guest_id": guestID}

	return r.db.Execute(ctx, query, vars)
}

// SetCheckedIn writes a guest's check-in flag
func (r *GuestRepository) SetCheckedIn(ctx context.Context, guestID string, checkedIn bool) error {
	query := `UPDATE type::record($guest_id) SET checked_in = $checked_in, updated_on = time::now()`
	vars := map[string]interface{}{
		"guest_id":   guestID,
		"checked_in": checkedIn,
	}

	return r.db.Execute(ctx, query, vars)
}

// SetRSVPStatus writes a guest's RSVP status
func (r *GuestRepository) SetRSVPStatus(ctx context.Context, guestID string, status model.RSVPStatus) error {
	query := `UPDATE type::record($guest_id) SET rsvp_status = $rsvp_status, updated_on = time::now()`
	vars := map[string]interface{}{
		"guest_id":    guestID,
		"rsvp_status": string(status),
	}

	return r.db.Execute(ctx, query, vars)
}

// Delete removes a guest record. Occupancy is derived from the records, so
// deleting an assigned guest frees the table capacity atomically with the
// removal; no phantom capacity can be held by a deleted record.
func (r *GuestRepository) Delete(ctx context.Context, guestID string) error {
	query := `DELETE guest WHERE id = type::record($guest_id)`
	vars := map[string]interface{}{"guest_id": guestID}

	return r.db.Execute(ctx, query, vars)
}

// Helper functions

func parseGuestResult(result interface{}) (*model.Guest, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	guest := &model.Guest{
		ID:         convertSurrealID(data["id"]),
		EventID:    getString(data, "event_id"),
		Name:       getString(data, "name"),
		Phone:      getString(data, "phone"),
		PartySize:  getInt(data, "party_size"),
		RSVPStatus: model.RSVPStatus(getString(data, "rsvp_status")),
		CheckedIn:  getBool(data, "checked_in"),
		CategoryID: getStringPtr(data, "category_id"),
	}

	if tableID, ok := data["table_id"].(string); ok && tableID != "" {
		guest.TableID = &tableID
	}

	if t := getTime(data, "created_on"); t != nil {
		guest.CreatedOn = *t
	}
	if t := getTime(data, "updated_on"); t != nil {
		guest.UpdatedOn = *t
	}

	return guest, nil
}

func parseGuestsResult(result []interface{}) []*model.Guest {
	guests := make([]*model.Guest, 0)
	for _, item := range extractQueryResults(result) {
		guest, err := parseGuestResult(item)
		if err != nil {
			continue
		}
		guests = append(guests, guest)
	}
	return guests
}
