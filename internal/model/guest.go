package model

import "time"

// RSVPStatus is a guest's confirmation state.
type RSVPStatus string

const (
	RSVPStatusComing   RSVPStatus = "coming"
	RSVPStatusPending  RSVPStatus = "pending"
	RSVPStatusDeclined RSVPStatus = "declined"
)

// IsValid reports whether the status is one of the known variants.
func (s RSVPStatus) IsValid() bool {
	switch s {
	case RSVPStatusComing, RSVPStatusPending, RSVPStatusDeclined:
		return true
	}
	return false
}

// Guest represents one invited party. A guest record may stand for a whole
// family/group; PartySize is the number of people it represents.
type Guest struct {
	ID         string     `json:"id"`
	EventID    string     `json:"event_id"`
	Name       string     `json:"name"`
	Phone      string     `json:"phone"`
	PartySize  int        `json:"party_size"`
	RSVPStatus RSVPStatus `json:"rsvp_status"`
	TableID    *string    `json:"table_id,omitempty"`
	CheckedIn  bool       `json:"checked_in"`
	CategoryID *string    `json:"category_id,omitempty"`

	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// IsAssigned reports whether the guest currently holds a table assignment.
func (g *Guest) IsAssigned() bool {
	return g.TableID != nil && *g.TableID != ""
}

// NormalizedPartySize returns the party size, defaulting any missing or
// invalid value to 1: a guest record always represents at least one person.
func (g *Guest) NormalizedPartySize() int {
	if g.PartySize < 1 {
		return 1
	}
	return g.PartySize
}

// PartySizeSum sums normalized party sizes over the given guests.
func PartySizeSum(guests []*Guest) int {
	total := 0
	for _, g := range guests {
		total += g.NormalizedPartySize()
	}
	return total
}

// FilterByTable returns the guests assigned to the given table.
func FilterByTable(guests []*Guest, tableID string) []*Guest {
	out := make([]*Guest, 0)
	for _, g := range guests {
		if g.TableID != nil && *g.TableID == tableID {
			out = append(out, g)
		}
	}
	return out
}

// FilterByStatus returns the guests with the given RSVP status.
func FilterByStatus(guests []*Guest, status RSVPStatus) []*Guest {
	out := make([]*Guest, 0)
	for _, g := range guests {
		if g.RSVPStatus == status {
			out = append(out, g)
		}
	}
	return out
}

// FilterByCheckedIn returns the guests matching the given check-in state.
func FilterByCheckedIn(guests []*Guest, checkedIn bool) []*Guest {
	out := make([]*Guest, 0)
	for _, g := range guests {
		if g.CheckedIn == checkedIn {
			out = append(out, g)
		}
	}
	return out
}

// Constraints
const (
	MaxGuestNameLength = 200
	MaxPhoneLength     = 40
	MaxPartySize       = 50
)

// CreateGuestRequest represents a request to add a guest to the roster
type CreateGuestRequest struct {
	Name       string     `json:"name"`
	Phone      string     `json:"phone,omitempty"`
	PartySize  *int       `json:"party_size,omitempty"`
	RSVPStatus RSVPStatus `json:"rsvp_status,omitempty"`
	CategoryID *string    `json:"category_id,omitempty"`
}

// UpdateGuestRequest represents a partial update to a guest's display and
// contact fields. Assignment, check-in, and RSVP status have dedicated
// endpoints and are deliberately absent here.
type UpdateGuestRequest struct {
	Name       *string `json:"name,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	PartySize  *int    `json:"party_size,omitempty"`
	CategoryID *string `json:"category_id,omitempty"`
}

// AssignRequest names the target table for an assignment
type AssignRequest struct {
	TableID string `json:"table_id"`
}

// MoveManyRequest represents a batch move of guests onto one table
type MoveManyRequest struct {
	GuestIDs []string `json:"guest_ids"`
	TableID  string   `json:"table_id"`
}

// CheckInRequest sets a guest's check-in flag
type CheckInRequest struct {
	CheckedIn bool `json:"checked_in"`
}

// SetRSVPRequest sets a guest's RSVP status
type SetRSVPRequest struct {
	Status RSVPStatus `json:"status"`
}

// MoveFailure describes one guest that could not be moved in a batch
type MoveFailure struct {
	GuestID string `json:"guest_id"`
	Reason  string `json:"reason"`
}

// MoveManyResult reports the outcome of a batch move. Guests already moved
// stay moved; there is no implicit rollback.
type MoveManyResult struct {
	Moved  []string      `json:"moved"`
	Failed []MoveFailure `json:"failed"`
}

// Validate validates a CreateGuestRequest
func (r *CreateGuestRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Name == "" {
		errors = append(errors, FieldError{Field: "name", Message: "name is required"})
	} else if len(r.Name) > MaxGuestNameLength {
		errors = append(errors, FieldError{Field: "name", Message: "name too long"})
	}

	if len(r.Phone) > MaxPhoneLength {
		errors = append(errors, FieldError{Field: "phone", Message: "phone too long"})
	}

	if r.PartySize != nil && *r.PartySize > MaxPartySize {
		errors = append(errors, FieldError{Field: "party_size", Message: "party size too large"})
	}

	if r.RSVPStatus != "" && !r.RSVPStatus.IsValid() {
		errors = append(errors, FieldError{Field: "rsvp_status", Message: "invalid rsvp_status"})
	}

	return errors
}

// Validate validates an UpdateGuestRequest
func (r *UpdateGuestRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Name != nil {
		if *r.Name == "" {
			errors = append(errors, FieldError{Field: "name", Message: "name cannot be empty"})
		} else if len(*r.Name) > MaxGuestNameLength {
			errors = append(errors, FieldError{Field: "name", Message: "name too long"})
		}
	}

	if r.Phone != nil && len(*r.Phone) > MaxPhoneLength {
		errors = append(errors, FieldError{Field: "phone", Message: "phone too long"})
	}

	if r.PartySize != nil && *r.PartySize > MaxPartySize {
		errors = append(errors, FieldError{Field: "party_size", Message: "party size too large"})
	}

	return errors
}
