package service

import (
	"errors"
	"fmt"
	"strings"
)

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Lookup Errors =====
var (
	ErrGuestNotFound      = errors.New("guest not found")
	ErrTableNotFound      = errors.New("table not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrAnnotationNotFound = errors.New("annotation not found")
)

// ===== Validation Errors =====
var (
	ErrEventIDRequired      = errors.New("event id is required")
	ErrGuestIDRequired      = errors.New("guest id is required")
	ErrTableIDRequired      = errors.New("table id is required")
	ErrCategoryIDRequired   = errors.New("category id is required")
	ErrAnnotationIDRequired = errors.New("annotation id is required")
	ErrGuestNameRequired    = errors.New("guest name is required")
	ErrCategoryNameRequired = errors.New("category name is required")
	ErrAnnotationTextEmpty  = errors.New("annotation text is required")
	ErrInvalidPartySize     = errors.New("party size must be at least 1")
	ErrInvalidRSVPStatus    = errors.New("invalid RSVP status")
	ErrInvalidCategorySide  = errors.New("invalid category side")
	ErrInvalidShape         = errors.New("invalid table shape")
	ErrInvalidCapacity      = errors.New("capacity must be positive")
	ErrEmptyBatch           = errors.New("no guests to move")

	// ErrMalformedID flags an identifier that cannot name a stored record;
	// wrapped errors carry the offending value, check with errors.Is.
	ErrMalformedID = errors.New("malformed record id")
)

// requireRecordID checks that id names a record in the given table, e.g.
// "guest:k3q7x" for table "guest". Record ids travel through the API whole,
// so a bare or mistabled id is a client error and is rejected here rather
// than handed to the store, where it would read as a query failure.
func requireRecordID(id, table string) error {
	rest, ok := strings.CutPrefix(id, table+":")
	if !ok || rest == "" {
		return fmt.Errorf("%w: %q is not a %s id", ErrMalformedID, id, table)
	}
	return nil
}

// ===== Seating Errors =====
var (
	// ErrTableFull is the sentinel behind CapacityExceededError; check with
	// errors.Is when the numbers don't matter.
	ErrTableFull = errors.New("table is full")
)

// CapacityExceededError reports an assignment that would push a table past
// its capacity. Occupied excludes the guest being placed, so
// Occupied + PartySize > Capacity always holds when this error is returned.
type CapacityExceededError struct {
	TableID   string
	Capacity  int
	Occupied  int
	PartySize int
}

// Error implements the error interface
func (e *CapacityExceededError) Error() string {
	return fmt.Sprintf("table %s is full: %d of %d seats taken, party of %d does not fit",
		e.TableID, e.Occupied, e.Capacity, e.PartySize)
}

// Is makes errors.Is(err, ErrTableFull) match this error
func (e *CapacityExceededError) Is(target error) bool {
	return target == ErrTableFull
}
