// Package model defines domain entities and data structures for the Placecard API.
//
// The model package contains all struct definitions for domain objects,
// request/response types, and error definitions. Models are used across all
// layers of the application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - Table: a physical table on the floor plan with a finite capacity
//   - Guest: an invited party carrying an RSVP status, a party size, an
//     optional table assignment, and a check-in flag
//   - Category: an organizational grouping used to section guests
//   - Annotation: a free-form positioned note on the floor plan
//
// # Derived Statistics
//
// EventStats and TableStats hold the occupancy/RSVP/check-in aggregates that
// staff rely on during the event. They are always recomputed from the current
// guest and table collections, never stored.
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type    string    `json:"type"`
//	    Title   string    `json:"title"`
//	    Status  int       `json:"status"`
//	    Detail  string    `json:"detail"`
//	}
package model
