// Package service implements the business logic of the Placecard API.
//
// Services sit between HTTP handlers and repositories. Each service takes
// its repository dependencies as interfaces so tests can substitute mocks.
//
// # Seating Core
//
// SeatingService is the assignment engine: the only component that writes a
// guest's table assignment, and the sole enforcer of the capacity invariant
// (the party sizes assigned to a table never exceed its capacity). Its
// capacity check is advisory-with-revalidation: the service checks against
// its latest read, and the repository re-checks inside the store transaction
// at commit, so a concurrent session cannot overbook a table.
//
// ComputeEventStats derives all occupancy, RSVP, and check-in statistics
// from the current guest and table collections. It is pure and keeps no
// state, so it can never drift from the source records.
//
// # Error Handling
//
// All errors returned by service methods are sentinel values defined in
// errors.go, except CapacityExceededError which carries the numbers staff
// need to resolve a full table. Handlers translate them with
// handler.MapServiceError. Services never swallow errors.
package service
