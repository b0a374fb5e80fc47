// Package repository implements data access for the Placecard API.
//
// Each aggregate (tables, guests, categories, annotations) gets its own
// repository over the database.Database interface. Repositories speak
// SurrealQL and translate the store's loosely typed results back into
// model structs; they hold no business rules.
//
// The one exception is the commit-time capacity re-check in
// GuestRepository.Assign: the seating service's local capacity check is only
// advisory (another session may have written since the last load), so the
// assignment update runs in a store transaction that recomputes occupancy
// and THROWs when the table no longer fits the party. The thrown marker
// surfaces as database.ErrConflict.
//
// # Conventions
//
//   - Get methods return (nil, nil) when the record does not exist;
//     services translate that into their own not-found sentinels.
//   - All methods take context.Context; the store round-trip is the only
//     suspension point in the system.
package repository
