// Package handler provides HTTP request handlers for the Placecard API.
//
// Each handler struct encapsulates the services needed for one feature area
// (floor plan, roster, seating, statistics). Handlers decode and validate the
// request, delegate to a service, and write a standardized response.
//
// # Response Format
//
//   - WriteData: single resource with optional HATEOAS links
//   - WriteCollection: list of resources
//   - WriteError: RFC 9457 Problem Details error response
//
// Service errors are translated centrally by MapServiceError so every
// endpoint reports the same status codes for the same failures. The one
// domain-specific shape is the capacity rejection: a 409 carrying the
// table's capacity and current occupancy so clients can resynchronize.
package handler
