// Package middleware provides HTTP middleware for the Placecard API.
//
// The global chain wraps every route:
//
//	wrapped := middleware.Chain(
//	    mux,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.Recovery,
//	    middleware.CORS(origins),
//	    middleware.RateLimit(limiter),
//	    middleware.Idempotency(store),
//	    middleware.Compress,
//	)
//
// RateLimit and Idempotency key requests by client address: the API sits
// behind venue Wi-Fi where staff devices retry aggressively, so replaying a
// cached response for a repeated Idempotency-Key beats double-applying a
// seating change.
package middleware
