// Package config manages application configuration for the Placecard API.
//
// Configuration is loaded from environment variables with development-friendly
// defaults, then validated once at startup:
//
//	cfg, _ := config.Load()
//	if err := cfg.Validate(); err != nil {
//	    // report every problem at once; Validate joins all failures
//	}
//
// # Configuration Groups
//
//   - Server: HTTP server settings (port, timeouts, CORS origins)
//   - Database: SurrealDB connection settings
//   - RateLimit: per-client token bucket settings
//   - Idempotency: retention for cached mutation responses
//
// # Environment Variables
//
// Key environment variables:
//
//	SERVER_PORT           - HTTP server port (default: 8080)
//	SERVER_ENV            - development, production, or test
//	CORS_ALLOWED_ORIGINS  - comma-separated list of allowed origins
//	DB_HOST, DB_PORT      - SurrealDB endpoint
//	DB_NAMESPACE          - namespace (default: placecard)
//	DB_DATABASE           - database name (default: main)
//	RATE_LIMIT_RATE       - requests per window per client
//	IDEMPOTENCY_TTL       - how long replayed responses are kept
package config
