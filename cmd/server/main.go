package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/placecard/api/internal/config"
	"github.com/placecard/api/internal/database"
	"github.com/placecard/api/internal/handler"
	"github.com/placecard/api/internal/middleware"
	"github.com/placecard/api/internal/repository"
	"github.com/placecard/api/internal/service"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize repositories
	tableRepo := repository.NewTableRepository(db)
	guestRepo := repository.NewGuestRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	annotationRepo := repository.NewAnnotationRepository(db)

	// Initialize services
	seatingService := service.NewSeatingService(guestRepo, tableRepo)
	rosterService := service.NewRosterService(guestRepo, tableRepo)
	floorPlanService := service.NewFloorPlanService(tableRepo, annotationRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	statsService := service.NewStatsService(guestRepo, tableRepo)

	// Initialize handlers
	healthHandler := handler.NewHealthHandler(db)
	tableHandler := handler.NewTableHandler(floorPlanService, seatingService)
	guestHandler := handler.NewGuestHandler(rosterService, seatingService)
	seatingHandler := handler.NewSeatingHandler(seatingService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	annotationHandler := handler.NewAnnotationHandler(floorPlanService)
	statsHandler := handler.NewStatsHandler(statsService)

	// Initialize rate limiter and idempotency store
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Rate:   cfg.RateLimit.Rate,
		Burst:  cfg.RateLimit.Burst,
		Window: cfg.RateLimit.Window,
	})
	defer rateLimiter.Stop()

	idempotencyStore := middleware.NewIdempotencyStore(middleware.IdempotencyConfig{
		TTL: cfg.Idempotency.TTL,
	})
	defer idempotencyStore.Stop()

	// Set up routes
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", healthHandler.Health)

	// Table endpoints
	mux.HandleFunc("GET /v1/events/{eventId}/tables", tableHandler.List)
	mux.HandleFunc("POST /v1/events/{eventId}/tables", tableHandler.Create)
	mux.HandleFunc("GET /v1/tables/{tableId}", tableHandler.Get)
	mux.HandleFunc("PATCH /v1/tables/{tableId}", tableHandler.Update)
	mux.HandleFunc("DELETE /v1/tables/{tableId}", tableHandler.Delete)
	mux.HandleFunc("GET /v1/tables/{tableId}/occupancy", tableHandler.Occupancy)

	// Guest endpoints
	mux.HandleFunc("GET /v1/events/{eventId}/guests", guestHandler.List)
	mux.HandleFunc("POST /v1/events/{eventId}/guests", guestHandler.Create)
	mux.HandleFunc("GET /v1/guests/{guestId}", guestHandler.Get)
	mux.HandleFunc("PATCH /v1/guests/{guestId}", guestHandler.Update)
	mux.HandleFunc("DELETE /v1/guests/{guestId}", guestHandler.Delete)

	// Seating endpoints
	mux.HandleFunc("PUT /v1/guests/{guestId}/table", seatingHandler.Assign)
	mux.HandleFunc("DELETE /v1/guests/{guestId}/table", seatingHandler.Unassign)
	mux.HandleFunc("POST /v1/guests/move", seatingHandler.Move)
	mux.HandleFunc("PUT /v1/guests/{guestId}/checkin", seatingHandler.CheckIn)
	mux.HandleFunc("PUT /v1/guests/{guestId}/rsvp", seatingHandler.SetRSVP)

	// Category endpoints
	mux.HandleFunc("GET /v1/events/{eventId}/categories", categoryHandler.List)
	mux.HandleFunc("POST /v1/events/{eventId}/categories", categoryHandler.Create)
	mux.HandleFunc("GET /v1/categories/{categoryId}", categoryHandler.Get)
	mux.HandleFunc("PATCH /v1/categories/{categoryId}", categoryHandler.Update)
	mux.HandleFunc("DELETE /v1/categories/{categoryId}", categoryHandler.Delete)

	// Annotation endpoints
	mux.HandleFunc("GET /v1/events/{eventId}/annotations", annotationHandler.List)
	mux.HandleFunc("POST /v1/events/{eventId}/annotations", annotationHandler.Create)
	mux.HandleFunc("GET /v1/annotations/{annotationId}", annotationHandler.Get)
	mux.HandleFunc("PATCH /v1/annotations/{annotationId}", annotationHandler.Update)
	mux.HandleFunc("DELETE /v1/annotations/{annotationId}", annotationHandler.Delete)

	// Statistics
	mux.HandleFunc("GET /v1/events/{eventId}/stats", statsHandler.Get)

	// Apply global middleware
	middlewares := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
	}
	if cfg.RateLimit.Enabled {
		middlewares = append(middlewares, middleware.RateLimit(rateLimiter))
	}
	middlewares = append(middlewares,
		middleware.Idempotency(idempotencyStore),
		middleware.Compress,
	)
	wrapped := middleware.Chain(mux, middlewares...)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
