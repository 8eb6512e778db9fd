package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/riffle/internal/server/config"
	"github.com/iudanet/riffle/internal/server/handlers"
	"github.com/iudanet/riffle/internal/server/middleware"
	"github.com/iudanet/riffle/internal/server/storage/sqlite"
	"github.com/iudanet/riffle/internal/usgs"
	"github.com/iudanet/riffle/internal/weather"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Parse flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	// Show version and exit if requested
	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	cfg := config.Load()
	logger := setupLogger(cfg.LogLevel)

	if err := run(cfg, logger); err != nil {
		logger.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg config.Config, logger *slog.Logger) error {
	ctx := context.Background()

	// Открываем sqlite и применяем миграции
	store, err := sqlite.New(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close storage", slog.Any("error", err))
		}
	}()

	jwtConfig := handlers.JWTConfig{
		Secret:         []byte(cfg.JWTSecret),
		AccessTokenTTL: cfg.AccessTokenTTL,
	}

	weatherClient := weather.NewClient(cfg.OpenWeatherAPIKey, logger)
	usgsClient := usgs.NewClient()

	// Handlers
	authHandler := handlers.NewAuthHandler(logger, store, jwtConfig)
	journalHandler := handlers.NewJournalHandler(logger, store)
	hatchHandler := handlers.NewHatchHandler(logger, store)
	riversHandler := handlers.NewRiversHandler(logger, store, usgsClient)
	conditionsHandler := handlers.NewConditionsHandler(logger, weatherClient, usgsClient)
	healthHandler := handlers.NewHealthHandler(logger, store.DB(), Version)

	// Middleware
	authMW := middleware.AuthMiddleware(logger, jwtConfig)

	mux := http.NewServeMux()

	// Публичные endpoints
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/v1/journal/public", journalHandler.ListPublic)
	mux.HandleFunc("GET /api/v1/conditions", conditionsHandler.Get)
	mux.HandleFunc("GET /api/v1/hatch", hatchHandler.List)
	mux.HandleFunc("GET /api/v1/rivers/sites", riversHandler.SearchSites)

	// Endpoints требующие авторизации
	mux.Handle("GET /api/v1/auth/me", authMW(http.HandlerFunc(authHandler.Me)))
	mux.Handle("PUT /api/v1/auth/profile", authMW(http.HandlerFunc(authHandler.UpdateProfile)))
	mux.Handle("POST /api/v1/journal", authMW(http.HandlerFunc(journalHandler.Create)))
	mux.Handle("GET /api/v1/journal", authMW(http.HandlerFunc(journalHandler.List)))
	mux.Handle("GET /api/v1/journal/{id}", authMW(http.HandlerFunc(journalHandler.Get)))
	mux.Handle("PUT /api/v1/journal/{id}", authMW(http.HandlerFunc(journalHandler.Update)))
	mux.Handle("DELETE /api/v1/journal/{id}", authMW(http.HandlerFunc(journalHandler.Delete)))
	mux.Handle("POST /api/v1/hatch", authMW(http.HandlerFunc(hatchHandler.Create)))
	mux.Handle("POST /api/v1/rivers", authMW(http.HandlerFunc(riversHandler.Save)))
	mux.Handle("GET /api/v1/rivers", authMW(http.HandlerFunc(riversHandler.List)))
	mux.Handle("DELETE /api/v1/rivers/{id}", authMW(http.HandlerFunc(riversHandler.Delete)))

	// Auth endpoints ограничиваем жестче остальных
	rateLimits := []middleware.PathRateLimit{
		{Path: "/api/v1/auth/login", Rate: 10, Window: 5 * time.Minute},
		{Path: "/api/v1/auth/register", Rate: 5, Window: 5 * time.Minute},
	}

	handler := middleware.RecoveryMiddleware(logger)(
		middleware.LoggingWithSkip(logger, []string{"/api/v1/health"})(
			middleware.RateLimitByPathMiddleware(rateLimits, 300, time.Minute, logger)(mux)))

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errC := make(chan error, 1)
	go func() {
		logger.Info("riffle server listening",
			slog.String("addr", cfg.Addr),
			slog.String("version", Version))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errC <- err
		}
	}()

	sigC := make(chan os.Signal, 1)
	signal.Notify(sigC, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errC:
		return err
	case sig := <-sigC:
		logger.Info("shutting down", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	return nil
}

func setupLogger(level string) *slog.Logger {
	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel})
	return slog.New(handler)
}

func printVersion() {
	fmt.Printf("Riffle Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
