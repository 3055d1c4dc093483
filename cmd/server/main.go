package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iudanet/taskkeeper/internal/server/handlers"
	"github.com/iudanet/taskkeeper/internal/server/middleware"
	"github.com/iudanet/taskkeeper/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const shutdownTimeout = 15 * time.Second

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	addr := flag.String("addr", ":8080", "HTTP listen address")
	dbPath := flag.String("db", "taskkeeper.db", "Path to SQLite database")
	tokenTTL := flag.Duration("token-ttl", time.Hour, "Access token lifetime")
	jwtSecret := flag.String("jwt-secret", "", "JWT signing secret (overrides TASKKEEPER_JWT_SECRET)")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	secret := *jwtSecret
	if secret == "" {
		secret = os.Getenv("TASKKEEPER_JWT_SECRET")
	}
	if secret == "" {
		logger.Error("JWT secret is not configured: set TASKKEEPER_JWT_SECRET or -jwt-secret")
		os.Exit(1)
	}

	if err := run(logger, *addr, *dbPath, handlers.TokenConfig{
		Secret:   []byte(secret),
		TokenTTL: *tokenTTL,
	}); err != nil {
		logger.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, addr, dbPath string, tokenConfig handlers.TokenConfig) error {
	ctx := context.Background()

	// Открываем хранилище; миграции применяются при старте
	store, err := sqlite.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close storage", "error", err)
		}
	}()

	authHandler := handlers.NewAuthHandler(logger, store, tokenConfig)
	todoHandler := handlers.NewTodoHandler(logger, store)
	healthHandler := handlers.NewHealthHandler(logger)

	requireAuth := middleware.AuthMiddleware(logger, tokenConfig)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.Handle("POST /api/v1/todos", requireAuth(http.HandlerFunc(todoHandler.Create)))
	mux.Handle("GET /api/v1/todos", requireAuth(http.HandlerFunc(todoHandler.List)))
	mux.Handle("GET /api/v1/todos/{id}", requireAuth(http.HandlerFunc(todoHandler.Get)))
	mux.Handle("PUT /api/v1/todos/{id}", requireAuth(http.HandlerFunc(todoHandler.Update)))
	mux.Handle("DELETE /api/v1/todos/{id}", requireAuth(http.HandlerFunc(todoHandler.Delete)))

	handler := middleware.RecoveryMiddleware(logger)(
		middleware.LoggingWithSkip(logger, []string{"/health"})(mux),
	)

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownSignal := make(chan os.Signal, 1)
	signal.Notify(shutdownSignal, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server starting", "addr", addr, "version", Version)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-shutdownSignal:
	}

	logger.Info("Shutdown signal received, initiating graceful shutdown")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("Server gracefully stopped")
	return nil
}

func printVersion() {
	fmt.Printf("TaskKeeper Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
