/*
Package main is the entry point for the HPZ Chatbot backend.

It is responsible for loading configuration, initializing the global logging
system, connecting to the crew database, wiring the identity verifier, the
command dispatcher and the AI completion client into the HTTP server, and
gracefully handling operating system interrupt signals (SIGINT, SIGTERM)
to ensure a smooth server shutdown.
*/
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hpzbot/internal/app/ai"
	"hpzbot/internal/app/chatbot"
	"hpzbot/internal/app/command"
	"hpzbot/internal/app/crew"
	"hpzbot/internal/app/db"
	"hpzbot/internal/app/identity"
	"hpzbot/internal/configs"
	"hpzbot/internal/handler"
	"hpzbot/internal/pkg/logx"
)

func main() {
	// Load configuration from environment variables
	cfg, err := configs.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	logx.InitGlobalLogger(cfg.Environment == "development")
	logx.Logger().Info().
		Str("environment", cfg.Environment).
		Int("port", cfg.Port).
		Str("model", cfg.OpenRouterModel).
		Str("frontend_url", cfg.FrontendURL).
		Msg("Configuration loaded successfully")

	// Create a context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to the crew database and apply pending migrations
	pool, err := db.NewPool(cfg.DatabaseDSN)
	if err != nil {
		logx.Fatal(err, "Failed to initialize database pool")
	}
	defer pool.Close()

	store := crew.NewStore(pool)

	aiClient := ai.NewClient(cfg.OpenRouterAPIKey, cfg.OpenRouterModel, cfg.FrontendURL)
	verifier := identity.NewSupabaseVerifier(cfg.SupabaseURL, cfg.SupabaseAnonKey, cfg.SupabaseJWTSecret)
	dispatcher := command.NewDispatcher(store)
	chatRouter := chatbot.NewRouter(dispatcher, aiClient)

	deps := &handler.AppDeps{
		Config:     cfg,
		Verifier:   verifier,
		Router:     chatRouter,
		Dispatcher: dispatcher,
		AI:         aiClient,
	}

	// Setup HTTP server and routes
	router := handler.Router(deps)

	serverAddr := fmt.Sprintf(":%d", cfg.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logx.Info(fmt.Sprintf("HPZ Chatbot Backend starting on http://localhost%s", serverAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logx.Fatal(err, "Server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 5 seconds.
	<-ctx.Done()
	logx.Info("Received shutdown signal. Starting graceful shutdown...")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logx.Fatal(err, "Server forced to shutdown")
	}

	logx.Info("Server gracefully stopped.")
}
