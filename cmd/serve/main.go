// Package main runs the pet-vision HTTP server: photo intake, two-step and
// single-step generation, and a liveness probe.
//
// Configuration is via environment variables:
//
//	GOGGLES_PORT           - Server port (default: 8000)
//	GOGGLES_UPLOAD_DIR     - Image store root directory (default: uploads)
//	GOGGLES_LOG_LEVEL      - Log level: debug, info, warn, error (default: info)
//	GOGGLES_PROVIDER       - Backend: replicate, openai, or google (required)
//	GOGGLES_MODEL          - Model override (optional, uses backend default)
//	GOGGLES_FAILURE_POLICY - strict or tolerant (default: strict)
//	GOGGLES_TIMEOUT        - Provider deadline per request (default: 60s)
//	GOGGLES_STEPS          - Inference steps (default: 4)
//	GOGGLES_GUIDANCE       - Guidance scale (default: 3.5)
//	GOGGLES_STRENGTH       - Prompt-adherence factor (default: 0.8)
//	REPLICATE_API_TOKEN    - Replicate API token
//	OPENAI_API_KEY         - OpenAI API key
//	GOOGLE_API_KEY         - Google API key
//
// Usage:
//
//	GOGGLES_PROVIDER=replicate go run ./cmd/serve
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/petgoggles/goggles"
	"github.com/petgoggles/goggles/client"
	"github.com/petgoggles/goggles/store"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	setupLogging(cfg.LogLevel)

	provider, err := client.New(context.Background(), client.Config{
		Provider: cfg.Provider,
		APIKeys:  cfg.APIKeys(),
		Model:    cfg.Model,
	})
	if err != nil {
		log.Fatalf("Failed to create provider: %v", err)
	}

	fileStore, err := store.New(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to create image store: %v", err)
	}

	gen := goggles.NewGenerator(fileStore, provider, cfg.FailurePolicy, cfg.GenerateOptions()...)
	handler := NewImageHandler(gen, cfg.Timeout)

	mux := http.NewServeMux()
	handler.Register(mux)

	server := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     corsMiddleware(mux),
		ReadTimeout: 30 * time.Second,
		// Write timeout must cover the provider round-trip.
		WriteTimeout: cfg.Timeout + 30*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting",
		"port", cfg.Port,
		"provider", string(cfg.Provider),
		"policy", string(gen.Policy()),
		"upload_dir", fileStore.Root(),
	)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}

	slog.Info("server stopped")
}

// corsMiddleware adds permissive CORS headers for cross-origin frontends.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func setupLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
