// Command serve exposes the report pipeline over HTTP.
//
// Endpoints:
//
//	GET  /        - minimal form for submitting a topic from a browser
//	POST /report  - JSON request {"task": "..."}; returns the compiled report
//	POST /stream  - same request; streams AG-UI events over SSE while running
//	GET  /healthz - liveness probe
//
// Configuration is via environment variables (a .env file is honored):
//
//	BOARDROOM_PORT    - Server port (default: 8080)
//	BOARDROOM_MODEL   - Model override (optional, uses provider default)
//	ANTHROPIC_API_KEY - Anthropic API key
//	OPENAI_API_KEY    - OpenAI API key
//	GROQ_API_KEY      - Groq API key
//	GOOGLE_API_KEY    - Google API key
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mwhitby/boardroom/client"
)

func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	port := os.Getenv("BOARDROOM_PORT")
	if port == "" {
		port = "8080"
	}

	c, err := client.New(context.Background(), client.FromEnv())
	if err != nil {
		slog.Error("client setup failed", "error", err)
		os.Exit(1)
	}

	handler := NewReportHandler(c)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", indexHandler)
	mux.HandleFunc("POST /report", handler.Report)
	mux.HandleFunc("POST /stream", handler.Stream)
	mux.HandleFunc("GET /healthz", healthHandler)

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 0, // SSE needs no write timeout
		IdleTimeout:  120 * time.Second,
	}

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

	slog.Info("server starting", "port", port, "backend", c.Name())

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
