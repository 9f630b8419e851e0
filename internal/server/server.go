// Package server provides the HTTP boundary for the resume-studio service.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/resume-studio/internal/db"
	"github.com/jonathan/resume-studio/internal/pipeline"
	"github.com/jonathan/resume-studio/internal/session"
)

// Config holds server configuration.
type Config struct {
	Port          int
	DatabaseURL   string
	RenderTimeout time.Duration
}

// Server wraps the HTTP server and the generation pipeline behind it.
type Server struct {
	httpServer *http.Server
	generator  *pipeline.Generator
	sessions   *session.Manager
	history    *db.History
}

// New creates a new server with the given configuration. When DatabaseURL is
// empty the server runs without render history.
func New(cfg Config) (*Server, error) {
	var history *db.History
	if cfg.DatabaseURL != "" {
		h, err := db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		history = h
	}

	sessionOpts := []session.Option{}
	if cfg.RenderTimeout > 0 {
		sessionOpts = append(sessionOpts, session.WithTimeout(cfg.RenderTimeout))
	}
	sessions := session.NewManager(sessionOpts...)

	s := &Server{
		sessions: sessions,
		history:  history,
		generator: &pipeline.Generator{
			Sessions: sessions,
			History:  history,
		},
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for HTTP requests. Blocks until the server is shut
// down via SIGINT or SIGTERM.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[SERVER] listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-stop:
		log.Println("[SERVER] shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	err := s.httpServer.Shutdown(ctx)
	s.sessions.Close()
	s.history.Close()
	return err
}

// Handler returns the server's HTTP handler. Used by tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /generate/pdf", s.handleGeneratePDF)
	mux.HandleFunc("POST /generate/html", s.handleGenerateHTML)
	mux.HandleFunc("GET /templates", s.handleListTemplates)
	mux.HandleFunc("GET /renders", s.handleRecentRenders)
	mux.HandleFunc("GET /health", s.handleHealth)
	return mux
}

func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[SERVER] %s %s %v", r.Method, r.URL.Path, time.Since(start))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok", "session": "cold"}
	if s.sessions.Healthy(r.Context()) {
		status["session"] = "warm"
	}
	jsonResponse(w, http.StatusOK, status)
}

func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[SERVER] failed to encode response: %v", err)
	}
}

func errorResponse(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}
