package server

import (
	"context"
	"net/http"
	"time"

	"github.com/crimetrack/crimetrack-be/internal/auth"
	"github.com/crimetrack/crimetrack-be/internal/config"
	"github.com/crimetrack/crimetrack-be/internal/http/handlers"
	"github.com/crimetrack/crimetrack-be/internal/middleware"
	"github.com/crimetrack/crimetrack-be/internal/storage"
)

// Server wraps an http.Server with configured routes.
type Server struct {
	inner *http.Server
}

// New wires up middleware, routes, and returns a ready server. Auth and
// health routes are open; every criminals route sits behind the token gate.
func New(cfg config.Config, store storage.Store) *Server {
	mux := http.NewServeMux()

	health := handlers.NewHealthHandler(time.Now())
	health.Register(mux)

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
	authHandler := handlers.NewAuthHandler(store, tokens)
	authHandler.Register(mux)

	criminals := handlers.NewCriminalHandler(store)
	criminalRoutes := middleware.RequireAuth(tokens, criminals.Routes())
	mux.Handle("/api/criminals", criminalRoutes)
	mux.Handle("/api/criminals/", criminalRoutes)

	handler := middleware.CORS(cfg.CORSOrigins, middleware.Logging(mux))

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return &Server{inner: httpServer}
}

// Start begins serving HTTP traffic.
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
