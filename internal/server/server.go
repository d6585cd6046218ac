/*
Package server implements the application's network transport layer.
It builds the echo router, configures timeouts, and holds the
dependencies the HTTP handlers need.
*/
package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"NutriScan_Backend/internal/chatbot"
	"NutriScan_Backend/internal/config"
	"NutriScan_Backend/internal/database"
	"NutriScan_Backend/internal/utility"
)

// rateLimitKeys bounds how many callers the limiter tracks at once.
const rateLimitKeys = 10000

// Deps are the services the routes are wired to.
type Deps struct {
	// DB backs the /health endpoint.
	DB database.Service

	// Chat serves the chatbot endpoints.
	Chat *chatbot.Handler

	// AIConfigured and AIModel are reported by /api/gemini/health.
	AIConfigured bool
	AIModel      string

	// GenerateTimeout bounds one AI call, retries included. Response writes
	// are allowed this long plus a margin.
	GenerateTimeout time.Duration
}

// Server defines the configuration and dependencies for the HTTP service.
type Server struct {
	cfg     *config.Config
	deps    Deps
	limiter *utility.KeyedLimiter
	started time.Time
}

// NewServer returns a configured *http.Server for cfg and deps.
func NewServer(cfg *config.Config, deps Deps) (*http.Server, error) {
	s, err := newServer(cfg, deps)
	if err != nil {
		return nil, err
	}

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: deps.GenerateTimeout + 15*time.Second,
	}, nil
}

func newServer(cfg *config.Config, deps Deps) (*Server, error) {
	if deps.Chat == nil {
		return nil, errors.New("server: chat handler is required")
	}
	if deps.DB == nil {
		return nil, errors.New("server: database service is required")
	}

	limiter, err := utility.NewKeyedLimiter(cfg.ChatRateLimit, rateLimitKeys)
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}

	return &Server{
		cfg:     cfg,
		deps:    deps,
		limiter: limiter,
		started: time.Now(),
	}, nil
}
