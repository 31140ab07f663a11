// Package api exposes the HTTP/WebSocket surface of the matchpulse service:
// mock match listing, live stats lookup, the recommendation endpoint and the
// tick stream. Request validation happens here, before anything reaches the
// recommendation core.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/matchpulse/internal/config"
	"github.com/yourusername/matchpulse/internal/fixtures"
)

// Server is the matchpulse API server
type Server struct {
	cfg      *config.Config
	logger   *logrus.Logger
	store    *fixtures.Store
	validate *validator.Validate
	upgrader websocket.Upgrader
	server   *http.Server
}

// NewServer creates the API server with its routes and validators wired
func NewServer(cfg *config.Config, store *fixtures.Store, logger *logrus.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		logger:   logger,
		store:    store,
		validate: newRequestValidator(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Mock data service; no origin policy to enforce
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}

	s.server = &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      s.Routes(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeoutSeconds) * time.Second,
	}

	return s
}

// Routes builds the HTTP handler tree
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /matches/top-leagues", s.instrument("/matches/top-leagues", s.handleTopLeagues))
	mux.HandleFunc("GET /match/{fixtureID}/live", s.instrument("/match/{id}/live", s.handleLiveStats))
	mux.HandleFunc("POST /recommendation", s.instrument("/recommendation", s.handleRecommendation))
	mux.HandleFunc("GET /stream/{fixtureID}", s.handleStream)

	return mux
}

// Start runs the server until it is shut down
func (s *Server) Start() error {
	s.logger.WithField("addr", s.server.Addr).Info("API server starting")

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("API server shutting down")
	return s.server.Shutdown(ctx)
}

func newRequestValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("momentum", validateMomentum)
	_ = v.RegisterValidation("matchstatus", validateMatchStatus)
	return v
}

func validateMomentum(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "home", "away", "balanced":
		return true
	default:
		return false
	}
}

func validateMatchStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "scheduled", "live", "finished":
		return true
	default:
		return false
	}
}
