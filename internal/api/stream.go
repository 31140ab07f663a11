package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/matchpulse/internal/metrics"
	"github.com/yourusername/matchpulse/internal/models"
)

// TickMessage is the payload pushed on every stream tick
type TickMessage struct {
	FixtureID string `json:"fixture_id"`
	Minute    int    `json:"minute"`
	Event     string `json:"event"`
}

// handleStream upgrades the connection and pushes synthetic tick messages at
// the configured interval until the client disconnects. The loop is a pure
// data push; it never calls into the recommendation core.
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	fixtureID := r.PathValue("fixtureID")

	if _, err := s.store.Match(fixtureID); errors.Is(err, models.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown fixture " + fixtureID})
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.WithError(err).Warn("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	connID := uuid.NewString()
	streamLog := s.logger.WithFields(logrus.Fields{
		"connection_id": connID,
		"fixture_id":    fixtureID,
	})
	streamLog.Info("Stream connection opened")

	metrics.StreamConnectionOpened()
	defer metrics.StreamConnectionClosed()

	// Reader loop only to observe the client closing the connection
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	interval := time.Duration(s.cfg.Stream.TickIntervalSeconds) * time.Second
	writeTimeout := time.Duration(s.cfg.Stream.WriteTimeoutSeconds) * time.Second

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	tick := 0
	for {
		payload := TickMessage{
			FixtureID: fixtureID,
			Minute:    s.cfg.Stream.StartMinute + tick,
			Event:     "tick",
		}

		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(payload); err != nil {
			streamLog.WithError(err).Debug("Stream write failed, closing")
			return
		}
		metrics.RecordStreamTick()
		tick++

		select {
		case <-done:
			streamLog.WithField("ticks", tick).Info("Stream connection closed by client")
			return
		case <-r.Context().Done():
			streamLog.WithField("ticks", tick).Info("Stream connection closed by server")
			return
		case <-ticker.C:
		}
	}
}
