package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yourusername/matchpulse/internal/engine"
	"github.com/yourusername/matchpulse/internal/metrics"
	"github.com/yourusername/matchpulse/internal/models"
)

type errorResponse struct {
	Error string `json:"error"`
}

// handleTopLeagues serves the mock top-league fixture list
func (s *Server) handleTopLeagues(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.TopLeagueMatches())
}

// handleLiveStats serves the synthetic live snapshot for a fixture
func (s *Server) handleLiveStats(w http.ResponseWriter, r *http.Request) {
	fixtureID := r.PathValue("fixtureID")

	stats, err := s.store.LiveStats(fixtureID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown fixture " + fixtureID})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load live stats"})
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// handleRecommendation validates the snapshot and odds, then runs the
// recommendation pipeline. Malformed input never reaches the core.
func (s *Server) handleRecommendation(w http.ResponseWriter, r *http.Request) {
	var req models.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		metrics.RecordRecommendationReject()
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return
	}

	if err := s.validate.Struct(&req); err != nil {
		metrics.RecordRecommendationReject()
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request: " + err.Error()})
		return
	}
	if err := req.Stats.Validate(); err != nil {
		metrics.RecordRecommendationReject()
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	result := engine.Recommend(req.Stats, req.Odds, req.SelectedModels(), req.UseAllModels())
	metrics.RecordRecommendation()

	writeJSON(w, http.StatusOK, result)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
