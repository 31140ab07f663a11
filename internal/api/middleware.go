package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/matchpulse/internal/metrics"
)

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// instrument wraps a handler with request-ID tagging, access logging and
// per-route Prometheus metrics. The route label is the pattern, not the
// concrete path, to keep metric cardinality bounded.
func (s *Server) instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		w.Header().Set("X-Request-ID", requestID)

		next(recorder, r)

		duration := time.Since(start)
		metrics.RecordHTTPRequest(route, fmt.Sprintf("%d", recorder.status), duration.Seconds())

		s.logger.WithFields(logrus.Fields{
			"request_id": requestID,
			"method":     r.Method,
			"route":      route,
			"status":     recorder.status,
			"duration":   duration.String(),
		}).Info("Request served")
	}
}
