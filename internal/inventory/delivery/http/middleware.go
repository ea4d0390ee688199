package http

import (
	"net/http"
	"strconv"
	"time"
)

// ownerHeader carries the authenticated tenant. The API gateway validates the
// JWT and forwards the customer id here; the service itself never parses tokens.
const ownerHeader = "X-Owner-ID"

// ownerFromRequest extracts the owning customer id or writes a 401.
func ownerFromRequest(w http.ResponseWriter, r *http.Request) (uint, bool) {
	raw := r.Header.Get(ownerHeader)
	if raw == "" {
		respondJSON(w, http.StatusUnauthorized, Response{
			Success: false,
			Error:   "Missing " + ownerHeader + " header",
		})
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		respondJSON(w, http.StatusUnauthorized, Response{
			Success: false,
			Error:   "Invalid " + ownerHeader + " header",
		})
		return 0, false
	}
	return uint(id), true
}

// statusRecorder captures the response status for metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// metricsMiddleware records request count and latency per endpoint.
func (h *InventoryHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next(rec, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rec.status)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}
