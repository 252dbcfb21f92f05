package health

import (
	"io"
	"log/slog"
	"net/http"
	"webapp/internal/core/port"
)

// Handler is the handler for the liveness probe
type Handler struct {
	healthService port.HealthService
	logger        *slog.Logger
}

// NewHandler creates Handler
func NewHandler(service port.HealthService, logger *slog.Logger) *Handler {
	return &Handler{
		healthService: service,
		logger:        logger,
	}
}

// Check accepts a bare GET, writes a heartbeat and reports readiness with an empty body
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if r.URL.RawQuery != "" || hasBody(r) {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := h.healthService.Check(r.Context()); err != nil {
		h.logger.Error("heartbeat write failed", "error", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func hasBody(r *http.Request) bool {
	if r.ContentLength > 0 {
		return true
	}
	if r.Body == nil || r.Body == http.NoBody {
		return false
	}
	var b [1]byte
	n, _ := io.ReadFull(r.Body, b[:])
	return n > 0
}
