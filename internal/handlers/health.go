package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Lixing-Zhang/storefront/internal/models"
	"github.com/jonboulle/clockwork"
)

// ISO8601Millis is the timestamp layout of JavaScript's Date.toISOString
const ISO8601Millis = "2006-01-02T15:04:05.000Z07:00"

// HealthHandler provides health check endpoint
type HealthHandler struct {
	clock  clockwork.Clock
	logger *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(clock clockwork.Clock, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		clock:  clock,
		logger: logger,
	}
}

// ServeHTTP handles GET /health. It always reports UP.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, models.HealthStatus{
		Status:    models.StatusUp,
		Timestamp: h.clock.Now().UTC().Format(ISO8601Millis),
	}, h.logger)
}

// ParseTimestamp parses a timestamp produced by the health endpoint
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(ISO8601Millis, s)
}
