package handlers

import (
	"log/slog"
	"net/http"
	"time"
)

// shopCounter is the interface for reporting state sizes
type shopCounter interface {
	Counts() (products, cartEntries int)
}

// HealthHandler provides health check endpoint
type HealthHandler struct {
	counter shopCounter
	logger  *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(counter shopCounter, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		counter: counter,
		logger:  logger,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Version     string    `json:"version"`
	Products    int       `json:"products"`
	CartEntries int       `json:"cartEntries"`
}

// ServeHTTP handles health check requests
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	products, cartEntries := h.counter.Counts()

	response := HealthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Version:     "1.0.0",
		Products:    products,
		CartEntries: cartEntries,
	}

	WriteJSON(w, http.StatusOK, response, h.logger)
}
