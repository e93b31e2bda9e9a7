package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/minishop/internal/models"
)

const maxBodyBytes = 1 << 20

// WriteJSON writes a JSON response
func WriteJSON(w http.ResponseWriter, status int, data interface{}, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes {"error": message} with the given status
func WriteError(w http.ResponseWriter, status int, message string, logger *slog.Logger) {
	WriteJSON(w, status, map[string]string{"error": message}, logger)
}

// decodeJSON reads the request body into dst.
// On failure it has already answered 400 and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, logger *slog.Logger) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Warn("failed to decode request body", "path", r.URL.Path, "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", logger)
		return false
	}
	return true
}

// writeServiceError maps core errors to HTTP status codes
func writeServiceError(w http.ResponseWriter, err error, logger *slog.Logger) {
	switch {
	case errors.Is(err, models.ErrValidation):
		WriteError(w, http.StatusBadRequest, err.Error(), logger)
	case errors.Is(err, models.ErrOutOfRange):
		WriteError(w, http.StatusNotFound, err.Error(), logger)
	case errors.Is(err, models.ErrEmptyCart):
		WriteError(w, http.StatusBadRequest, "Your cart is empty", logger)
	default:
		logger.Error("unexpected service error", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", logger)
	}
}
