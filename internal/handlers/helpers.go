package handlers

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/Lixing-Zhang/minishop/internal/models"
)

// rawText returns a JSON string's contents or a bare literal as text.
// Used for form-like fields that may arrive either quoted or unquoted.
func rawText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}

	var s string
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return string(raw)
		}
		return s
	}
	return string(raw)
}

// parseQuantity accepts only JSON integer literals
func parseQuantity(raw json.RawMessage) (int, error) {
	q, err := strconv.Atoi(string(bytes.TrimSpace(raw)))
	if err != nil {
		return 0, models.NewValidationError("quantity", "must be a positive integer")
	}
	return q, nil
}

// parsePathIndex parses an integer path parameter
func parsePathIndex(value, field string) (int, error) {
	i, err := strconv.Atoi(value)
	if err != nil {
		return 0, models.NewValidationError(field, "must be an integer")
	}
	return i, nil
}
