package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Lixing-Zhang/minishop/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedCounter struct {
	products, cartEntries int
}

func (c fixedCounter) Counts() (int, int) {
	return c.products, c.cartEntries
}

func TestHealthHandler(t *testing.T) {
	handler := NewHealthHandler(fixedCounter{products: 4, cartEntries: 2}, logger.New("error"))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp HealthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, 4, resp.Products)
	assert.Equal(t, 2, resp.CartEntries)
	assert.False(t, resp.Timestamp.IsZero())
}
