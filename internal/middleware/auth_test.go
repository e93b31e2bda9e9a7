package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Lixing-Zhang/minishop/internal/config"
	"github.com/Lixing-Zhang/minishop/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIKeyAuth(t *testing.T) {
	cfg := config.AuthConfig{
		APIKeys: []string{"apitest", "testkey123"},
	}

	testHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("success"))
	})

	authHandler := APIKeyAuth(cfg, logger.New("error"))(testHandler)

	tests := []struct {
		name           string
		apiKey         string
		expectedStatus int
		expectedError  string
	}{
		{name: "first key", apiKey: "apitest", expectedStatus: http.StatusOK},
		{name: "second key", apiKey: "testkey123", expectedStatus: http.StatusOK},
		{name: "missing key", apiKey: "", expectedStatus: http.StatusUnauthorized, expectedError: "API key required"},
		{name: "unknown key", apiKey: "wrongkey", expectedStatus: http.StatusForbidden, expectedError: "Invalid API key"},
		{name: "prefix of a key", apiKey: "apites", expectedStatus: http.StatusForbidden, expectedError: "Invalid API key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/admin/products", nil)
			if tt.apiKey != "" {
				req.Header.Set(APIKeyHeader, tt.apiKey)
			}

			w := httptest.NewRecorder()
			authHandler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedError == "" {
				assert.Equal(t, "success", w.Body.String())
				return
			}

			var errResp map[string]string
			require.NoError(t, json.NewDecoder(w.Body).Decode(&errResp))
			assert.Equal(t, tt.expectedError, errResp["error"])
		})
	}
}
