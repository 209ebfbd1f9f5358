package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupRouter(checks map[string]CheckFunc) *gin.Engine {
	h := NewHealthHandler(checks)
	r := gin.New()
	r.GET("/healthz", h.Health)
	r.HEAD("/healthz", h.Health)
	r.OPTIONS("/healthz", h.Health)
	return r
}

func TestHealth_GET_NoChecks(t *testing.T) {
	t.Parallel()

	router := setupRouter(nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}

// TestHealth_GET_Components はコンポーネントごとの状態が返されることを検証します。
func TestHealth_GET_Components(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		checks         map[string]CheckFunc
		expectedStatus int
		expectedBody   HealthResponse
	}{
		{
			name: "all healthy",
			checks: map[string]CheckFunc{
				"catalog": func(ctx context.Context) error { return nil },
				"cache":   func(ctx context.Context) error { return nil },
			},
			expectedStatus: http.StatusOK,
			expectedBody: HealthResponse{
				Status:     "ok",
				Components: map[string]string{"catalog": "ok", "cache": "ok"},
			},
		},
		{
			name: "cache down",
			checks: map[string]CheckFunc{
				"catalog": func(ctx context.Context) error { return nil },
				"cache":   func(ctx context.Context) error { return errors.New("connection refused") },
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody: HealthResponse{
				Status:     "degraded",
				Components: map[string]string{"catalog": "ok", "cache": "error: connection refused"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := setupRouter(tt.checks)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/healthz", nil)

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			var got HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.expectedBody, got)
		})
	}
}

// TestHealth_HEAD_SkipsChecks はHEADではチェックを実行せずボディなしで200を返すことを検証します。
func TestHealth_HEAD_SkipsChecks(t *testing.T) {
	t.Parallel()

	called := false
	router := setupRouter(map[string]CheckFunc{
		"catalog": func(ctx context.Context) error {
			called = true
			return errors.New("down")
		},
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodHead, "/healthz", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, w.Body.Len())
	assert.False(t, called)
}

func TestHealth_OPTIONS(t *testing.T) {
	t.Parallel()

	router := setupRouter(nil)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/healthz", nil)

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}
