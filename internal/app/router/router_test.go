package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_predictor/internal/feature/prediction/adapters/synthetic"
	predictionhandler "stock_predictor/internal/feature/prediction/transport/handler"
	predictionusecase "stock_predictor/internal/feature/prediction/usecase"
	"stock_predictor/internal/feature/symbollist/domain/entity"
	symbollisthandler "stock_predictor/internal/feature/symbollist/transport/handler"
	healthhandler "stock_predictor/internal/platform/http/handler"
	"stock_predictor/internal/shared/latency"
	"stock_predictor/internal/shared/random"
)

type stubSymbols struct{}

func (stubSymbols) ListActiveSymbols(ctx context.Context) ([]entity.Symbol, error) {
	return entity.DefaultSymbols(), nil
}

func newTestRouter(t *testing.T, origins []string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rnd := random.NewSeeded(1)
	gen := synthetic.NewGenerator(synthetic.DefaultPrices(), rnd, nil)
	pred := predictionusecase.NewPredictor(gen, latency.NewSimulator(0), rnd, 0)

	return NewRouter(Handlers{
		Health:     healthhandler.NewHealthHandler(nil),
		Symbol:     symbollisthandler.NewSymbolHandler(stubSymbols{}),
		Algorithm:  predictionhandler.NewAlgorithmHandler(),
		Prediction: predictionhandler.NewPredictionHandler(pred),
		Analysis:   predictionhandler.NewAnalysisHandler(predictionusecase.NewAnalysisUsecase()),
	}, origins)
}

func do(r http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// TestNewRouter_Routes は登録された各ルートが期待するステータスを返すことを検証します。
func TestNewRouter_Routes(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, []string{"*"})

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/healthz", "", http.StatusOK},
		{http.MethodHead, "/healthz", "", http.StatusOK},
		{http.MethodGet, "/symbols", "", http.StatusOK},
		{http.MethodGet, "/algorithms", "", http.StatusOK},
		{http.MethodGet, "/algorithms/dp-tabulation", "", http.StatusOK},
		{http.MethodGet, "/predictions/current", "", http.StatusOK},
		{http.MethodPost, "/predictions", `{"symbol":""}`, http.StatusBadRequest},
		{http.MethodPost, "/analysis", `{"prices":[7,1,5,3,6,4]}`, http.StatusOK},
		{http.MethodGet, "/candles/AAPL", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := do(r, tt.method, tt.path, tt.body, nil)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

// TestNewRouter_PredictThenCurrent は予測結果が状態スナップショットに反映されることを検証します。
func TestNewRouter_PredictThenCurrent(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, nil)

	w := do(r, http.MethodPost, "/predictions", `{"symbol":"GOOGL","algorithm":"linear-regression","days":3}`, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = do(r, http.MethodGet, "/predictions/current", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var state map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	assert.Equal(t, "GOOGL", state["symbol"])
	assert.Equal(t, "linear-regression", state["algorithm"])
	predicted, ok := state["predicted"].([]any)
	require.True(t, ok)
	assert.Len(t, predicted, 3)
}

// TestNewRouter_CORS は許可されたオリジンにだけCORSヘッダーが付与されることを検証します。
func TestNewRouter_CORS(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, []string{"http://localhost:3000"})

	w := do(r, http.MethodOptions, "/predictions", "", map[string]string{
		"Origin":                        "http://localhost:3000",
		"Access-Control-Request-Method": http.MethodPost,
	})
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	w = do(r, http.MethodGet, "/symbols", "", map[string]string{"Origin": "http://evil.example"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCorsConfig(t *testing.T) {
	t.Parallel()

	assert.True(t, corsConfig(nil).AllowAllOrigins)
	assert.True(t, corsConfig([]string{"http://a", "*"}).AllowAllOrigins)

	cfg := corsConfig([]string{"http://a"})
	assert.False(t, cfg.AllowAllOrigins)
	assert.Equal(t, []string{"http://a"}, cfg.AllowOrigins)
}
