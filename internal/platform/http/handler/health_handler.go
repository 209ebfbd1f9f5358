// Package handler はプラットフォームレベルのエンドポイント用HTTPハンドラーを提供します。
package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
)

// CheckFunc はコンポーネント（カタログDB、キャッシュなど）の疎通を確認する関数です。
type CheckFunc func(ctx context.Context) error

// checkTimeout はコンポーネントごとの確認に使うタイムアウトです。
const checkTimeout = 2 * time.Second

// HealthHandler は /healthz エンドポイントを処理します。
type HealthHandler struct {
	checks map[string]CheckFunc
}

// NewHealthHandler は名前付きのコンポーネントチェックを持つHealthHandlerを生成します。
// checksがnilの場合は常にokを返すliveness専用のハンドラーになります。
func NewHealthHandler(checks map[string]CheckFunc) *HealthHandler {
	return &HealthHandler{checks: checks}
}

// HealthResponse は /healthz のレスポンスです。
type HealthResponse struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components,omitempty"`
}

// Health はHTTPメソッドに応じて適切にレスポンスし、キャッシュを防止します。
// GETではコンポーネントの状態を返し、1つでも失敗していれば503を返します。
func (h *HealthHandler) Health(c *gin.Context) {
	// 明示的にキャッシュを防止
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case http.MethodHead:
		c.Status(http.StatusOK)
		return
	case http.MethodOptions:
		c.Status(http.StatusNoContent)
		return
	}

	resp, ok := h.run(c.Request.Context())
	status := http.StatusOK
	if !ok {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, resp)
}

// run はすべてのチェックを名前順に実行します。
func (h *HealthHandler) run(ctx context.Context) (HealthResponse, bool) {
	resp := HealthResponse{Status: "ok"}
	if len(h.checks) == 0 {
		return resp, true
	}

	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	healthy := true
	resp.Components = make(map[string]string, len(names))
	for _, name := range names {
		cctx, cancel := context.WithTimeout(ctx, checkTimeout)
		err := h.checks[name](cctx)
		cancel()
		if err != nil {
			healthy = false
			resp.Components[name] = "error: " + err.Error()
			continue
		}
		resp.Components[name] = "ok"
	}
	if !healthy {
		resp.Status = "degraded"
	}
	return resp, healthy
}
