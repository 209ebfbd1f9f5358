package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_predictor/internal/feature/prediction/domain/entity"
	"stock_predictor/internal/feature/prediction/transport/http/dto"
)

// AnalysisUsecase は数値ルーチンを実行するユースケースインターフェースです。
type AnalysisUsecase interface {
	Analyze(prices, x []float64) (entity.Analysis, error)
}

// AnalysisHandler は任意の価格列の分析リクエストを処理します。
type AnalysisHandler struct {
	uc AnalysisUsecase
}

// NewAnalysisHandler は新しいAnalysisHandlerを生成します。
func NewAnalysisHandler(uc AnalysisUsecase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

// Analyze は価格列に4つの数値ルーチンを適用した結果を返します。
// - 価格が空、dto.MaxAnalysisPrices件超、またはボディが大きすぎる場合は400を返却
// - xを省略して価格が1件の場合は回帰を省略して200を返却
// - 明示したxが回帰の前提条件（分散が0でない、長さが一致する）に違反した場合は422を返却
//
// エンドポイント例:
// POST /analysis {"prices":[7,1,5,3,6,4]}
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, dto.MaxAnalysisBodyBytes)

	var req dto.AnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("analysis request binding failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}

	a, err := h.uc.Analyze(req.Prices, req.X)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.NewAnalysis(a))
}
