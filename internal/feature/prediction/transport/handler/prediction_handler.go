// Package handler はpredictionフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_predictor/internal/feature/prediction/domain"
	"stock_predictor/internal/feature/prediction/domain/entity"
	"stock_predictor/internal/feature/prediction/transport/http/dto"
)

// PredictionUsecase は予測サイクルのユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type PredictionUsecase interface {
	Run(ctx context.Context, req entity.PredictionRequest) (*entity.PredictionResult, error)
	Snapshot() entity.PredictorState
}

// PredictionHandler は予測に関するHTTPリクエストを処理します。
type PredictionHandler struct {
	uc PredictionUsecase
}

// NewPredictionHandler は指定されたusecaseでPredictionHandlerの新しいインスタンスを生成します。
func NewPredictionHandler(uc PredictionUsecase) *PredictionHandler {
	return &PredictionHandler{uc: uc}
}

// Predict は銘柄・アルゴリズム・日数を受け取り、予測サイクルを実行します。
// - JSONが不正な場合は400を返却
// - 銘柄が空の場合は400と "Please enter a stock symbol" を返却
// - 新しいリクエストに置き換えられた場合は409を返却
// - 計算に失敗した場合は500と再試行を促すメッセージを返却
//
// エンドポイント例:
// POST /predictions {"symbol":"MSFT","algorithm":"tabulated-dp","days":5}
func (h *PredictionHandler) Predict(c *gin.Context) {
	var req dto.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("prediction request binding failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}

	res, err := h.uc.Run(c.Request.Context(), entity.PredictionRequest{
		Symbol:    req.Symbol,
		Algorithm: req.Algorithm,
		Days:      req.Days,
	})
	switch {
	case errors.Is(err, domain.ErrEmptySymbol):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: domain.MessageEmptySymbol})
		return
	case errors.Is(err, domain.ErrSuperseded):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: domain.MessageSuperseded})
		return
	case err != nil:
		// 内部エラーの詳細は公開しない
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: domain.MessageComputationFailed})
		return
	}

	c.JSON(http.StatusOK, dto.NewPredictionResponse(res))
}

// Current は状態オブジェクトの現在のスナップショットを返します。
//
// エンドポイント例:
// GET /predictions/current
func (h *PredictionHandler) Current(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, dto.NewStateResponse(h.uc.Snapshot()))
}
