package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_predictor/internal/feature/prediction/domain/entity"
	"stock_predictor/internal/feature/prediction/transport/http/dto"
)

// AlgorithmHandler はアルゴリズムの説明を返します。状態を持たないため依存はありません。
type AlgorithmHandler struct{}

// NewAlgorithmHandler は新しいAlgorithmHandlerを生成します。
func NewAlgorithmHandler() *AlgorithmHandler {
	return &AlgorithmHandler{}
}

// List は4つのアルゴリズムの説明を表示順で返します。
//
// エンドポイント例:
// GET /algorithms
func (h *AlgorithmHandler) List(c *gin.Context) {
	algos := entity.Algorithms()
	out := make([]dto.AlgorithmInfoResponse, 0, len(algos))
	for _, a := range algos {
		out = append(out, dto.NewAlgorithmInfo(entity.Info(a)))
	}
	c.JSON(http.StatusOK, out)
}

// Get は1つのアルゴリズムの説明を返します。未知の名前はmax-profit-sumの説明になります。
//
// エンドポイント例:
// GET /algorithms/dp-tabulation
func (h *AlgorithmHandler) Get(c *gin.Context) {
	a := entity.ParseAlgorithm(c.Param("name"))
	c.JSON(http.StatusOK, dto.NewAlgorithmInfo(entity.Info(a)))
}
