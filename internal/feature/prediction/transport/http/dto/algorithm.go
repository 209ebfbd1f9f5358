package dto

import "stock_predictor/internal/feature/prediction/domain/entity"

// AlgorithmInfoResponse はアルゴリズムの説明です。
type AlgorithmInfoResponse struct {
	Key         string   `json:"key"`
	DisplayName string   `json:"display_name"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Complexity  string   `json:"complexity"`
	Pseudocode  string   `json:"pseudocode"`
	Advantages  []string `json:"advantages"`
	Limitations []string `json:"limitations"`
}

// NewAlgorithmInfo はアルゴリズムの説明をレスポンス形式に変換します。
func NewAlgorithmInfo(info entity.AlgorithmInfo) AlgorithmInfoResponse {
	return AlgorithmInfoResponse{
		Key:         string(info.Algorithm),
		DisplayName: info.Algorithm.DisplayName(),
		Name:        info.Name,
		Description: info.Description,
		Complexity:  info.Complexity,
		Pseudocode:  info.Pseudocode,
		Advantages:  info.Advantages,
		Limitations: info.Limitations,
	}
}

// MaxAnalysisPrices は POST /analysis で受け付ける価格数の上限です。
// メモ化DPの再帰の深さは価格数に比例します。
const MaxAnalysisPrices = 10000

// MaxAnalysisBodyBytes は POST /analysis のリクエストボディの上限です。
const MaxAnalysisBodyBytes = 1 << 20

// AnalysisRequest は POST /analysis のリクエストボディです。
// Xを省略した場合は日インデックスをx軸として回帰します。
type AnalysisRequest struct {
	Prices []float64 `json:"prices" binding:"required,min=1,max=10000"`
	X      []float64 `json:"x" binding:"omitempty,max=10000"`
}
