// Package dto はpredictionフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

import (
	"time"

	"stock_predictor/internal/feature/prediction/domain/entity"
)

const dateLayout = "2006-01-02"

// ErrorResponse はエラーレスポンスです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// PredictRequest は POST /predictions のリクエストボディです。
// 銘柄の必須チェックはusecaseで行い、専用のメッセージを返します。
type PredictRequest struct {
	Symbol    string `json:"symbol"`
	Algorithm string `json:"algorithm"`
	Days      int    `json:"days"`
}

// PricePointResponse は1日分の株価です。
type PricePointResponse struct {
	Date        string  `json:"date"`         // 日付
	Price       float64 `json:"price"`        // 価格
	Volume      int64   `json:"volume"`       // 出来高
	IsPredicted bool    `json:"is_predicted"` // 予測値かどうか
}

// PredictionRowResponse は予測結果テーブルの1行です。
type PredictionRowResponse struct {
	Date       string  `json:"date"`
	Price      float64 `json:"price"`
	ChangePct  float64 `json:"change_pct"`
	Confidence int     `json:"confidence"`
}

// RegressionResponse は回帰直線です。
type RegressionResponse struct {
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
	NextValue float64 `json:"next_value"`
}

// AnalysisResponse は数値ルーチンの結果です。
type AnalysisResponse struct {
	MaxProfitSum    float64             `json:"max_profit_sum"`
	MemoizedProfit  float64             `json:"memoized_profit"`
	TabulatedProfit float64             `json:"tabulated_profit"`
	Regression      *RegressionResponse `json:"regression,omitempty"`
}

// SummaryResponse は表示用のサマリーです。
type SummaryResponse struct {
	AlgorithmName    string                  `json:"algorithm_name"`
	OverallChangePct float64                 `json:"overall_change_pct"`
	Rows             []PredictionRowResponse `json:"rows"`
	Analysis         AnalysisResponse        `json:"analysis"`
}

// PredictionResponse は POST /predictions のレスポンスです。
type PredictionResponse struct {
	RunID      string               `json:"run_id"`
	Symbol     string               `json:"symbol"`
	Algorithm  string               `json:"algorithm"`
	Days       int                  `json:"days"`
	Accuracy   float64              `json:"accuracy"`
	Historical []PricePointResponse `json:"historical"`
	Predicted  []PricePointResponse `json:"predicted"`
	Summary    SummaryResponse      `json:"summary"`
	CreatedAt  string               `json:"created_at"`
}

// StateResponse は GET /predictions/current のレスポンスです。
type StateResponse struct {
	Generation uint64               `json:"generation"`
	RunID      string               `json:"run_id,omitempty"`
	Symbol     string               `json:"symbol"`
	Algorithm  string               `json:"algorithm"`
	Days       int                  `json:"days"`
	Loading    bool                 `json:"loading"`
	Error      string               `json:"error,omitempty"`
	Accuracy   float64              `json:"accuracy"`
	Historical []PricePointResponse `json:"historical"`
	Predicted  []PricePointResponse `json:"predicted"`
	Summary    *SummaryResponse     `json:"summary,omitempty"`
	UpdatedAt  string               `json:"updated_at,omitempty"`
}

// NewPricePoints は系列をレスポンス形式に変換します。nilでも空配列を返します。
func NewPricePoints(s entity.Series) []PricePointResponse {
	out := make([]PricePointResponse, 0, len(s))
	for _, p := range s {
		out = append(out, PricePointResponse{
			Date:        p.Date.UTC().Format(dateLayout),
			Price:       p.Price,
			Volume:      p.Volume,
			IsPredicted: p.IsPredicted,
		})
	}
	return out
}

// NewAnalysis は分析結果をレスポンス形式に変換します。
func NewAnalysis(a entity.Analysis) AnalysisResponse {
	out := AnalysisResponse{
		MaxProfitSum:    a.MaxProfitSum,
		MemoizedProfit:  a.MemoizedProfit,
		TabulatedProfit: a.TabulatedProfit,
	}
	if a.Regression != nil {
		out.Regression = &RegressionResponse{
			Slope:     a.Regression.Slope,
			Intercept: a.Regression.Intercept,
			NextValue: a.Regression.NextValue,
		}
	}
	return out
}

// NewSummary はサマリーをレスポンス形式に変換します。
func NewSummary(s entity.Summary) SummaryResponse {
	rows := make([]PredictionRowResponse, 0, len(s.Rows))
	for _, r := range s.Rows {
		rows = append(rows, PredictionRowResponse{
			Date:       r.Point.Date.UTC().Format(dateLayout),
			Price:      r.Point.Price,
			ChangePct:  r.ChangePct,
			Confidence: r.Confidence,
		})
	}
	return SummaryResponse{
		AlgorithmName:    s.AlgorithmName,
		OverallChangePct: s.OverallChangePct,
		Rows:             rows,
		Analysis:         NewAnalysis(s.Analysis),
	}
}

// NewPredictionResponse は予測結果をレスポンス形式に変換します。
func NewPredictionResponse(r *entity.PredictionResult) PredictionResponse {
	return PredictionResponse{
		RunID:      r.RunID,
		Symbol:     r.Symbol,
		Algorithm:  string(r.Algorithm),
		Days:       r.Days,
		Accuracy:   r.Accuracy,
		Historical: NewPricePoints(r.Historical),
		Predicted:  NewPricePoints(r.Predicted),
		Summary:    NewSummary(r.Summary),
		CreatedAt:  formatTime(r.CreatedAt),
	}
}

// NewStateResponse は状態スナップショットをレスポンス形式に変換します。
func NewStateResponse(s entity.PredictorState) StateResponse {
	out := StateResponse{
		Generation: s.Generation,
		RunID:      s.RunID,
		Symbol:     s.Symbol,
		Algorithm:  string(s.Algorithm),
		Days:       s.Days,
		Loading:    s.Loading,
		Error:      s.Error,
		Accuracy:   s.Accuracy,
		Historical: NewPricePoints(s.Historical),
		Predicted:  NewPricePoints(s.Predicted),
		UpdatedAt:  formatTime(s.UpdatedAt),
	}
	if s.Summary != nil {
		sum := NewSummary(*s.Summary)
		out.Summary = &sum
	}
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
