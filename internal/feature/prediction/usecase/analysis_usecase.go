package usecase

import "stock_predictor/internal/feature/prediction/domain/entity"

// AnalysisUsecase は任意の価格列に対する数値ルーチンの実行を提供します。
type AnalysisUsecase struct{}

// NewAnalysisUsecase はAnalysisUsecaseの新しいインスタンスを生成します。
func NewAnalysisUsecase() *AnalysisUsecase {
	return &AnalysisUsecase{}
}

// Analyze は価格列（とオプションのx軸）に4つの数値ルーチンを適用します。
// 回帰の前提条件違反はcalcパッケージのエラーとして返されます。
func (u *AnalysisUsecase) Analyze(prices, x []float64) (entity.Analysis, error) {
	return Analyze(prices, x)
}
