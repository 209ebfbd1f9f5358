package usecase

import (
	"log/slog"

	"stock_predictor/internal/feature/prediction/calc"
	"stock_predictor/internal/feature/prediction/domain/entity"
	"stock_predictor/internal/shared/mathx"
)

const (
	maxConfidence  = 95
	confidenceStep = 5
	minConfidence  = 60
)

// Confidence は予測の index 日目（0始まり）の表示用信頼度を返します。
func Confidence(index int) int {
	return max(maxConfidence-index*confidenceStep, minConfidence)
}

// changePct は prev から cur への変化率（%）を小数第2位に丸めて返します。
func changePct(cur, prev float64) float64 {
	if prev == 0 {
		return 0
	}
	return mathx.Round((cur-prev)/prev*100, 2)
}

// Analyze は価格列に4つの数値ルーチンを適用します。xがnilの場合は日インデックスを
// x軸として回帰し、2点未満なら回帰を省略してRegressionをnilのままにします。
// 明示したxが回帰の前提条件に違反する場合はエラーを返しますが、利益の値は設定済みです。
func Analyze(prices, x []float64) (entity.Analysis, error) {
	a := entity.Analysis{
		MaxProfitSum:    mathx.Round(calc.MaxProfitSum(prices), 2),
		MemoizedProfit:  mathx.Round(calc.MemoizedProfit(prices), 2),
		TabulatedProfit: mathx.Round(calc.TabulatedProfit(prices), 2),
	}

	next := float64(len(prices))
	if x == nil {
		if len(prices) < 2 {
			return a, nil
		}
		x = calc.Indices(len(prices))
	} else if len(x) > 0 {
		next = x[len(x)-1] + 1
	}

	line, err := calc.FitLine(x, prices)
	if err != nil {
		return a, err
	}
	a.Regression = &entity.RegressionFit{
		Slope:     mathx.Round(line.Slope, 4),
		Intercept: mathx.Round(line.Intercept, 4),
		NextValue: mathx.Round(line.At(next), 2),
	}
	return a, nil
}

// Summarize は表示用のサマリーを作成します。結果は外挿には使用しません。
func Summarize(algo entity.Algorithm, history, predicted entity.Series) entity.Summary {
	s := entity.Summary{AlgorithmName: algo.DisplayName()}

	var lastPrice float64
	if last, ok := history.Last(); ok {
		lastPrice = last.Price
	}

	prev := lastPrice
	s.Rows = make([]entity.PredictionRow, 0, len(predicted))
	for i, p := range predicted {
		s.Rows = append(s.Rows, entity.PredictionRow{
			Point:      p,
			ChangePct:  changePct(p.Price, prev),
			Confidence: Confidence(i),
		})
		prev = p.Price
	}

	if end, ok := predicted.Last(); ok {
		s.OverallChangePct = changePct(end.Price, lastPrice)
	}

	// 回帰が定義できない場合はRegressionをnilのままにする
	a, err := Analyze(history.Prices(), nil)
	if err != nil {
		slog.Debug("regression skipped in summary", "algorithm", string(algo), "points", len(history), "error", err)
	}
	s.Analysis = a
	return s
}
