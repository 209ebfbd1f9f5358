// Package usecase は株価予測のビジネスロジックを実装します。
package usecase

import (
	"math"

	"stock_predictor/internal/feature/prediction/domain/entity"
	"stock_predictor/internal/shared/mathx"
	"stock_predictor/internal/shared/random"
)

const (
	// DefaultDays は予測日数のデフォルト値です。
	DefaultDays = 7
	// MaxDays は予測日数の上限です。
	MaxDays = 30
	// DefaultHistoryDays は1回の予測で合成する過去データの日数です。
	DefaultHistoryDays = 30

	negativeResetRatio = 0.8 // 価格が負になった場合の復帰比率
	minAccuracy        = 60.0
	maxAccuracy        = 99.0
	accuracyJitter     = 2.5
)

// NormalizeDays は範囲外の予測日数をデフォルト値に置き換えます。
func NormalizeDays(days int) int {
	if days <= 0 || days > MaxDays {
		return DefaultDays
	}
	return days
}

// AverageTrend は日次の相対変化率 (p[i]-p[i-1])/p[i-1] の算術平均を返します。
// 2点未満の場合は0です。
func AverageTrend(history entity.Series) float64 {
	if len(history) < 2 {
		return 0
	}
	var sum float64
	for i := 1; i < len(history); i++ {
		prev := history[i-1].Price
		sum += (history[i].Price - prev) / prev
	}
	return sum / float64(len(history)-1)
}

// Predict は過去系列の最終点から horizonDays 日分を、アルゴリズムごとの
// トレンド・ボラティリティ定数を使ったドリフト付きランダムウォークで外挿します。
// 4つの数値ルーチンの結果は外挿に使用しません。
// historyが空、またはhorizonDaysが0以下の場合は空の系列を返します。
func Predict(history entity.Series, horizonDays int, algo entity.Algorithm, rnd random.Source) entity.Series {
	last, ok := history.Last()
	if !ok || horizonDays <= 0 {
		return entity.Series{}
	}

	params := algo.WalkParams()
	avgTrend := AverageTrend(history)
	price := last.Price
	out := make(entity.Series, 0, horizonDays)

	for i := 1; i <= horizonDays; i++ {
		randomFactor := (rnd.Float64() - 0.5) * 2 // -1 〜 1
		trendChange := (avgTrend + params.Trend) * price
		volatilityChange := randomFactor * params.Volatility * price
		price += trendChange + volatilityChange

		// 負の価格は直前の実績価格の80%に戻す（0へのクランプではない）
		if price < 0 {
			price = last.Price * negativeResetRatio
		}

		out = append(out, entity.PricePoint{
			Date:        last.Date.AddDate(0, 0, i),
			Price:       mathx.Round(price, 2),
			Volume:      random.Int64Range(rnd, entity.MinVolume, entity.MaxVolume),
			IsPredicted: true,
		})
	}

	return out
}

// Accuracy は合成の予測精度（%）を返します。統計的な指標ではありません。
// clamp(base*max(0, 1-days/100) + U(-2.5, 2.5), 60, 99) を小数第1位に丸めます。
func Accuracy(algo entity.Algorithm, horizonDays int, rnd random.Source) float64 {
	dayFactor := math.Max(0, 1-float64(horizonDays)/100)
	jitter := random.Between(rnd, -accuracyJitter, accuracyJitter)
	v := mathx.Clamp(algo.BaseAccuracy()*dayFactor+jitter, minAccuracy, maxAccuracy)
	return mathx.Round(v, 1)
}
