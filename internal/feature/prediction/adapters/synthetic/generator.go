// Package synthetic は外部APIの代わりに疑似的な日次株価系列を生成するアダプターを提供します。
package synthetic

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stock_predictor/internal/feature/prediction/domain/entity"
	symbolentity "stock_predictor/internal/feature/symbollist/domain/entity"
	"stock_predictor/internal/shared/mathx"
	"stock_predictor/internal/shared/random"
)

const (
	dailyVolatility = 0.02 // 1日あたりの変動幅
	upwardCenter    = 0.48 // 0.5未満にすることで平均変化をわずかに上向きにする
	floorRatio      = 0.7  // 基準価格に対する下限比率
	floorJitter     = 5.0  // 下限リセット時に加える揺らぎ
	minRandomBase   = 100.0
	maxRandomBase   = 300.0
)

// BasePriceLookup は銘柄コードから固定の基準価格を引くインターフェースです。
// Goの慣例に従い、インターフェースは利用者（adapter）側で定義します。
type BasePriceLookup interface {
	// BasePrice はコードに対応する基準価格と、登録済みかどうかを返します。
	BasePrice(ctx context.Context, code string) (float64, bool, error)
}

// Generator はランダムウォークで過去の株価系列を合成します。
type Generator struct {
	prices BasePriceLookup
	rnd    random.Source
	now    func() time.Time
}

// NewGenerator は新しいGeneratorを生成します。nowがnilの場合はtime.Nowを使用します。
func NewGenerator(prices BasePriceLookup, rnd random.Source, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{prices: prices, rnd: rnd, now: now}
}

// Generate は指定銘柄の過去days日分の系列を古い順に返します。
// 最新の点は「今日の1日前」で、今日自体は含みません。days<=0の場合は空の系列を返します。
func (g *Generator) Generate(ctx context.Context, days int, symbol string) (entity.Series, error) {
	if days <= 0 {
		return entity.Series{}, nil
	}

	base, err := g.basePrice(ctx, symbol)
	if err != nil {
		return nil, err
	}

	today := truncateToDay(g.now())
	series := make(entity.Series, 0, days)
	price := base

	for i := days; i > 0; i-- {
		// 上方バイアス付きのランダムな日次変化
		change := (g.rnd.Float64() - upwardCenter) * dailyVolatility * price
		price += change

		// 基準価格の70%を下回ったら下限付近に戻す
		if price < base*floorRatio {
			price = base*floorRatio + g.rnd.Float64()*floorJitter
		}

		series = append(series, entity.PricePoint{
			Date:        today.AddDate(0, 0, -i),
			Price:       mathx.Round(price, 2),
			Volume:      random.Int64Range(g.rnd, entity.MinVolume, entity.MaxVolume),
			IsPredicted: false,
		})
	}

	return series, nil
}

// basePrice は登録済み銘柄なら固定の基準価格を、それ以外は[100, 300)の乱数を返します。
func (g *Generator) basePrice(ctx context.Context, symbol string) (float64, error) {
	code := strings.ToUpper(strings.TrimSpace(symbol))
	if g.prices != nil {
		p, ok, err := g.prices.BasePrice(ctx, code)
		if err != nil {
			return 0, fmt.Errorf("lookup base price for %s: %w", code, err)
		}
		if ok {
			return p, nil
		}
	}
	return random.Between(g.rnd, minRandomBase, maxRandomBase), nil
}

// truncateToDay はtをUTCの0時に切り捨てます。
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// StaticPrices はメモリ上の固定テーブルによるBasePriceLookup実装です。
// キーは大文字の銘柄コードです。
type StaticPrices map[string]float64

var _ BasePriceLookup = StaticPrices(nil)

// BasePrice はテーブルを大文字小文字を区別せずに引きます。
func (s StaticPrices) BasePrice(_ context.Context, code string) (float64, bool, error) {
	p, ok := s[strings.ToUpper(code)]
	return p, ok, nil
}

// DefaultPrices は既知銘柄の固定基準価格テーブルを返します。
func DefaultPrices() StaticPrices {
	out := StaticPrices{}
	for _, s := range symbolentity.DefaultSymbols() {
		out[s.Code] = s.BasePrice
	}
	return out
}
