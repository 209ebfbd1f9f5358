package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"stock_predictor/internal/feature/prediction/domain"
	"stock_predictor/internal/feature/prediction/domain/entity"
	"stock_predictor/internal/shared/random"
)

const (
	initialSymbol   = "AAPL"
	initialAccuracy = 85.0
)

// SeriesGenerator は過去の株価系列を取得するインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type SeriesGenerator interface {
	Generate(ctx context.Context, days int, symbol string) (entity.Series, error)
}

// Delayer は計算の前に挿入される待ち時間を表します。
type Delayer interface {
	Wait(ctx context.Context) error
}

// Predictor は予測リクエストの状態を保持する明示的な状態オブジェクトです。
// 世代番号で実行中のリクエストを管理し、新しいリクエストが始まると古い実行を
// キャンセルするため、古い結果が新しい結果を上書きすることはありません。
type Predictor struct {
	gen         SeriesGenerator
	delay       Delayer
	rnd         random.Source
	historyDays int
	now         func() time.Time

	mu         sync.Mutex
	generation uint64
	cancelRun  context.CancelFunc
	state      entity.PredictorState
}

// NewPredictor は新しいPredictorを生成します。historyDaysが0以下の場合は30日を使用します。
func NewPredictor(gen SeriesGenerator, delay Delayer, rnd random.Source, historyDays int) *Predictor {
	if historyDays <= 0 {
		historyDays = DefaultHistoryDays
	}
	return &Predictor{
		gen:         gen,
		delay:       delay,
		rnd:         rnd,
		historyDays: historyDays,
		now:         time.Now,
		state: entity.PredictorState{
			Symbol:    initialSymbol,
			Algorithm: entity.DefaultAlgorithm,
			Days:      DefaultDays,
			Accuracy:  initialAccuracy,
			Predicted: entity.Series{},
		},
	}
}

// Warmup は初期表示用に初期銘柄の過去データを生成して状態に設定します。
func (p *Predictor) Warmup(ctx context.Context) error {
	p.mu.Lock()
	symbol := p.state.Symbol
	p.mu.Unlock()

	history, err := p.gen.Generate(ctx, p.historyDays, symbol)
	if err != nil {
		return fmt.Errorf("warmup %s: %w", symbol, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	// Warmup中に予測が確定していた場合は上書きしない
	if p.generation == 0 {
		p.state.Historical = history
		p.state.UpdatedAt = p.now()
	}
	return nil
}

// Snapshot は現在の状態のコピーを返します。
func (p *Predictor) Snapshot() entity.PredictorState {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := p.state
	s.Historical = p.state.Historical.Clone()
	s.Predicted = p.state.Predicted.Clone()
	if p.state.Summary != nil {
		sum := *p.state.Summary
		s.Summary = &sum
	}
	return s
}

// Run は1回の予測サイクルを実行します。
//   - 銘柄が空の場合はdomain.ErrEmptySymbolを返し、計算は行いません
//   - 新しいRunが開始されると、実行中の古いRunはdomain.ErrSupersededを返します
//   - 生成・予測中のエラーやpanicはdomain.ErrComputationでラップされ、状態は部分的に更新されません
func (p *Predictor) Run(ctx context.Context, req entity.PredictionRequest) (*entity.PredictionResult, error) {
	symbol := strings.TrimSpace(req.Symbol)
	if symbol == "" {
		p.mu.Lock()
		p.state.Error = domain.MessageEmptySymbol
		p.mu.Unlock()
		slog.Warn("prediction rejected", "reason", "empty symbol")
		return nil, domain.ErrEmptySymbol
	}

	algo := entity.ParseAlgorithm(req.Algorithm)
	days := NormalizeDays(req.Days)
	runID := uuid.NewString()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	gen := p.begin(cancel, symbol, algo, days)
	logger := slog.With("run_id", runID, "generation", gen, "symbol", symbol, "algorithm", string(algo), "days", days)
	logger.Info("prediction started")

	if err := p.delay.Wait(runCtx); err != nil {
		return nil, p.abort(logger, gen, err)
	}

	res, err := p.compute(runCtx, runID, symbol, algo, days)
	if err != nil {
		return nil, p.fail(logger, gen, err)
	}

	return p.commit(logger, gen, res)
}

// begin は世代番号を進め、実行中のRunをキャンセルし、ローディング状態にします。
func (p *Predictor) begin(cancel context.CancelFunc, symbol string, algo entity.Algorithm, days int) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancelRun != nil {
		p.cancelRun()
	}
	p.generation++
	p.cancelRun = cancel
	p.state.Generation = p.generation
	p.state.Symbol = symbol
	p.state.Algorithm = algo
	p.state.Days = days
	p.state.Loading = true
	p.state.Error = ""
	return p.generation
}

// compute は過去データを生成し、予測・精度・サマリーを計算します。
func (p *Predictor) compute(ctx context.Context, runID, symbol string, algo entity.Algorithm, days int) (res *entity.PredictionResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during prediction: %v", r)
		}
	}()

	history, err := p.gen.Generate(ctx, p.historyDays, symbol)
	if err != nil {
		return nil, fmt.Errorf("generate history: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	predicted := Predict(history, days, algo, p.rnd)

	return &entity.PredictionResult{
		RunID:      runID,
		Symbol:     symbol,
		Algorithm:  algo,
		Days:       days,
		Historical: history,
		Predicted:  predicted,
		Accuracy:   Accuracy(algo, days, p.rnd),
		Summary:    Summarize(algo, history, predicted),
		CreatedAt:  p.now(),
	}, nil
}

// isCurrent はロック保持中に呼び出す必要があります。
func (p *Predictor) isCurrent(gen uint64) bool {
	return p.generation == gen
}

// finish はロック保持中に呼び出す必要があります。
func (p *Predictor) finish() {
	p.state.Loading = false
	p.state.UpdatedAt = p.now()
	p.cancelRun = nil
}

// abort は待ち時間中にキャンセルされたRunを処理します。
func (p *Predictor) abort(log *slog.Logger, gen uint64, cause error) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.isCurrent(gen) {
		log.Info("prediction superseded")
		return domain.ErrSuperseded
	}
	// 呼び出し元のキャンセル（クライアント切断など）
	p.finish()
	log.Warn("prediction canceled", "error", cause)
	return cause
}

// fail は計算エラーを記録します。古いRunのエラーは状態に反映しません。
func (p *Predictor) fail(log *slog.Logger, gen uint64, cause error) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.isCurrent(gen) {
		log.Info("prediction superseded", "error", cause)
		return domain.ErrSuperseded
	}
	if errors.Is(cause, context.Canceled) || errors.Is(cause, context.DeadlineExceeded) {
		p.finish()
		log.Warn("prediction canceled", "error", cause)
		return cause
	}

	p.finish()
	p.state.Error = domain.MessageComputationFailed
	log.Error("prediction failed", "error", cause)
	return fmt.Errorf("%w: %v", domain.ErrComputation, cause)
}

// commit は世代番号が最新の場合のみ結果を状態に反映します。
func (p *Predictor) commit(log *slog.Logger, gen uint64, res *entity.PredictionResult) (*entity.PredictionResult, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.isCurrent(gen) {
		log.Info("prediction superseded")
		return nil, domain.ErrSuperseded
	}

	p.finish()
	summary := res.Summary
	p.state.RunID = res.RunID
	p.state.Historical = res.Historical.Clone()
	p.state.Predicted = res.Predicted.Clone()
	p.state.Accuracy = res.Accuracy
	p.state.Summary = &summary

	log.Info("prediction completed", "accuracy", res.Accuracy, "overall_change_pct", res.Summary.OverallChangePct)
	return res, nil
}
