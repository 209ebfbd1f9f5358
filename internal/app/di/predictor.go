package di

import (
	"stock_predictor/internal/app/config"
	"stock_predictor/internal/feature/prediction/adapters/synthetic"
	"stock_predictor/internal/feature/prediction/usecase"
	"stock_predictor/internal/shared/latency"
	"stock_predictor/internal/shared/random"
)

// NewPredictor creates the predictor state holder backed by the synthetic series generator.
// A nil lookup uses the in-memory base-price table.
func NewPredictor(cfg *config.Config, lookup synthetic.BasePriceLookup, rnd random.Source) *usecase.Predictor {
	if lookup == nil {
		lookup = synthetic.DefaultPrices()
	}
	if rnd == nil {
		rnd = random.Global()
	}
	gen := synthetic.NewGenerator(lookup, rnd, nil)
	return usecase.NewPredictor(gen, latency.NewSimulator(cfg.Prediction.Latency), rnd, cfg.Prediction.HistoryDays)
}
