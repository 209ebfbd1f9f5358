package entity

import "time"

// PredictionRequest carries the user-chosen parameters of one prediction cycle.
type PredictionRequest struct {
	Symbol    string // Stock symbol; required
	Algorithm string // Selector as typed by the caller; normalized by ParseAlgorithm
	Days      int    // Horizon; out-of-range values fall back to the default
}

// PredictionResult is the committed output of one prediction cycle.
type PredictionResult struct {
	RunID      string
	Symbol     string
	Algorithm  Algorithm
	Days       int
	Historical Series
	Predicted  Series
	Accuracy   float64 // Synthetic accuracy percentage, 60 to 99, 1 decimal
	Summary    Summary
	CreatedAt  time.Time
}

// PredictorState is a snapshot of the predictor's explicit state holder.
type PredictorState struct {
	Generation uint64
	RunID      string
	Symbol     string
	Algorithm  Algorithm
	Days       int
	Loading    bool
	Error      string
	Historical Series
	Predicted  Series
	Accuracy   float64
	Summary    *Summary
	UpdatedAt  time.Time
}

// Summary is the display-only digest of a prediction.
// Nothing in it feeds back into the extrapolation.
type Summary struct {
	AlgorithmName    string
	OverallChangePct float64
	Rows             []PredictionRow
	Analysis         Analysis
}

// PredictionRow decorates a predicted point with its change and confidence.
type PredictionRow struct {
	Point      PricePoint
	ChangePct  float64 // Versus the previous price; the first row compares to the last historical price
	Confidence int     // max(95 - 5*index, 60)
}

// Analysis holds the outputs of the standalone numeric routines.
type Analysis struct {
	MaxProfitSum    float64
	MemoizedProfit  float64
	TabulatedProfit float64
	Regression      *RegressionFit // nil when the fit is undefined
}

// RegressionFit is an ordinary least squares line over (x, price).
type RegressionFit struct {
	Slope     float64
	Intercept float64
	NextValue float64 // Fitted value at the first x after the input
}
