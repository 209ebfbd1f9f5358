package entity

import "strings"

// Algorithm selects the extrapolation constants and names the numeric routine
// shown alongside a prediction.
type Algorithm string

const (
	MaxProfitSum     Algorithm = "max-profit-sum"
	MemoizedDP       Algorithm = "memoized-dp"
	TabulatedDP      Algorithm = "tabulated-dp"
	LinearRegression Algorithm = "linear-regression"

	// DefaultAlgorithm is used when no selector is given.
	DefaultAlgorithm = MaxProfitSum
)

// aliases maps the legacy front-end identifiers to canonical selectors.
var aliases = map[string]Algorithm{
	"dp-optimal":     MaxProfitSum,
	"dp-memoization": MemoizedDP,
	"dp-tabulation":  TabulatedDP,
}

// WalkParams are the per-algorithm constants of the random-walk extrapolation.
type WalkParams struct {
	Trend      float64 // Daily drift added to the historical average trend
	Volatility float64 // Amplitude of the uniform daily shock
}

type algorithmProfile struct {
	name     string
	params   WalkParams
	accuracy float64
}

var profiles = map[Algorithm]algorithmProfile{
	MaxProfitSum:     {name: "Max-Profit Sum", params: WalkParams{Trend: 0.002, Volatility: 0.015}, accuracy: 88},
	MemoizedDP:       {name: "Memoized DP", params: WalkParams{Trend: 0.0015, Volatility: 0.018}, accuracy: 86},
	TabulatedDP:      {name: "Tabulated DP", params: WalkParams{Trend: 0.001, Volatility: 0.016}, accuracy: 85},
	LinearRegression: {name: "Linear Regression", params: WalkParams{Trend: 0.0008, Volatility: 0.010}, accuracy: 82},
}

// fallback applies to any unrecognized selector.
var fallback = algorithmProfile{params: WalkParams{Trend: 0.001, Volatility: 0.015}, accuracy: 85}

// Algorithms returns the four recognized selectors in display order.
func Algorithms() []Algorithm {
	return []Algorithm{MaxProfitSum, MemoizedDP, TabulatedDP, LinearRegression}
}

// ParseAlgorithm normalizes s into a selector. Empty input yields DefaultAlgorithm,
// legacy identifiers are mapped to their canonical names and unknown values are
// kept as-is so they fall back to the default constants.
func ParseAlgorithm(s string) Algorithm {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return DefaultAlgorithm
	}
	if a, ok := aliases[v]; ok {
		return a
	}
	return Algorithm(v)
}

// Known reports whether a is one of the four recognized selectors.
func (a Algorithm) Known() bool {
	_, ok := profiles[a]
	return ok
}

func (a Algorithm) profile() algorithmProfile {
	if p, ok := profiles[a]; ok {
		return p
	}
	return fallback
}

// WalkParams returns the trend/volatility pair for a.
func (a Algorithm) WalkParams() WalkParams {
	return a.profile().params
}

// BaseAccuracy returns the starting point of the synthetic accuracy score.
func (a Algorithm) BaseAccuracy() float64 {
	return a.profile().accuracy
}

// DisplayName returns a human readable label.
func (a Algorithm) DisplayName() string {
	if p, ok := profiles[a]; ok {
		return p.name
	}
	return string(a)
}
