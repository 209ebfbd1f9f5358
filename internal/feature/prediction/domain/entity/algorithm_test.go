package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stock_predictor/internal/feature/prediction/domain/entity"
)

func TestParseAlgorithm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want entity.Algorithm
	}{
		{in: "", want: entity.MaxProfitSum},
		{in: "  ", want: entity.MaxProfitSum},
		{in: "tabulated-dp", want: entity.TabulatedDP},
		{in: "Memoized-DP", want: entity.MemoizedDP},
		{in: "dp-optimal", want: entity.MaxProfitSum},
		{in: "dp-memoization", want: entity.MemoizedDP},
		{in: " DP-Tabulation ", want: entity.TabulatedDP},
		{in: "linear-regression", want: entity.LinearRegression},
		{in: "neural-net", want: entity.Algorithm("neural-net")},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, entity.ParseAlgorithm(tt.in))
		})
	}
}

func TestAlgorithm_WalkParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		algo       entity.Algorithm
		trend      float64
		volatility float64
		accuracy   float64
	}{
		{entity.MaxProfitSum, 0.002, 0.015, 88},
		{entity.MemoizedDP, 0.0015, 0.018, 86},
		{entity.TabulatedDP, 0.001, 0.016, 85},
		{entity.LinearRegression, 0.0008, 0.010, 82},
		{entity.Algorithm("unknown"), 0.001, 0.015, 85},
	}

	for _, tt := range tests {
		t.Run(string(tt.algo), func(t *testing.T) {
			t.Parallel()
			p := tt.algo.WalkParams()
			assert.Equal(t, tt.trend, p.Trend)
			assert.Equal(t, tt.volatility, p.Volatility)
			assert.Equal(t, tt.accuracy, tt.algo.BaseAccuracy())
		})
	}
}

func TestAlgorithm_Known(t *testing.T) {
	t.Parallel()

	for _, a := range entity.Algorithms() {
		assert.True(t, a.Known(), a)
		assert.NotEqual(t, string(a), a.DisplayName())
	}
	assert.False(t, entity.Algorithm("dp-optimal").Known())
	assert.Equal(t, "mystery", entity.Algorithm("mystery").DisplayName())
}

func TestInfo_FallsBackToDefault(t *testing.T) {
	t.Parallel()

	assert.Equal(t, entity.MaxProfitSum, entity.Info("unknown").Algorithm)
	for _, a := range entity.Algorithms() {
		info := entity.Info(a)
		assert.Equal(t, a, info.Algorithm)
		assert.NotEmpty(t, info.Pseudocode)
		assert.NotEmpty(t, info.Advantages)
		assert.NotEmpty(t, info.Limitations)
	}
}

func TestSeries_Helpers(t *testing.T) {
	t.Parallel()

	var empty entity.Series
	_, ok := empty.Last()
	assert.False(t, ok)
	assert.Empty(t, empty.Prices())

	s := entity.Series{{Price: 1.5}, {Price: 2.5}}
	last, ok := s.Last()
	assert.True(t, ok)
	assert.Equal(t, 2.5, last.Price)
	assert.Equal(t, []float64{1.5, 2.5}, s.Prices())

	c := s.Clone()
	c[0].Price = 9
	assert.Equal(t, 1.5, s[0].Price)
}
