// Package entity defines the domain models for the prediction feature.
package entity

import "time"

const (
	// MinVolume is the inclusive lower bound of a synthetic daily volume.
	MinVolume int64 = 1_000_000
	// MaxVolume is the exclusive upper bound of a synthetic daily volume.
	MaxVolume int64 = 10_000_000
)

// PricePoint is one daily observation of a symbol, either historical or extrapolated.
type PricePoint struct {
	Date        time.Time // Calendar day (midnight UTC)
	Price       float64   // Price rounded to 2 decimals
	Volume      int64     // Traded volume
	IsPredicted bool      // false for historical points, true for extrapolated ones
}

// Series is a chronologically ordered sequence of points for one symbol.
// A series is either purely historical or purely predicted.
type Series []PricePoint

// Prices returns the price column of the series.
func (s Series) Prices() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Price
	}
	return out
}

// Last returns the most recent point and whether the series is non-empty.
func (s Series) Last() (PricePoint, bool) {
	if len(s) == 0 {
		return PricePoint{}, false
	}
	return s[len(s)-1], true
}

// Clone returns a copy that shares no backing array with s.
func (s Series) Clone() Series {
	if s == nil {
		return nil
	}
	out := make(Series, len(s))
	copy(out, s)
	return out
}
