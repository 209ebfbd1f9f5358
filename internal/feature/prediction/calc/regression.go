package calc

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when no observations are given.
	ErrEmptyInput = errors.New("calc: no observations")
	// ErrLengthMismatch is returned when x and y differ in length.
	ErrLengthMismatch = errors.New("calc: x and y lengths differ")
	// ErrZeroVariance is returned when every x is identical, which makes the
	// slope's denominator zero. This is a precondition violation of the fit.
	ErrZeroVariance = errors.New("calc: division by zero, all x values are identical")
)

// Line is y = Intercept + Slope*x.
type Line struct {
	Slope     float64
	Intercept float64
}

// At evaluates the line at x.
func (l Line) At(x float64) float64 {
	return l.Intercept + l.Slope*x
}

// FitLine computes the ordinary least squares line through (x[i], y[i]) from
// mean-centered sums.
func FitLine(x, y []float64) (Line, error) {
	n := len(x)
	if n == 0 {
		return Line{}, ErrEmptyInput
	}
	if n != len(y) {
		return Line{}, fmt.Errorf("%w: len(x)=%d len(y)=%d", ErrLengthMismatch, n, len(y))
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += x[i]
		sumY += y[i]
	}
	xMean := sumX / float64(n)
	yMean := sumY / float64(n)

	var num, den float64
	for i := 0; i < n; i++ {
		dx := x[i] - xMean
		num += dx * (y[i] - yMean)
		den += dx * dx
	}
	if den == 0 {
		return Line{}, ErrZeroVariance
	}

	slope := num / den
	return Line{Slope: slope, Intercept: yMean - slope*xMean}, nil
}

// LinearRegression fits x and y and returns the prediction function
// f(xNew) = intercept + slope*xNew.
func LinearRegression(x, y []float64) (func(xNew float64) float64, error) {
	line, err := FitLine(x, y)
	if err != nil {
		return nil, err
	}
	return line.At, nil
}

// Indices returns 0..n-1 as float64, the x axis used when regressing a price series.
func Indices(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}
