// Package calc implements the standalone numeric routines shown next to a
// prediction: three formulations of the unlimited-transactions max-profit
// problem and an ordinary least squares line fit.
//
// All routines are pure functions of their inputs. Their results are displayed
// only; the extrapolator never consumes them.
package calc

import "math"

// MaxProfitSum returns the sum of all positive day-over-day price moves.
// It is zero for fewer than two prices and never negative.
func MaxProfitSum(prices []float64) float64 {
	var profit float64
	for i := 1; i < len(prices); i++ {
		if d := prices[i] - prices[i-1]; d > 0 {
			profit += d
		}
	}
	return profit
}

type memoKey struct {
	day     int
	holding bool
}

// MemoizedProfit solves the max-profit problem top-down over (day, holding)
// states, caching each state's best profit. The answer is the value of state
// (0, not holding).
func MemoizedProfit(prices []float64) float64 {
	memo := make(map[memoKey]float64, 2*len(prices))

	var dp func(day int, holding bool) float64
	dp = func(day int, holding bool) float64 {
		if day >= len(prices) {
			return 0
		}
		key := memoKey{day: day, holding: holding}
		if v, ok := memo[key]; ok {
			return v
		}

		skip := dp(day+1, holding)
		var act float64
		if holding {
			act = prices[day] + dp(day+1, false)
		} else {
			act = -prices[day] + dp(day+1, true)
		}

		v := math.Max(skip, act)
		memo[key] = v
		return v
	}

	return dp(0, false)
}

// TabulatedProfit solves the max-profit problem bottom-up with one row per day
// for the "no position" and "one position" states. Fewer than two prices yield 0.
func TabulatedProfit(prices []float64) float64 {
	n := len(prices)
	if n <= 1 {
		return 0
	}

	holdingNone := make([]float64, n)
	holdingOne := make([]float64, n)
	holdingNone[0] = 0
	holdingOne[0] = -prices[0]

	for i := 1; i < n; i++ {
		holdingNone[i] = math.Max(holdingNone[i-1], holdingOne[i-1]+prices[i])
		holdingOne[i] = math.Max(holdingOne[i-1], holdingNone[i-1]-prices[i])
	}

	return holdingNone[n-1]
}
