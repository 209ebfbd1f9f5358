package entity

// AlgorithmInfo documents one selector for the "algorithm details" view.
type AlgorithmInfo struct {
	Algorithm   Algorithm
	Name        string
	Description string
	Complexity  string
	Pseudocode  string
	Advantages  []string
	Limitations []string
}

var infos = map[Algorithm]AlgorithmInfo{
	MaxProfitSum: {
		Algorithm:   MaxProfitSum,
		Name:        "Dynamic Programming Optimal Trading",
		Description: "Finds the optimal trading strategy by summing every positive day-over-day move. Buying and selling any number of times is allowed.",
		Complexity:  "Time Complexity: O(n), Space Complexity: O(1)",
		Pseudocode: `function maxProfit(prices):
    maxProfit = 0
    for i from 1 to prices.length - 1:
        if prices[i] > prices[i-1]:
            maxProfit += prices[i] - prices[i-1]
    return maxProfit`,
		Advantages: []string{
			"Optimal solution guaranteed",
			"Linear time complexity",
			"Constant space complexity",
			"Works well with volatile markets",
		},
		Limitations: []string{
			"Assumes no transaction costs",
			"Requires complete price history",
			"Cannot handle constraints on number of transactions",
		},
	},
	MemoizedDP: {
		Algorithm:   MemoizedDP,
		Name:        "Dynamic Programming with Memoization",
		Description: "Top-down recursion over (day, holding) with a result cache so that overlapping subproblems are solved once.",
		Complexity:  "Time Complexity: O(n), Space Complexity: O(n)",
		Pseudocode: `function maxProfit(prices):
    memo = {}

    function dp(i, holding):
        if i >= prices.length:
            return 0
        if (i, holding) in memo:
            return memo[(i, holding)]

        skip = dp(i+1, holding)
        if holding:
            sell = prices[i] + dp(i+1, false)
            memo[(i, holding)] = max(skip, sell)
        else:
            buy = -prices[i] + dp(i+1, true)
            memo[(i, holding)] = max(skip, buy)
        return memo[(i, holding)]

    return dp(0, false)`,
		Advantages: []string{
			"Avoids redundant calculations",
			"Works well for complex constraints",
			"Can be adapted for various trading rules",
			"Good for problems with overlapping subproblems",
		},
		Limitations: []string{
			"Higher space complexity than tabulation",
			"Deep recursion for large inputs",
			"Recursive calls add overhead",
		},
	},
	TabulatedDP: {
		Algorithm:   TabulatedDP,
		Name:        "Dynamic Programming with Tabulation",
		Description: "Bottom-up table of the best profit per day with and without a position, eliminating recursion.",
		Complexity:  "Time Complexity: O(n), Space Complexity: O(n)",
		Pseudocode: `function maxProfit(prices):
    n = prices.length
    dp = array of size [n][2] filled with 0

    dp[0][0] = 0
    dp[0][1] = -prices[0]

    for i from 1 to n-1:
        dp[i][0] = max(dp[i-1][0], dp[i-1][1] + prices[i])
        dp[i][1] = max(dp[i-1][1], dp[i-1][0] - prices[i])

    return dp[n-1][0]`,
		Advantages: []string{
			"No recursion overhead",
			"No risk of stack exhaustion",
			"Efficient for large datasets",
			"Easier to analyze space complexity",
		},
		Limitations: []string{
			"Must solve all subproblems",
			"May use unnecessary space for sparse problems",
			"Less intuitive than the recursive approach",
		},
	},
	LinearRegression: {
		Algorithm:   LinearRegression,
		Name:        "Linear Regression",
		Description: "Not a dynamic programming approach: fits an ordinary least squares line to historical prices and extends it.",
		Complexity:  "Time Complexity: O(n), Space Complexity: O(1)",
		Pseudocode: `function linearRegression(x, y):
    x_mean = sum(x) / n
    y_mean = sum(y) / n

    numerator = 0
    denominator = 0
    for i from 0 to n-1:
        numerator += (x[i] - x_mean) * (y[i] - y_mean)
        denominator += (x[i] - x_mean)^2

    slope = numerator / denominator
    intercept = y_mean - slope * x_mean

    function predict(x_new):
        return intercept + slope * x_new
    return predict`,
		Advantages: []string{
			"Simple to implement and understand",
			"Works well for stable trends",
			"Fast computation",
			"Easy to interpret results",
		},
		Limitations: []string{
			"Assumes linear relationship",
			"Sensitive to outliers",
			"Poor for volatile or cyclical stocks",
			"Cannot capture complex market patterns",
		},
	},
}

// Info returns the documentation for a. Unrecognized selectors get the
// max-profit-sum entry.
func Info(a Algorithm) AlgorithmInfo {
	if info, ok := infos[a]; ok {
		return info
	}
	return infos[DefaultAlgorithm]
}
