// Command predict runs one prediction cycle and prints the result as a table.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"stock_predictor/internal/app/config"
	"stock_predictor/internal/app/di"
	"stock_predictor/internal/feature/prediction/domain/entity"
	"stock_predictor/internal/platform/logger"
	"stock_predictor/internal/shared/random"
)

// historyTail is the number of most recent historical points printed.
const historyTail = 5

func main() {
	var (
		symbol     = flag.String("symbol", "AAPL", "Stock symbol")
		algorithm  = flag.String("algorithm", string(entity.DefaultAlgorithm), "Prediction algorithm")
		days       = flag.Int("days", 7, "Days to predict (1-30)")
		configPath = flag.String("config", "", "Path to config file")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	// ワンショット実行では待ち時間を入れない
	cfg.Prediction.Latency = 0
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	logger.Setup(cfg.Log.Level, cfg.Log.Format)

	ctx := context.Background()
	catalog, err := di.OpenCatalog(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to open catalog: %v", err)
	}
	defer func() { _ = catalog.Close() }()

	predictor := di.NewPredictor(cfg, catalog.Symbols, random.Global())
	res, err := predictor.Run(ctx, entity.PredictionRequest{
		Symbol:    *symbol,
		Algorithm: *algorithm,
		Days:      *days,
	})
	if err != nil {
		log.Fatalf("prediction failed: %v", err)
	}

	if err := render(os.Stdout, res); err != nil {
		log.Fatalf("failed to write output: %v", err)
	}
}

// render writes the historical tail, the predicted rows and the analysis.
func render(out io.Writer, res *entity.PredictionResult) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s\t%s\t%d days\n", res.Symbol, res.Summary.AlgorithmName, res.Days)
	fmt.Fprintf(w, "accuracy\t%.1f%%\n", res.Accuracy)
	fmt.Fprintf(w, "overall change\t%+.2f%%\n\n", res.Summary.OverallChangePct)

	fmt.Fprintln(w, "DATE\tPRICE\tVOLUME\tKIND")
	from := len(res.Historical) - historyTail
	if from < 0 {
		from = 0
	}
	for _, p := range res.Historical[from:] {
		fmt.Fprintf(w, "%s\t%.2f\t%d\thistorical\n", p.Date.Format("2006-01-02"), p.Price, p.Volume)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "DATE\tPRICE\tCHANGE\tCONFIDENCE")
	for _, row := range res.Summary.Rows {
		fmt.Fprintf(w, "%s\t%.2f\t%+.2f%%\t%d%%\n",
			row.Point.Date.Format("2006-01-02"), row.Point.Price, row.ChangePct, row.Confidence)
	}
	fmt.Fprintln(w)

	a := res.Summary.Analysis
	fmt.Fprintf(w, "max-profit sum\t%.2f\n", a.MaxProfitSum)
	fmt.Fprintf(w, "memoized dp profit\t%.2f\n", a.MemoizedProfit)
	fmt.Fprintf(w, "tabulated dp profit\t%.2f\n", a.TabulatedProfit)
	if a.Regression != nil {
		fmt.Fprintf(w, "regression\tslope %.4f\tintercept %.4f\tnext %.2f\n",
			a.Regression.Slope, a.Regression.Intercept, a.Regression.NextValue)
	}

	return w.Flush()
}
