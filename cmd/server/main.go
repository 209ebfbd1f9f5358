package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"stock_predictor/internal/app/config"
	"stock_predictor/internal/app/di"
	"stock_predictor/internal/app/router"
	predictionhandler "stock_predictor/internal/feature/prediction/transport/handler"
	predictionusecase "stock_predictor/internal/feature/prediction/usecase"
	symbollisthandler "stock_predictor/internal/feature/symbollist/transport/handler"
	healthhandler "stock_predictor/internal/platform/http/handler"
	"stock_predictor/internal/platform/logger"
	"stock_predictor/internal/shared/random"
)

func main() {
	// 設定
	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	logger.Setup(cfg.Log.Level, cfg.Log.Format)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 銘柄カタログ（DB + Redisキャッシュ）
	catalog, err := di.OpenCatalog(ctx, cfg)
	if err != nil {
		slog.Error("failed to open catalog", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := catalog.Close(); err != nil {
			slog.Error("failed to close catalog", "error", err)
		}
	}()

	// Usecase
	predictor := di.NewPredictor(cfg, catalog.Symbols, random.Global())
	if err := predictor.Warmup(ctx); err != nil {
		slog.Warn("warmup failed; starting with empty history", "error", err)
	}
	analysisUC := predictionusecase.NewAnalysisUsecase()

	// Handler
	handlers := router.Handlers{
		Health:     healthhandler.NewHealthHandler(catalog.HealthChecks()),
		Symbol:     symbollisthandler.NewSymbolHandler(catalog.Symbols),
		Algorithm:  predictionhandler.NewAlgorithmHandler(),
		Prediction: predictionhandler.NewPredictionHandler(predictor),
		Analysis:   predictionhandler.NewAnalysisHandler(analysisUC),
	}

	// ルータ生成
	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router.NewRouter(handlers, cfg.Server.CORSAllowOrigins),
	}

	go func() {
		slog.Info("server started", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutdown signal received, stopping...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
	slog.Info("shutdown complete")
}
