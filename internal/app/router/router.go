// Package router はアプリケーションのHTTPルーティングを定義します。
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	predictionhandler "stock_predictor/internal/feature/prediction/transport/handler"
	symbollisthandler "stock_predictor/internal/feature/symbollist/transport/handler"
	healthhandler "stock_predictor/internal/platform/http/handler"
)

// Handlers はルーターに登録するハンドラー群です。
type Handlers struct {
	Health     *healthhandler.HealthHandler
	Symbol     *symbollisthandler.SymbolHandler
	Algorithm  *predictionhandler.AlgorithmHandler
	Prediction *predictionhandler.PredictionHandler
	Analysis   *predictionhandler.AnalysisHandler
}

// NewRouter はCORSとルートを設定したgin.Engineを返します。
// allowOriginsに "*" が含まれる場合はすべてのオリジンを許可します。
func NewRouter(h Handlers, allowOrigins []string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// ブラウザのフロントエンドから呼ばれるためCORSを有効にする
	r.Use(cors.New(corsConfig(allowOrigins)))

	// 導通確認用
	r.GET("/healthz", h.Health.Health)
	r.HEAD("/healthz", h.Health.Health)
	r.OPTIONS("/healthz", h.Health.Health)

	// 銘柄カタログ
	r.GET("/symbols", h.Symbol.List)

	// アルゴリズムの説明
	r.GET("/algorithms", h.Algorithm.List)
	r.GET("/algorithms/:name", h.Algorithm.Get)

	// 予測
	r.POST("/predictions", h.Prediction.Predict)
	r.GET("/predictions/current", h.Prediction.Current)

	// 任意の価格列に対する数値ルーチン
	r.POST("/analysis", h.Analysis.Analyze)

	return r
}

func corsConfig(allowOrigins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range allowOrigins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(allowOrigins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = allowOrigins
	return cfg
}
