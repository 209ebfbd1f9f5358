// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"stock_predictor/internal/app/config"
	symboladapters "stock_predictor/internal/feature/symbollist/adapters"
	symbolentity "stock_predictor/internal/feature/symbollist/domain/entity"
	symbolusecase "stock_predictor/internal/feature/symbollist/usecase"
	"stock_predictor/internal/platform/cache"
	infradb "stock_predictor/internal/platform/db"
	healthhandler "stock_predictor/internal/platform/http/handler"
	infraredis "stock_predictor/internal/platform/redis"
)

// Catalog bundles the symbol catalog store, its optional cache and the usecase on top.
type Catalog struct {
	DB      *gorm.DB
	Redis   *redis.Client
	Symbols *symbolusecase.SymbolUsecase
}

// NewSymbolRepository creates a SymbolRepository implementation.
// If Redis is available, the gorm repository is wrapped with the caching decorator.
func NewSymbolRepository(rdb *redis.Client, db *gorm.DB, ttl time.Duration) symbolusecase.SymbolRepository {
	repo := symboladapters.NewSymbolRepository(db)
	if rdb != nil {
		return cache.NewCachingSymbolRepository(rdb, ttl, repo, "symbols")
	}
	return repo
}

// OpenCatalog opens the catalog store, connects Redis when configured and seeds
// the fixed base-price table. Redis failures are logged and the catalog runs uncached.
func OpenCatalog(ctx context.Context, cfg *config.Config) (*Catalog, error) {
	gdb, err := infradb.Open(cfg.DB(), cfg.Database.ConnectTimeout, &symbolentity.Symbol{})
	if err != nil {
		return nil, fmt.Errorf("open catalog store: %w", err)
	}

	rdb, err := infraredis.NewRedisClient(ctx, cfg.RedisConfig())
	switch {
	case errors.Is(err, infraredis.ErrNotConfigured):
		slog.Info("Redis not configured. Running without cache.")
	case err != nil:
		slog.Warn("Redis unavailable. Running without cache.", "error", err)
	}

	c := &Catalog{
		DB:      gdb,
		Redis:   rdb,
		Symbols: symbolusecase.NewSymbolUsecase(NewSymbolRepository(rdb, gdb, cfg.Cache.TTL)),
	}
	if err := c.Symbols.Seed(ctx, symbolentity.DefaultSymbols()); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("seed catalog: %w", err)
	}
	return c, nil
}

// HealthChecks returns the component checks reported by /healthz.
func (c *Catalog) HealthChecks() map[string]healthhandler.CheckFunc {
	checks := map[string]healthhandler.CheckFunc{
		"catalog": func(ctx context.Context) error { return infradb.Ping(ctx, c.DB) },
	}
	if c.Redis != nil {
		checks["cache"] = func(ctx context.Context) error { return c.Redis.Ping(ctx).Err() }
	}
	return checks
}

// Close releases the Redis client and the database pool.
func (c *Catalog) Close() error {
	var errs []error
	if c.Redis != nil {
		errs = append(errs, c.Redis.Close())
	}
	if c.DB != nil {
		if sqlDB, err := c.DB.DB(); err == nil {
			errs = append(errs, sqlDB.Close())
		}
	}
	return errors.Join(errs...)
}
