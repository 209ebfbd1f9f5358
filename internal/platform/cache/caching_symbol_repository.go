// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"stock_predictor/internal/feature/symbollist/domain/entity"
	"stock_predictor/internal/feature/symbollist/usecase"
)

// DefaultTTL is used when a non-positive ttl is given.
const DefaultTTL = 5 * time.Minute

// CachingSymbolRepository decorates a SymbolRepository with Redis caching.
// A nil client bypasses the cache entirely.
type CachingSymbolRepository struct {
	inner     usecase.SymbolRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

var _ usecase.SymbolRepository = (*CachingSymbolRepository)(nil)

// NewCachingSymbolRepository decorates a SymbolRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "symbols".
func NewCachingSymbolRepository(rdb *redis.Client, ttl time.Duration, inner usecase.SymbolRepository, namespace string) *CachingSymbolRepository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if namespace == "" {
		namespace = "symbols"
	}
	return &CachingSymbolRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// ListActive returns the active catalog, checking the cache first.
func (c *CachingSymbolRepository) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	if c.rdb == nil {
		return c.inner.ListActive(ctx)
	}
	key := c.namespace + ":active"

	var cached []entity.Symbol
	if c.load(ctx, key, &cached) {
		return cached, nil
	}

	out, err := c.inner.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, out)
	return out, nil
}

// FindByCode returns one symbol, checking the cache first.
// Misses from the inner repository (ErrSymbolNotFound) are not cached.
func (c *CachingSymbolRepository) FindByCode(ctx context.Context, code string) (*entity.Symbol, error) {
	if c.rdb == nil {
		return c.inner.FindByCode(ctx, code)
	}
	key := c.namespace + ":code:" + safe(code)

	var cached entity.Symbol
	if c.load(ctx, key, &cached) {
		return &cached, nil
	}

	out, err := c.inner.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	c.store(ctx, key, out)
	return out, nil
}

// UpsertBatch writes through to the inner repository and drops every cached entry of the namespace.
func (c *CachingSymbolRepository) UpsertBatch(ctx context.Context, symbols []entity.Symbol) error {
	if err := c.inner.UpsertBatch(ctx, symbols); err != nil {
		return err
	}
	if c.rdb == nil || len(symbols) == 0 {
		return nil
	}
	_ = c.deleteByPattern(ctx, c.namespace+":*") // Best effort: don't fail if cache deletion fails
	return nil
}

// load reads key into dst. Corrupted entries are deleted and reported as a miss.
func (c *CachingSymbolRepository) load(ctx context.Context, key string, dst any) bool {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil || len(b) == 0 {
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		_ = c.rdb.Del(ctx, key).Err()
		return false
	}
	return true
}

// store writes v under key (best effort).
func (c *CachingSymbolRepository) store(ctx context.Context, key string, v any) {
	if b, err := json.Marshal(v); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingSymbolRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
