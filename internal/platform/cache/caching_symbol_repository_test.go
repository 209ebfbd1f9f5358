package cache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"

	"stock_predictor/internal/feature/symbollist/domain/entity"
	"stock_predictor/internal/feature/symbollist/usecase"
)

// mockSymbolRepository はテスト用のSymbolRepositoryモック実装です。
type mockSymbolRepository struct {
	listActiveFn  func(ctx context.Context) ([]entity.Symbol, error)
	findByCodeFn  func(ctx context.Context, code string) (*entity.Symbol, error)
	upsertBatchFn func(ctx context.Context, symbols []entity.Symbol) error
}

func (m *mockSymbolRepository) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	if m.listActiveFn != nil {
		return m.listActiveFn(ctx)
	}
	return nil, nil
}

func (m *mockSymbolRepository) FindByCode(ctx context.Context, code string) (*entity.Symbol, error) {
	if m.findByCodeFn != nil {
		return m.findByCodeFn(ctx, code)
	}
	return nil, usecase.ErrSymbolNotFound
}

func (m *mockSymbolRepository) UpsertBatch(ctx context.Context, symbols []entity.Symbol) error {
	if m.upsertBatchFn != nil {
		return m.upsertBatchFn(ctx, symbols)
	}
	return nil
}

var aapl = entity.Symbol{ID: 1, Code: "AAPL", Name: "Apple Inc.", BasePrice: 180, IsActive: true, SortKey: 1}

// TestNewCachingSymbolRepository_Defaults はデフォルト値（TTLとnamespace）が正しく設定されることを検証します。
func TestNewCachingSymbolRepository_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name              string
		ttl               time.Duration
		namespace         string
		expectedTTL       time.Duration
		expectedNamespace string
	}{
		{"default values when zero/empty", 0, "", 5 * time.Minute, "symbols"},
		{"negative ttl uses default", -1 * time.Minute, "", 5 * time.Minute, "symbols"},
		{"custom values preserved", 10 * time.Minute, "custom", 10 * time.Minute, "custom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			repo := NewCachingSymbolRepository(nil, tt.ttl, &mockSymbolRepository{}, tt.namespace)

			if repo.ttl != tt.expectedTTL {
				t.Errorf("expected TTL %v, got %v", tt.expectedTTL, repo.ttl)
			}
			if repo.namespace != tt.expectedNamespace {
				t.Errorf("expected namespace %q, got %q", tt.expectedNamespace, repo.namespace)
			}
		})
	}
}

// TestCachingSymbolRepository_NilRedis はRedisがnilの場合にキャッシュをバイパスすることを検証します。
func TestCachingSymbolRepository_NilRedis(t *testing.T) {
	t.Parallel()

	calls := 0
	inner := &mockSymbolRepository{
		listActiveFn: func(ctx context.Context) ([]entity.Symbol, error) {
			calls++
			return []entity.Symbol{aapl}, nil
		},
	}

	repo := NewCachingSymbolRepository(nil, time.Minute, inner, "")
	for i := 0; i < 2; i++ {
		got, err := repo.ListActive(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 {
			t.Errorf("expected 1 symbol, got %d", len(got))
		}
	}
	if calls != 2 {
		t.Errorf("expected inner to be called twice, got %d", calls)
	}
}

// TestCachingSymbolRepository_ListActive_CacheHit はキャッシュヒット時に内部リポジトリを呼ばないことを検証します。
func TestCachingSymbolRepository_ListActive_CacheHit(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	cachedJSON, _ := json.Marshal([]entity.Symbol{aapl})
	mock.ExpectGet("symbols:active").SetVal(string(cachedJSON))

	innerCalled := false
	inner := &mockSymbolRepository{
		listActiveFn: func(ctx context.Context) ([]entity.Symbol, error) {
			innerCalled = true
			return nil, nil
		},
	}

	repo := NewCachingSymbolRepository(rdb, 5*time.Minute, inner, "symbols")
	got, err := repo.ListActive(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if innerCalled {
		t.Error("inner repository should not be called on cache hit")
	}
	if len(got) != 1 || got[0].Code != "AAPL" {
		t.Errorf("unexpected symbols: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingSymbolRepository_ListActive_CacheMiss はキャッシュミス時にDBから取得してキャッシュに保存することを検証します。
func TestCachingSymbolRepository_ListActive_CacheMiss(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expected := []entity.Symbol{aapl}
	expectedJSON, _ := json.Marshal(expected)

	mock.ExpectGet("symbols:active").RedisNil()
	mock.ExpectSet("symbols:active", expectedJSON, 5*time.Minute).SetVal("OK")

	inner := &mockSymbolRepository{
		listActiveFn: func(ctx context.Context) ([]entity.Symbol, error) {
			return expected, nil
		},
	}

	repo := NewCachingSymbolRepository(rdb, 5*time.Minute, inner, "symbols")
	if _, err := repo.ListActive(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingSymbolRepository_FindByCode_CorruptedCache は破損したキャッシュを削除しDBにフォールバックすることを検証します。
func TestCachingSymbolRepository_FindByCode_CorruptedCache(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	expectedJSON, _ := json.Marshal(&aapl)

	mock.ExpectGet("symbols:code:AAPL").SetVal("invalid json")
	mock.ExpectDel("symbols:code:AAPL").SetVal(1)
	mock.ExpectSet("symbols:code:AAPL", expectedJSON, 5*time.Minute).SetVal("OK")

	inner := &mockSymbolRepository{
		findByCodeFn: func(ctx context.Context, code string) (*entity.Symbol, error) {
			s := aapl
			return &s, nil
		},
	}

	repo := NewCachingSymbolRepository(rdb, 5*time.Minute, inner, "symbols")
	got, err := repo.FindByCode(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.BasePrice != 180 {
		t.Errorf("expected base price 180, got %v", got.BasePrice)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingSymbolRepository_FindByCode_NotFoundIsNotCached は未登録銘柄の結果がキャッシュされないことを検証します。
func TestCachingSymbolRepository_FindByCode_NotFoundIsNotCached(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectGet("symbols:code:ZZZZ").RedisNil()

	repo := NewCachingSymbolRepository(rdb, 5*time.Minute, &mockSymbolRepository{}, "symbols")
	_, err := repo.FindByCode(context.Background(), "ZZZZ")

	if !errors.Is(err, usecase.ErrSymbolNotFound) {
		t.Errorf("expected ErrSymbolNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingSymbolRepository_UpsertBatch_InnerError は内部リポジトリのエラーが伝播されることを検証します。
func TestCachingSymbolRepository_UpsertBatch_InnerError(t *testing.T) {
	t.Parallel()

	expectedErr := errors.New("upsert error")
	inner := &mockSymbolRepository{
		upsertBatchFn: func(ctx context.Context, symbols []entity.Symbol) error {
			return expectedErr
		},
	}

	repo := NewCachingSymbolRepository(nil, 5*time.Minute, inner, "symbols")
	err := repo.UpsertBatch(context.Background(), []entity.Symbol{aapl})

	if !errors.Is(err, expectedErr) {
		t.Errorf("expected error %v, got %v", expectedErr, err)
	}
}

// TestCachingSymbolRepository_UpsertBatch_CacheInvalidation はUpsertBatch後にnamespace配下のキャッシュが無効化されることを検証します。
func TestCachingSymbolRepository_UpsertBatch_CacheInvalidation(t *testing.T) {
	t.Parallel()

	rdb, mock := redismock.NewClientMock()
	defer func() { _ = rdb.Close() }()

	mock.ExpectScan(0, "symbols:*", 200).SetVal([]string{"symbols:active", "symbols:code:AAPL"}, 0)
	mock.ExpectDel("symbols:active", "symbols:code:AAPL").SetVal(2)

	repo := NewCachingSymbolRepository(rdb, 5*time.Minute, &mockSymbolRepository{}, "symbols")
	if err := repo.UpsertBatch(context.Background(), []entity.Symbol{aapl}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled mock expectations: %v", err)
	}
}

// TestCachingSymbolRepository_Miniredis は実際のRedisプロトコル上でキャッシュと無効化が機能することを検証します。
func TestCachingSymbolRepository_Miniredis(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()

	calls := 0
	inner := &mockSymbolRepository{
		listActiveFn: func(ctx context.Context) ([]entity.Symbol, error) {
			calls++
			return []entity.Symbol{aapl}, nil
		},
	}
	repo := NewCachingSymbolRepository(rdb, time.Minute, inner, "symbols")
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := repo.ListActive(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if calls != 1 {
		t.Errorf("expected 1 inner call while cached, got %d", calls)
	}
	if !mr.Exists("symbols:active") {
		t.Error("expected symbols:active to be cached")
	}

	if err := repo.UpsertBatch(ctx, []entity.Symbol{aapl}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mr.Exists("symbols:active") {
		t.Error("expected cache to be invalidated after upsert")
	}

	if _, err := repo.ListActive(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 2 {
		t.Errorf("expected inner to be called again after invalidation, got %d", calls)
	}
}

// TestSafe はsafe関数がRedisキーで問題となる文字を正しくエスケープすることを検証します。
func TestSafe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"AAPL", "AAPL"},
		{"BRK A", "BRK_A"},
		{"key:value", "key_value"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := safe(tt.input); got != tt.expected {
				t.Errorf("safe(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}
