// Package db はgormによるデータベース接続の確立を提供します。
package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	// MemoryPath はsqliteのインメモリDBを表します。
	MemoryPath = ":memory:"
)

// ErrUnknownDriver は未対応のドライバー名が指定された場合に返されます。
var ErrUnknownDriver = errors.New("db: unknown driver")

// retryInterval は接続リトライの間隔です。テストで短縮できるよう変数にしています。
var retryInterval = 3 * time.Second

// Config はデータベース接続設定です。
type Config struct {
	Driver   string
	Path     string // sqlite only
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// Opener はDSNからgorm.DBを開く関数です。
type Opener func(dsn string) (*gorm.DB, error)

// BuildDSN は設定からドライバーごとのDSN文字列を生成します。
func BuildDSN(cfg Config) string {
	switch driverOf(cfg) {
	case DriverPostgres:
		sslmode := cfg.SSLMode
		if sslmode == "" {
			sslmode = "disable"
		}
		port := cfg.Port
		if port == "" {
			port = "5432"
		}
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, port, cfg.User, cfg.Password, cfg.Name, sslmode)
	default:
		if cfg.Path == "" {
			return MemoryPath
		}
		return cfg.Path
	}
}

// NewOpener はドライバーに対応するOpenerを返します。
func NewOpener(cfg Config) (Opener, error) {
	gcfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}
	switch driverOf(cfg) {
	case DriverSQLite:
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(sqlite.Open(dsn), gcfg)
		}, nil
	case DriverPostgres:
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(postgres.Open(dsn), gcfg)
		}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// ConnectWithRetry はtimeoutまでretryInterval間隔で接続を試みます。
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().Add(retryInterval).After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("DB connect failed, retrying", "error", err, "interval", retryInterval)
		time.Sleep(retryInterval)
	}
}

// Open は設定に従って接続し、modelsをマイグレーションしたDBを返します。
// sqliteのインメモリDBは接続ごとに別のDBになるため、接続数を1に制限します。
func Open(cfg Config, timeout time.Duration, models ...any) (*gorm.DB, error) {
	open, err := NewOpener(cfg)
	if err != nil {
		return nil, err
	}
	dsn := BuildDSN(cfg)

	db, err := ConnectWithRetry(dsn, timeout, open)
	if err != nil {
		return nil, err
	}

	if driverOf(cfg) == DriverSQLite && dsn == MemoryPath {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			return nil, fmt.Errorf("failed to migrate: %w", err)
		}
	}

	slog.Info("database connected", "driver", driverOf(cfg))
	return db, nil
}

// Ping は接続が生きているかを確認します（ヘルスチェック用）。
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// driverOf はドライバー名を正規化します。空の場合はsqliteです。
func driverOf(cfg Config) string {
	d := strings.ToLower(strings.TrimSpace(cfg.Driver))
	switch d {
	case "", "sqlite3":
		return DriverSQLite
	case "postgresql", "pg":
		return DriverPostgres
	}
	return d
}
