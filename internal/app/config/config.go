// Package config loads the application configuration from a YAML file,
// a .env file and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"stock_predictor/internal/platform/db"
	"stock_predictor/internal/platform/redis"
	"stock_predictor/internal/shared/latency"
)

// DefaultPath is read when neither an explicit path nor CONFIG_FILE is given.
const DefaultPath = "config.yaml"

// Config holds all application configuration.
type Config struct {
	Server struct {
		Addr             string        `yaml:"addr"`
		CORSAllowOrigins []string      `yaml:"cors_allow_origins"`
		ShutdownTimeout  time.Duration `yaml:"shutdown_timeout"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	Database struct {
		Driver         string        `yaml:"driver"`
		Path           string        `yaml:"path"`
		Host           string        `yaml:"host"`
		Port           string        `yaml:"port"`
		User           string        `yaml:"user"`
		Password       string        `yaml:"password"`
		Name           string        `yaml:"name"`
		SSLMode        string        `yaml:"sslmode"`
		ConnectTimeout time.Duration `yaml:"connect_timeout"`
	} `yaml:"database"`
	Redis struct {
		Host     string `yaml:"host"`
		Port     string `yaml:"port"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`
	Cache struct {
		TTL time.Duration `yaml:"ttl"`
	} `yaml:"cache"`
	Prediction struct {
		Latency     time.Duration `yaml:"latency"`
		HistoryDays int           `yaml:"history_days"`
	} `yaml:"prediction"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Addr = ":8080"
	cfg.Server.CORSAllowOrigins = []string{"*"}
	cfg.Server.ShutdownTimeout = 10 * time.Second
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Database.Driver = db.DriverSQLite
	cfg.Database.Path = db.MemoryPath
	cfg.Database.ConnectTimeout = 60 * time.Second
	cfg.Cache.TTL = 5 * time.Minute
	cfg.Prediction.Latency = latency.DefaultDelay
	cfg.Prediction.HistoryDays = 30
	return cfg
}

// Load starts from Default, overlays the YAML file at path, loads .env into the
// process environment, then applies environment variable overrides.
// An empty path means CONFIG_FILE, then DefaultPath. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("CONFIG_FILE")
	}
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// .env does not override variables that are already set.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Server.Addr, "SERVER_ADDR")
	if v := os.Getenv("CORS_ALLOW_ORIGINS"); v != "" {
		c.Server.CORSAllowOrigins = splitList(v)
	}
	setString(&c.Log.Level, "LOG_LEVEL")
	setString(&c.Log.Format, "LOG_FORMAT")

	setString(&c.Database.Driver, "DB_DRIVER")
	setString(&c.Database.Path, "DB_PATH")
	setString(&c.Database.Host, "DB_HOST")
	setString(&c.Database.Port, "DB_PORT")
	setString(&c.Database.User, "DB_USER")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.Name, "DB_NAME")
	setString(&c.Database.SSLMode, "DB_SSLMODE")

	setString(&c.Redis.Host, "REDIS_HOST")
	setString(&c.Redis.Port, "REDIS_PORT")
	setString(&c.Redis.Password, "REDIS_PASSWORD")

	if err := setDuration(&c.Cache.TTL, "CACHE_TTL"); err != nil {
		return err
	}
	if err := setDuration(&c.Prediction.Latency, "PREDICTION_LATENCY"); err != nil {
		return err
	}
	if v := os.Getenv("HISTORY_DAYS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("HISTORY_DAYS: %w", err)
		}
		c.Prediction.HistoryDays = n
	}
	return nil
}

// Validate checks value ranges that the rest of the application relies on.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr is required")
	}
	if _, err := db.NewOpener(c.DB()); err != nil {
		return err
	}
	if c.Prediction.HistoryDays <= 0 {
		return errors.New("prediction.history_days must be positive")
	}
	if c.Prediction.Latency < 0 {
		return errors.New("prediction.latency must not be negative")
	}
	if c.Cache.TTL < 0 {
		return errors.New("cache.ttl must not be negative")
	}
	return nil
}

// DB returns the catalog store connection settings.
func (c *Config) DB() db.Config {
	return db.Config{
		Driver:   c.Database.Driver,
		Path:     c.Database.Path,
		Host:     c.Database.Host,
		Port:     c.Database.Port,
		User:     c.Database.User,
		Password: c.Database.Password,
		Name:     c.Database.Name,
		SSLMode:  c.Database.SSLMode,
	}
}

// RedisConfig returns the cache connection settings.
func (c *Config) RedisConfig() redis.Config {
	return redis.Config{
		Host:     c.Redis.Host,
		Port:     c.Redis.Port,
		Password: c.Redis.Password,
		DB:       c.Redis.DB,
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = d
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
