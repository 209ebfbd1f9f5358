// Package logger はslogのロガー生成を提供します。
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New はlevelとformat（"json" または "text"）に応じたロガーを生成します。
// wがnilの場合は標準エラー出力に書き込みます。
func New(level, format string, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var h slog.Handler
	if strings.EqualFold(strings.TrimSpace(format), "json") {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}

// Setup はロガーを生成してデフォルトに設定します。
func Setup(level, format string) *slog.Logger {
	l := New(level, format, nil)
	slog.SetDefault(l)
	return l
}

// ParseLevel はレベル名をslog.Levelに変換します。未知の値はInfoです。
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
