// Package latency は外部API呼び出しを模した固定の待ち時間を提供します。
package latency

import (
	"context"
	"log/slog"
	"time"
)

// DefaultDelay は予測リクエストごとに挿入される既定の待ち時間です。
const DefaultDelay = 1500 * time.Millisecond

// Simulator は固定時間だけ待機してから処理を続行させます。
type Simulator struct {
	delay time.Duration // 1回あたりの待ち時間
}

// NewSimulator は新しいSimulatorのインスタンスを生成します。
// delayが0以下の場合は待機しません。
func NewSimulator(delay time.Duration) *Simulator {
	if delay < 0 {
		delay = 0
	}
	return &Simulator{delay: delay}
}

// Wait は待ち時間が経過するか、ctxがキャンセルされるまでブロックします。
// キャンセルされた場合はctx.Err()を返します。
func (s *Simulator) Wait(ctx context.Context) error {
	if s.delay == 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		slog.Debug("simulated latency interrupted", "delay", s.delay, "error", ctx.Err())
		return ctx.Err()
	}
}
