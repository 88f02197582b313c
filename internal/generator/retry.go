package generator

import (
	"context"
	"time"
)

// Policy 有界重试策略
type Policy struct {
	MaxAttempts int
	Delay       time.Duration
}

// DefaultPolicy 最多3次，每次间隔1秒
var DefaultPolicy = Policy{MaxAttempts: 3, Delay: time.Second}

// Attempt 单次尝试，n 从1开始
type Attempt[T any] func(ctx context.Context, n int) (T, error)

// Retry 依次执行 attempt，首次成功即返回；全部失败时返回携带最后一次错误的 GenerationError。
// 在两次尝试之间等待 Delay，期间 ctx 取消会立即结束
func Retry[T any](ctx context.Context, contentType string, p Policy, attempt Attempt[T]) (T, error) {
	var zero T
	if p.MaxAttempts < 1 {
		p.MaxAttempts = 1
	}

	var last error
	for n := 1; n <= p.MaxAttempts; n++ {
		if err := ctx.Err(); err != nil {
			return zero, &GenerationError{ContentType: contentType, Attempts: n - 1, Last: err}
		}

		v, err := attempt(ctx, n)
		if err == nil {
			return v, nil
		}
		last = err

		if n == p.MaxAttempts {
			break
		}
		if p.Delay > 0 {
			timer := time.NewTimer(p.Delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return zero, &GenerationError{ContentType: contentType, Attempts: n, Last: ctx.Err()}
			case <-timer.C:
			}
		}
	}

	return zero, &GenerationError{ContentType: contentType, Attempts: p.MaxAttempts, Last: last}
}
