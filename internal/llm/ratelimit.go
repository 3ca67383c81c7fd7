package llm

import (
	"context"
	"fmt"
	"time"
)

// rateLimiter allows at most capacity requests to start in any window.
// Statements analyzed concurrently share one limiter.
type rateLimiter struct {
	slots  chan struct{}
	window time.Duration
}

// newRateLimiter creates a limiter allowing requestsPerMinute calls.
func newRateLimiter(requestsPerMinute int) *rateLimiter {
	return newWindowLimiter(requestsPerMinute, time.Minute)
}

func newWindowLimiter(capacity int, window time.Duration) *rateLimiter {
	if capacity <= 0 {
		capacity = 50
	}

	rl := &rateLimiter{
		slots:  make(chan struct{}, capacity),
		window: window,
	}
	for i := 0; i < capacity; i++ {
		rl.slots <- struct{}{}
	}
	return rl
}

// wait blocks until a slot is free or the context is canceled. A taken slot
// comes back once the window has passed.
func (rl *rateLimiter) wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("rate limiter canceled: %w", ctx.Err())
	case <-rl.slots:
	}

	time.AfterFunc(rl.window, func() {
		rl.slots <- struct{}{}
	})
	return nil
}
