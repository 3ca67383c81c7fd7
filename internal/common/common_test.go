package common

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserError(t *testing.T) {
	err := NoTransactionsError("statement.csv")

	var userErr *UserError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, "no transactions found — check the file format", userErr.UserMessage)
	assert.ErrorIs(t, err, ErrNoTransactions)
	assert.Contains(t, err.Error(), "statement.csv")

	bare := NewUserError("just a message", nil)
	assert.Equal(t, "just a message", bare.Error())
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		err  error
		name string
		want bool
	}{
		{name: "rate limit", err: ErrRateLimit, want: true},
		{name: "wrapped rate limit", err: errors.Join(errors.New("http 429"), ErrRateLimit), want: true},
		{name: "deadline", err: context.DeadlineExceeded, want: true},
		{name: "retryable marker", err: &RetryableError{Err: errors.New("503"), Retryable: true}, want: true},
		{name: "permanent marker", err: &RetryableError{Err: errors.New("400"), Retryable: false}, want: false},
		{name: "plain error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}

func TestWithRetry(t *testing.T) {
	opts := RetryOptions{MaxAttempts: 3, InitialDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond}

	t.Run("succeeds after transient failures", func(t *testing.T) {
		calls := 0
		err := WithRetry(context.Background(), func() error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		}, opts)
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops on permanent error", func(t *testing.T) {
		calls := 0
		permanent := &RetryableError{Err: errors.New("bad request"), Retryable: false}
		err := WithRetry(context.Background(), func() error {
			calls++
			return permanent
		}, opts)
		assert.Equal(t, permanent, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		cause := errors.New("still down")
		err := WithRetry(context.Background(), func() error { return cause }, opts)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrMaxRetries)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("retries after the server's requested wait", func(t *testing.T) {
		calls := 0
		err := WithRetry(context.Background(), func() error {
			calls++
			if calls == 1 {
				return &RetryableError{Err: ErrRateLimit, Retryable: true, RetryAfter: time.Hour}
			}
			return nil
		}, opts)
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
	})

	t.Run("honors cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := WithRetry(ctx, func() error { return errors.New("x") },
			RetryOptions{MaxAttempts: 5, InitialDelay: time.Second})
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestWaitFor(t *testing.T) {
	opts := RetryOptions{MaxDelay: 30 * time.Second}.withDefaults()
	backoff := 200 * time.Millisecond

	tests := []struct {
		name string
		err  error
		want time.Duration
	}{
		{name: "plain error uses backoff", err: errors.New("boom"), want: backoff},
		{name: "rate limit waits the cap", err: fmt.Errorf("api: %w", ErrRateLimit), want: 30 * time.Second},
		{
			name: "server retry-after wins",
			err:  &RetryableError{Err: fmt.Errorf("api: %w", ErrRateLimit), Retryable: true, RetryAfter: 5 * time.Second},
			want: 5 * time.Second,
		},
		{
			name: "retry-after is capped",
			err:  &RetryableError{Err: errors.New("503"), Retryable: true, RetryAfter: time.Hour},
			want: 30 * time.Second,
		},
		{
			name: "zero retry-after falls back to backoff",
			err:  &RetryableError{Err: errors.New("503"), Retryable: true},
			want: backoff,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, waitFor(tt.err, backoff, opts))
		})
	}
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)

	lvl, err = ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)

	_, err = ParseLevel("loud")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, slog.LevelInfo, "json")
	require.NoError(t, err)

	logger.Info("analyzed statement", "awards", 3)
	assert.Contains(t, buf.String(), `"awards":3`)

	_, err = NewLogger(&buf, slog.LevelInfo, "xml")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLogDebug(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	logger, err := NewLogger(&buf, slog.LevelDebug, "json")
	require.NoError(t, err)
	slog.SetDefault(logger)

	LogDebug("Loaded statement", Fields{"transactions": 12})
	assert.Contains(t, buf.String(), `"level":"DEBUG"`)
	assert.Contains(t, buf.String(), `"transactions":12`)

	buf.Reset()
	logger, err = NewLogger(&buf, slog.LevelInfo, "json")
	require.NoError(t, err)
	slog.SetDefault(logger)

	LogDebug("Loaded statement", Fields{"transactions": 12})
	assert.Empty(t, buf.String())
}
