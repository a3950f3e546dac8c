package providers

import (
	"context"
	"log/slog"
	"time"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingBulkProvider wraps a BulkScheduleProvider with retry/backoff behavior.
// Rate limit errors are not retried; the upstream asked us to back off further
// than a retry loop should wait.
type retryingBulkProvider struct {
	inner       BulkScheduleProvider
	logger      *slog.Logger
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingBulkProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingBulkProvider(inner BulkScheduleProvider, logger *slog.Logger, maxAttempts int, backoff time.Duration) BulkScheduleProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingBulkProvider{
		inner:       inner,
		logger:      logger,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingBulkProvider) FetchSeason(ctx context.Context, season string) (Batch, error) {
	if r == nil || r.inner == nil {
		return Batch{}, ErrProviderUnavailable
	}

	var lastErr error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		batch, err := r.inner.FetchSeason(ctx, season)
		if err == nil {
			return batch, nil
		}
		lastErr = err

		if _, ok := AsRateLimitError(err); ok {
			break
		}
		if attempt == r.maxAttempts {
			break
		}

		logWithProvider(ctx, r.logger, slog.LevelWarn, "retrying-bulk", "bulk fetch retry",
			"attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		delay := r.backoffFn(attempt)
		select {
		case <-ctx.Done():
			return Batch{}, ctx.Err()
		case <-time.After(delay):
		}
	}

	logWithProvider(ctx, r.logger, slog.LevelWarn, "retrying-bulk", "bulk fetch failed",
		"attempts", r.maxAttempts, "err", lastErr)
	return Batch{}, lastErr
}
