package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/middleware"
)

// RetryPolicy controls how often a write that lost a race on account versions or
// fiscal period status is retried.
type RetryPolicy struct {
	Attempts int
	Backoff  time.Duration
}

// DefaultRetryPolicy is used when no policy is configured.
var DefaultRetryPolicy = RetryPolicy{Attempts: 3, Backoff: 50 * time.Millisecond}

// retryOnConflict runs fn until it succeeds, fails with anything other than
// domain.ErrConcurrentModification, or the attempts run out. The wait grows
// linearly with the attempt number and stops early when ctx is done.
func retryOnConflict(ctx context.Context, policy RetryPolicy, op string, fn func(attempt int) error) error {
	attempts := policy.Attempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = fn(attempt)
		if err == nil || !errors.Is(err, domain.ErrConcurrentModification) {
			return err
		}
		if attempt == attempts {
			break
		}

		middleware.GetLoggerFromCtx(ctx).Warn("Concurrent modification, retrying",
			slog.String("operation", op),
			slog.Int("attempt", attempt),
		)

		timer := time.NewTimer(time.Duration(attempt) * policy.Backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return err
}
