package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestRetryOnConflict(t *testing.T) {
	policy := RetryPolicy{Attempts: 3, Backoff: time.Millisecond}
	conflict := fmt.Errorf("post: %w", domain.ErrConcurrentModification)

	t.Run("succeeds after a conflict", func(t *testing.T) {
		var calls []int
		err := retryOnConflict(context.Background(), policy, "test", func(attempt int) error {
			calls = append(calls, attempt)
			if attempt == 1 {
				return conflict
			}
			return nil
		})
		assert.NoError(t, err)
		assert.Equal(t, []int{1, 2}, calls)
	})

	t.Run("other errors are not retried", func(t *testing.T) {
		calls := 0
		boom := errors.New("boom")
		err := retryOnConflict(context.Background(), policy, "test", func(int) error {
			calls++
			return boom
		})
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, calls)
	})

	t.Run("returns the last conflict", func(t *testing.T) {
		calls := 0
		err := retryOnConflict(context.Background(), policy, "test", func(int) error {
			calls++
			return conflict
		})
		assert.ErrorIs(t, err, domain.ErrConcurrentModification)
		assert.Equal(t, 3, calls)
	})

	t.Run("zero attempts still runs once", func(t *testing.T) {
		calls := 0
		_ = retryOnConflict(context.Background(), RetryPolicy{}, "test", func(int) error {
			calls++
			return conflict
		})
		assert.Equal(t, 1, calls)
	})

	t.Run("stops when the context is done", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		err := retryOnConflict(ctx, RetryPolicy{Attempts: 5, Backoff: time.Hour}, "test", func(int) error {
			calls++
			cancel()
			return conflict
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
}
