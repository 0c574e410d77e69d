// Package ledger holds the pure decision logic of the ledger: entry
// validation and currency resolution, fiscal posting rules, the transaction
// lifecycle, approval rules and exchange rate resolution. Nothing here
// performs I/O of its own; data arrives through the lookup interfaces below.
package ledger

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// AccountSource loads the accounts referenced by entries.
// Implementations return domain.ErrAccountNotFound for unknown IDs.
type AccountSource interface {
	FindAccount(ctx context.Context, accountID string) (*domain.Account, error)
}

// DimensionValidator checks dimension references attached to an entry.
type DimensionValidator interface {
	ValidateDimensions(ctx context.Context, dimensionIDs []string) error
}

// RateStore returns the most recent stored rate for a pair effective on or
// before a date, or apperrors.ErrNotFound.
type RateStore interface {
	LatestRate(ctx context.Context, from, to string, onOrBefore time.Time) (*domain.ExchangeRate, error)
}

// RateLookup resolves a conversion rate between two currencies on a date.
type RateLookup interface {
	FindRate(ctx context.Context, from, to string, date time.Time) (*domain.ResolvedRate, error)
}
