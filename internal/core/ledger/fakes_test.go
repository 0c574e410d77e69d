package ledger_test

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

var errBadDimension = errors.New("dimension dept-x does not exist")

type accountsFake map[string]*domain.Account

func (f accountsFake) FindAccount(_ context.Context, id string) (*domain.Account, error) {
	acc, ok := f[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return acc, nil
}

type dimensionsFake struct {
	calls int
	known map[string]bool
}

func (f *dimensionsFake) ValidateDimensions(_ context.Context, ids []string) error {
	f.calls++
	for _, id := range ids {
		if !f.known[id] {
			return errBadDimension
		}
	}
	return nil
}

type storedRate struct {
	from, to string
	rate     decimal.Decimal
	date     time.Time
}

// ratesFake keeps rates in insertion order and answers LatestRate like the
// database: most recent effective date on or before the requested date.
type ratesFake struct {
	rates []storedRate
	calls int
}

func (f *ratesFake) add(from, to, rate string, date time.Time) *ratesFake {
	f.rates = append(f.rates, storedRate{from: from, to: to, rate: decimal.RequireFromString(rate), date: date})
	return f
}

func (f *ratesFake) LatestRate(_ context.Context, from, to string, onOrBefore time.Time) (*domain.ExchangeRate, error) {
	f.calls++
	var best *storedRate
	for i := range f.rates {
		r := &f.rates[i]
		if r.from != from || r.to != to || r.date.After(onOrBefore) {
			continue
		}
		if best == nil || r.date.After(best.date) {
			best = r
		}
	}
	if best == nil {
		return nil, apperrors.ErrNotFound
	}
	return &domain.ExchangeRate{FromCurrencyCode: from, ToCurrencyCode: to, Rate: best.rate, DateEffective: best.date}, nil
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}
