package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TriangulationCurrency is the intermediary used when no direct or inverse rate exists.
const TriangulationCurrency = "USD"

// derivedRatePrecision is the number of decimal places kept for inverse and triangulated rates.
const derivedRatePrecision = 12

// FindRate resolves from→to on date: identity, then the latest direct rate,
// then the inverse of the latest opposite rate, then a triangulation through USD.
func FindRate(ctx context.Context, store RateStore, from, to string, date time.Time) (*domain.ResolvedRate, error) {
	if from == to {
		return &domain.ResolvedRate{
			FromCurrencyCode: from,
			ToCurrencyCode:   to,
			Rate:             decimal.NewFromInt(1),
			Method:           domain.RateDirect,
			DateEffective:    date,
		}, nil
	}

	rate, err := findStoredRate(ctx, store, from, to, date)
	if err != nil {
		return nil, err
	}
	if rate != nil {
		return rate, nil
	}

	if from != TriangulationCurrency && to != TriangulationCurrency {
		rate, err = triangulate(ctx, store, from, to, date)
		if err != nil {
			return nil, err
		}
		if rate != nil {
			return rate, nil
		}
	}

	return nil, &domain.RateNotFoundError{From: from, To: to, Date: date}
}

// findStoredRate tries the direct then the inverse stored rate. A nil rate with
// a nil error means neither exists.
func findStoredRate(ctx context.Context, store RateStore, from, to string, date time.Time) (*domain.ResolvedRate, error) {
	direct, err := latest(ctx, store, from, to, date)
	if err != nil {
		return nil, err
	}
	if direct != nil {
		return &domain.ResolvedRate{
			FromCurrencyCode: from,
			ToCurrencyCode:   to,
			Rate:             direct.Rate,
			Method:           domain.RateDirect,
			DateEffective:    direct.DateEffective,
		}, nil
	}

	opposite, err := latest(ctx, store, to, from, date)
	if err != nil {
		return nil, err
	}
	if opposite != nil && opposite.Rate.IsPositive() {
		return &domain.ResolvedRate{
			FromCurrencyCode: from,
			ToCurrencyCode:   to,
			Rate:             decimal.NewFromInt(1).DivRound(opposite.Rate, derivedRatePrecision),
			Method:           domain.RateInverse,
			DateEffective:    opposite.DateEffective,
		}, nil
	}
	return nil, nil
}

func triangulate(ctx context.Context, store RateStore, from, to string, date time.Time) (*domain.ResolvedRate, error) {
	toUSD, err := findStoredRate(ctx, store, from, TriangulationCurrency, date)
	if err != nil || toUSD == nil {
		return nil, err
	}
	fromUSD, err := findStoredRate(ctx, store, TriangulationCurrency, to, date)
	if err != nil || fromUSD == nil {
		return nil, err
	}

	effective := toUSD.DateEffective
	if fromUSD.DateEffective.Before(effective) {
		effective = fromUSD.DateEffective
	}
	return &domain.ResolvedRate{
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Rate:             toUSD.Rate.Mul(fromUSD.Rate).Round(derivedRatePrecision),
		Method:           domain.RateTriangulated,
		DateEffective:    effective,
	}, nil
}

func latest(ctx context.Context, store RateStore, from, to string, date time.Time) (*domain.ExchangeRate, error) {
	rate, err := store.LatestRate(ctx, from, to, date)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rate, nil
}

// RateResolver adapts a RateStore into a RateLookup.
type RateResolver struct {
	Store RateStore
}

// NewRateResolver returns a resolver reading from store.
func NewRateResolver(store RateStore) *RateResolver {
	return &RateResolver{Store: store}
}

// FindRate implements RateLookup.
func (r *RateResolver) FindRate(ctx context.Context, from, to string, date time.Time) (*domain.ResolvedRate, error) {
	return FindRate(ctx, r.Store, from, to, date)
}

var _ RateLookup = (*RateResolver)(nil)
