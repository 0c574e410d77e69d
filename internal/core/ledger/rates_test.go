package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/core/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRate_Identity(t *testing.T) {
	store := &ratesFake{}
	rate, err := ledger.FindRate(context.Background(), store, "EUR", "EUR", day(2024, 3, 1))
	require.NoError(t, err)
	assert.True(t, dec("1").Equal(rate.Rate))
	assert.Equal(t, domain.RateDirect, rate.Method)
	assert.Zero(t, store.calls)
}

func TestFindRate_DirectUsesMostRecentOnOrBeforeDate(t *testing.T) {
	store := (&ratesFake{}).
		add("EUR", "USD", "1.05", day(2024, 1, 1)).
		add("EUR", "USD", "1.10", day(2024, 2, 1)).
		add("EUR", "USD", "1.20", day(2024, 4, 1))

	rate, err := ledger.FindRate(context.Background(), store, "EUR", "USD", day(2024, 3, 15))
	require.NoError(t, err)
	assert.True(t, dec("1.10").Equal(rate.Rate))
	assert.Equal(t, domain.RateDirect, rate.Method)
	assert.Equal(t, day(2024, 2, 1), rate.DateEffective)
}

func TestFindRate_Inverse(t *testing.T) {
	store := (&ratesFake{}).add("USD", "EUR", "0.80", day(2024, 1, 1))

	rate, err := ledger.FindRate(context.Background(), store, "EUR", "USD", day(2024, 3, 1))
	require.NoError(t, err)
	assert.True(t, dec("1.25").Equal(rate.Rate), "got %s", rate.Rate)
	assert.Equal(t, domain.RateInverse, rate.Method)
}

func TestFindRate_Triangulated(t *testing.T) {
	store := (&ratesFake{}).
		add("USD", "EUR", "0.90", day(2024, 1, 10)).
		add("USD", "GBP", "0.80", day(2024, 1, 5))

	rate, err := ledger.FindRate(context.Background(), store, "EUR", "GBP", day(2024, 3, 1))
	require.NoError(t, err)

	want := dec("0.80").DivRound(dec("0.90"), 10)
	assert.True(t, want.Equal(rate.Rate.Round(10)), "got %s want %s", rate.Rate, want)
	assert.Equal(t, domain.RateTriangulated, rate.Method)
	assert.Equal(t, day(2024, 1, 5), rate.DateEffective)
}

func TestFindRate_DirectPreferredOverTriangulation(t *testing.T) {
	store := (&ratesFake{}).
		add("USD", "EUR", "0.90", day(2024, 1, 1)).
		add("USD", "GBP", "0.80", day(2024, 1, 1)).
		add("EUR", "GBP", "0.85", day(2024, 1, 1))

	rate, err := ledger.FindRate(context.Background(), store, "EUR", "GBP", day(2024, 3, 1))
	require.NoError(t, err)
	assert.True(t, dec("0.85").Equal(rate.Rate))
	assert.Equal(t, domain.RateDirect, rate.Method)
}

func TestFindRate_NotFound(t *testing.T) {
	tests := []struct {
		name  string
		store *ratesFake
		from  string
		to    string
	}{
		{name: "empty store", store: &ratesFake{}, from: "EUR", to: "GBP"},
		{name: "only one leg", store: (&ratesFake{}).add("USD", "EUR", "0.9", day(2024, 1, 1)), from: "EUR", to: "GBP"},
		{name: "no chained triangulation through usd pairs", store: &ratesFake{}, from: "USD", to: "JPY"},
		{name: "rate only after date", store: (&ratesFake{}).add("EUR", "USD", "1.1", day(2025, 1, 1)), from: "EUR", to: "USD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ledger.FindRate(context.Background(), tt.store, tt.from, tt.to, day(2024, 6, 1))
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrRateNotFound)

			var notFound *domain.RateNotFoundError
			require.True(t, errors.As(err, &notFound))
			assert.Equal(t, tt.from, notFound.From)
			assert.Equal(t, tt.to, notFound.To)
		})
	}
}

func TestRateResolver(t *testing.T) {
	store := (&ratesFake{}).add("GBP", "USD", "1.27", day(2024, 1, 1))
	resolver := ledger.NewRateResolver(store)

	rate, err := resolver.FindRate(context.Background(), "GBP", "USD", day(2024, 1, 2))
	require.NoError(t, err)
	assert.True(t, dec("1.27").Equal(rate.Rate))
}
