package services

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/dto"
)

// ExchangeRateSvcFacade defines operations on exchange rates
type ExchangeRateSvcFacade interface {
	// CreateExchangeRate stores a new rate.
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, userID string) (*domain.ExchangeRate, error)

	// ResolveRate finds the rate between two currencies on a date, directly, inverted or through USD.
	ResolveRate(ctx context.Context, from, to string, date time.Time) (*domain.ResolvedRate, error)

	// ListExchangeRates returns the stored history of a pair, newest first.
	ListExchangeRates(ctx context.Context, from, to string) ([]domain.ExchangeRate, error)
}
