package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate stores the conversion rate between two currencies effective from a date.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	DateEffective    time.Time       `json:"dateEffective"`
	AuditFields
}

// RateMethod records how a rate was obtained.
type RateMethod string

const (
	RateDirect       RateMethod = "DIRECT"
	RateInverse      RateMethod = "INVERSE"
	RateTriangulated RateMethod = "TRIANGULATED"
)

// ResolvedRate is the outcome of an exchange rate lookup.
type ResolvedRate struct {
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	Method           RateMethod      `json:"method"`
	DateEffective    time.Time       `json:"dateEffective"`
}
