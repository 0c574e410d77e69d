package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction is the side of the ledger an entry is declared on.
type Direction string

const (
	Debit  Direction = "DEBIT"
	Credit Direction = "CREDIT"
)

// Valid reports whether d is Debit or Credit.
func (d Direction) Valid() bool {
	return d == Debit || d == Credit
}

// Opposite returns the other side of the ledger.
func (d Direction) Opposite() Direction {
	if d == Debit {
		return Credit
	}
	return Debit
}

// RunningBalance is the per-account balance position after an entry.
type RunningBalance struct {
	Version         int64           `json:"version"`
	PreviousBalance decimal.Decimal `json:"previousBalance"`
	CurrentBalance  decimal.Decimal `json:"currentBalance"`
}

// LedgerEntry is a single resolved line of a transaction affecting one account.
// Exactly one of Debit and Credit is non-zero and equals FunctionalAmount.
// The running balance is only set once the owning transaction is posted.
type LedgerEntry struct {
	EntryID            string          `json:"entryID"`
	TransactionID      string          `json:"transactionID"`
	AccountID          string          `json:"accountID"`
	LineNumber         int             `json:"lineNumber"`
	SourceCurrency     string          `json:"sourceCurrency"`
	SourceAmount       decimal.Decimal `json:"sourceAmount"`
	ExchangeRate       decimal.Decimal `json:"exchangeRate"`
	RateMethod         RateMethod      `json:"rateMethod"`
	FunctionalCurrency string          `json:"functionalCurrency"`
	FunctionalAmount   decimal.Decimal `json:"functionalAmount"`
	Debit              decimal.Decimal `json:"debit"`
	Credit             decimal.Decimal `json:"credit"`
	Memo               string          `json:"memo,omitempty"`
	DimensionIDs       []string        `json:"dimensionIDs,omitempty"`
	Balance            *RunningBalance `json:"balance,omitempty"`
	CreatedAt          time.Time       `json:"createdAt"`
}

// Direction reports which side of the ledger the entry sits on.
func (e LedgerEntry) Direction() Direction {
	if e.Debit.IsPositive() {
		return Debit
	}
	return Credit
}
