package domain

import (
	"fmt"
	"strings"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// BalanceCategory tells whether an account balance grows with debits or with credits.
type BalanceCategory int

const (
	DebitNormal BalanceCategory = iota + 1
	CreditNormal
)

func (c BalanceCategory) String() string {
	switch c {
	case DebitNormal:
		return "DEBIT_NORMAL"
	case CreditNormal:
		return "CREDIT_NORMAL"
	default:
		return "UNKNOWN"
	}
}

// Valid reports whether t is one of the five account types.
func (t AccountType) Valid() bool {
	switch t {
	case Asset, Liability, Equity, Revenue, Expense:
		return true
	}
	return false
}

// ParseAccountType converts a stored account type into an AccountType.
// Unknown values are rejected instead of being treated as debit-normal.
func ParseAccountType(s string) (AccountType, error) {
	t := AccountType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownAccountType, s)
	}
	return t, nil
}

// Account represents a financial account within an organization's chart of accounts.
// The ledger core only reads accounts.
type Account struct {
	AccountID           string      `json:"accountID"`
	OrganizationID      string      `json:"organizationID"`
	Name                string      `json:"name"`
	AccountType         AccountType `json:"accountType"`
	Subtype             string      `json:"subtype"`
	CurrencyCode        string      `json:"currencyCode"`
	IsActive            bool        `json:"isActive"`
	AllowsDirectPosting bool        `json:"allowsDirectPosting"`
	AuditFields
}
