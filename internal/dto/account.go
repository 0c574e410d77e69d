package dto

import (
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	AccountID           string             `json:"accountID"`
	OrganizationID      string             `json:"organizationID"`
	Name                string             `json:"name"`
	AccountType         domain.AccountType `json:"accountType"`
	Subtype             string             `json:"subtype,omitempty"`
	CurrencyCode        string             `json:"currencyCode"`
	IsActive            bool               `json:"isActive"`
	AllowsDirectPosting bool               `json:"allowsDirectPosting"`
	CreatedAt           time.Time          `json:"createdAt"`
	CreatedBy           string             `json:"createdBy"`
	LastUpdatedAt       time.Time          `json:"lastUpdatedAt"`
	LastUpdatedBy       string             `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:           acc.AccountID,
		OrganizationID:      acc.OrganizationID,
		Name:                acc.Name,
		AccountType:         acc.AccountType,
		Subtype:             acc.Subtype,
		CurrencyCode:        acc.CurrencyCode,
		IsActive:            acc.IsActive,
		AllowsDirectPosting: acc.AllowsDirectPosting,
		CreatedAt:           acc.CreatedAt,
		CreatedBy:           acc.CreatedBy,
		LastUpdatedAt:       acc.LastUpdatedAt,
		LastUpdatedBy:       acc.LastUpdatedBy,
	}
}

// AccountBalanceResponse defines the data returned for an account balance query.
// Version is zero when nothing has been posted to the account.
type AccountBalanceResponse struct {
	AccountID    string          `json:"accountID"`
	CurrencyCode string          `json:"currencyCode"`
	Version      int64           `json:"version"`
	Balance      decimal.Decimal `json:"balance"`
}
