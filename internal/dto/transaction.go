package dto

import (
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEntryRequest is one proposed line of a transaction.
type CreateEntryRequest struct {
	AccountID    string           `json:"accountID" binding:"required"`
	Direction    domain.Direction `json:"direction" binding:"required,oneof=DEBIT CREDIT"`
	Amount       decimal.Decimal  `json:"amount"`
	CurrencyCode string           `json:"currencyCode" binding:"required,currency"`
	Memo         string           `json:"memo"`
	DimensionIDs []string         `json:"dimensionIDs"`
}

// CreateTransactionRequest defines the data needed to create a draft transaction.
// Entry counts and amounts are checked by the ledger, not by binding.
type CreateTransactionRequest struct {
	TransactionType string               `json:"transactionType" binding:"required,max=50"`
	TransactionDate time.Time            `json:"transactionDate" binding:"required"`
	Description     string               `json:"description" binding:"max=500"`
	Entries         []CreateEntryRequest `json:"entries" binding:"dive"`
}

// ApproveTransactionRequest carries optional approval notes.
type ApproveTransactionRequest struct {
	Notes string `json:"notes" binding:"max=1000"`
}

// RejectTransactionRequest carries the rejection reason.
type RejectTransactionRequest struct {
	Reason string `json:"reason" binding:"max=1000"`
}

// VoidTransactionRequest carries the void reason.
type VoidTransactionRequest struct {
	Reason string `json:"reason" binding:"max=1000"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Limit     int     `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken *string `form:"nextToken"`
	Status    string  `form:"status" binding:"omitempty,oneof=DRAFT PENDING APPROVED POSTED VOIDED"`
}

// LedgerEntryResponse defines the data returned for a ledger entry.
type LedgerEntryResponse struct {
	EntryID            string          `json:"entryID"`
	AccountID          string          `json:"accountID"`
	LineNumber         int             `json:"lineNumber"`
	SourceCurrency     string          `json:"sourceCurrency"`
	SourceAmount       decimal.Decimal `json:"sourceAmount"`
	ExchangeRate       decimal.Decimal `json:"exchangeRate"`
	RateMethod         string          `json:"rateMethod"`
	FunctionalCurrency string          `json:"functionalCurrency"`
	FunctionalAmount   decimal.Decimal `json:"functionalAmount"`
	Debit              decimal.Decimal `json:"debit"`
	Credit             decimal.Decimal `json:"credit"`
	Memo               string          `json:"memo,omitempty"`
	DimensionIDs       []string        `json:"dimensionIDs,omitempty"`
	AccountVersion     *int64          `json:"accountVersion,omitempty"`
	PreviousBalance    *string         `json:"previousBalance,omitempty"`
	CurrentBalance     *string         `json:"currentBalance,omitempty"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID           string                `json:"transactionID"`
	OrganizationID          string                `json:"organizationID"`
	TransactionType         string                `json:"transactionType"`
	TransactionDate         time.Time             `json:"transactionDate"`
	Description             string                `json:"description"`
	Status                  string                `json:"status"`
	FiscalPeriodID          string                `json:"fiscalPeriodID"`
	TotalDebit              decimal.Decimal       `json:"totalDebit"`
	TotalCredit             decimal.Decimal       `json:"totalCredit"`
	SubmittedBy             *string               `json:"submittedBy,omitempty"`
	SubmittedAt             *time.Time            `json:"submittedAt,omitempty"`
	ApprovedBy              *string               `json:"approvedBy,omitempty"`
	ApprovedAt              *time.Time            `json:"approvedAt,omitempty"`
	ApprovalNotes           string                `json:"approvalNotes,omitempty"`
	RejectedBy              *string               `json:"rejectedBy,omitempty"`
	RejectedAt              *time.Time            `json:"rejectedAt,omitempty"`
	RejectionReason         string                `json:"rejectionReason,omitempty"`
	PostedBy                *string               `json:"postedBy,omitempty"`
	PostedAt                *time.Time            `json:"postedAt,omitempty"`
	VoidedBy                *string               `json:"voidedBy,omitempty"`
	VoidedAt                *time.Time            `json:"voidedAt,omitempty"`
	VoidReason              string                `json:"voidReason,omitempty"`
	ReversedByTransactionID *string               `json:"reversedByTransactionID,omitempty"`
	ReversesTransactionID   *string               `json:"reversesTransactionID,omitempty"`
	Entries                 []LedgerEntryResponse `json:"entries,omitempty"`
	CreatedAt               time.Time             `json:"createdAt"`
	CreatedBy               string                `json:"createdBy"`
	LastUpdatedAt           time.Time             `json:"lastUpdatedAt"`
	LastUpdatedBy           string                `json:"lastUpdatedBy"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// VoidTransactionResponse returns both sides of a void.
type VoidTransactionResponse struct {
	Original TransactionResponse `json:"original"`
	Reversal TransactionResponse `json:"reversal"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to LedgerEntryResponse DTO.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	res := LedgerEntryResponse{
		EntryID:            e.EntryID,
		AccountID:          e.AccountID,
		LineNumber:         e.LineNumber,
		SourceCurrency:     e.SourceCurrency,
		SourceAmount:       e.SourceAmount,
		ExchangeRate:       e.ExchangeRate,
		RateMethod:         string(e.RateMethod),
		FunctionalCurrency: e.FunctionalCurrency,
		FunctionalAmount:   e.FunctionalAmount,
		Debit:              e.Debit,
		Credit:             e.Credit,
		Memo:               e.Memo,
		DimensionIDs:       e.DimensionIDs,
	}
	if e.Balance != nil {
		version := e.Balance.Version
		previous := e.Balance.PreviousBalance.String()
		current := e.Balance.CurrentBalance.String()
		res.AccountVersion, res.PreviousBalance, res.CurrentBalance = &version, &previous, &current
	}
	return res
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	res := TransactionResponse{
		TransactionID:           txn.TransactionID,
		OrganizationID:          txn.OrganizationID,
		TransactionType:         txn.TransactionType,
		TransactionDate:         txn.TransactionDate,
		Description:             txn.Description,
		Status:                  string(txn.Status),
		FiscalPeriodID:          txn.FiscalPeriodID,
		TotalDebit:              txn.TotalDebit,
		TotalCredit:             txn.TotalCredit,
		SubmittedBy:             txn.SubmittedBy,
		SubmittedAt:             txn.SubmittedAt,
		ApprovedBy:              txn.ApprovedBy,
		ApprovedAt:              txn.ApprovedAt,
		ApprovalNotes:           txn.ApprovalNotes,
		RejectedBy:              txn.RejectedBy,
		RejectedAt:              txn.RejectedAt,
		RejectionReason:         txn.RejectionReason,
		PostedBy:                txn.PostedBy,
		PostedAt:                txn.PostedAt,
		VoidedBy:                txn.VoidedBy,
		VoidedAt:                txn.VoidedAt,
		VoidReason:              txn.VoidReason,
		ReversedByTransactionID: txn.ReversedByTransactionID,
		ReversesTransactionID:   txn.ReversesTransactionID,
		CreatedAt:               txn.CreatedAt,
		CreatedBy:               txn.CreatedBy,
		LastUpdatedAt:           txn.LastUpdatedAt,
		LastUpdatedBy:           txn.LastUpdatedBy,
	}
	if len(txn.Entries) > 0 {
		res.Entries = make([]LedgerEntryResponse, len(txn.Entries))
		for i := range txn.Entries {
			res.Entries[i] = ToLedgerEntryResponse(&txn.Entries[i])
		}
	}
	return res
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i := range txns {
		responses[i] = ToTransactionResponse(&txns[i])
	}
	return responses
}
