package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table. Nullable columns are pointers.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	OrganizationID  string          `db:"organization_id"`
	TransactionType string          `db:"transaction_type"`
	TransactionDate time.Time       `db:"transaction_date"`
	Description     string          `db:"description"`
	Status          string          `db:"status"`
	FiscalPeriodID  string          `db:"fiscal_period_id"`
	TotalDebit      decimal.Decimal `db:"total_debit"`
	TotalCredit     decimal.Decimal `db:"total_credit"`

	SubmittedBy     *string    `db:"submitted_by"`
	SubmittedAt     *time.Time `db:"submitted_at"`
	ApprovedBy      *string    `db:"approved_by"`
	ApprovedAt      *time.Time `db:"approved_at"`
	ApprovalNotes   string     `db:"approval_notes"`
	RejectedBy      *string    `db:"rejected_by"`
	RejectedAt      *time.Time `db:"rejected_at"`
	RejectionReason string     `db:"rejection_reason"`
	PostedBy        *string    `db:"posted_by"`
	PostedAt        *time.Time `db:"posted_at"`
	VoidedBy        *string    `db:"voided_by"`
	VoidedAt        *time.Time `db:"voided_at"`
	VoidReason      string     `db:"void_reason"`

	ReversedByTransactionID *string `db:"reversed_by_transaction_id"`
	ReversesTransactionID   *string `db:"reverses_transaction_id"`
	AuditFields
}

// LedgerEntry is a row of the ledger_entries table. The balance columns stay
// NULL until the owning transaction is posted.
type LedgerEntry struct {
	EntryID            string              `db:"entry_id"`
	TransactionID      string              `db:"transaction_id"`
	AccountID          string              `db:"account_id"`
	LineNumber         int                 `db:"line_number"`
	SourceCurrency     string              `db:"source_currency"`
	SourceAmount       decimal.Decimal     `db:"source_amount"`
	ExchangeRate       decimal.Decimal     `db:"exchange_rate"`
	RateMethod         string              `db:"rate_method"`
	FunctionalCurrency string              `db:"functional_currency"`
	FunctionalAmount   decimal.Decimal     `db:"functional_amount"`
	Debit              decimal.Decimal     `db:"debit"`
	Credit             decimal.Decimal     `db:"credit"`
	Memo               string              `db:"memo"`
	DimensionIDs       []string            `db:"dimension_ids"`
	AccountVersion     *int64              `db:"account_version"`
	PreviousBalance    decimal.NullDecimal `db:"previous_balance"`
	CurrentBalance     decimal.NullDecimal `db:"current_balance"`
	CreatedAt          time.Time           `db:"created_at"`
}
