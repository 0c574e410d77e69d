package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the lifecycle state of a transaction.
type TransactionStatus string

const (
	StatusDraft    TransactionStatus = "DRAFT"
	StatusPending  TransactionStatus = "PENDING"
	StatusApproved TransactionStatus = "APPROVED"
	StatusPosted   TransactionStatus = "POSTED"
	StatusVoided   TransactionStatus = "VOIDED"
)

// AllStatuses lists every lifecycle state.
var AllStatuses = []TransactionStatus{StatusDraft, StatusPending, StatusApproved, StatusPosted, StatusVoided}

// Transaction is a balanced financial event made of two or more ledger entries.
type Transaction struct {
	TransactionID   string            `json:"transactionID"`
	OrganizationID  string            `json:"organizationID"`
	TransactionType string            `json:"transactionType"`
	TransactionDate time.Time         `json:"transactionDate"`
	Description     string            `json:"description"`
	Status          TransactionStatus `json:"status"`
	FiscalPeriodID  string            `json:"fiscalPeriodID"`
	TotalDebit      decimal.Decimal   `json:"totalDebit"`
	TotalCredit     decimal.Decimal   `json:"totalCredit"`

	SubmittedBy     *string    `json:"submittedBy,omitempty"`
	SubmittedAt     *time.Time `json:"submittedAt,omitempty"`
	ApprovedBy      *string    `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time `json:"approvedAt,omitempty"`
	ApprovalNotes   string     `json:"approvalNotes,omitempty"`
	RejectedBy      *string    `json:"rejectedBy,omitempty"`
	RejectedAt      *time.Time `json:"rejectedAt,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
	PostedBy        *string    `json:"postedBy,omitempty"`
	PostedAt        *time.Time `json:"postedAt,omitempty"`
	VoidedBy        *string    `json:"voidedBy,omitempty"`
	VoidedAt        *time.Time `json:"voidedAt,omitempty"`
	VoidReason      string     `json:"voidReason,omitempty"`

	ReversedByTransactionID *string `json:"reversedByTransactionID,omitempty"`
	ReversesTransactionID   *string `json:"reversesTransactionID,omitempty"`

	Entries []LedgerEntry `json:"entries,omitempty"`
	AuditFields
}

// Transition describes a validated lifecycle change. Persisting it is the caller's job.
type Transition struct {
	From    TransactionStatus `json:"from"`
	To      TransactionStatus `json:"to"`
	ActorID string            `json:"actorID"`
	At      time.Time         `json:"at"`
	Notes   string            `json:"notes,omitempty"`
	Reason  string            `json:"reason,omitempty"`
}

// Apply records t on the transaction: new status plus the audit fields of that step.
func (tx *Transaction) Apply(t Transition) {
	actor := t.ActorID
	at := t.At
	tx.Status = t.To
	tx.LastUpdatedAt = at
	tx.LastUpdatedBy = actor

	switch {
	case t.From == StatusDraft && t.To == StatusPending:
		tx.SubmittedBy, tx.SubmittedAt = &actor, &at
	case t.From == StatusPending && t.To == StatusApproved:
		tx.ApprovedBy, tx.ApprovedAt = &actor, &at
		tx.ApprovalNotes = t.Notes
	case t.From == StatusPending && t.To == StatusDraft:
		tx.RejectedBy, tx.RejectedAt = &actor, &at
		tx.RejectionReason = t.Reason
	case t.To == StatusPosted:
		tx.PostedBy, tx.PostedAt = &actor, &at
	case t.To == StatusVoided:
		tx.VoidedBy, tx.VoidedAt = &actor, &at
		tx.VoidReason = t.Reason
	}
}
