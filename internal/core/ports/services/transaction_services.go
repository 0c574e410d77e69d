package services

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/dto"
)

// TransactionReaderSvc defines read operations for ledger transactions
type TransactionReaderSvc interface {
	// GetTransaction retrieves a transaction with its entries.
	GetTransaction(ctx context.Context, organizationID, transactionID, userID string) (*domain.Transaction, error)

	// ListTransactions retrieves a page of transactions in an organization.
	ListTransactions(ctx context.Context, organizationID, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// TransactionWriterSvc defines the lifecycle operations of a transaction
type TransactionWriterSvc interface {
	// CreateDraft validates the proposed entries and stores them as a draft.
	CreateDraft(ctx context.Context, organizationID string, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error)

	// Submit moves a draft to pending.
	Submit(ctx context.Context, organizationID, transactionID, userID string) (*domain.Transaction, error)

	// Approve moves a pending transaction to approved after checking the approval rules.
	Approve(ctx context.Context, organizationID, transactionID, userID, notes string) (*domain.Transaction, error)

	// Reject sends a pending transaction back to draft.
	Reject(ctx context.Context, organizationID, transactionID, userID, reason string) (*domain.Transaction, error)

	// Post writes the entries to the ledger with account versions and balances.
	Post(ctx context.Context, organizationID, transactionID, userID string) (*domain.Transaction, error)

	// Void posts a reversing transaction and marks the original as voided.
	// It returns the voided original and the reversal.
	Void(ctx context.Context, organizationID, transactionID, userID, reason string) (*domain.Transaction, *domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
