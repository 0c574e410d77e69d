package repositories

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// TransactionReader defines read operations for ledger transactions
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction and its entries.
	FindTransactionByID(ctx context.Context, organizationID, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves a page of transactions, newest first, without entries.
	// It returns the transactions and a token for the next page.
	ListTransactions(ctx context.Context, organizationID string, status *domain.TransactionStatus, limit int, nextToken *string) ([]domain.Transaction, *string, error)
}

// TransactionWriter defines write operations for ledger transactions
type TransactionWriter interface {
	// SaveDraft persists a new draft transaction and its resolved entries without balances.
	SaveDraft(ctx context.Context, txn domain.Transaction) error

	// UpdateStatus persists a lifecycle change that does not touch balances.
	// It returns domain.ErrConcurrentModification when the stored status is no longer expected.
	UpdateStatus(ctx context.Context, txn domain.Transaction, expected domain.TransactionStatus) error

	// PostTransaction assigns account versions and running balances to the
	// entries of txn and stores its posted status, all in one database transaction.
	// It returns domain.ErrConcurrentModification when the fiscal period of txn no
	// longer has periodStatus.
	PostTransaction(ctx context.Context, txn domain.Transaction, expected domain.TransactionStatus, periodStatus domain.PeriodStatus) (*domain.Transaction, error)

	// VoidTransaction inserts and posts the reversal, then marks the original as
	// voided and links the two, all in one database transaction. The reversal's
	// fiscal period must still have periodStatus.
	VoidTransaction(ctx context.Context, original domain.Transaction, reversal domain.Transaction, periodStatus domain.PeriodStatus) (*domain.Transaction, error)
}

// TransactionRepositoryFacade combines all transaction repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}

// TransactionRepositoryWithTx extends TransactionRepositoryFacade with transaction capabilities
type TransactionRepositoryWithTx interface {
	TransactionRepositoryFacade
	TransactionManager
}
