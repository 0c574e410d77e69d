package repositories

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account within an organization.
	FindAccountByID(ctx context.Context, organizationID, accountID string) (*domain.Account, error)

	// FindAccountsByIDs retrieves multiple accounts by their IDs.
	FindAccountsByIDs(ctx context.Context, organizationID string, accountIDs []string) (map[string]domain.Account, error)

	// FindLatestBalance returns the running balance of the newest posted entry for an account.
	// It returns apperrors.ErrNotFound when nothing has been posted yet.
	FindLatestBalance(ctx context.Context, accountID string) (*domain.RunningBalance, error)
}

// AccountTransactionSupport defines operations that support account transactions
type AccountTransactionSupport interface {
	// FindAccountsByIDsForUpdate selects accounts and locks them for update within a transaction.
	FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error)

	// FindBalanceHeadsInTx returns the latest running balance per account inside tx.
	// Accounts without posted entries are absent from the map.
	FindBalanceHeadsInTx(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.RunningBalance, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountTransactionSupport
}
