package services

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/dto"
)

// AccountSvcFacade exposes read access to the chart of accounts.
type AccountSvcFacade interface {
	// GetAccount retrieves an account visible to the user.
	GetAccount(ctx context.Context, organizationID, accountID, userID string) (*domain.Account, error)

	// GetAccountBalance returns the latest running balance of an account.
	GetAccountBalance(ctx context.Context, organizationID, accountID, userID string) (*dto.AccountBalanceResponse, error)
}
