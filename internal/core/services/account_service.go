package services

import (
	"context"
	"errors"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/shopspring/decimal"
)

type accountService struct {
	BaseService
	accountRepo portsrepo.AccountReader
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountReader, orgs portsrepo.OrganizationReader) portssvc.AccountSvcFacade {
	return &accountService{
		BaseService: BaseService{Organizations: orgs},
		accountRepo: accountRepo,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) GetAccount(ctx context.Context, organizationID, accountID, userID string) (*domain.Account, error) {
	if _, _, err := s.AuthorizeMember(ctx, organizationID, userID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.accountRepo.FindAccountByID(ctx, organizationID, accountID)
}

// GetAccountBalance reads the running balance of the newest posted entry.
func (s *accountService) GetAccountBalance(ctx context.Context, organizationID, accountID, userID string) (*dto.AccountBalanceResponse, error) {
	acc, err := s.GetAccount(ctx, organizationID, accountID, userID)
	if err != nil {
		return nil, err
	}

	res := &dto.AccountBalanceResponse{AccountID: acc.AccountID, CurrencyCode: acc.CurrencyCode, Balance: decimal.Zero}
	head, err := s.accountRepo.FindLatestBalance(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return res, nil
		}
		s.LogError(ctx, err, "Failed to read account balance")
		return nil, err
	}
	res.Version = head.Version
	res.Balance = head.CurrentBalance
	return res, nil
}
