package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock TransactionService ---
type MockTransactionService struct {
	mock.Mock
}

func (m *MockTransactionService) txnResult(args mock.Arguments) (*domain.Transaction, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) GetTransaction(ctx context.Context, organizationID, transactionID, userID string) (*domain.Transaction, error) {
	return m.txnResult(m.Called(ctx, organizationID, transactionID, userID))
}

func (m *MockTransactionService) ListTransactions(ctx context.Context, organizationID, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	args := m.Called(ctx, organizationID, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListTransactionsResponse), args.Error(1)
}

func (m *MockTransactionService) CreateDraft(ctx context.Context, organizationID string, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	return m.txnResult(m.Called(ctx, organizationID, req, userID))
}

func (m *MockTransactionService) Submit(ctx context.Context, organizationID, transactionID, userID string) (*domain.Transaction, error) {
	return m.txnResult(m.Called(ctx, organizationID, transactionID, userID))
}

func (m *MockTransactionService) Approve(ctx context.Context, organizationID, transactionID, userID, notes string) (*domain.Transaction, error) {
	return m.txnResult(m.Called(ctx, organizationID, transactionID, userID, notes))
}

func (m *MockTransactionService) Reject(ctx context.Context, organizationID, transactionID, userID, reason string) (*domain.Transaction, error) {
	return m.txnResult(m.Called(ctx, organizationID, transactionID, userID, reason))
}

func (m *MockTransactionService) Post(ctx context.Context, organizationID, transactionID, userID string) (*domain.Transaction, error) {
	return m.txnResult(m.Called(ctx, organizationID, transactionID, userID))
}

func (m *MockTransactionService) Void(ctx context.Context, organizationID, transactionID, userID, reason string) (*domain.Transaction, *domain.Transaction, error) {
	args := m.Called(ctx, organizationID, transactionID, userID, reason)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Transaction), args.Get(1).(*domain.Transaction), args.Error(2)
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccount(ctx context.Context, organizationID, accountID, userID string) (*domain.Account, error) {
	args := m.Called(ctx, organizationID, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountBalance(ctx context.Context, organizationID, accountID, userID string) (*dto.AccountBalanceResponse, error) {
	args := m.Called(ctx, organizationID, accountID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AccountBalanceResponse), args.Error(1)
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock ExchangeRateService ---
type MockExchangeRateService struct {
	mock.Mock
}

func (m *MockExchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, userID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) ResolveRate(ctx context.Context, from, to string, date time.Time) (*domain.ResolvedRate, error) {
	args := m.Called(ctx, from, to, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ResolvedRate), args.Error(1)
}

func (m *MockExchangeRateService) ListExchangeRates(ctx context.Context, from, to string) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)

// --- Mock FiscalPeriodService ---
type MockFiscalPeriodService struct {
	mock.Mock
}

func (m *MockFiscalPeriodService) CreatePeriod(ctx context.Context, organizationID string, req dto.CreateFiscalPeriodRequest, userID string) (*domain.FiscalPeriod, error) {
	args := m.Called(ctx, organizationID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalPeriod), args.Error(1)
}

func (m *MockFiscalPeriodService) ChangePeriodStatus(ctx context.Context, organizationID, periodID string, status domain.PeriodStatus, userID string) (*domain.FiscalPeriod, error) {
	args := m.Called(ctx, organizationID, periodID, status, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FiscalPeriod), args.Error(1)
}

func (m *MockFiscalPeriodService) ListPeriods(ctx context.Context, organizationID string, fiscalYear int, userID string) ([]domain.FiscalPeriod, error) {
	args := m.Called(ctx, organizationID, fiscalYear, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FiscalPeriod), args.Error(1)
}

var _ portssvc.FiscalPeriodSvcFacade = (*MockFiscalPeriodService)(nil)

// --- Mock ApprovalRuleService ---
type MockApprovalRuleService struct {
	mock.Mock
}

func (m *MockApprovalRuleService) CreateApprovalRule(ctx context.Context, organizationID string, req dto.CreateApprovalRuleRequest, userID string) (*domain.ApprovalRule, error) {
	args := m.Called(ctx, organizationID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ApprovalRule), args.Error(1)
}

func (m *MockApprovalRuleService) ListApprovalRules(ctx context.Context, organizationID, userID string) ([]domain.ApprovalRule, error) {
	args := m.Called(ctx, organizationID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ApprovalRule), args.Error(1)
}

var _ portssvc.ApprovalRuleSvcFacade = (*MockApprovalRuleService)(nil)
