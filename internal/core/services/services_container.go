package services

import (
	"github.com/SscSPs/ledger_core/internal/core/ledger"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	retry := DefaultRetryPolicy
	if cfg != nil {
		retry = RetryPolicy{Attempts: cfg.PostRetryAttempts, Backoff: cfg.PostRetryBackoff}
	}

	return &portssvc.ServiceContainer{
		Account:      NewAccountService(repos.AccountRepo, repos.OrganizationRepo),
		ExchangeRate: NewExchangeRateService(repos.ExchangeRateRepo),
		FiscalPeriod: NewFiscalPeriodService(repos.FiscalPeriodRepo, repos.OrganizationRepo),
		ApprovalRule: NewApprovalRuleService(repos.ApprovalRuleRepo, repos.OrganizationRepo),
		Transaction: NewTransactionService(
			repos.TransactionRepo,
			repos.OrganizationRepo,
			repos.AccountRepo,
			repos.DimensionRepo,
			repos.FiscalPeriodRepo,
			repos.ApprovalRuleRepo,
			ledger.NewRateResolver(repos.ExchangeRateRepo),
			WithRetryPolicy(retry),
		),
	}
}
