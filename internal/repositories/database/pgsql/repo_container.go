package pgsql

import (
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	accountRepo := newPgxAccountRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool, accountRepo)

	return portsrepo.RepositoryProvider{
		AccountRepo:      accountRepo,
		DimensionRepo:    newPgxDimensionRepository(dbPool),
		ExchangeRateRepo: newPgxExchangeRateRepository(dbPool),
		OrganizationRepo: newPgxOrganizationRepository(dbPool),
		FiscalPeriodRepo: newPgxFiscalPeriodRepository(dbPool),
		ApprovalRuleRepo: newPgxApprovalRuleRepository(dbPool),
		TransactionRepo:  transactionRepo,
	}
}
