package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_core/internal/models"
	"github.com/SscSPs/ledger_core/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const accountColumns = `
	account_id, organization_id, name, account_type, subtype, currency_code,
	is_active, allows_direct_posting, created_at, created_by, last_updated_at, last_updated_by`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (domain.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.OrganizationID,
		&m.Name,
		&m.AccountType,
		&m.Subtype,
		&m.CurrencyCode,
		&m.IsActive,
		&m.AllowsDirectPosting,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return domain.Account{}, err
	}
	return mapping.ToDomainAccount(m)
}

func collectAccounts(rows pgx.Rows) (map[string]domain.Account, error) {
	defer rows.Close()
	accountsMap := make(map[string]domain.Account)
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accountsMap[acc.AccountID] = acc
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accountsMap, nil
}

// FindAccountByID retrieves an account by its ID within an organization.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, organizationID, accountID string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE organization_id = $1 AND account_id = $2;`

	acc, err := scanAccount(r.Pool.QueryRow(ctx, query, organizationID, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}
	return &acc, nil
}

// FindAccountsByIDs retrieves multiple accounts by their IDs. Missing IDs are
// simply absent from the map.
func (r *PgxAccountRepository) FindAccountsByIDs(ctx context.Context, organizationID string, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}

	query := `SELECT ` + accountColumns + ` FROM accounts WHERE organization_id = $1 AND account_id = ANY($2);`
	rows, err := r.Pool.Query(ctx, query, organizationID, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by IDs: %w", err)
	}
	return collectAccounts(rows)
}

// FindAccountsByIDsForUpdate locks the account rows in ID order for the rest of tx.
func (r *PgxAccountRepository) FindAccountsByIDsForUpdate(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.Account, error) {
	if len(accountIDs) == 0 {
		return map[string]domain.Account{}, nil
	}

	query := `SELECT ` + accountColumns + `
		FROM accounts
		WHERE account_id = ANY($1)
		ORDER BY account_id
		FOR UPDATE;`
	rows, err := tx.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts by IDs for update: %w", err)
	}
	return collectAccounts(rows)
}

// FindLatestBalance returns the running balance of the newest posted entry for an account.
func (r *PgxAccountRepository) FindLatestBalance(ctx context.Context, accountID string) (*domain.RunningBalance, error) {
	query := `
		SELECT account_version, previous_balance, current_balance
		FROM ledger_entries
		WHERE account_id = $1 AND account_version IS NOT NULL
		ORDER BY account_version DESC
		LIMIT 1;`

	var rb domain.RunningBalance
	err := r.Pool.QueryRow(ctx, query, accountID).Scan(&rb.Version, &rb.PreviousBalance, &rb.CurrentBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find latest balance for account %s: %w", accountID, err)
	}
	return &rb, nil
}

// FindBalanceHeadsInTx returns the newest running balance of each account inside tx.
func (r *PgxAccountRepository) FindBalanceHeadsInTx(ctx context.Context, tx pgx.Tx, accountIDs []string) (map[string]domain.RunningBalance, error) {
	heads := make(map[string]domain.RunningBalance, len(accountIDs))
	if len(accountIDs) == 0 {
		return heads, nil
	}

	query := `
		SELECT DISTINCT ON (account_id) account_id, account_version, previous_balance, current_balance
		FROM ledger_entries
		WHERE account_id = ANY($1) AND account_version IS NOT NULL
		ORDER BY account_id, account_version DESC;`
	rows, err := tx.Query(ctx, query, accountIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query balance heads: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			accountID        string
			version          int64
			previous, current decimal.Decimal
		)
		if err := rows.Scan(&accountID, &version, &previous, &current); err != nil {
			return nil, fmt.Errorf("failed to scan balance head: %w", err)
		}
		heads[accountID] = domain.RunningBalance{Version: version, PreviousBalance: previous, CurrentBalance: current}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating balance heads: %w", err)
	}
	return heads, nil
}
