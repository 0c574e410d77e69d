package pgsql

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_core/internal/models"
	"github.com/SscSPs/ledger_core/internal/utils/accounting"
	"github.com/SscSPs/ledger_core/internal/utils/mapping"
	"github.com/SscSPs/ledger_core/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const transactionColumns = `
	transaction_id, organization_id, transaction_type, transaction_date, description, status,
	fiscal_period_id, total_debit, total_credit,
	submitted_by, submitted_at, approved_by, approved_at, approval_notes,
	rejected_by, rejected_at, rejection_reason, posted_by, posted_at,
	voided_by, voided_at, void_reason,
	reversed_by_transaction_id, reverses_transaction_id,
	created_at, created_by, last_updated_at, last_updated_by`

const entryColumns = `
	entry_id, transaction_id, account_id, line_number, source_currency, source_amount,
	exchange_rate, rate_method, functional_currency, functional_amount, debit, credit,
	memo, dimension_ids, account_version, previous_balance, current_balance, created_at`

const insertTransactionQuery = `
	INSERT INTO transactions (` + transactionColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
	        $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28);`

const insertEntryQuery = `
	INSERT INTO ledger_entries (` + entryColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);`

// updateHeaderQuery rewrites the lifecycle columns of a header whose status is still $24.
const updateHeaderQuery = `
	UPDATE transactions
	SET status = $3,
	    submitted_by = $4, submitted_at = $5,
	    approved_by = $6, approved_at = $7, approval_notes = $8,
	    rejected_by = $9, rejected_at = $10, rejection_reason = $11,
	    posted_by = $12, posted_at = $13,
	    voided_by = $14, voided_at = $15, void_reason = $16,
	    reversed_by_transaction_id = $17, reverses_transaction_id = $18,
	    fiscal_period_id = $19, total_debit = $20, total_credit = $21,
	    last_updated_at = $22, last_updated_by = $23
	WHERE organization_id = $1 AND transaction_id = $2 AND status = $24;`

// lockPeriodQuery holds the period row against status changes until the posting commits.
const lockPeriodQuery = `
	SELECT status FROM fiscal_periods
	WHERE organization_id = $1 AND period_id = $2
	FOR SHARE;`

type PgxTransactionRepository struct {
	BaseRepository
	accountRepo portsrepo.AccountRepositoryFacade
}

// newPgxTransactionRepository creates a new repository for ledger transactions and entries.
func newPgxTransactionRepository(pool *pgxpool.Pool, accountRepo portsrepo.AccountRepositoryFacade) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

func transactionArgs(m models.Transaction) []any {
	return []any{
		m.TransactionID, m.OrganizationID, m.TransactionType, m.TransactionDate, m.Description, m.Status,
		m.FiscalPeriodID, m.TotalDebit, m.TotalCredit,
		m.SubmittedBy, m.SubmittedAt, m.ApprovedBy, m.ApprovedAt, m.ApprovalNotes,
		m.RejectedBy, m.RejectedAt, m.RejectionReason, m.PostedBy, m.PostedAt,
		m.VoidedBy, m.VoidedAt, m.VoidReason,
		m.ReversedByTransactionID, m.ReversesTransactionID,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	}
}

func entryArgs(m models.LedgerEntry) []any {
	return []any{
		m.EntryID, m.TransactionID, m.AccountID, m.LineNumber, m.SourceCurrency, m.SourceAmount,
		m.ExchangeRate, m.RateMethod, m.FunctionalCurrency, m.FunctionalAmount, m.Debit, m.Credit,
		m.Memo, m.DimensionIDs, m.AccountVersion, m.PreviousBalance, m.CurrentBalance, m.CreatedAt,
	}
}

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID, &m.OrganizationID, &m.TransactionType, &m.TransactionDate, &m.Description, &m.Status,
		&m.FiscalPeriodID, &m.TotalDebit, &m.TotalCredit,
		&m.SubmittedBy, &m.SubmittedAt, &m.ApprovedBy, &m.ApprovedAt, &m.ApprovalNotes,
		&m.RejectedBy, &m.RejectedAt, &m.RejectionReason, &m.PostedBy, &m.PostedAt,
		&m.VoidedBy, &m.VoidedAt, &m.VoidReason,
		&m.ReversedByTransactionID, &m.ReversesTransactionID,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// insertTransaction queues the header and its entries on one batch.
func insertTransaction(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	batch := &pgx.Batch{}
	batch.Queue(insertTransactionQuery, transactionArgs(mapping.ToModelTransaction(txn))...)
	for _, entry := range txn.Entries {
		batch.Queue(insertEntryQuery, entryArgs(mapping.ToModelLedgerEntry(entry))...)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %v", domain.ErrConcurrentModification, err)
		}
		return apperrors.NewAppError(500, "failed to insert transaction "+txn.TransactionID, err)
	}
	return nil
}

// updateHeader applies a status CAS to the header of txn.
func updateHeader(ctx context.Context, tx pgx.Tx, txn domain.Transaction, expected domain.TransactionStatus) error {
	m := mapping.ToModelTransaction(txn)
	tag, err := tx.Exec(ctx, updateHeaderQuery,
		m.OrganizationID, m.TransactionID, m.Status,
		m.SubmittedBy, m.SubmittedAt,
		m.ApprovedBy, m.ApprovedAt, m.ApprovalNotes,
		m.RejectedBy, m.RejectedAt, m.RejectionReason,
		m.PostedBy, m.PostedAt,
		m.VoidedBy, m.VoidedAt, m.VoidReason,
		m.ReversedByTransactionID, m.ReversesTransactionID,
		m.FiscalPeriodID, m.TotalDebit, m.TotalCredit,
		m.LastUpdatedAt, m.LastUpdatedBy, string(expected),
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update transaction "+txn.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConcurrentModification
	}
	return nil
}

// assignBalances locks the accounts touched by entries and stamps each entry
// with the next version and running balance of its account.
func (r *PgxTransactionRepository) assignBalances(ctx context.Context, tx pgx.Tx, entries []domain.LedgerEntry) error {
	seen := make(map[string]struct{}, len(entries))
	accountIDs := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.AccountID]; ok {
			continue
		}
		seen[e.AccountID] = struct{}{}
		accountIDs = append(accountIDs, e.AccountID)
	}
	sort.Strings(accountIDs)

	locked, err := r.accountRepo.FindAccountsByIDsForUpdate(ctx, tx, accountIDs)
	if err != nil {
		return apperrors.NewAppError(500, "failed to lock accounts for update", err)
	}

	categories := make(map[string]domain.BalanceCategory, len(locked))
	for _, id := range accountIDs {
		acc, ok := locked[id]
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id)
		}
		category, err := accounting.CategoryOf(acc.AccountType)
		if err != nil {
			return err
		}
		categories[id] = category
	}

	heads, err := r.accountRepo.FindBalanceHeadsInTx(ctx, tx, accountIDs)
	if err != nil {
		return err
	}
	return accounting.ApplyRunningBalances(entries, heads, categories)
}

// SaveDraft inserts a draft header and its entries. Balance columns stay NULL.
func (r *PgxTransactionRepository) SaveDraft(ctx context.Context, txn domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	for i := range txn.Entries {
		txn.Entries[i].Balance = nil
	}
	if err := insertTransaction(ctx, tx, txn); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction and its entries in line order.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, organizationID, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + `
		FROM transactions
		WHERE organization_id = $1 AND transaction_id = $2;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, organizationID, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("transaction " + transactionID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction "+transactionID, err)
	}
	txn := mapping.ToDomainTransaction(m)

	rows, err := r.Pool.Query(ctx, `SELECT `+entryColumns+`
		FROM ledger_entries
		WHERE transaction_id = $1
		ORDER BY line_number;`, transactionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query entries of transaction "+transactionID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var e models.LedgerEntry
		if err := rows.Scan(
			&e.EntryID, &e.TransactionID, &e.AccountID, &e.LineNumber, &e.SourceCurrency, &e.SourceAmount,
			&e.ExchangeRate, &e.RateMethod, &e.FunctionalCurrency, &e.FunctionalAmount, &e.Debit, &e.Credit,
			&e.Memo, &e.DimensionIDs, &e.AccountVersion, &e.PreviousBalance, &e.CurrentBalance, &e.CreatedAt,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger entry", err)
		}
		txn.Entries = append(txn.Entries, mapping.ToDomainLedgerEntry(e))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger entries", err)
	}
	return &txn, nil
}

// ListTransactions retrieves a page of headers, newest first, using a keyset cursor.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, organizationID string, status *domain.TransactionStatus, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE organization_id = $1`
	args := []any{organizationID}

	if status != nil {
		args = append(args, string(*status))
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if nextToken != nil && *nextToken != "" {
		cursor, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("invalid pagination token")
		}
		args = append(args, cursor.Date, cursor.CreatedAt, cursor.ID)
		n := len(args)
		query += fmt.Sprintf(" AND (transaction_date, created_at, transaction_id) < ($%d, $%d, $%d)", n-2, n-1, n)
	}
	args = append(args, limit+1)
	query += fmt.Sprintf(" ORDER BY transaction_date DESC, created_at DESC, transaction_id DESC LIMIT $%d;", len(args))

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list transactions", err)
	}
	defer rows.Close()

	ms := make([]models.Transaction, 0, limit+1)
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan transaction", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating transactions", err)
	}

	var next *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		token := pagination.EncodeToken(pagination.Cursor{
			Date:      last.TransactionDate,
			CreatedAt: last.CreatedAt,
			ID:        last.TransactionID,
		})
		next = &token
	}
	return mapping.ToDomainTransactionSlice(ms), next, nil
}

// UpdateStatus stores a lifecycle change that leaves balances untouched.
func (r *PgxTransactionRepository) UpdateStatus(ctx context.Context, txn domain.Transaction, expected domain.TransactionStatus) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if err := updateHeader(ctx, tx, txn, expected); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// lockPeriod share-locks the fiscal period and confirms it still has the status
// the posting decision was made against.
func lockPeriod(ctx context.Context, tx pgx.Tx, organizationID, periodID string, observed domain.PeriodStatus) error {
	var status string
	if err := tx.QueryRow(ctx, lockPeriodQuery, organizationID, periodID).Scan(&status); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%w: period %s", domain.ErrNoFiscalPeriod, periodID)
		}
		return apperrors.NewAppError(500, "failed to lock fiscal period "+periodID, err)
	}
	if domain.PeriodStatus(status) != observed {
		return fmt.Errorf("%w: fiscal period %s is now %s", domain.ErrConcurrentModification, periodID, status)
	}
	return nil
}

// PostTransaction stamps running balances on the entries and marks the header posted.
func (r *PgxTransactionRepository) PostTransaction(ctx context.Context, txn domain.Transaction, expected domain.TransactionStatus, periodStatus domain.PeriodStatus) (*domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	if err := lockPeriod(ctx, tx, txn.OrganizationID, txn.FiscalPeriodID, periodStatus); err != nil {
		return nil, err
	}

	entries := make([]domain.LedgerEntry, len(txn.Entries))
	copy(entries, txn.Entries)
	if err := r.assignBalances(ctx, tx, entries); err != nil {
		return nil, err
	}

	batch := &pgx.Batch{}
	for _, e := range entries {
		m := mapping.ToModelLedgerEntry(e)
		batch.Queue(`
			UPDATE ledger_entries
			SET account_version = $2, previous_balance = $3, current_balance = $4
			WHERE entry_id = $1 AND account_version IS NULL;`,
			m.EntryID, m.AccountVersion, m.PreviousBalance, m.CurrentBalance,
		)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %v", domain.ErrConcurrentModification, err)
		}
		return nil, apperrors.NewAppError(500, "failed to write running balances of "+txn.TransactionID, err)
	}

	if err := updateHeader(ctx, tx, txn, expected); err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %v", domain.ErrConcurrentModification, err)
		}
		return nil, err
	}

	txn.Entries = entries
	return &txn, nil
}

// VoidTransaction inserts the posted reversal and marks the original voided.
func (r *PgxTransactionRepository) VoidTransaction(ctx context.Context, original domain.Transaction, reversal domain.Transaction, periodStatus domain.PeriodStatus) (*domain.Transaction, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Rollback(ctx, tx)

	if err := lockPeriod(ctx, tx, reversal.OrganizationID, reversal.FiscalPeriodID, periodStatus); err != nil {
		return nil, err
	}

	entries := make([]domain.LedgerEntry, len(reversal.Entries))
	copy(entries, reversal.Entries)
	if err := r.assignBalances(ctx, tx, entries); err != nil {
		return nil, err
	}
	reversal.Entries = entries

	if err := insertTransaction(ctx, tx, reversal); err != nil {
		return nil, err
	}
	if err := updateHeader(ctx, tx, original, domain.StatusPosted); err != nil {
		return nil, err
	}
	if err := r.Commit(ctx, tx); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %v", domain.ErrConcurrentModification, err)
		}
		return nil, err
	}
	return &reversal, nil
}
