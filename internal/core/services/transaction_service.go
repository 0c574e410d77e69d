package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/core/ledger"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/SscSPs/ledger_core/internal/utils/accounting"
)

// transactionService drives transactions through their lifecycle.
type transactionService struct {
	BaseService
	txnRepo   portsrepo.TransactionRepositoryFacade
	accounts  portsrepo.AccountReader
	dims      portsrepo.DimensionReader
	periods   portsrepo.FiscalPeriodReader
	rules     portsrepo.ApprovalRuleRepositoryFacade
	rates     ledger.RateLookup
	retry     RetryPolicy
	now       func() time.Time
}

// TransactionServiceOption configures the transaction service.
type TransactionServiceOption func(*transactionService)

// WithRetryPolicy sets how conflicting posts and voids are retried.
func WithRetryPolicy(policy RetryPolicy) TransactionServiceOption {
	return func(s *transactionService) {
		s.retry = policy
	}
}

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) TransactionServiceOption {
	return func(s *transactionService) {
		s.now = now
	}
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	orgs portsrepo.OrganizationReader,
	accounts portsrepo.AccountReader,
	dims portsrepo.DimensionReader,
	periods portsrepo.FiscalPeriodReader,
	rules portsrepo.ApprovalRuleRepositoryFacade,
	rates ledger.RateLookup,
	options ...TransactionServiceOption,
) portssvc.TransactionSvcFacade {
	svc := &transactionService{
		BaseService: BaseService{Organizations: orgs},
		txnRepo:     txnRepo,
		accounts:    accounts,
		dims:        dims,
		periods:     periods,
		rules:       rules,
		rates:       rates,
		retry:       DefaultRetryPolicy,
		now:         time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *transactionService) periodFor(ctx context.Context, organizationID string, date time.Time) (*domain.FiscalPeriod, error) {
	period, err := s.periods.FindPeriodForDate(ctx, organizationID, date)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrNoFiscalPeriod, date.Format(time.DateOnly))
		}
		return nil, fmt.Errorf("failed to find fiscal period: %w", err)
	}
	return period, nil
}

// CreateDraft validates the proposed entries and stores them as a draft.
func (s *transactionService) CreateDraft(ctx context.Context, organizationID string, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	org, _, err := s.AuthorizeMember(ctx, organizationID, userID, domain.RoleSubmitter)
	if err != nil {
		return nil, err
	}

	date := dateOnly(req.TransactionDate)
	period, err := s.periodFor(ctx, organizationID, date)
	if err != nil {
		return nil, err
	}

	input := ledger.TransactionInput{TransactionDate: date, Entries: make([]ledger.EntryInput, len(req.Entries))}
	for i, e := range req.Entries {
		input.Entries[i] = ledger.EntryInput{
			AccountID:    e.AccountID,
			Direction:    e.Direction,
			Amount:       e.Amount,
			Currency:     e.CurrencyCode,
			Memo:         e.Memo,
			DimensionIDs: e.DimensionIDs,
		}
	}

	resolution, err := ledger.ValidateAndResolve(ctx, input, org.FunctionalCurrencyCode, s.rates,
		orgAccounts{repo: s.accounts, organizationID: organizationID},
		orgDimensions{repo: s.dims, organizationID: organizationID},
	)
	if err != nil {
		s.LogDebug(ctx, "Transaction rejected by ledger validation", slog.String("error", err.Error()))
		return nil, err
	}

	now := s.now().UTC()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		OrganizationID:  organizationID,
		TransactionType: req.TransactionType,
		TransactionDate: date,
		Description:     req.Description,
		Status:          domain.StatusDraft,
		FiscalPeriodID:  period.PeriodID,
		TotalDebit:      resolution.TotalDebit,
		TotalCredit:     resolution.TotalCredit,
		Entries:         resolution.Entries,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	for i := range txn.Entries {
		txn.Entries[i].EntryID = uuid.NewString()
		txn.Entries[i].TransactionID = txn.TransactionID
		txn.Entries[i].CreatedAt = now
	}

	if err := s.txnRepo.SaveDraft(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save draft transaction", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}

	s.LogInfo(ctx, "Draft transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("total", txn.TotalDebit.String()),
		slog.Int("entries", len(txn.Entries)),
	)
	return &txn, nil
}

// GetTransaction retrieves a transaction with its entries.
func (s *transactionService) GetTransaction(ctx context.Context, organizationID, transactionID, userID string) (*domain.Transaction, error) {
	if _, _, err := s.AuthorizeMember(ctx, organizationID, userID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.txnRepo.FindTransactionByID(ctx, organizationID, transactionID)
}

// ListTransactions retrieves a page of transactions in an organization.
func (s *transactionService) ListTransactions(ctx context.Context, organizationID, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	if _, _, err := s.AuthorizeMember(ctx, organizationID, userID, domain.RoleViewer); err != nil {
		return nil, err
	}

	var status *domain.TransactionStatus
	if params.Status != "" {
		st := domain.TransactionStatus(params.Status)
		status = &st
	}

	txns, nextToken, err := s.txnRepo.ListTransactions(ctx, organizationID, status, params.Limit, params.NextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions")
		return nil, fmt.Errorf("failed to retrieve transactions: %w", err)
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponses(txns),
		NextToken:    nextToken,
	}, nil
}

// applyStatusChange loads the transaction, builds a transition with build and
// stores it with a compare-and-swap on the previous status.
func (s *transactionService) applyStatusChange(
	ctx context.Context,
	organizationID, transactionID string,
	build func(txn *domain.Transaction) (domain.Transition, error),
) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, organizationID, transactionID)
	if err != nil {
		return nil, err
	}

	transition, err := build(txn)
	if err != nil {
		return nil, err
	}
	txn.Apply(transition)

	if err := s.txnRepo.UpdateStatus(ctx, *txn, transition.From); err != nil {
		s.LogError(ctx, err, "Failed to update transaction status",
			slog.String("transaction_id", transactionID),
			slog.String("to", string(transition.To)),
		)
		return nil, err
	}

	s.LogInfo(ctx, "Transaction status changed",
		slog.String("transaction_id", transactionID),
		slog.String("from", string(transition.From)),
		slog.String("to", string(transition.To)),
	)
	return txn, nil
}

// Submit moves a draft to pending.
func (s *transactionService) Submit(ctx context.Context, organizationID, transactionID, userID string) (*domain.Transaction, error) {
	if _, _, err := s.AuthorizeMember(ctx, organizationID, userID, domain.RoleSubmitter); err != nil {
		return nil, err
	}
	return s.applyStatusChange(ctx, organizationID, transactionID, func(txn *domain.Transaction) (domain.Transition, error) {
		return ledger.Submit(txn.Status, userID, s.now().UTC())
	})
}

// Approve moves a pending transaction to approved. The required role comes from
// the best matching approval rule, or the organization default when none match.
func (s *transactionService) Approve(ctx context.Context, organizationID, transactionID, userID, notes string) (*domain.Transaction, error) {
	org, actor, err := s.AuthorizeMember(ctx, organizationID, userID, domain.RoleViewer)
	if err != nil {
		return nil, err
	}

	return s.applyStatusChange(ctx, organizationID, transactionID, func(txn *domain.Transaction) (domain.Transition, error) {
		if err := ledger.ValidateTransition(txn.Status, domain.StatusApproved); err != nil {
			return domain.Transition{}, err
		}

		rules, err := s.rules.ListApprovalRules(ctx, organizationID)
		if err != nil {
			return domain.Transition{}, fmt.Errorf("failed to load approval rules: %w", err)
		}

		amount := txn.TotalDebit
		required, matched := ledger.GetRequiredApproval(rules, txn.TransactionType, amount)
		if !matched {
			required = org.DefaultApprovalRole
			if !required.Valid() {
				required = domain.RoleApprover
			}
		}

		if err := ledger.CanApprove(actor.Role, actor.ApprovalLimit, required, amount); err != nil {
			s.LogInfo(ctx, "Approval refused",
				slog.String("transaction_id", txn.TransactionID),
				slog.String("required_role", required.String()),
				slog.String("error", err.Error()),
			)
			return domain.Transition{}, err
		}
		return ledger.Approve(txn.Status, userID, notes, s.now().UTC())
	})
}

// Reject sends a pending transaction back to draft.
func (s *transactionService) Reject(ctx context.Context, organizationID, transactionID, userID, reason string) (*domain.Transaction, error) {
	if _, _, err := s.AuthorizeMember(ctx, organizationID, userID, domain.RoleApprover); err != nil {
		return nil, err
	}
	return s.applyStatusChange(ctx, organizationID, transactionID, func(txn *domain.Transaction) (domain.Transition, error) {
		return ledger.Reject(txn.Status, userID, reason, s.now().UTC())
	})
}

// Post writes an approved transaction to the ledger. The fiscal period covering
// the transaction date must accept postings from the actor.
func (s *transactionService) Post(ctx context.Context, organizationID, transactionID, userID string) (*domain.Transaction, error) {
	_, actor, err := s.AuthorizeMember(ctx, organizationID, userID, domain.RoleApprover)
	if err != nil {
		return nil, err
	}

	var posted *domain.Transaction
	err = retryOnConflict(ctx, s.retry, "post", func(attempt int) error {
		txn, err := s.txnRepo.FindTransactionByID(ctx, organizationID, transactionID)
		if err != nil {
			return err
		}

		transition, err := ledger.Post(txn.Status, userID, s.now().UTC())
		if err != nil {
			return err
		}

		period, err := s.periodFor(ctx, organizationID, txn.TransactionDate)
		if err != nil {
			return err
		}
		if err := ledger.CanPost(period.Status, actor.Role); err != nil {
			return err
		}

		txn.FiscalPeriodID = period.PeriodID
		txn.Apply(transition)

		posted, err = s.txnRepo.PostTransaction(ctx, *txn, transition.From, period.Status)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrConcurrentModification) {
			s.LogError(ctx, err, "Posting failed after retries", slog.String("transaction_id", transactionID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Transaction posted", slog.String("transaction_id", transactionID))
	return posted, nil
}

// Void reverses a posted transaction. The reversal is dated on the void date
// and posted into the period covering that date.
func (s *transactionService) Void(ctx context.Context, organizationID, transactionID, userID, reason string) (*domain.Transaction, *domain.Transaction, error) {
	_, actor, err := s.AuthorizeMember(ctx, organizationID, userID, domain.RoleAccountant)
	if err != nil {
		return nil, nil, err
	}

	var original, reversal *domain.Transaction
	err = retryOnConflict(ctx, s.retry, "void", func(attempt int) error {
		txn, err := s.txnRepo.FindTransactionByID(ctx, organizationID, transactionID)
		if err != nil {
			return err
		}

		now := s.now().UTC()
		transition, err := ledger.Void(txn.Status, userID, reason, now)
		if err != nil {
			return err
		}

		voidDate := dateOnly(now)
		period, err := s.periodFor(ctx, organizationID, voidDate)
		if err != nil {
			return err
		}
		if err := ledger.CanPost(period.Status, actor.Role); err != nil {
			return err
		}

		rev := s.buildReversal(txn, transition, period, voidDate)
		if !accounting.ValidateReversal(rev.Entries) {
			return apperrors.NewInternalServerError("posted transaction is not balanced", fmt.Errorf("transaction %s", txn.TransactionID))
		}

		txn.Apply(transition)
		txn.ReversedByTransactionID = &rev.TransactionID

		saved, err := s.txnRepo.VoidTransaction(ctx, *txn, rev, period.Status)
		if err != nil {
			return err
		}
		original, reversal = txn, saved
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrConcurrentModification) {
			s.LogError(ctx, err, "Void failed after retries", slog.String("transaction_id", transactionID))
		}
		return nil, nil, err
	}

	s.LogInfo(ctx, "Transaction voided",
		slog.String("transaction_id", transactionID),
		slog.String("reversal_id", reversal.TransactionID),
	)
	return original, reversal, nil
}

func (s *transactionService) buildReversal(original *domain.Transaction, void domain.Transition, period *domain.FiscalPeriod, date time.Time) domain.Transaction {
	id := uuid.NewString()
	actor, at := void.ActorID, void.At
	originalID := original.TransactionID

	entries := accounting.CreateReversingEntries(original.Entries, void.Reason)
	for i := range entries {
		entries[i].EntryID = uuid.NewString()
		entries[i].TransactionID = id
		entries[i].CreatedAt = at
	}
	debit, credit := accounting.Totals(entries)

	return domain.Transaction{
		TransactionID:         id,
		OrganizationID:        original.OrganizationID,
		TransactionType:       original.TransactionType,
		TransactionDate:       date,
		Description:           fmt.Sprintf("Reversal of %s: %s", originalID, original.Description),
		Status:                domain.StatusPosted,
		FiscalPeriodID:        period.PeriodID,
		TotalDebit:            debit,
		TotalCredit:           credit,
		PostedBy:              &actor,
		PostedAt:              &at,
		ReversesTransactionID: &originalID,
		Entries:               entries,
		AuditFields: domain.AuditFields{
			CreatedAt:     at,
			CreatedBy:     actor,
			LastUpdatedAt: at,
			LastUpdatedBy: actor,
		},
	}
}
