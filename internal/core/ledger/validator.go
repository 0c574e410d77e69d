package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// FunctionalAmountPrecision is the number of decimal places kept for functional amounts.
const FunctionalAmountPrecision = 4

// EntryInput is one proposed line of a transaction.
type EntryInput struct {
	AccountID    string
	Direction    domain.Direction
	Amount       decimal.Decimal
	Currency     string
	Memo         string
	DimensionIDs []string
}

// TransactionInput is a proposed transaction before validation.
type TransactionInput struct {
	TransactionDate time.Time
	Entries         []EntryInput
}

// Resolution is the outcome of a successful validation: entries converted to the
// functional currency, their totals, and the balance category of every account
// touched so balances can be computed at post time.
type Resolution struct {
	Entries     []domain.LedgerEntry
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Categories  map[string]domain.BalanceCategory
}

// ValidateAndResolve checks a proposed transaction and converts every entry into
// the functional currency. Entry-level failures come back as *domain.EntryError.
func ValidateAndResolve(
	ctx context.Context,
	input TransactionInput,
	functionalCurrency string,
	rates RateLookup,
	accounts AccountSource,
	dims DimensionValidator,
) (*Resolution, error) {
	if len(input.Entries) < 2 {
		return nil, domain.ErrInsufficientEntries
	}

	res := &Resolution{
		Entries:     make([]domain.LedgerEntry, 0, len(input.Entries)),
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
		Categories:  make(map[string]domain.BalanceCategory),
	}

	for i, in := range input.Entries {
		entry, category, err := resolveEntry(ctx, i, in, input.TransactionDate, functionalCurrency, rates, accounts, dims)
		if err != nil {
			return nil, err
		}
		res.Categories[entry.AccountID] = category
		res.TotalDebit = res.TotalDebit.Add(entry.Debit)
		res.TotalCredit = res.TotalCredit.Add(entry.Credit)
		res.Entries = append(res.Entries, entry)
	}

	if !res.TotalDebit.Equal(res.TotalCredit) {
		return nil, &domain.UnbalancedTransactionError{Debit: res.TotalDebit, Credit: res.TotalCredit}
	}
	return res, nil
}

func resolveEntry(
	ctx context.Context,
	index int,
	in EntryInput,
	date time.Time,
	functionalCurrency string,
	rates RateLookup,
	accounts AccountSource,
	dims DimensionValidator,
) (domain.LedgerEntry, domain.BalanceCategory, error) {
	fail := func(err error) (domain.LedgerEntry, domain.BalanceCategory, error) {
		return domain.LedgerEntry{}, 0, &domain.EntryError{Index: index, AccountID: in.AccountID, Err: err}
	}

	switch {
	case in.Amount.IsZero():
		return fail(domain.ErrZeroAmount)
	case in.Amount.IsNegative():
		return fail(domain.ErrNegativeAmount)
	case !in.Direction.Valid():
		return fail(domain.ErrInvalidDirection)
	}

	account, err := accounts.FindAccount(ctx, in.AccountID)
	if err != nil {
		return fail(err)
	}
	category, err := accounting.CategoryOf(account.AccountType)
	if err != nil {
		return fail(err)
	}
	if !account.IsActive {
		return fail(domain.ErrAccountInactive)
	}
	if !account.AllowsDirectPosting {
		return fail(domain.ErrAccountNoDirectPosting)
	}

	if len(in.DimensionIDs) > 0 {
		if err := dims.ValidateDimensions(ctx, in.DimensionIDs); err != nil {
			return fail(err)
		}
	}

	rate := decimal.NewFromInt(1)
	method := domain.RateDirect
	if in.Currency != functionalCurrency {
		resolved, err := rates.FindRate(ctx, in.Currency, functionalCurrency, date)
		if err != nil {
			if isNotFound(err) {
				return fail(&domain.NoExchangeRateError{From: in.Currency, To: functionalCurrency, Date: date})
			}
			return fail(err)
		}
		rate, method = resolved.Rate, resolved.Method
	}

	functional := in.Amount.Mul(rate).RoundBank(FunctionalAmountPrecision)
	if functional.IsZero() {
		return fail(domain.ErrFunctionalAmountZero)
	}
	entry := domain.LedgerEntry{
		AccountID:          in.AccountID,
		LineNumber:         index + 1,
		SourceCurrency:     in.Currency,
		SourceAmount:       in.Amount,
		ExchangeRate:       rate,
		RateMethod:         method,
		FunctionalCurrency: functionalCurrency,
		FunctionalAmount:   functional,
		Debit:              decimal.Zero,
		Credit:             decimal.Zero,
		Memo:               in.Memo,
		DimensionIDs:       in.DimensionIDs,
	}
	if in.Direction == domain.Debit {
		entry.Debit = functional
	} else {
		entry.Credit = functional
	}
	return entry, category, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrRateNotFound) || errors.Is(err, apperrors.ErrNotFound)
}
