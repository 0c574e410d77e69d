package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Error kinds raised by the ledger core. Structured errors below match their
// kind through errors.Is so callers can branch on the kind and use errors.As
// for the details.
var (
	ErrInsufficientEntries     = errors.New("transaction must have at least two entries")
	ErrZeroAmount              = errors.New("entry amount must not be zero")
	ErrNegativeAmount          = errors.New("entry amount must not be negative")
	ErrFunctionalAmountZero    = errors.New("entry amount rounds to zero in the functional currency")
	ErrAccountNotFound         = errors.New("account not found")
	ErrAccountInactive         = errors.New("account is inactive")
	ErrAccountNoDirectPosting  = errors.New("account does not allow direct posting")
	ErrUnknownAccountType      = errors.New("unknown account type")
	ErrInvalidDirection        = errors.New("entry direction must be DEBIT or CREDIT")
	ErrNoExchangeRate          = errors.New("no exchange rate available")
	ErrUnbalancedTransaction   = errors.New("transaction is not balanced")
	ErrInvalidTransition       = errors.New("invalid status transition")
	ErrRejectionReasonRequired = errors.New("a rejection reason is required")
	ErrVoidReasonRequired      = errors.New("a void reason is required")
	ErrPeriodClosed            = errors.New("fiscal period is closed")
	ErrPeriodSoftClosed        = errors.New("fiscal period is soft-closed")
	ErrNoFiscalPeriod          = errors.New("no fiscal period covers the transaction date")
	ErrInvalidPeriodTransition = errors.New("invalid fiscal period status change")
	ErrPriorPeriodOpen         = errors.New("an earlier fiscal period in the same year is still open")
	ErrInsufficientRole        = errors.New("insufficient role")
	ErrExceedsApprovalLimit    = errors.New("amount exceeds approval limit")
	ErrRateNotFound            = errors.New("exchange rate not found")
	ErrConcurrentModification  = errors.New("concurrent modification detected")
)

// EntryError ties an entry-level failure to the entry's position in the input.
type EntryError struct {
	Index     int
	AccountID string
	Err       error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("entry %d (account %s): %v", e.Index, e.AccountID, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

// NoExchangeRateError is returned when an entry's currency cannot be converted.
type NoExchangeRateError struct {
	From string
	To   string
	Date time.Time
}

func (e *NoExchangeRateError) Error() string {
	return fmt.Sprintf("no exchange rate from %s to %s on %s", e.From, e.To, e.Date.Format(time.DateOnly))
}

func (e *NoExchangeRateError) Is(target error) bool { return target == ErrNoExchangeRate }

// UnbalancedTransactionError carries the functional totals that did not match.
type UnbalancedTransactionError struct {
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

func (e *UnbalancedTransactionError) Error() string {
	return fmt.Sprintf("transaction is not balanced: debits %s, credits %s", e.Debit.String(), e.Credit.String())
}

func (e *UnbalancedTransactionError) Is(target error) bool { return target == ErrUnbalancedTransaction }

// InvalidTransitionError names the refused status change.
type InvalidTransitionError struct {
	From TransactionStatus
	To   TransactionStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

func (e *InvalidTransitionError) Is(target error) bool { return target == ErrInvalidTransition }

// InsufficientRoleError reports the role an action needed.
type InsufficientRoleError struct {
	Actual   Role
	Required Role
}

func (e *InsufficientRoleError) Error() string {
	return fmt.Sprintf("insufficient role: %s required, actor is %s", e.Required, e.Actual)
}

func (e *InsufficientRoleError) Is(target error) bool { return target == ErrInsufficientRole }

// ExceedsApprovalLimitError reports an amount above an approver's limit.
type ExceedsApprovalLimitError struct {
	Amount decimal.Decimal
	Limit  decimal.Decimal
}

func (e *ExceedsApprovalLimitError) Error() string {
	return fmt.Sprintf("amount %s exceeds approval limit %s", e.Amount.String(), e.Limit.String())
}

func (e *ExceedsApprovalLimitError) Is(target error) bool { return target == ErrExceedsApprovalLimit }

// RateNotFoundError is returned by the exchange rate resolver.
type RateNotFoundError struct {
	From string
	To   string
	Date time.Time
}

func (e *RateNotFoundError) Error() string {
	return fmt.Sprintf("exchange rate from %s to %s not found on or before %s", e.From, e.To, e.Date.Format(time.DateOnly))
}

func (e *RateNotFoundError) Is(target error) bool { return target == ErrRateNotFound }

// InvalidPeriodTransitionError names the refused period status change.
type InvalidPeriodTransitionError struct {
	From PeriodStatus
	To   PeriodStatus
}

func (e *InvalidPeriodTransitionError) Error() string {
	return fmt.Sprintf("invalid fiscal period status change from %s to %s", e.From, e.To)
}

func (e *InvalidPeriodTransitionError) Is(target error) bool {
	return target == ErrInvalidPeriodTransition
}
