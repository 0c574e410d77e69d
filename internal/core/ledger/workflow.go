package ledger

import (
	"strings"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// AllowedTransitions lists every lifecycle move a transaction may make.
var AllowedTransitions = map[domain.TransactionStatus][]domain.TransactionStatus{
	domain.StatusDraft:    {domain.StatusPending},
	domain.StatusPending:  {domain.StatusApproved, domain.StatusDraft},
	domain.StatusApproved: {domain.StatusPosted},
	domain.StatusPosted:   {domain.StatusVoided},
	domain.StatusVoided:   {},
}

// ValidateTransition returns *domain.InvalidTransitionError unless from→to is listed in AllowedTransitions.
func ValidateTransition(from, to domain.TransactionStatus) error {
	for _, next := range AllowedTransitions[from] {
		if next == to {
			return nil
		}
	}
	return &domain.InvalidTransitionError{From: from, To: to}
}

func transition(from, to domain.TransactionStatus, actorID string, at time.Time) (domain.Transition, error) {
	if err := ValidateTransition(from, to); err != nil {
		return domain.Transition{}, err
	}
	return domain.Transition{From: from, To: to, ActorID: actorID, At: at}, nil
}

// Submit moves a draft to pending.
func Submit(current domain.TransactionStatus, actorID string, at time.Time) (domain.Transition, error) {
	return transition(current, domain.StatusPending, actorID, at)
}

// Approve moves a pending transaction to approved. Callers check CanApprove first.
func Approve(current domain.TransactionStatus, actorID, notes string, at time.Time) (domain.Transition, error) {
	t, err := transition(current, domain.StatusApproved, actorID, at)
	if err != nil {
		return t, err
	}
	t.Notes = strings.TrimSpace(notes)
	return t, nil
}

// Reject sends a pending transaction back to draft.
func Reject(current domain.TransactionStatus, actorID, reason string, at time.Time) (domain.Transition, error) {
	t, err := transition(current, domain.StatusDraft, actorID, at)
	if err != nil {
		return t, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return domain.Transition{}, domain.ErrRejectionReasonRequired
	}
	t.Reason = reason
	return t, nil
}

// Post moves an approved transaction to posted. Callers check CanPost for the
// transaction's fiscal period first.
func Post(current domain.TransactionStatus, actorID string, at time.Time) (domain.Transition, error) {
	return transition(current, domain.StatusPosted, actorID, at)
}

// Void moves a posted transaction to voided. The reversal is the caller's job.
func Void(current domain.TransactionStatus, actorID, reason string, at time.Time) (domain.Transition, error) {
	t, err := transition(current, domain.StatusVoided, actorID, at)
	if err != nil {
		return t, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return domain.Transition{}, domain.ErrVoidReasonRequired
	}
	t.Reason = reason
	return t, nil
}
