package ledger

import "github.com/SscSPs/ledger_core/internal/core/domain"

// SoftCloseRole is the lowest role allowed to post into a soft-closed period.
const SoftCloseRole = domain.RoleAccountant

// CanPost decides whether an actor with role may post into a period with status.
func CanPost(status domain.PeriodStatus, role domain.Role) error {
	switch status {
	case domain.PeriodOpen:
		return nil
	case domain.PeriodSoftClose:
		if role.AtLeast(SoftCloseRole) {
			return nil
		}
		return domain.ErrPeriodSoftClosed
	default:
		return domain.ErrPeriodClosed
	}
}

var periodTransitions = map[domain.PeriodStatus][]domain.PeriodStatus{
	domain.PeriodOpen:      {domain.PeriodSoftClose},
	domain.PeriodSoftClose: {domain.PeriodOpen, domain.PeriodClosed},
	domain.PeriodClosed:    {},
}

// ValidatePeriodTransition checks a fiscal period status change. priorOpen
// reports whether an earlier period of the same fiscal year is still open.
func ValidatePeriodTransition(from, to domain.PeriodStatus, priorOpen bool) error {
	allowed := false
	for _, next := range periodTransitions[from] {
		if next == to {
			allowed = true
			break
		}
	}
	if !allowed {
		return &domain.InvalidPeriodTransitionError{From: from, To: to}
	}
	if to != domain.PeriodOpen && priorOpen {
		return domain.ErrPriorPeriodOpen
	}
	return nil
}
