package ledger

import (
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// GetRequiredApproval returns the role demanded by the matching rule with the
// lowest priority value. Ties go to the earlier rule. ok is false when no rule matches.
func GetRequiredApproval(rules []domain.ApprovalRule, transactionType string, amount decimal.Decimal) (role domain.Role, ok bool) {
	var best *domain.ApprovalRule
	for i := range rules {
		rule := &rules[i]
		if !rule.Matches(transactionType, amount) {
			continue
		}
		if best == nil || rule.Priority < best.Priority {
			best = rule
		}
	}
	if best == nil {
		return 0, false
	}
	return best.RequiredRole, true
}

// CanApprove checks an actor against the required role. Approvers are also held
// to their approval limit; higher roles are not. A nil limit is unlimited.
func CanApprove(actorRole domain.Role, actorLimit *decimal.Decimal, requiredRole domain.Role, amount decimal.Decimal) error {
	if !actorRole.AtLeast(requiredRole) {
		return &domain.InsufficientRoleError{Actual: actorRole, Required: requiredRole}
	}
	if actorRole == domain.RoleApprover && actorLimit != nil && amount.GreaterThan(*actorLimit) {
		return &domain.ExceedsApprovalLimitError{Amount: amount, Limit: *actorLimit}
	}
	return nil
}

// RequireRole is the plain role gate used for actions without an amount.
func RequireRole(actorRole, required domain.Role) error {
	if !actorRole.AtLeast(required) {
		return &domain.InsufficientRoleError{Actual: actorRole, Required: required}
	}
	return nil
}
