package repositories

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// ApprovalRuleRepositoryFacade stores the approval rules of an organization.
type ApprovalRuleRepositoryFacade interface {
	// SaveApprovalRule persists a new rule.
	SaveApprovalRule(ctx context.Context, rule domain.ApprovalRule) error

	// ListApprovalRules returns the rules ordered by priority, then creation time.
	ListApprovalRules(ctx context.Context, organizationID string) ([]domain.ApprovalRule, error)
}
