package services

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/dto"
)

// ApprovalRuleSvcFacade manages the approval rules of an organization.
type ApprovalRuleSvcFacade interface {
	CreateApprovalRule(ctx context.Context, organizationID string, req dto.CreateApprovalRuleRequest, userID string) (*domain.ApprovalRule, error)
	ListApprovalRules(ctx context.Context, organizationID, userID string) ([]domain.ApprovalRule, error)
}
