package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/google/uuid"
)

type approvalRuleService struct {
	BaseService
	ruleRepo portsrepo.ApprovalRuleRepositoryFacade
}

// NewApprovalRuleService creates a new ApprovalRuleService.
func NewApprovalRuleService(ruleRepo portsrepo.ApprovalRuleRepositoryFacade, orgs portsrepo.OrganizationReader) portssvc.ApprovalRuleSvcFacade {
	return &approvalRuleService{
		BaseService: BaseService{Organizations: orgs},
		ruleRepo:    ruleRepo,
	}
}

var _ portssvc.ApprovalRuleSvcFacade = (*approvalRuleService)(nil)

func (s *approvalRuleService) CreateApprovalRule(ctx context.Context, organizationID string, req dto.CreateApprovalRuleRequest, userID string) (*domain.ApprovalRule, error) {
	if _, _, err := s.AuthorizeMember(ctx, organizationID, userID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	if !req.RequiredRole.Valid() {
		return nil, fmt.Errorf("%w: unknown role", apperrors.ErrValidation)
	}
	if (req.MinAmount != nil && req.MinAmount.IsNegative()) || (req.MaxAmount != nil && req.MaxAmount.IsNegative()) {
		return nil, fmt.Errorf("%w: amount bounds must not be negative", apperrors.ErrValidation)
	}
	if req.MinAmount != nil && req.MaxAmount != nil && req.MinAmount.GreaterThan(*req.MaxAmount) {
		return nil, fmt.Errorf("%w: minAmount must not exceed maxAmount", apperrors.ErrValidation)
	}

	types := make([]string, 0, len(req.TransactionTypes))
	for _, t := range req.TransactionTypes {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}

	now := time.Now().UTC()
	rule := domain.ApprovalRule{
		RuleID:           uuid.NewString(),
		OrganizationID:   organizationID,
		Name:             req.Name,
		MinAmount:        req.MinAmount,
		MaxAmount:        req.MaxAmount,
		TransactionTypes: types,
		RequiredRole:     req.RequiredRole,
		Priority:         req.Priority,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.ruleRepo.SaveApprovalRule(ctx, rule); err != nil {
		s.LogError(ctx, err, "Failed to save approval rule")
		return nil, fmt.Errorf("failed to create approval rule: %w", err)
	}
	s.LogInfo(ctx, "Approval rule created", slog.String("rule_id", rule.RuleID), slog.String("required_role", rule.RequiredRole.String()))
	return &rule, nil
}

func (s *approvalRuleService) ListApprovalRules(ctx context.Context, organizationID, userID string) ([]domain.ApprovalRule, error) {
	if _, _, err := s.AuthorizeMember(ctx, organizationID, userID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.ruleRepo.ListApprovalRules(ctx, organizationID)
}
