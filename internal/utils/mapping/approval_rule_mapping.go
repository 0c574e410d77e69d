package mapping

import (
	"fmt"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/models"
	"github.com/shopspring/decimal"
)

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func fromNullDecimal(n decimal.NullDecimal) *decimal.Decimal {
	if !n.Valid {
		return nil
	}
	d := n.Decimal
	return &d
}

// ToModelApprovalRule converts a domain ApprovalRule to a model ApprovalRule
func ToModelApprovalRule(d domain.ApprovalRule) models.ApprovalRule {
	types := d.TransactionTypes
	if types == nil {
		types = []string{}
	}
	return models.ApprovalRule{
		RuleID:           d.RuleID,
		OrganizationID:   d.OrganizationID,
		Name:             d.Name,
		MinAmount:        toNullDecimal(d.MinAmount),
		MaxAmount:        toNullDecimal(d.MaxAmount),
		TransactionTypes: types,
		RequiredRole:     d.RequiredRole.String(),
		Priority:         d.Priority,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainApprovalRule converts a model ApprovalRule to a domain ApprovalRule
func ToDomainApprovalRule(m models.ApprovalRule) (domain.ApprovalRule, error) {
	role, err := domain.ParseRole(m.RequiredRole)
	if err != nil {
		return domain.ApprovalRule{}, fmt.Errorf("approval rule %s: %w", m.RuleID, err)
	}
	return domain.ApprovalRule{
		RuleID:           m.RuleID,
		OrganizationID:   m.OrganizationID,
		Name:             m.Name,
		MinAmount:        fromNullDecimal(m.MinAmount),
		MaxAmount:        fromNullDecimal(m.MaxAmount),
		TransactionTypes: m.TransactionTypes,
		RequiredRole:     role,
		Priority:         m.Priority,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}, nil
}
