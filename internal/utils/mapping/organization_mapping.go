package mapping

import (
	"fmt"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/models"
)

// ToDomainOrganization converts a model Organization. An unknown default
// approval role is left as zero so the approver fallback applies.
func ToDomainOrganization(m models.Organization) domain.Organization {
	role, _ := domain.ParseRole(m.DefaultApprovalRole)
	return domain.Organization{
		OrganizationID:         m.OrganizationID,
		Name:                   m.Name,
		FunctionalCurrencyCode: m.FunctionalCurrencyCode,
		DefaultApprovalRole:    role,
		IsActive:               m.IsActive,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainMembership converts a model Membership.
func ToDomainMembership(m models.Membership) (domain.Membership, error) {
	role, err := domain.ParseRole(m.Role)
	if err != nil {
		return domain.Membership{}, fmt.Errorf("membership of %s in %s: %w", m.UserID, m.OrganizationID, err)
	}
	d := domain.Membership{
		UserID:         m.UserID,
		OrganizationID: m.OrganizationID,
		Role:           role,
		JoinedAt:       m.JoinedAt,
	}
	if m.ApprovalLimit.Valid {
		limit := m.ApprovalLimit.Decimal
		d.ApprovalLimit = &limit
	}
	return d, nil
}
