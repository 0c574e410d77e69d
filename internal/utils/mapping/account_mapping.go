package mapping

import (
	"fmt"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:           d.AccountID,
		OrganizationID:      d.OrganizationID,
		Name:                d.Name,
		AccountType:         string(d.AccountType),
		Subtype:             d.Subtype,
		CurrencyCode:        d.CurrencyCode,
		IsActive:            d.IsActive,
		AllowsDirectPosting: d.AllowsDirectPosting,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account.
// A stored account type outside the five known types is an error.
func ToDomainAccount(m models.Account) (domain.Account, error) {
	accountType, err := domain.ParseAccountType(m.AccountType)
	if err != nil {
		return domain.Account{}, fmt.Errorf("account %s: %w", m.AccountID, err)
	}
	return domain.Account{
		AccountID:           m.AccountID,
		OrganizationID:      m.OrganizationID,
		Name:                m.Name,
		AccountType:         accountType,
		Subtype:             m.Subtype,
		CurrencyCode:        m.CurrencyCode,
		IsActive:            m.IsActive,
		AllowsDirectPosting: m.AllowsDirectPosting,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}, nil
}
