package domain

import "github.com/shopspring/decimal"

// ApprovalRule names the role required to approve transactions of certain
// types within an amount range. Nil bounds are open-ended.
type ApprovalRule struct {
	RuleID           string           `json:"ruleID"`
	OrganizationID   string           `json:"organizationID"`
	Name             string           `json:"name"`
	MinAmount        *decimal.Decimal `json:"minAmount,omitempty"`
	MaxAmount        *decimal.Decimal `json:"maxAmount,omitempty"`
	TransactionTypes []string         `json:"transactionTypes"`
	RequiredRole     Role             `json:"requiredRole"`
	Priority         int              `json:"priority"`
	AuditFields
}

// Matches reports whether the rule applies to a transaction type and amount.
func (r ApprovalRule) Matches(transactionType string, amount decimal.Decimal) bool {
	if len(r.TransactionTypes) > 0 {
		found := false
		for _, t := range r.TransactionTypes {
			if t == transactionType {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if r.MinAmount != nil && amount.LessThan(*r.MinAmount) {
		return false
	}
	if r.MaxAmount != nil && amount.GreaterThan(*r.MaxAmount) {
		return false
	}
	return true
}
