package models

import "github.com/shopspring/decimal"

type ApprovalRule struct {
	RuleID           string              `db:"rule_id"`
	OrganizationID   string              `db:"organization_id"`
	Name             string              `db:"name"`
	MinAmount        decimal.NullDecimal `db:"min_amount"`
	MaxAmount        decimal.NullDecimal `db:"max_amount"`
	TransactionTypes []string            `db:"transaction_types"`
	RequiredRole     string              `db:"required_role"`
	Priority         int                 `db:"priority"`
	AuditFields
}
