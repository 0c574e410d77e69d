package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Organization is a row of the organizations table.
type Organization struct {
	OrganizationID         string `db:"organization_id"`
	Name                   string `db:"name"`
	FunctionalCurrencyCode string `db:"functional_currency_code"`
	DefaultApprovalRole    string `db:"default_approval_role"`
	IsActive               bool   `db:"is_active"`
	AuditFields
}

// Membership is a row of the organization_members table.
type Membership struct {
	OrganizationID string              `db:"organization_id"`
	UserID         string              `db:"user_id"`
	Role           string              `db:"role"`
	ApprovalLimit  decimal.NullDecimal `db:"approval_limit"`
	JoinedAt       time.Time           `db:"joined_at"`
}
