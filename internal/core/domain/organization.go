package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Organization is a tenant of the ledger.
type Organization struct {
	OrganizationID         string `json:"organizationID"`
	Name                   string `json:"name"`
	FunctionalCurrencyCode string `json:"functionalCurrencyCode"`
	// DefaultApprovalRole applies when no approval rule matches a transaction.
	DefaultApprovalRole Role `json:"defaultApprovalRole"`
	IsActive            bool `json:"isActive"`
	AuditFields
}

// Membership is a user's role inside an organization.
type Membership struct {
	UserID         string           `json:"userID"`
	OrganizationID string           `json:"organizationID"`
	Role           Role             `json:"role"`
	ApprovalLimit  *decimal.Decimal `json:"approvalLimit,omitempty"`
	JoinedAt       time.Time        `json:"joinedAt"`
}

// Actor returns the membership as an acting user.
func (m Membership) Actor() Actor {
	return Actor{UserID: m.UserID, Role: m.Role, ApprovalLimit: m.ApprovalLimit}
}
