package dto

import (
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateApprovalRuleRequest defines an approval rule. Absent bounds are open-ended
// and an empty type list applies to every transaction type.
type CreateApprovalRuleRequest struct {
	Name             string           `json:"name" binding:"required,max=100"`
	MinAmount        *decimal.Decimal `json:"minAmount"`
	MaxAmount        *decimal.Decimal `json:"maxAmount"`
	TransactionTypes []string         `json:"transactionTypes" binding:"dive,required,max=50"`
	RequiredRole     domain.Role      `json:"requiredRole" binding:"required"`
	Priority         int              `json:"priority" binding:"min=0"`
}

// ApprovalRuleResponse defines the data returned for an approval rule.
type ApprovalRuleResponse struct {
	RuleID           string           `json:"ruleID"`
	Name             string           `json:"name"`
	MinAmount        *decimal.Decimal `json:"minAmount,omitempty"`
	MaxAmount        *decimal.Decimal `json:"maxAmount,omitempty"`
	TransactionTypes []string         `json:"transactionTypes"`
	RequiredRole     domain.Role      `json:"requiredRole"`
	Priority         int              `json:"priority"`
	CreatedAt        time.Time        `json:"createdAt"`
	CreatedBy        string           `json:"createdBy"`
}

func ToApprovalRuleResponse(r *domain.ApprovalRule) ApprovalRuleResponse {
	types := r.TransactionTypes
	if types == nil {
		types = []string{}
	}
	return ApprovalRuleResponse{
		RuleID:           r.RuleID,
		Name:             r.Name,
		MinAmount:        r.MinAmount,
		MaxAmount:        r.MaxAmount,
		TransactionTypes: types,
		RequiredRole:     r.RequiredRole,
		Priority:         r.Priority,
		CreatedAt:        r.CreatedAt,
		CreatedBy:        r.CreatedBy,
	}
}

func ToApprovalRuleResponses(rules []domain.ApprovalRule) []ApprovalRuleResponse {
	res := make([]ApprovalRuleResponse, len(rules))
	for i := range rules {
		res[i] = ToApprovalRuleResponse(&rules[i])
	}
	return res
}
