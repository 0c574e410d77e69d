package ledger_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/core/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRequiredApproval(t *testing.T) {
	rules := []domain.ApprovalRule{
		{Name: "small", MaxAmount: decPtr("1000"), RequiredRole: domain.RoleApprover, Priority: 10},
		{Name: "large", MinAmount: decPtr("1000.01"), RequiredRole: domain.RoleAdmin, Priority: 10},
		{Name: "payroll", TransactionTypes: []string{"PAYROLL"}, RequiredRole: domain.RoleOwner, Priority: 1},
		{Name: "refund tie A", MinAmount: decPtr("50"), MaxAmount: decPtr("50"), TransactionTypes: []string{"REFUND"}, RequiredRole: domain.RoleAccountant, Priority: 5},
		{Name: "refund tie B", MinAmount: decPtr("50"), MaxAmount: decPtr("50"), TransactionTypes: []string{"REFUND"}, RequiredRole: domain.RoleAdmin, Priority: 5},
	}

	tests := []struct {
		name     string
		txType   string
		amount   string
		wantRole domain.Role
	}{
		{name: "upper bound inclusive", txType: "EXPENSE", amount: "1000", wantRole: domain.RoleApprover},
		{name: "above range", txType: "EXPENSE", amount: "1000.01", wantRole: domain.RoleAdmin},
		{name: "type specific wins on priority", txType: "PAYROLL", amount: "10", wantRole: domain.RoleOwner},
		{name: "ties go to earlier rule", txType: "REFUND", amount: "50", wantRole: domain.RoleAccountant},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			role, ok := ledger.GetRequiredApproval(rules, tt.txType, dec(tt.amount))
			require.True(t, ok)
			assert.Equal(t, tt.wantRole, role)
		})
	}
}

func TestGetRequiredApproval_NoMatch(t *testing.T) {
	rules := []domain.ApprovalRule{
		{MinAmount: decPtr("100"), MaxAmount: decPtr("200"), RequiredRole: domain.RoleAdmin},
		{TransactionTypes: []string{"PAYROLL"}, RequiredRole: domain.RoleOwner},
	}
	_, ok := ledger.GetRequiredApproval(rules, "EXPENSE", dec("99.99"))
	assert.False(t, ok)

	_, ok = ledger.GetRequiredApproval(nil, "EXPENSE", dec("1"))
	assert.False(t, ok)
}

func TestCanApprove(t *testing.T) {
	err := ledger.CanApprove(domain.RoleApprover, decPtr("500.00"), domain.RoleApprover, dec("500.01"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrExceedsApprovalLimit)
	var limitErr *domain.ExceedsApprovalLimitError
	require.True(t, errors.As(err, &limitErr))
	assert.True(t, dec("500.01").Equal(limitErr.Amount))
	assert.True(t, dec("500").Equal(limitErr.Limit))

	assert.NoError(t, ledger.CanApprove(domain.RoleApprover, decPtr("500.00"), domain.RoleApprover, dec("500.00")))
	assert.NoError(t, ledger.CanApprove(domain.RoleApprover, nil, domain.RoleApprover, dec("1000000")))
	assert.NoError(t, ledger.CanApprove(domain.RoleAdmin, decPtr("500.00"), domain.RoleApprover, dec("10000.00")))
	assert.NoError(t, ledger.CanApprove(domain.RoleAccountant, decPtr("1"), domain.RoleApprover, dec("10000.00")))
}

func TestCanApprove_InsufficientRole(t *testing.T) {
	err := ledger.CanApprove(domain.RoleSubmitter, nil, domain.RoleApprover, dec("1"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInsufficientRole)

	var roleErr *domain.InsufficientRoleError
	require.True(t, errors.As(err, &roleErr))
	assert.Equal(t, domain.RoleSubmitter, roleErr.Actual)
	assert.Equal(t, domain.RoleApprover, roleErr.Required)

	assert.ErrorIs(t, ledger.CanApprove(domain.RoleAdmin, nil, domain.RoleOwner, dec("1")), domain.ErrInsufficientRole)
}

func TestRequireRole(t *testing.T) {
	assert.NoError(t, ledger.RequireRole(domain.RoleOwner, domain.RoleAdmin))
	assert.NoError(t, ledger.RequireRole(domain.RoleSubmitter, domain.RoleSubmitter))
	assert.ErrorIs(t, ledger.RequireRole(domain.RoleViewer, domain.RoleSubmitter), domain.ErrInsufficientRole)
}
