package ledger_test

import (
	"testing"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/core/ledger"
	"github.com/stretchr/testify/assert"
)

var allRoles = []domain.Role{
	domain.RoleViewer, domain.RoleSubmitter, domain.RoleApprover,
	domain.RoleAccountant, domain.RoleAdmin, domain.RoleOwner,
}

func TestCanPost(t *testing.T) {
	assert.NoError(t, ledger.CanPost(domain.PeriodOpen, domain.RoleViewer))
	assert.ErrorIs(t, ledger.CanPost(domain.PeriodSoftClose, domain.RoleViewer), domain.ErrPeriodSoftClosed)
	assert.NoError(t, ledger.CanPost(domain.PeriodSoftClose, domain.RoleAccountant))
	assert.ErrorIs(t, ledger.CanPost(domain.PeriodClosed, domain.RoleOwner), domain.ErrPeriodClosed)
}

func TestCanPost_Matrix(t *testing.T) {
	for _, role := range allRoles {
		t.Run(role.String(), func(t *testing.T) {
			assert.NoError(t, ledger.CanPost(domain.PeriodOpen, role))
			assert.ErrorIs(t, ledger.CanPost(domain.PeriodClosed, role), domain.ErrPeriodClosed)

			err := ledger.CanPost(domain.PeriodSoftClose, role)
			if role >= domain.RoleAccountant {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, domain.ErrPeriodSoftClosed)
			}
		})
	}
}

func TestValidatePeriodTransition(t *testing.T) {
	tests := []struct {
		from, to  domain.PeriodStatus
		priorOpen bool
		want      error
	}{
		{domain.PeriodOpen, domain.PeriodSoftClose, false, nil},
		{domain.PeriodSoftClose, domain.PeriodOpen, false, nil},
		{domain.PeriodSoftClose, domain.PeriodClosed, false, nil},
		{domain.PeriodSoftClose, domain.PeriodOpen, true, nil},
		{domain.PeriodOpen, domain.PeriodSoftClose, true, domain.ErrPriorPeriodOpen},
		{domain.PeriodSoftClose, domain.PeriodClosed, true, domain.ErrPriorPeriodOpen},
		{domain.PeriodOpen, domain.PeriodClosed, false, domain.ErrInvalidPeriodTransition},
		{domain.PeriodClosed, domain.PeriodOpen, false, domain.ErrInvalidPeriodTransition},
		{domain.PeriodClosed, domain.PeriodSoftClose, false, domain.ErrInvalidPeriodTransition},
		{domain.PeriodOpen, domain.PeriodOpen, false, domain.ErrInvalidPeriodTransition},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			err := ledger.ValidatePeriodTransition(tt.from, tt.to, tt.priorOpen)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
