package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetAccountBalance(t *testing.T) {
	ctx := context.Background()
	setup := func() (*MockAccountRepository, *MockOrganizationRepository) {
		orgs := new(MockOrganizationRepository)
		orgs.On("FindOrganizationByID", mock.Anything, testOrgID).Return(&domain.Organization{OrganizationID: testOrgID, IsActive: true}, nil)
		orgs.On("FindMembership", mock.Anything, testOrgID, viewer).Return(&domain.Membership{UserID: viewer, Role: domain.RoleViewer}, nil)
		accounts := new(MockAccountRepository)
		accounts.On("FindAccountByID", mock.Anything, testOrgID, "cash").Return(&domain.Account{
			AccountID: "cash", OrganizationID: testOrgID, AccountType: domain.Asset, CurrencyCode: "USD", IsActive: true,
		}, nil)
		return accounts, orgs
	}

	t.Run("latest running balance", func(t *testing.T) {
		accounts, orgs := setup()
		accounts.On("FindLatestBalance", mock.Anything, "cash").Return(&domain.RunningBalance{
			Version: 3, PreviousBalance: decimal.NewFromInt(150), CurrentBalance: decimal.NewFromInt(120),
		}, nil).Once()

		res, err := services.NewAccountService(accounts, orgs).GetAccountBalance(ctx, testOrgID, "cash", viewer)

		require.NoError(t, err)
		assert.Equal(t, int64(3), res.Version)
		assert.True(t, res.Balance.Equal(decimal.NewFromInt(120)))
	})

	t.Run("nothing posted yet", func(t *testing.T) {
		accounts, orgs := setup()
		accounts.On("FindLatestBalance", mock.Anything, "cash").Return(nil, apperrors.ErrNotFound).Once()

		res, err := services.NewAccountService(accounts, orgs).GetAccountBalance(ctx, testOrgID, "cash", viewer)

		require.NoError(t, err)
		assert.Equal(t, int64(0), res.Version)
		assert.True(t, res.Balance.IsZero())
		assert.Equal(t, "USD", res.CurrencyCode)
	})

	t.Run("unknown account", func(t *testing.T) {
		accounts, orgs := setup()
		accounts.On("FindAccountByID", mock.Anything, testOrgID, "nope").Return(nil, apperrors.ErrNotFound).Once()

		_, err := services.NewAccountService(accounts, orgs).GetAccountBalance(ctx, testOrgID, "nope", viewer)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
