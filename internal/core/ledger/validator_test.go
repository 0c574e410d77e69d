package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/core/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ValidatorTestSuite struct {
	suite.Suite
	accounts accountsFake
	dims     *dimensionsFake
	store    *ratesFake
	rates    *ledger.RateResolver
}

func (s *ValidatorTestSuite) SetupTest() {
	s.accounts = accountsFake{
		"cash":     {AccountID: "cash", AccountType: domain.Asset, CurrencyCode: "USD", IsActive: true, AllowsDirectPosting: true},
		"revenue":  {AccountID: "revenue", AccountType: domain.Revenue, CurrencyCode: "USD", IsActive: true, AllowsDirectPosting: true},
		"expense":  {AccountID: "expense", AccountType: domain.Expense, CurrencyCode: "USD", IsActive: true, AllowsDirectPosting: true},
		"closed":   {AccountID: "closed", AccountType: domain.Asset, CurrencyCode: "USD", IsActive: false, AllowsDirectPosting: true},
		"header":   {AccountID: "header", AccountType: domain.Asset, CurrencyCode: "USD", IsActive: true, AllowsDirectPosting: false},
		"mystery":  {AccountID: "mystery", AccountType: domain.AccountType("INCOME"), CurrencyCode: "USD", IsActive: true, AllowsDirectPosting: true},
		"eurCash":  {AccountID: "eurCash", AccountType: domain.Asset, CurrencyCode: "EUR", IsActive: true, AllowsDirectPosting: true},
		"payables": {AccountID: "payables", AccountType: domain.Liability, CurrencyCode: "USD", IsActive: true, AllowsDirectPosting: true},
	}
	s.dims = &dimensionsFake{known: map[string]bool{"dept-1": true}}
	s.store = (&ratesFake{}).add("EUR", "USD", "1.1", day(2024, 1, 1))
	s.rates = ledger.NewRateResolver(s.store)
}

func (s *ValidatorTestSuite) validate(entries ...ledger.EntryInput) (*ledger.Resolution, error) {
	input := ledger.TransactionInput{TransactionDate: day(2024, 3, 1), Entries: entries}
	return ledger.ValidateAndResolve(context.Background(), input, "USD", s.rates, s.accounts, s.dims)
}

func debit(account, amount, currency string) ledger.EntryInput {
	return ledger.EntryInput{AccountID: account, Direction: domain.Debit, Amount: dec(amount), Currency: currency}
}

func credit(account, amount, currency string) ledger.EntryInput {
	return ledger.EntryInput{AccountID: account, Direction: domain.Credit, Amount: dec(amount), Currency: currency}
}

func (s *ValidatorTestSuite) TestBalancedTransaction() {
	res, err := s.validate(debit("cash", "100.00", "USD"), credit("revenue", "100.00", "USD"))
	s.Require().NoError(err)

	s.True(dec("100").Equal(res.TotalDebit))
	s.True(res.TotalDebit.Equal(res.TotalCredit))
	s.Require().Len(res.Entries, 2)
	s.True(dec("100").Equal(res.Entries[0].Debit))
	s.True(res.Entries[0].Credit.IsZero())
	s.True(dec("100").Equal(res.Entries[1].Credit))
	s.True(res.Entries[1].Debit.IsZero())
	s.Equal(1, res.Entries[0].LineNumber)
	s.Equal(2, res.Entries[1].LineNumber)
	s.Equal(domain.DebitNormal, res.Categories["cash"])
	s.Equal(domain.CreditNormal, res.Categories["revenue"])
}

func (s *ValidatorTestSuite) TestUnbalancedTransaction() {
	_, err := s.validate(debit("cash", "100.00", "USD"), credit("revenue", "50.00", "USD"))
	s.Require().Error(err)
	s.ErrorIs(err, domain.ErrUnbalancedTransaction)

	var unbalanced *domain.UnbalancedTransactionError
	s.Require().True(errors.As(err, &unbalanced))
	s.True(dec("100").Equal(unbalanced.Debit))
	s.True(dec("50").Equal(unbalanced.Credit))
}

func (s *ValidatorTestSuite) TestCurrencyIdentitySkipsLookup() {
	res, err := s.validate(debit("cash", "12.34567", "USD"), credit("revenue", "12.34567", "USD"))
	s.Require().NoError(err)

	s.Zero(s.store.calls)
	for _, e := range res.Entries {
		s.True(dec("1").Equal(e.ExchangeRate))
		s.True(dec("12.34567").RoundBank(4).Equal(e.FunctionalAmount))
	}
	s.True(dec("12.3457").Equal(res.Entries[0].FunctionalAmount))
}

func (s *ValidatorTestSuite) TestForeignCurrencyConversion() {
	res, err := s.validate(debit("eurCash", "100", "EUR"), credit("revenue", "110", "USD"))
	s.Require().NoError(err)

	first := res.Entries[0]
	s.Equal("EUR", first.SourceCurrency)
	s.True(dec("100").Equal(first.SourceAmount))
	s.True(dec("1.1").Equal(first.ExchangeRate))
	s.Equal("USD", first.FunctionalCurrency)
	s.True(dec("110").Equal(first.FunctionalAmount))
	s.Equal(domain.RateDirect, first.RateMethod)
}

func (s *ValidatorTestSuite) TestBankersRounding() {
	// 0.00005 * 1 rounds to even at four places
	s.store.add("GBP", "USD", "1", day(2024, 1, 1))
	res, err := s.validate(debit("cash", "10.00005", "GBP"), credit("revenue", "10.00015", "GBP"))
	s.Require().Error(err)
	s.Nil(res)

	var unbalanced *domain.UnbalancedTransactionError
	s.Require().True(errors.As(err, &unbalanced))
	s.True(dec("10.0000").Equal(unbalanced.Debit))
	s.True(dec("10.0002").Equal(unbalanced.Credit))
}

func (s *ValidatorTestSuite) TestSubPrecisionAmountsRejected() {
	// both sides round to zero, so the totals would balance at 0 = 0
	res, err := s.validate(debit("cash", "0.00004", "USD"), credit("revenue", "0.00004", "USD"))
	s.Require().Error(err)
	s.Nil(res)
	s.ErrorIs(err, domain.ErrFunctionalAmountZero)

	var entryErr *domain.EntryError
	s.Require().True(errors.As(err, &entryErr))
	s.Equal(0, entryErr.Index)

	// conversion can also push a non-zero source amount below the functional precision
	_, err = s.validate(debit("eurCash", "0.00004", "EUR"), credit("revenue", "5", "USD"))
	s.ErrorIs(err, domain.ErrFunctionalAmountZero)
}

func (s *ValidatorTestSuite) TestDerivedRateAndSourceAmountKeptExact() {
	s.store.add("USD", "CHF", "0.9", day(2024, 1, 1))
	res, err := s.validate(debit("cash", "12.34567", "CHF"), credit("revenue", "13.7174", "USD"))
	s.Require().NoError(err)

	first := res.Entries[0]
	s.Equal(domain.RateInverse, first.RateMethod)
	s.Equal("1.111111111111", first.ExchangeRate.String())
	s.Equal("12.34567", first.SourceAmount.String())
	s.True(dec("13.7174").Equal(first.FunctionalAmount))
	s.True(first.SourceAmount.Mul(first.ExchangeRate).RoundBank(ledger.FunctionalAmountPrecision).Equal(first.FunctionalAmount))
}

func (s *ValidatorTestSuite) TestNoExchangeRate() {
	_, err := s.validate(debit("cash", "100", "JPY"), credit("revenue", "100", "USD"))
	s.Require().Error(err)
	s.ErrorIs(err, domain.ErrNoExchangeRate)

	var noRate *domain.NoExchangeRateError
	s.Require().True(errors.As(err, &noRate))
	s.Equal("JPY", noRate.From)
	s.Equal("USD", noRate.To)
	s.Equal(day(2024, 3, 1), noRate.Date)

	var entryErr *domain.EntryError
	s.Require().True(errors.As(err, &entryErr))
	s.Equal(0, entryErr.Index)
}

func (s *ValidatorTestSuite) TestInsufficientEntries() {
	_, err := s.validate(debit("cash", "100", "USD"))
	s.ErrorIs(err, domain.ErrInsufficientEntries)

	_, err = s.validate()
	s.ErrorIs(err, domain.ErrInsufficientEntries)
}

func (s *ValidatorTestSuite) TestEntryFailures() {
	tests := []struct {
		name  string
		entry ledger.EntryInput
		want  error
	}{
		{name: "zero amount", entry: debit("cash", "0", "USD"), want: domain.ErrZeroAmount},
		{name: "negative amount", entry: debit("cash", "-5", "USD"), want: domain.ErrNegativeAmount},
		{name: "rounds to zero", entry: debit("cash", "0.00004", "USD"), want: domain.ErrFunctionalAmountZero},
		{name: "bad direction", entry: ledger.EntryInput{AccountID: "cash", Direction: "SIDEWAYS", Amount: dec("5"), Currency: "USD"}, want: domain.ErrInvalidDirection},
		{name: "missing account", entry: debit("ghost", "5", "USD"), want: domain.ErrAccountNotFound},
		{name: "inactive account", entry: debit("closed", "5", "USD"), want: domain.ErrAccountInactive},
		{name: "no direct posting", entry: debit("header", "5", "USD"), want: domain.ErrAccountNoDirectPosting},
		{name: "unknown account type", entry: debit("mystery", "5", "USD"), want: domain.ErrUnknownAccountType},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.validate(credit("revenue", "5", "USD"), tt.entry)
			s.Require().Error(err)
			s.ErrorIs(err, tt.want)

			var entryErr *domain.EntryError
			s.Require().True(errors.As(err, &entryErr))
			s.Equal(1, entryErr.Index)
			s.Equal(tt.entry.AccountID, entryErr.AccountID)
		})
	}
}

func (s *ValidatorTestSuite) TestDimensionsValidatedOnlyWhenPresent() {
	_, err := s.validate(debit("cash", "5", "USD"), credit("revenue", "5", "USD"))
	s.Require().NoError(err)
	s.Zero(s.dims.calls)

	tagged := debit("expense", "5", "USD")
	tagged.DimensionIDs = []string{"dept-1"}
	res, err := s.validate(tagged, credit("payables", "5", "USD"))
	s.Require().NoError(err)
	s.Equal(1, s.dims.calls)
	s.Equal([]string{"dept-1"}, res.Entries[0].DimensionIDs)
}

func (s *ValidatorTestSuite) TestDimensionErrorPropagatedUnchanged() {
	tagged := debit("expense", "5", "USD")
	tagged.DimensionIDs = []string{"dept-x"}

	_, err := s.validate(tagged, credit("payables", "5", "USD"))
	s.Require().Error(err)
	s.ErrorIs(err, errBadDimension)

	var entryErr *domain.EntryError
	s.Require().True(errors.As(err, &entryErr))
	s.Same(errBadDimension, entryErr.Err)
}

func TestValidatorTestSuite(t *testing.T) {
	suite.Run(t, new(ValidatorTestSuite))
}

func TestValidateAndResolve_BalanceInvariant(t *testing.T) {
	accounts := accountsFake{
		"a": {AccountID: "a", AccountType: domain.Asset, IsActive: true, AllowsDirectPosting: true},
		"b": {AccountID: "b", AccountType: domain.Equity, IsActive: true, AllowsDirectPosting: true},
		"c": {AccountID: "c", AccountType: domain.Expense, IsActive: true, AllowsDirectPosting: true},
	}
	input := ledger.TransactionInput{
		TransactionDate: day(2024, 5, 5),
		Entries: []ledger.EntryInput{
			debit("a", "33.3333", "USD"),
			debit("c", "66.6667", "USD"),
			credit("b", "100", "USD"),
		},
	}

	res, err := ledger.ValidateAndResolve(context.Background(), input, "USD", ledger.NewRateResolver(&ratesFake{}), accounts, &dimensionsFake{})
	require.NoError(t, err)
	assert.True(t, res.TotalDebit.Equal(res.TotalCredit))
	assert.True(t, dec("100").Equal(res.TotalCredit))
}
