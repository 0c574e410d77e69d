package accounting

import (
	"fmt"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CategoryOf maps an account type to its normal balance side.
// DEBIT-normal: ASSET, EXPENSE. CREDIT-normal: LIABILITY, EQUITY, REVENUE.
func CategoryOf(accountType domain.AccountType) (domain.BalanceCategory, error) {
	switch accountType {
	case domain.Asset, domain.Expense:
		return domain.DebitNormal, nil
	case domain.Liability, domain.Equity, domain.Revenue:
		return domain.CreditNormal, nil
	default:
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownAccountType, string(accountType))
	}
}

// BalanceChange is the signed effect of a debit/credit pair on an account of the given category.
func BalanceChange(category domain.BalanceCategory, debit, credit decimal.Decimal) decimal.Decimal {
	if category == domain.CreditNormal {
		return credit.Sub(debit)
	}
	return debit.Sub(credit)
}

// FirstRunningBalance is the position after the first ever entry on an account.
func FirstRunningBalance(change decimal.Decimal) domain.RunningBalance {
	return domain.RunningBalance{
		Version:         1,
		PreviousBalance: decimal.Zero,
		CurrentBalance:  change,
	}
}

// NextRunningBalance chains change onto previous. The caller guarantees that
// previous is the latest position of the account being posted to.
func NextRunningBalance(previous domain.RunningBalance, change decimal.Decimal) domain.RunningBalance {
	return domain.RunningBalance{
		Version:         previous.Version + 1,
		PreviousBalance: previous.CurrentBalance,
		CurrentBalance:  previous.CurrentBalance.Add(change),
	}
}

// ApplyRunningBalances assigns versions and balances to entries in order.
//
// heads holds the latest persisted position per account; accounts missing from
// heads have never been posted to. Entries hitting the same account are threaded
// through each other, so the second one starts from the first one's result.
// heads is updated in place with the final position of every touched account.
func ApplyRunningBalances(entries []domain.LedgerEntry, heads map[string]domain.RunningBalance, categories map[string]domain.BalanceCategory) error {
	for i := range entries {
		entry := &entries[i]
		category, ok := categories[entry.AccountID]
		if !ok {
			return fmt.Errorf("no balance category for account %s", entry.AccountID)
		}

		change := BalanceChange(category, entry.Debit, entry.Credit)

		var next domain.RunningBalance
		if head, seen := heads[entry.AccountID]; seen {
			next = NextRunningBalance(head, change)
		} else {
			next = FirstRunningBalance(change)
		}
		heads[entry.AccountID] = next

		balance := next
		entry.Balance = &balance
	}
	return nil
}
