package accounting

import (
	"fmt"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/shopspring/decimal"
)

const reversalMemoPrefix = "REVERSAL"

// ReversalMemo builds the memo of a reversing entry.
func ReversalMemo(voidReason, originalMemo string) string {
	marker := fmt.Sprintf("%s (%s)", reversalMemoPrefix, voidReason)
	if originalMemo == "" {
		return marker
	}
	return marker + ": " + originalMemo
}

// CreateReversingEntries returns entries that offset original exactly: debit and
// credit are swapped while account, currencies, amounts, rate and dimensions are
// kept. IDs and running balances are left empty; the reversal is a new
// transaction and gets its own when it is posted.
func CreateReversingEntries(original []domain.LedgerEntry, voidReason string) []domain.LedgerEntry {
	reversing := make([]domain.LedgerEntry, len(original))
	for i, entry := range original {
		var dims []string
		if len(entry.DimensionIDs) > 0 {
			dims = append([]string(nil), entry.DimensionIDs...)
		}
		reversing[i] = domain.LedgerEntry{
			AccountID:          entry.AccountID,
			LineNumber:         entry.LineNumber,
			SourceCurrency:     entry.SourceCurrency,
			SourceAmount:       entry.SourceAmount,
			ExchangeRate:       entry.ExchangeRate,
			RateMethod:         entry.RateMethod,
			FunctionalCurrency: entry.FunctionalCurrency,
			FunctionalAmount:   entry.FunctionalAmount,
			Debit:              entry.Credit,
			Credit:             entry.Debit,
			Memo:               ReversalMemo(voidReason, entry.Memo),
			DimensionIDs:       dims,
		}
	}
	return reversing
}

// Totals sums the debit and credit columns of entries.
func Totals(entries []domain.LedgerEntry) (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, e := range entries {
		debit = debit.Add(e.Debit)
		credit = credit.Add(e.Credit)
	}
	return debit, credit
}

// ValidateReversal reports whether entries balance. A false result on entries
// derived from a posted transaction means the stored data is corrupt.
func ValidateReversal(entries []domain.LedgerEntry) bool {
	debit, credit := Totals(entries)
	return debit.Equal(credit)
}
