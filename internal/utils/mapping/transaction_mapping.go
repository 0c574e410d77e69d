package mapping

import (
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelTransaction converts a domain Transaction header to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:           d.TransactionID,
		OrganizationID:          d.OrganizationID,
		TransactionType:         d.TransactionType,
		TransactionDate:         d.TransactionDate,
		Description:             d.Description,
		Status:                  string(d.Status),
		FiscalPeriodID:          d.FiscalPeriodID,
		TotalDebit:              d.TotalDebit,
		TotalCredit:             d.TotalCredit,
		SubmittedBy:             d.SubmittedBy,
		SubmittedAt:             d.SubmittedAt,
		ApprovedBy:              d.ApprovedBy,
		ApprovedAt:              d.ApprovedAt,
		ApprovalNotes:           d.ApprovalNotes,
		RejectedBy:              d.RejectedBy,
		RejectedAt:              d.RejectedAt,
		RejectionReason:         d.RejectionReason,
		PostedBy:                d.PostedBy,
		PostedAt:                d.PostedAt,
		VoidedBy:                d.VoidedBy,
		VoidedAt:                d.VoidedAt,
		VoidReason:              d.VoidReason,
		ReversedByTransactionID: d.ReversedByTransactionID,
		ReversesTransactionID:   d.ReversesTransactionID,
		AuditFields:             ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction without entries
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:           m.TransactionID,
		OrganizationID:          m.OrganizationID,
		TransactionType:         m.TransactionType,
		TransactionDate:         m.TransactionDate,
		Description:             m.Description,
		Status:                  domain.TransactionStatus(m.Status),
		FiscalPeriodID:          m.FiscalPeriodID,
		TotalDebit:              m.TotalDebit,
		TotalCredit:             m.TotalCredit,
		SubmittedBy:             m.SubmittedBy,
		SubmittedAt:             m.SubmittedAt,
		ApprovedBy:              m.ApprovedBy,
		ApprovedAt:              m.ApprovedAt,
		ApprovalNotes:           m.ApprovalNotes,
		RejectedBy:              m.RejectedBy,
		RejectedAt:              m.RejectedAt,
		RejectionReason:         m.RejectionReason,
		PostedBy:                m.PostedBy,
		PostedAt:                m.PostedAt,
		VoidedBy:                m.VoidedBy,
		VoidedAt:                m.VoidedAt,
		VoidReason:              m.VoidReason,
		ReversedByTransactionID: m.ReversedByTransactionID,
		ReversesTransactionID:   m.ReversesTransactionID,
		AuditFields:             ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTransactionSlice converts a slice of model Transactions to domain Transactions
func ToDomainTransactionSlice(ms []models.Transaction) []domain.Transaction {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	dims := d.DimensionIDs
	if dims == nil {
		dims = []string{}
	}
	m := models.LedgerEntry{
		EntryID:            d.EntryID,
		TransactionID:      d.TransactionID,
		AccountID:          d.AccountID,
		LineNumber:         d.LineNumber,
		SourceCurrency:     d.SourceCurrency,
		SourceAmount:       d.SourceAmount,
		ExchangeRate:       d.ExchangeRate,
		RateMethod:         string(d.RateMethod),
		FunctionalCurrency: d.FunctionalCurrency,
		FunctionalAmount:   d.FunctionalAmount,
		Debit:              d.Debit,
		Credit:             d.Credit,
		Memo:               d.Memo,
		DimensionIDs:       dims,
		CreatedAt:          d.CreatedAt,
	}
	if d.Balance != nil {
		version := d.Balance.Version
		m.AccountVersion = &version
		m.PreviousBalance = decimal.NewNullDecimal(d.Balance.PreviousBalance)
		m.CurrentBalance = decimal.NewNullDecimal(d.Balance.CurrentBalance)
	}
	return m
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	d := domain.LedgerEntry{
		EntryID:            m.EntryID,
		TransactionID:      m.TransactionID,
		AccountID:          m.AccountID,
		LineNumber:         m.LineNumber,
		SourceCurrency:     m.SourceCurrency,
		SourceAmount:       m.SourceAmount,
		ExchangeRate:       m.ExchangeRate,
		RateMethod:         domain.RateMethod(m.RateMethod),
		FunctionalCurrency: m.FunctionalCurrency,
		FunctionalAmount:   m.FunctionalAmount,
		Debit:              m.Debit,
		Credit:             m.Credit,
		Memo:               m.Memo,
		CreatedAt:          m.CreatedAt,
	}
	if len(m.DimensionIDs) > 0 {
		d.DimensionIDs = m.DimensionIDs
	}
	if m.AccountVersion != nil && m.CurrentBalance.Valid {
		d.Balance = &domain.RunningBalance{
			Version:         *m.AccountVersion,
			PreviousBalance: m.PreviousBalance.Decimal,
			CurrentBalance:  m.CurrentBalance.Decimal,
		}
	}
	return d
}
