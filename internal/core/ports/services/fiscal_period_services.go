package services

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/dto"
)

// FiscalPeriodSvcFacade manages the fiscal calendar of an organization.
type FiscalPeriodSvcFacade interface {
	CreatePeriod(ctx context.Context, organizationID string, req dto.CreateFiscalPeriodRequest, userID string) (*domain.FiscalPeriod, error)
	ChangePeriodStatus(ctx context.Context, organizationID, periodID string, status domain.PeriodStatus, userID string) (*domain.FiscalPeriod, error)
	ListPeriods(ctx context.Context, organizationID string, fiscalYear int, userID string) ([]domain.FiscalPeriod, error)
}
