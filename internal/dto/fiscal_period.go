package dto

import (
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// CreateFiscalPeriodRequest defines the data needed to open a fiscal period.
type CreateFiscalPeriodRequest struct {
	FiscalYear   int       `json:"fiscalYear" binding:"required,min=1900,max=9999"`
	PeriodNumber int       `json:"periodNumber" binding:"required,min=1,max=13"`
	StartDate    time.Time `json:"startDate" binding:"required"`
	EndDate      time.Time `json:"endDate" binding:"required,gtefield=StartDate"`
}

// UpdatePeriodStatusRequest changes a period's status.
type UpdatePeriodStatusRequest struct {
	Status domain.PeriodStatus `json:"status" binding:"required,oneof=OPEN SOFT_CLOSE CLOSED"`
}

// ListFiscalPeriodsParams selects the fiscal year to list.
type ListFiscalPeriodsParams struct {
	Year int `form:"year" binding:"required,min=1900,max=9999"`
}

// FiscalPeriodResponse defines the data returned for a fiscal period.
type FiscalPeriodResponse struct {
	PeriodID       string    `json:"periodID"`
	OrganizationID string    `json:"organizationID"`
	FiscalYear     int       `json:"fiscalYear"`
	PeriodNumber   int       `json:"periodNumber"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	Status         string    `json:"status"`
	LastUpdatedAt  time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy  string    `json:"lastUpdatedBy"`
}

func ToFiscalPeriodResponse(p *domain.FiscalPeriod) FiscalPeriodResponse {
	return FiscalPeriodResponse{
		PeriodID:       p.PeriodID,
		OrganizationID: p.OrganizationID,
		FiscalYear:     p.FiscalYear,
		PeriodNumber:   p.PeriodNumber,
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		Status:         string(p.Status),
		LastUpdatedAt:  p.LastUpdatedAt,
		LastUpdatedBy:  p.LastUpdatedBy,
	}
}

func ToFiscalPeriodResponses(periods []domain.FiscalPeriod) []FiscalPeriodResponse {
	res := make([]FiscalPeriodResponse, len(periods))
	for i := range periods {
		res[i] = ToFiscalPeriodResponse(&periods[i])
	}
	return res
}
