package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/core/ledger"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_core/internal/core/ports/services"
	"github.com/SscSPs/ledger_core/internal/dto"
	"github.com/google/uuid"
)

type fiscalPeriodService struct {
	BaseService
	periodRepo portsrepo.FiscalPeriodRepositoryFacade
}

// NewFiscalPeriodService creates a new FiscalPeriodService.
func NewFiscalPeriodService(periodRepo portsrepo.FiscalPeriodRepositoryFacade, orgs portsrepo.OrganizationReader) portssvc.FiscalPeriodSvcFacade {
	return &fiscalPeriodService{
		BaseService: BaseService{Organizations: orgs},
		periodRepo:  periodRepo,
	}
}

var _ portssvc.FiscalPeriodSvcFacade = (*fiscalPeriodService)(nil)

// CreatePeriod opens a new fiscal period.
func (s *fiscalPeriodService) CreatePeriod(ctx context.Context, organizationID string, req dto.CreateFiscalPeriodRequest, userID string) (*domain.FiscalPeriod, error) {
	if _, _, err := s.AuthorizeMember(ctx, organizationID, userID, domain.RoleAccountant); err != nil {
		return nil, err
	}

	start, end := dateOnly(req.StartDate), dateOnly(req.EndDate)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date must not be before start date", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	period := domain.FiscalPeriod{
		PeriodID:       uuid.NewString(),
		OrganizationID: organizationID,
		FiscalYear:     req.FiscalYear,
		PeriodNumber:   req.PeriodNumber,
		StartDate:      start,
		EndDate:        end,
		Status:         domain.PeriodOpen,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	// The repository rejects duplicate numbers and overlapping date ranges with ErrDuplicate.
	if err := s.periodRepo.SavePeriod(ctx, period); err != nil {
		s.LogError(ctx, err, "Failed to save fiscal period", slog.Int("fiscal_year", req.FiscalYear), slog.Int("period_number", req.PeriodNumber))
		return nil, err
	}

	s.LogInfo(ctx, "Fiscal period created", slog.String("period_id", period.PeriodID))
	return &period, nil
}

// ChangePeriodStatus moves a period between Open, SoftClose and Closed.
// Closing for good is reserved to admins and owners.
func (s *fiscalPeriodService) ChangePeriodStatus(ctx context.Context, organizationID, periodID string, status domain.PeriodStatus, userID string) (*domain.FiscalPeriod, error) {
	_, actor, err := s.AuthorizeMember(ctx, organizationID, userID, domain.RoleAccountant)
	if err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown period status %q", apperrors.ErrValidation, status)
	}
	if status == domain.PeriodClosed {
		if err := ledger.RequireRole(actor.Role, domain.RoleAdmin); err != nil {
			return nil, err
		}
	}

	period, err := s.periodRepo.FindPeriodByID(ctx, organizationID, periodID)
	if err != nil {
		return nil, err
	}

	priorOpen := false
	if status != domain.PeriodOpen {
		priorOpen, err = s.periodRepo.HasOpenPriorPeriod(ctx, organizationID, period.FiscalYear, period.PeriodNumber)
		if err != nil {
			return nil, fmt.Errorf("failed to check earlier periods: %w", err)
		}
	}

	if err := ledger.ValidatePeriodTransition(period.Status, status, priorOpen); err != nil {
		return nil, err
	}

	previous := period.Status
	period.Status = status
	period.LastUpdatedAt = time.Now().UTC()
	period.LastUpdatedBy = userID

	if err := s.periodRepo.UpdatePeriodStatus(ctx, *period, previous); err != nil {
		s.LogError(ctx, err, "Failed to update fiscal period status", slog.String("period_id", periodID))
		return nil, err
	}

	s.LogInfo(ctx, "Fiscal period status changed",
		slog.String("period_id", periodID),
		slog.String("from", string(previous)),
		slog.String("to", string(status)),
	)
	return period, nil
}

// ListPeriods lists the periods of one fiscal year.
func (s *fiscalPeriodService) ListPeriods(ctx context.Context, organizationID string, fiscalYear int, userID string) ([]domain.FiscalPeriod, error) {
	if _, _, err := s.AuthorizeMember(ctx, organizationID, userID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.periodRepo.ListPeriods(ctx, organizationID, fiscalYear)
}
