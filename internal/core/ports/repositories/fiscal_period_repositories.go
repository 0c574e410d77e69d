package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// FiscalPeriodReader defines read operations for fiscal periods
type FiscalPeriodReader interface {
	// FindPeriodByID retrieves a period within an organization.
	FindPeriodByID(ctx context.Context, organizationID, periodID string) (*domain.FiscalPeriod, error)

	// FindPeriodForDate retrieves the period whose date range contains date.
	FindPeriodForDate(ctx context.Context, organizationID string, date time.Time) (*domain.FiscalPeriod, error)

	// ListPeriods lists the periods of a fiscal year ordered by period number.
	ListPeriods(ctx context.Context, organizationID string, fiscalYear int) ([]domain.FiscalPeriod, error)

	// HasOpenPriorPeriod reports whether a period with a smaller number in the same year is still open.
	HasOpenPriorPeriod(ctx context.Context, organizationID string, fiscalYear, periodNumber int) (bool, error)
}

// FiscalPeriodWriter defines write operations for fiscal periods
type FiscalPeriodWriter interface {
	// SavePeriod persists a new period.
	SavePeriod(ctx context.Context, period domain.FiscalPeriod) error

	// UpdatePeriodStatus changes a period's status if it is still expected.
	// It returns domain.ErrConcurrentModification when the stored status differs.
	UpdatePeriodStatus(ctx context.Context, period domain.FiscalPeriod, expected domain.PeriodStatus) error
}

// FiscalPeriodRepositoryFacade combines all fiscal period repository interfaces
type FiscalPeriodRepositoryFacade interface {
	FiscalPeriodReader
	FiscalPeriodWriter
}
