package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_core/internal/models"
	"github.com/SscSPs/ledger_core/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const fiscalPeriodColumns = `
	period_id, organization_id, fiscal_year, period_number, start_date, end_date, status,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxFiscalPeriodRepository struct {
	BaseRepository
}

func newPgxFiscalPeriodRepository(pool *pgxpool.Pool) *PgxFiscalPeriodRepository {
	return &PgxFiscalPeriodRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FiscalPeriodRepositoryFacade = (*PgxFiscalPeriodRepository)(nil)

func scanFiscalPeriod(row pgx.Row) (domain.FiscalPeriod, error) {
	var m models.FiscalPeriod
	err := row.Scan(
		&m.PeriodID, &m.OrganizationID, &m.FiscalYear, &m.PeriodNumber,
		&m.StartDate, &m.EndDate, &m.Status,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return domain.FiscalPeriod{}, err
	}
	return mapping.ToDomainFiscalPeriod(m), nil
}

func (r *PgxFiscalPeriodRepository) findOne(ctx context.Context, query string, args ...any) (*domain.FiscalPeriod, error) {
	period, err := scanFiscalPeriod(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find fiscal period: %w", err)
	}
	return &period, nil
}

// FindPeriodByID retrieves a period within an organization.
func (r *PgxFiscalPeriodRepository) FindPeriodByID(ctx context.Context, organizationID, periodID string) (*domain.FiscalPeriod, error) {
	return r.findOne(ctx, `SELECT `+fiscalPeriodColumns+`
		FROM fiscal_periods
		WHERE organization_id = $1 AND period_id = $2;`, organizationID, periodID)
}

// FindPeriodForDate retrieves the period whose range contains date, ends inclusive.
func (r *PgxFiscalPeriodRepository) FindPeriodForDate(ctx context.Context, organizationID string, date time.Time) (*domain.FiscalPeriod, error) {
	return r.findOne(ctx, `SELECT `+fiscalPeriodColumns+`
		FROM fiscal_periods
		WHERE organization_id = $1 AND start_date <= $2::date AND end_date >= $2::date
		ORDER BY start_date
		LIMIT 1;`, organizationID, date)
}

// ListPeriods lists the periods of a fiscal year by period number.
func (r *PgxFiscalPeriodRepository) ListPeriods(ctx context.Context, organizationID string, fiscalYear int) ([]domain.FiscalPeriod, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+fiscalPeriodColumns+`
		FROM fiscal_periods
		WHERE organization_id = $1 AND fiscal_year = $2
		ORDER BY period_number;`, organizationID, fiscalYear)
	if err != nil {
		return nil, fmt.Errorf("failed to list fiscal periods: %w", err)
	}
	defer rows.Close()

	periods := []domain.FiscalPeriod{}
	for rows.Next() {
		p, err := scanFiscalPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fiscal period: %w", err)
		}
		periods = append(periods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fiscal periods: %w", err)
	}
	return periods, nil
}

// HasOpenPriorPeriod reports whether an earlier period of the same year is still open.
func (r *PgxFiscalPeriodRepository) HasOpenPriorPeriod(ctx context.Context, organizationID string, fiscalYear, periodNumber int) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM fiscal_periods
			WHERE organization_id = $1 AND fiscal_year = $2 AND period_number < $3 AND status = $4
		);`, organizationID, fiscalYear, periodNumber, string(domain.PeriodOpen)).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check prior periods: %w", err)
	}
	return exists, nil
}

// SavePeriod inserts a new period unless its number is taken or its range
// overlaps another period of the organization.
func (r *PgxFiscalPeriodRepository) SavePeriod(ctx context.Context, period domain.FiscalPeriod) error {
	m := mapping.ToModelFiscalPeriod(period)
	tag, err := r.Pool.Exec(ctx, `
		INSERT INTO fiscal_periods (
			period_id, organization_id, fiscal_year, period_number, start_date, end_date, status,
			created_at, created_by, last_updated_at, last_updated_by
		)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		WHERE NOT EXISTS (
			SELECT 1 FROM fiscal_periods
			WHERE organization_id = $2 AND start_date <= $6::date AND end_date >= $5::date
		);`,
		m.PeriodID, m.OrganizationID, m.FiscalYear, m.PeriodNumber, m.StartDate, m.EndDate, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: period %d of %d already exists", apperrors.ErrDuplicate, m.PeriodNumber, m.FiscalYear)
		}
		return fmt.Errorf("failed to save fiscal period: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: period dates overlap an existing period", apperrors.ErrDuplicate)
	}
	return nil
}

// UpdatePeriodStatus changes a period's status if it still has the expected one.
func (r *PgxFiscalPeriodRepository) UpdatePeriodStatus(ctx context.Context, period domain.FiscalPeriod, expected domain.PeriodStatus) error {
	tag, err := r.Pool.Exec(ctx, `
		UPDATE fiscal_periods
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE organization_id = $1 AND period_id = $2 AND status = $6;`,
		period.OrganizationID, period.PeriodID, string(period.Status),
		period.LastUpdatedAt, period.LastUpdatedBy, string(expected),
	)
	if err != nil {
		return fmt.Errorf("failed to update fiscal period status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrConcurrentModification
	}
	return nil
}
