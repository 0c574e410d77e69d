package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_core/internal/models"
	"github.com/SscSPs/ledger_core/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOrganizationRepository struct {
	BaseRepository
}

func newPgxOrganizationRepository(pool *pgxpool.Pool) *PgxOrganizationRepository {
	return &PgxOrganizationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.OrganizationReader = (*PgxOrganizationRepository)(nil)

// FindOrganizationByID retrieves an organization.
func (r *PgxOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	query := `
		SELECT organization_id, name, functional_currency_code, default_approval_role, is_active,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM organizations
		WHERE organization_id = $1;`

	var m models.Organization
	err := r.Pool.QueryRow(ctx, query, organizationID).Scan(
		&m.OrganizationID,
		&m.Name,
		&m.FunctionalCurrencyCode,
		&m.DefaultApprovalRole,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("organization " + organizationID + " not found")
		}
		return nil, fmt.Errorf("failed to find organization %s: %w", organizationID, err)
	}

	org := mapping.ToDomainOrganization(m)
	return &org, nil
}

// FindMembership retrieves a user's membership in an organization.
func (r *PgxOrganizationRepository) FindMembership(ctx context.Context, organizationID, userID string) (*domain.Membership, error) {
	query := `
		SELECT organization_id, user_id, role, approval_limit, joined_at
		FROM organization_members
		WHERE organization_id = $1 AND user_id = $2;`

	var m models.Membership
	err := r.Pool.QueryRow(ctx, query, organizationID, userID).Scan(
		&m.OrganizationID,
		&m.UserID,
		&m.Role,
		&m.ApprovalLimit,
		&m.JoinedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find membership of %s in %s: %w", userID, organizationID, err)
	}

	membership, err := mapping.ToDomainMembership(m)
	if err != nil {
		return nil, err
	}
	return &membership, nil
}
