package repositories

import (
	"context"

	"github.com/SscSPs/ledger_core/internal/core/domain"
)

// OrganizationReader defines read operations for tenants and their members.
type OrganizationReader interface {
	// FindOrganizationByID retrieves an organization.
	FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)

	// FindMembership retrieves a user's membership in an organization.
	// It returns apperrors.ErrNotFound when the user is not a member.
	FindMembership(ctx context.Context, organizationID, userID string) (*domain.Membership, error)
}
