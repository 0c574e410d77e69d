package repositories

import "context"

// DimensionReader checks dimension values attached to ledger entries.
type DimensionReader interface {
	// FindMissingDimensions returns the IDs among dimensionIDs that are unknown
	// or inactive in the organization.
	FindMissingDimensions(ctx context.Context, organizationID string, dimensionIDs []string) ([]string, error)
}
