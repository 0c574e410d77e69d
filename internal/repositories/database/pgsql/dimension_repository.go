package pgsql

import (
	"context"
	"fmt"

	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDimensionRepository struct {
	BaseRepository
}

func newPgxDimensionRepository(pool *pgxpool.Pool) *PgxDimensionRepository {
	return &PgxDimensionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DimensionReader = (*PgxDimensionRepository)(nil)

// FindMissingDimensions returns the requested IDs that are not active dimensions
// of the organization, in request order.
func (r *PgxDimensionRepository) FindMissingDimensions(ctx context.Context, organizationID string, dimensionIDs []string) ([]string, error) {
	if len(dimensionIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT requested.id
		FROM unnest($2::text[]) WITH ORDINALITY AS requested(id, ord)
		LEFT JOIN dimensions d
		       ON d.dimension_id = requested.id AND d.organization_id = $1 AND d.is_active
		WHERE d.dimension_id IS NULL
		ORDER BY requested.ord;`

	rows, err := r.Pool.Query(ctx, query, organizationID, dimensionIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to check dimensions: %w", err)
	}
	defer rows.Close()

	var missing []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan dimension id: %w", err)
		}
		missing = append(missing, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating dimension rows: %w", err)
	}
	return missing, nil
}
