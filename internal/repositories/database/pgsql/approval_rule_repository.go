package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_core/internal/models"
	"github.com/SscSPs/ledger_core/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxApprovalRuleRepository struct {
	BaseRepository
}

func newPgxApprovalRuleRepository(pool *pgxpool.Pool) *PgxApprovalRuleRepository {
	return &PgxApprovalRuleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ApprovalRuleRepositoryFacade = (*PgxApprovalRuleRepository)(nil)

// SaveApprovalRule inserts a new rule.
func (r *PgxApprovalRuleRepository) SaveApprovalRule(ctx context.Context, rule domain.ApprovalRule) error {
	m := mapping.ToModelApprovalRule(rule)
	_, err := r.Pool.Exec(ctx, `
		INSERT INTO approval_rules (
			rule_id, organization_id, name, min_amount, max_amount, transaction_types, required_role, priority,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`,
		m.RuleID, m.OrganizationID, m.Name, m.MinAmount, m.MaxAmount, m.TransactionTypes, m.RequiredRole, m.Priority,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: approval rule %q already exists", apperrors.ErrDuplicate, m.Name)
		}
		return apperrors.NewAppError(500, "failed to save approval rule", err)
	}
	return nil
}

// ListApprovalRules returns the rules by priority, then creation time.
func (r *PgxApprovalRuleRepository) ListApprovalRules(ctx context.Context, organizationID string) ([]domain.ApprovalRule, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT rule_id, organization_id, name, min_amount, max_amount, transaction_types, required_role, priority,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM approval_rules
		WHERE organization_id = $1
		ORDER BY priority, created_at, rule_id;`, organizationID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to list approval rules", err)
	}
	defer rows.Close()

	rules := []domain.ApprovalRule{}
	for rows.Next() {
		var m models.ApprovalRule
		if err := rows.Scan(
			&m.RuleID, &m.OrganizationID, &m.Name, &m.MinAmount, &m.MaxAmount, &m.TransactionTypes, &m.RequiredRole, &m.Priority,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan approval rule", err)
		}
		rule, err := mapping.ToDomainApprovalRule(m)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating approval rules: %w", err)
	}
	return rules, nil
}
