package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/core/ledger"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_core/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Organizations portsrepo.OrganizationReader
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// AuthorizeMember loads the organization and the user's membership in it and
// checks the membership role against required. Non-members get ErrForbidden.
func (s *BaseService) AuthorizeMember(ctx context.Context, organizationID, userID string, required domain.Role) (*domain.Organization, domain.Actor, error) {
	org, err := s.Organizations.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		return nil, domain.Actor{}, err
	}
	if !org.IsActive {
		return nil, domain.Actor{}, fmt.Errorf("%w: organization %s is inactive", apperrors.ErrForbidden, organizationID)
	}

	membership, err := s.Organizations.FindMembership(ctx, organizationID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "User is not a member of organization", slog.String("user_id", userID), slog.String("organization_id", organizationID))
			return nil, domain.Actor{}, fmt.Errorf("%w: user is not a member of organization %s", apperrors.ErrForbidden, organizationID)
		}
		return nil, domain.Actor{}, err
	}

	actor := membership.Actor()
	if err := ledger.RequireRole(actor.Role, required); err != nil {
		s.LogDebug(ctx, "Role check failed", slog.String("user_id", userID), slog.String("role", actor.Role.String()), slog.String("required", required.String()))
		return nil, domain.Actor{}, err
	}
	return org, actor, nil
}
