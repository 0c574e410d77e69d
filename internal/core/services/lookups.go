package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/ledger_core/internal/apperrors"
	"github.com/SscSPs/ledger_core/internal/core/domain"
	"github.com/SscSPs/ledger_core/internal/core/ledger"
	portsrepo "github.com/SscSPs/ledger_core/internal/core/ports/repositories"
)

// orgAccounts scopes account lookups to one organization.
type orgAccounts struct {
	repo           portsrepo.AccountReader
	organizationID string
}

func (a orgAccounts) FindAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	acc, err := a.repo.FindAccountByID(ctx, a.organizationID, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return acc, nil
}

// orgDimensions scopes dimension checks to one organization.
type orgDimensions struct {
	repo           portsrepo.DimensionReader
	organizationID string
}

func (d orgDimensions) ValidateDimensions(ctx context.Context, dimensionIDs []string) error {
	missing, err := d.repo.FindMissingDimensions(ctx, d.organizationID, dimensionIDs)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: unknown or inactive dimensions: %s", apperrors.ErrValidation, strings.Join(missing, ", "))
	}
	return nil
}

var (
	_ ledger.AccountSource      = orgAccounts{}
	_ ledger.DimensionValidator = orgDimensions{}
)
