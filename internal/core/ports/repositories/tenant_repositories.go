package repositories

import (
	"context"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
)

// TenantReader defines read operations for tenant data
type TenantReader interface {
	// FindTenantByID returns apperrors.ErrNotFound if the tenant does not exist.
	FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error)
}
