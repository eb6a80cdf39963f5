package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_engine/internal/models"
	"github.com/SscSPs/ledger_engine/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTenantRepository reads tenant settings.
type PgxTenantRepository struct {
	pool *pgxpool.Pool
}

func newPgxTenantRepository(pool *pgxpool.Pool) *PgxTenantRepository {
	return &PgxTenantRepository{pool: pool}
}

var _ portsrepo.TenantReader = (*PgxTenantRepository)(nil)

// FindTenantByID retrieves a tenant by its ID.
func (r *PgxTenantRepository) FindTenantByID(ctx context.Context, tenantID string) (*domain.Tenant, error) {
	query := `
		SELECT tenant_id, name, COALESCE(base_currency, ''), is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM tenants
		WHERE tenant_id = $1;
	`

	var m models.Tenant
	err := r.pool.QueryRow(ctx, query, tenantID).Scan(
		&m.TenantID,
		&m.Name,
		&m.BaseCurrency,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tenant %s: %w", tenantID, err)
	}

	tenant := mapping.ToDomainTenant(m)
	return &tenant, nil
}
