package models

// Tenant represents a row of the tenants table.
type Tenant struct {
	TenantID     string `db:"tenant_id"`
	Name         string `db:"name"`
	BaseCurrency string `db:"base_currency"`
	IsActive     bool   `db:"is_active"`
	AuditFields
}
