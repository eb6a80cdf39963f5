package domain

// Tenant is an isolated book of accounts.
type Tenant struct {
	TenantID     string `json:"tenantId"`
	Name         string `json:"name"`
	BaseCurrency string `json:"baseCurrency"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}
