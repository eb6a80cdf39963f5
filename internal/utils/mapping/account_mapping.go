package mapping

import (
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/models"
)

// ToDomainAccount converts a model Account to a domain Account.
// A missing normal side is derived from the account type.
func ToDomainAccount(m models.Account) domain.Account {
	normal := domain.AccountNormal(m.AccountNormal)
	if normal == "" {
		normal = domain.NormalFor(domain.AccountType(m.AccountType))
	}
	return domain.Account{
		AccountID:     m.AccountID,
		TenantID:      m.TenantID,
		Code:          m.Code,
		Name:          m.Name,
		AccountType:   domain.AccountType(m.AccountType),
		AccountNormal: normal,
		CurrencyCode:  m.CurrencyCode,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
		Balance:       m.Balance,
	}
}
