package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AmountScale is the number of decimal places stored for ledger amounts and balances (NUMERIC(28, 8)).
const AmountScale = 8

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// LocalizeAmount converts amount into the base currency at rate and rounds it to AmountScale,
// so in-memory entries hold exactly the values that get persisted.
// A zero rate means the amount is already local.
func LocalizeAmount(amount, rate decimal.Decimal) decimal.Decimal {
	if !rate.IsZero() {
		amount = amount.Mul(rate)
	}
	return amount.Round(AmountScale)
}
