package domain_test

import (
	"testing"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCashflowTransactionType_LedgerType(t *testing.T) {
	tests := []struct {
		in   domain.CashflowTransactionType
		want domain.TransactionType
	}{
		{domain.OwnerContribution, "OwnerContribution"},
		{domain.OtherIncome, "OtherIncome"},
		{domain.TransferFromAccount, "TransferFromAccount"},
		{domain.OwnerDrawing, "OwnerDrawing"},
		{domain.OtherExpense, "OtherExpense"},
		{domain.TransferToAccount, "TransferToAccount"},
	}

	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.LedgerType())
		})
	}
}

func TestCashflowLedgerTypes_CoversEveryKind(t *testing.T) {
	types := domain.CashflowLedgerTypes()

	assert.Len(t, types, len(domain.CashflowTransactionTypes()))
	assert.Contains(t, types, domain.TransactionType("OwnerDrawing"))
	assert.Contains(t, types, domain.TransactionType("TransferToAccount"))
}

func TestCashflowTransaction_CashSides(t *testing.T) {
	tests := []struct {
		name       string
		kind       domain.CashflowTransactionType
		wantDebit  bool
		wantCredit bool
	}{
		{"owner contribution brings cash in", domain.OwnerContribution, true, false},
		{"other income brings cash in", domain.OtherIncome, true, false},
		{"transfer from account brings cash in", domain.TransferFromAccount, true, false},
		{"owner drawing takes cash out", domain.OwnerDrawing, false, true},
		{"other expense takes cash out", domain.OtherExpense, false, true},
		{"transfer to account takes cash out", domain.TransferToAccount, false, true},
		{"unknown kind moves nothing", "mystery", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := domain.CashflowTransaction{TransactionType: tt.kind}
			assert.Equal(t, tt.wantDebit, txn.IsCashDebit())
			assert.Equal(t, tt.wantCredit, txn.IsCashCredit())
		})
	}
}

func TestCashflowTransaction_LocalAmount(t *testing.T) {
	plain := domain.CashflowTransaction{Amount: decimal.NewFromInt(100)}
	assert.True(t, plain.LocalAmount().Equal(decimal.NewFromInt(100)))

	converted := domain.CashflowTransaction{Amount: decimal.NewFromInt(100), ExchangeRate: decimal.RequireFromString("1.25")}
	assert.True(t, converted.LocalAmount().Equal(decimal.NewFromInt(125)))

	thirds := domain.CashflowTransaction{Amount: decimal.NewFromInt(2), ExchangeRate: decimal.RequireFromString("0.3333333333")}
	assert.Equal(t, "0.66666667", thirds.LocalAmount().String())
}

func TestLocalizeAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		rate   string
		want   string
	}{
		{name: "zero rate keeps amount", amount: "10.5", rate: "0", want: "10.5"},
		{name: "exact product", amount: "10", rate: "3.5", want: "35"},
		{name: "rounds half up at storage scale", amount: "1", rate: "0.123456785", want: "0.12345679"},
		{name: "rounds down at storage scale", amount: "1", rate: "0.3333333333", want: "0.33333333"},
		{name: "local amount beyond scale is rounded", amount: "0.000000001", rate: "0", want: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.LocalizeAmount(decimal.RequireFromString(tt.amount), decimal.RequireFromString(tt.rate))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestNormalFor(t *testing.T) {
	assert.Equal(t, domain.Debit, domain.NormalFor(domain.Asset))
	assert.Equal(t, domain.Debit, domain.NormalFor(domain.Expense))
	assert.Equal(t, domain.Credit, domain.NormalFor(domain.Liability))
	assert.Equal(t, domain.Credit, domain.NormalFor(domain.Equity))
	assert.Equal(t, domain.Credit, domain.NormalFor(domain.Income))
	assert.Equal(t, domain.AccountNormal(""), domain.NormalFor("BOGUS"))
}
