package utils

import (
	"strings"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var thousand = decimal.NewFromInt(1000)

// FormatNumber renders a report amount according to the sheet number format.
// isTotal marks group totals, which carry the currency symbol when FormatMoney is "total".
// Example: -1234.5 with precision 2 and parentheses returns "(1,234.50)".
func FormatNumber(amount decimal.Decimal, format domain.NumberFormat, currencyCode string, isTotal bool) string {
	if amount.IsZero() && !format.ShowZero {
		return ""
	}
	if format.DivideOn1000 {
		amount = amount.Div(thousand)
	}

	precision := format.Precision
	if precision < 0 {
		precision = 0
	}
	body := groupThousands(amount.Abs().StringFixed(int32(precision)))

	if withSymbol(format.FormatMoney, isTotal) {
		if symbol := CurrencySymbol(currencyCode); symbol != "" {
			body = symbol + body
		}
	}

	if !amount.IsNegative() || amount.Round(int32(precision)).IsZero() {
		return body
	}
	if format.NegativeFormat == domain.NegativeParentheses {
		return "(" + body + ")"
	}
	return "-" + body
}

// CurrencySymbol returns the English display symbol of an ISO 4217 code, or "" if the code is unknown.
func CurrencySymbol(code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return ""
	}
	return message.NewPrinter(language.English).Sprint(currency.Symbol(unit))
}

// withSymbol decides whether the currency symbol is printed. With FormatMoneyTotal only
// totals get it; on the journal sheet every group debit/credit is a total, while entry
// amounts are returned unformatted.
func withSymbol(mode domain.FormatMoney, isTotal bool) bool {
	switch mode {
	case domain.FormatMoneyAlways:
		return true
	case domain.FormatMoneyTotal:
		return isTotal
	default:
		return false
	}
}

func groupThousands(s string) string {
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	if len(intPart) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(fracPart)
	}
	return b.String()
}
