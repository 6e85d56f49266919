package utils

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is assumed when an account or subscription carries no code.
const DefaultCurrency = "MXN"

// FormatMoney renders an amount with the symbol and grouping of its currency.
// Example: 1234.5 with USD returns "$1,234.50".
// Unknown codes fall back to the amount with two decimals followed by the code.
func FormatMoney(amount decimal.Decimal, currency string) string {
	code := strings.ToUpper(strings.TrimSpace(currency))
	if code == "" {
		code = DefaultCurrency
	}
	cur := money.GetCurrency(code)
	if cur == nil {
		return amount.StringFixed(2) + " " + code
	}
	return money.New(ToMinorUnits(amount, cur.Fraction), code).Display()
}

// ToMinorUnits scales an amount to the smallest unit of a currency with the
// given number of fraction digits, rounding half away from zero.
func ToMinorUnits(amount decimal.Decimal, fraction int) int64 {
	return amount.Round(int32(fraction)).Shift(int32(fraction)).IntPart()
}

// FormatWithPrecision formats an amount with the given precision
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}
