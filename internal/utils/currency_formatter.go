package utils

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// FormatAmount renders d as money in the given ISO 4217 currency, for example
// "$1,250,000.00". Unknown codes, and values with more decimals than the
// currency has, are printed as a plain number followed by the code.
func FormatAmount(d decimal.Decimal, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	cur := money.GetCurrency(code)
	if cur == nil {
		return d.StringFixed(2) + " " + code
	}

	minor := d.Shift(int32(cur.Fraction))
	if !minor.IsInteger() {
		return d.String() + " " + code
	}
	return cur.Formatter().Format(minor.IntPart())
}

// FormatSigned is FormatAmount with an explicit "+" on positive values.
func FormatSigned(d decimal.Decimal, code string) string {
	if d.IsPositive() {
		return "+" + FormatAmount(d, code)
	}
	return FormatAmount(d, code)
}
