package common

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatMoney formats a decimal as a dollar amount with comma separators
func FormatMoney(v decimal.Decimal) string {
	negative := v.IsNegative()
	fixed := v.Abs().StringFixed(2)

	whole, cents, _ := strings.Cut(fixed, ".")
	if len(whole) > 3 {
		var parts []string
		for len(whole) > 3 {
			parts = append([]string{whole[len(whole)-3:]}, parts...)
			whole = whole[:len(whole)-3]
		}
		parts = append([]string{whole}, parts...)
		whole = strings.Join(parts, ",")
	}

	if negative {
		return "-$" + whole + "." + cents
	}
	return "$" + whole + "." + cents
}

// FormatSignedMoney formats a dollar amount with +/- prefix
func FormatSignedMoney(v decimal.Decimal) string {
	if v.IsNegative() {
		return FormatMoney(v)
	}
	return "+" + FormatMoney(v)
}

// FormatPct formats a percentage to two decimal places
func FormatPct(v decimal.Decimal) string {
	return v.StringFixed(2) + "%"
}

// FormatSignedPct formats a percentage with +/- prefix
func FormatSignedPct(v decimal.Decimal) string {
	if v.IsNegative() {
		return FormatPct(v)
	}
	return "+" + FormatPct(v)
}
