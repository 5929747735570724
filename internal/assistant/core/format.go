package core

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// currencySymbols maps ISO currency codes to display symbols. Unknown codes
// fall back to "$".
var currencySymbols = map[string]string{
	"USD": "$",
	"INR": "₹",
	"EUR": "€",
	"GBP": "£",
}

// CurrencySymbol resolves the display symbol for a currency code.
func CurrencySymbol(code string) string {
	if sym, ok := currencySymbols[code]; ok {
		return sym
	}
	return "$"
}

// formatInt renders an integer with thousands separators.
func formatInt(v int64) string {
	return humanize.Comma(v)
}

// formatMoney renders an amount with the currency's symbol, thousands
// separators and two decimals.
func formatMoney(v float64, currency string) string {
	return CurrencySymbol(currency) + humanize.CommafWithDigits(v, 2)
}

// formatPercent renders a fraction in [0,1] as a percentage with one
// decimal, e.g. 0.423 -> "42.3%".
func formatPercent(fraction float64) string {
	return fmt.Sprintf("%.1f%%", fraction*100)
}

// formatRate renders a fraction with two decimals, for rates like CTR where
// sub-percent precision matters.
func formatRate(fraction float64) string {
	return fmt.Sprintf("%.2f%%", fraction*100)
}

// formatDuration renders seconds in display buckets: "45s", "3m 20s",
// "1h 05m".
func formatDuration(seconds float64) string {
	s := int64(math.Round(seconds))
	if s < 0 {
		s = 0
	}
	switch {
	case s < 60:
		return fmt.Sprintf("%ds", s)
	case s < 3600:
		return fmt.Sprintf("%dm %ds", s/60, s%60)
	default:
		return fmt.Sprintf("%dh %02dm", s/3600, (s%3600)/60)
	}
}

// formatCount renders a float that is conceptually a count (e.g. fractional
// conversions) without trailing noise.
func formatCount(v float64) string {
	if v == math.Trunc(v) {
		return formatInt(int64(v))
	}
	return humanize.CommafWithDigits(v, 1)
}
