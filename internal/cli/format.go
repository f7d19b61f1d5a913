// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/theirongolddev/rockpile/internal/money"
)

// currency is the ISO code used by FormatMoney. Set once from config at startup.
var currency = money.DefaultCurrency

// SetCurrency sets the currency used by FormatMoney.
func SetCurrency(code string) {
	currency = money.NormalizeCurrency(code)
}

// FormatMoney formats cents in the configured currency with grouping.
// e.g., 123456 -> "$1,234.56"
func FormatMoney(c money.Cents) string {
	return money.Format(c, currency)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatAge formats a timestamp relative to now, e.g. "3 days ago".
func FormatAge(t time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	return humanize.Time(t)
}

// ShortID returns the first 8 characters of a cycle id.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
