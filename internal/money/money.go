// Package money handles integer cent amounts and their dollar representations.
//
// Amounts are stored and computed as whole cents. Dollar strings are only
// produced for display and only parsed at the input boundary.
package money

import (
	"errors"
	"fmt"
	"strings"

	gomoney "github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when no (or an unknown) currency code is configured.
const DefaultCurrency = gomoney.USD

var (
	// ErrInvalidAmount is returned for input that is not a decimal number.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrNegativeAmount is returned for amounts below zero.
	ErrNegativeAmount = errors.New("amount must not be negative")
	// ErrAmountTooLarge is returned for amounts above MaxAmount.
	ErrAmountTooLarge = errors.New("amount is too large")
)

// MaxAmount is the largest amount accepted for a single income, expense
// or balance: one trillion dollars. Sums of up to a few thousand such
// amounts still fit in an int64.
const MaxAmount Cents = 100_000_000_000_000

// maxExponent bounds the exponent of parsed input, so "1e100000000" is
// rejected before it is expanded into a huge integer.
const maxExponent = 30

var maxCents = decimal.NewFromInt(int64(MaxAmount))

// Cents is an amount of money in hundredths of a dollar.
type Cents int64

// String renders the amount as dollars with exactly two decimals, e.g. 12345 -> "123.45".
func (c Cents) String() string {
	v := int64(c)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Dollars renders the amount with a leading dollar sign, as used in console lines.
func (c Cents) Dollars() string {
	return "$" + c.String()
}

// ParseDollars converts a dollar string to cents.
//
// The value is multiplied by 100 and rounded half away from zero, so
// "12.345" -> 1235 and "0.005" -> 1. Zero is accepted; negative values
// and non-numeric input are not.
func ParseDollars(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	if d.IsNegative() {
		return 0, ErrNegativeAmount
	}
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	cents := d.Shift(2).Round(0)
	if cents.GreaterThan(maxCents) {
		return 0, fmt.Errorf("%w: %q", ErrAmountTooLarge, s)
	}
	return Cents(cents.IntPart()), nil
}

// Format renders the amount in the given ISO currency with grouping,
// e.g. 123456 in USD -> "$1,234.56".
func Format(c Cents, currency string) string {
	return gomoney.New(int64(c), NormalizeCurrency(currency)).Display()
}

// NormalizeCurrency upper-cases a currency code and falls back to
// DefaultCurrency when the code is unknown.
func NormalizeCurrency(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" || gomoney.GetCurrency(code) == nil {
		return DefaultCurrency
	}
	return code
}

// KnownCurrency reports whether code names an ISO currency.
func KnownCurrency(code string) bool {
	code = strings.ToUpper(strings.TrimSpace(code))
	return code != "" && gomoney.GetCurrency(code) != nil
}
