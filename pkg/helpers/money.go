package helpers

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrAmountPrecision = errors.New("amount has more than two decimal places")

	maxCents = decimal.NewFromInt(1<<31 - 1)
	minCents = decimal.NewFromInt(-(1 << 31))
)

// ParseDollars converts a dollar amount such as "100.50" or "$1,579.95" to cents.
func ParseDollars(s string) (int64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	// exponent notation would make the range checks below rescale to 10^N
	if s == "" || strings.ContainsAny(s, "eE") {
		return 0, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	cents := d.Shift(2)
	if !cents.Equal(cents.Truncate(0)) {
		return 0, ErrAmountPrecision
	}
	// amounts are stored in an INT column
	if cents.GreaterThan(maxCents) || cents.LessThan(minCents) {
		return 0, ErrInvalidAmount
	}
	return cents.IntPart(), nil
}

// CentsToDollars renders cents as a plain decimal string, e.g. 10050 -> "100.50".
func CentsToDollars(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// FormatCurrency renders cents as US dollars with thousands separators, e.g. 157995 -> "$1,579.95".
func FormatCurrency(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}
	s := CentsToDollars(cents)
	whole, frac, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}
