// Package money handles fixed-point currency amounts.
//
// Amounts are stored as int64 paise so repeated additions never drift the
// way binary floats do. Decimal strings from forms and CSV uploads go
// through shopspring/decimal exactly once, at the boundary.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParsePaise parses a rupee amount string ("123.45", "-1,234.50", "₹200")
// into signed paise.
func ParsePaise(s string) (int64, error) {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "₹")
	clean = strings.ReplaceAll(clean, ",", "")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

// FormatRupees renders paise as a rupee string with two decimals.
func FormatRupees(paise int64) string {
	return decimal.NewFromInt(paise).Div(decimal.NewFromInt(100)).StringFixed(2)
}
