package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a monetary string as entered in forms or exported by
// banks ("$1,234.50", "€ 950", "-42.00") into a decimal. It strips every
// character except digits, the decimal point, and a leading minus sign before
// parsing. An empty or non-numeric result returns ErrUnparsableAmount; the
// caller decides whether that excludes the record or fails the operation.
func ParseAmount(raw string) (decimal.Decimal, error) {
	var b strings.Builder
	negative := false

	for i, r := range strings.TrimSpace(raw) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.':
			b.WriteRune(r)
		case r == '-' && i == 0:
			negative = true
		}
	}

	if b.Len() == 0 {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnparsableAmount, raw)
	}

	cleaned := b.String()
	if negative {
		cleaned = "-" + cleaned
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrUnparsableAmount, raw)
	}

	return d, nil
}
