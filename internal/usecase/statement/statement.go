// Package statement derives financial statements from raw company records.
// Every function is pure: identical inputs produce identical outputs, inputs
// are never mutated, and dirty records degrade into warnings instead of
// failing the report. The only hard failure is an inverted reporting period.
package statement

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wthriver/fiscalflow/internal/domain"
)

// Uncategorized is the bucket for records without an explicit category.
// Records are never split across named categories by estimation.
const Uncategorized = "uncategorized"

// CategoryTotal is one named bucket in a statement breakdown.
type CategoryTotal struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// categoryKey normalizes a record category to a bucket name.
func categoryKey(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return Uncategorized
	}
	return key
}

// sortedTotals flattens a category map into a slice ordered by category name,
// so statement output is deterministic for identical inputs.
func sortedTotals(m map[string]decimal.Decimal) []CategoryTotal {
	totals := make([]CategoryTotal, 0, len(m))
	for cat, amt := range m {
		totals = append(totals, CategoryTotal{Category: cat, Amount: amt})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Category < totals[j].Category })
	return totals
}

// safeRatio divides num by denom, returning zero and a warning when the
// denominator is zero. Output never contains NaN or infinities.
func safeRatio(num, denom decimal.Decimal, what string, warnings *[]domain.RecordWarning) decimal.Decimal {
	if denom.IsZero() {
		*warnings = append(*warnings, domain.RecordWarning{
			Reason: what + " denominator is zero, ratio reported as 0",
		})
		return decimal.Zero
	}
	return num.Div(denom)
}

// parseRecordAmount parses a raw monetary string for a record. Unparsable or
// negative amounts exclude the record and add a warning; the bool reports
// whether the amount is usable.
func parseRecordAmount(recordID, field, raw string, warnings *[]domain.RecordWarning) (decimal.Decimal, bool) {
	amt, err := domain.ParseAmount(raw)
	if err != nil {
		*warnings = append(*warnings, domain.RecordWarning{
			RecordID: recordID,
			Field:    field,
			Value:    raw,
			Reason:   "amount could not be parsed, record excluded",
		})
		return decimal.Zero, false
	}
	if amt.IsNegative() {
		*warnings = append(*warnings, domain.RecordWarning{
			RecordID: recordID,
			Field:    field,
			Value:    raw,
			Reason:   "amount is negative, record excluded",
		})
		return decimal.Zero, false
	}
	return amt, true
}

// dateInPeriod checks a record date against the period. An unset date means
// the source could not parse it, so the record is excluded with a warning.
// Dates outside the period are a normal filter miss, not a warning.
func dateInPeriod(recordID string, date time.Time, period domain.Period, warnings *[]domain.RecordWarning) bool {
	if date.IsZero() {
		*warnings = append(*warnings, domain.RecordWarning{
			RecordID: recordID,
			Field:    "date",
			Reason:   "date is not set, record excluded",
		})
		return false
	}
	return period.Contains(date)
}
