package statement

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/wthriver/fiscalflow/internal/domain"
)

// BudgetLine is one budget category with its recomputed variance.
type BudgetLine struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Type     domain.BudgetType `json:"type"`
	Budgeted decimal.Decimal   `json:"budgeted"`
	Actual   decimal.Decimal   `json:"actual"`
	Variance decimal.Decimal   `json:"variance"`
	// VariancePercent is Variance / Budgeted, zero when nothing was budgeted.
	VariancePercent decimal.Decimal `json:"variancePercent"`
}

// BudgetTotals sums one side (income or expense) of the budget.
type BudgetTotals struct {
	Budgeted decimal.Decimal `json:"budgeted"`
	Actual   decimal.Decimal `json:"actual"`
	Variance decimal.Decimal `json:"variance"`
}

// BudgetVarianceReport compares budgeted and actual amounts per category.
type BudgetVarianceReport struct {
	Lines   []BudgetLine `json:"lines"`
	Income  BudgetTotals `json:"incomeTotals"`
	Expense BudgetTotals `json:"expenseTotals"`

	Warnings []domain.RecordWarning `json:"warnings"`
}

// ComputeBudgetVariance derives per-category variances and per-type totals.
// Variance is always recomputed from the category's current budgeted and
// actual figures, never read from a stored field.
func ComputeBudgetVariance(categories []domain.BudgetCategory) *BudgetVarianceReport {
	report := &BudgetVarianceReport{
		Lines:    make([]BudgetLine, 0, len(categories)),
		Warnings: []domain.RecordWarning{},
	}

	for _, cat := range categories {
		variance := cat.Variance()
		line := BudgetLine{
			ID:       cat.ID.String(),
			Name:     cat.Name,
			Type:     cat.Type,
			Budgeted: cat.Budgeted,
			Actual:   cat.Actual,
			Variance: variance,
		}
		if cat.Budgeted.IsZero() {
			report.Warnings = append(report.Warnings, domain.RecordWarning{
				RecordID: cat.ID.String(),
				Field:    "budgeted",
				Reason:   "budgeted amount is zero, variance percent reported as 0",
			})
		} else {
			line.VariancePercent = variance.Div(cat.Budgeted)
		}

		switch cat.Type {
		case domain.BudgetTypeIncome:
			report.Income.Budgeted = report.Income.Budgeted.Add(cat.Budgeted)
			report.Income.Actual = report.Income.Actual.Add(cat.Actual)
			report.Income.Variance = report.Income.Variance.Add(variance)
		case domain.BudgetTypeExpense:
			report.Expense.Budgeted = report.Expense.Budgeted.Add(cat.Budgeted)
			report.Expense.Actual = report.Expense.Actual.Add(cat.Actual)
			report.Expense.Variance = report.Expense.Variance.Add(variance)
		default:
			report.Warnings = append(report.Warnings, domain.RecordWarning{
				RecordID: cat.ID.String(),
				Field:    "type",
				Value:    string(cat.Type),
				Reason:   "unknown budget type, category excluded from totals",
			})
		}

		report.Lines = append(report.Lines, line)
	}

	sort.Slice(report.Lines, func(i, j int) bool { return report.Lines[i].Name < report.Lines[j].Name })

	return report
}
