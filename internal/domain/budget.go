package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetType represents the direction of a budget category
type BudgetType string

const (
	BudgetTypeIncome  BudgetType = "INCOME"
	BudgetTypeExpense BudgetType = "EXPENSE"
)

// BudgetCategory represents one budget line with its planned and actual totals.
type BudgetCategory struct {
	ID       uuid.UUID       `json:"id"`
	Name     string          `json:"name"`
	Type     BudgetType      `json:"type"`
	Budgeted decimal.Decimal `json:"budgeted"`
	Actual   decimal.Decimal `json:"actual"`
}

// Variance returns budgeted minus actual. It is always recomputed from the
// current fields, never cached.
func (c BudgetCategory) Variance() decimal.Decimal {
	return c.Budgeted.Sub(c.Actual)
}

// Validate ensures the budget category adheres to domain rules
func (c *BudgetCategory) Validate() error {
	if c.Name == "" {
		return errors.New("budget category name cannot be empty")
	}
	if c.Type != BudgetTypeIncome && c.Type != BudgetTypeExpense {
		return fmt.Errorf("%w: %q", ErrInvalidBudgetType, c.Type)
	}
	return nil
}
