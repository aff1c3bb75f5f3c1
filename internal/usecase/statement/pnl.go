package statement

import (
	"github.com/shopspring/decimal"

	"github.com/wthriver/fiscalflow/internal/domain"
)

// ProfitAndLoss is the derived income statement for one reporting period.
// Revenue recognizes paid invoices only; non-paid invoice totals are tracked
// as PendingRevenue and never mixed into Revenue.
type ProfitAndLoss struct {
	Period         domain.Period   `json:"period"`
	Revenue        decimal.Decimal `json:"revenue"`
	PendingRevenue decimal.Decimal `json:"pendingRevenue"`
	Expenses       decimal.Decimal `json:"expenses"`
	NetIncome      decimal.Decimal `json:"netIncome"`
	// GrossMargin is NetIncome / Revenue, zero when revenue is zero.
	GrossMargin decimal.Decimal `json:"grossMargin"`

	RevenueByCategory []CategoryTotal `json:"revenueByCategory"`
	ExpenseByCategory []CategoryTotal `json:"expenseByCategory"`

	Warnings []domain.RecordWarning `json:"warnings"`
}

// ComputeProfitAndLoss derives the P&L from invoices and expenses dated
// within the period, bounds inclusive.
//
// Expense recognition is accrual-basis: every status except REJECTED counts,
// matching the balance-sheet treatment of pending expenses as payables.
func ComputeProfitAndLoss(invoices []domain.Invoice, expenses []domain.Expense, period domain.Period) (*ProfitAndLoss, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}

	pnl := &ProfitAndLoss{
		Period:   period,
		Warnings: []domain.RecordWarning{},
	}

	revenueByCategory := make(map[string]decimal.Decimal)
	expenseByCategory := make(map[string]decimal.Decimal)

	for _, inv := range invoices {
		if !dateInPeriod(inv.ID.String(), inv.Date, period, &pnl.Warnings) {
			continue
		}
		total, ok := parseRecordAmount(inv.ID.String(), "total", inv.Total, &pnl.Warnings)
		if !ok {
			continue
		}

		if inv.Status == domain.InvoiceStatusPaid {
			pnl.Revenue = pnl.Revenue.Add(total)
			key := categoryKey(inv.Category)
			revenueByCategory[key] = revenueByCategory[key].Add(total)
		} else {
			pnl.PendingRevenue = pnl.PendingRevenue.Add(total)
		}
	}

	for _, exp := range expenses {
		if exp.Status == domain.ExpenseStatusRejected {
			continue
		}
		if !dateInPeriod(exp.ID.String(), exp.Date, period, &pnl.Warnings) {
			continue
		}
		amount, ok := parseRecordAmount(exp.ID.String(), "amount", exp.Amount, &pnl.Warnings)
		if !ok {
			continue
		}

		pnl.Expenses = pnl.Expenses.Add(amount)
		key := categoryKey(exp.Category)
		expenseByCategory[key] = expenseByCategory[key].Add(amount)
	}

	pnl.NetIncome = pnl.Revenue.Sub(pnl.Expenses)
	pnl.GrossMargin = safeRatio(pnl.NetIncome, pnl.Revenue, "gross margin", &pnl.Warnings)

	pnl.RevenueByCategory = sortedTotals(revenueByCategory)
	pnl.ExpenseByCategory = sortedTotals(expenseByCategory)

	return pnl, nil
}
