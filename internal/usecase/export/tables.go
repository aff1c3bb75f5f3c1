package export

import (
	"strconv"

	"github.com/wthriver/fiscalflow/internal/usecase/depreciation"
	"github.com/wthriver/fiscalflow/internal/usecase/statement"
)

// ProfitAndLossTable flattens a P&L into CSV rows: a revenue section with
// per-category lines, an expense section, and a summary section.
func ProfitAndLossTable(pnl *statement.ProfitAndLoss) Table {
	t := Table{Name: "profit-and-loss", PeriodKey: pnl.Period.Key()}

	for _, ct := range pnl.RevenueByCategory {
		t.Rows = append(t.Rows, Row{Category: "Revenue", Account: ct.Category, Amount: ct.Amount.String()})
	}
	t.Rows = append(t.Rows, Row{Category: "Revenue", Account: "Subtotal", Amount: pnl.Revenue.String()})
	t.Rows = append(t.Rows, Row{})

	for _, ct := range pnl.ExpenseByCategory {
		t.Rows = append(t.Rows, Row{Category: "Expenses", Account: ct.Category, Amount: ct.Amount.String()})
	}
	t.Rows = append(t.Rows, Row{Category: "Expenses", Account: "Subtotal", Amount: pnl.Expenses.String()})
	t.Rows = append(t.Rows, Row{})

	t.Rows = append(t.Rows,
		Row{Category: "Summary", Account: "Pending Revenue", Amount: pnl.PendingRevenue.String()},
		Row{Category: "Summary", Account: "Net Income", Amount: pnl.NetIncome.String()},
		Row{Category: "Summary", Account: "Gross Margin", Amount: pnl.GrossMargin.String()},
	)

	return t
}

// BalanceSheetTable flattens a balance sheet into asset, liability, and
// equity sections.
func BalanceSheetTable(bs *statement.BalanceSheet) Table {
	t := Table{Name: "balance-sheet", PeriodKey: bs.AsOf.Format("2006-01-02")}

	t.Rows = append(t.Rows,
		Row{Category: "Assets", Account: "Cash", Amount: bs.Current.Cash.String()},
		Row{Category: "Assets", Account: "Accounts Receivable", Amount: bs.Current.AccountsReceivable.String()},
		Row{Category: "Assets", Account: "Fixed Assets", Amount: bs.FixedAssets.String()},
		Row{Category: "Assets", Account: "Subtotal", Amount: bs.TotalAssets.String()},
		Row{},
		Row{Category: "Liabilities", Account: "Accounts Payable", Amount: bs.Liabilities.AccountsPayable.String()},
		Row{Category: "Liabilities", Account: "Subtotal", Amount: bs.TotalLiabilities.String()},
		Row{},
		Row{Category: "Equity", Account: "Subtotal", Amount: bs.TotalEquity.String()},
	)

	return t
}

// CashFlowTable flattens a cash-flow statement into one row per activity.
func CashFlowTable(cf *statement.CashFlow) Table {
	t := Table{Name: "cash-flow", PeriodKey: cf.Period.Key()}

	t.Rows = append(t.Rows,
		Row{Category: "Activities", Account: "Operating", Amount: cf.Operating.String()},
		Row{Category: "Activities", Account: "Investing", Amount: cf.Investing.String()},
		Row{Category: "Activities", Account: "Financing", Amount: cf.Financing.String()},
		Row{Category: "Activities", Account: "Subtotal", Amount: cf.NetCashFlow.String()},
	)

	return t
}

// BudgetVarianceTable flattens the budget report into one section per line
// plus income and expense totals.
func BudgetVarianceTable(report *statement.BudgetVarianceReport, periodKey string) Table {
	t := Table{Name: "budget-variance", PeriodKey: periodKey}

	for _, line := range report.Lines {
		t.Rows = append(t.Rows, Row{Category: string(line.Type), Account: line.Name, Amount: line.Variance.String()})
	}
	t.Rows = append(t.Rows,
		Row{},
		Row{Category: "INCOME", Account: "Subtotal", Amount: report.Income.Variance.String()},
		Row{Category: "EXPENSE", Account: "Subtotal", Amount: report.Expense.Variance.String()},
	)

	return t
}

// DepreciationTable flattens an asset's schedule into one row per year.
func DepreciationTable(assetName string, lines []depreciation.YearLine) Table {
	t := Table{Name: "depreciation-schedule", PeriodKey: assetName}

	total := "0"
	for _, line := range lines {
		t.Rows = append(t.Rows, Row{Category: "Depreciation", Account: yearLabel(line.Year), Amount: line.Depreciation.String()})
		total = line.Accumulated.String()
	}
	t.Rows = append(t.Rows, Row{Category: "Depreciation", Account: "Subtotal", Amount: total})

	return t
}

func yearLabel(year int) string {
	return "Year " + strconv.Itoa(year)
}
