package statement

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wthriver/fiscalflow/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func january2025(t *testing.T) domain.Period {
	t.Helper()
	p, err := domain.NewPeriod(date(2025, 1, 1), date(2025, 1, 31))
	require.NoError(t, err)
	return p
}

func TestComputeProfitAndLoss_RecognizedVsPendingRevenue(t *testing.T) {
	// Paid invoice of 1000 and a draft of 500, one pending expense of 300:
	// revenue=1000, pendingRevenue=500, expenses=300, netIncome=700.
	invoices := []domain.Invoice{
		{ID: uuid.New(), Date: date(2025, 1, 10), Total: "1000", Status: domain.InvoiceStatusPaid},
		{ID: uuid.New(), Date: date(2025, 1, 15), Total: "500", Status: domain.InvoiceStatusDraft},
	}
	expenses := []domain.Expense{
		{ID: uuid.New(), Date: date(2025, 1, 5), Amount: "300", Status: domain.ExpenseStatusPending},
	}

	pnl, err := ComputeProfitAndLoss(invoices, expenses, january2025(t))
	require.NoError(t, err)

	assert.True(t, pnl.Revenue.Equal(decimal.NewFromInt(1000)))
	assert.True(t, pnl.PendingRevenue.Equal(decimal.NewFromInt(500)))
	assert.True(t, pnl.Expenses.Equal(decimal.NewFromInt(300)))
	assert.True(t, pnl.NetIncome.Equal(decimal.NewFromInt(700)))
	assert.True(t, pnl.GrossMargin.Equal(decimal.RequireFromString("0.7")))
	assert.Empty(t, pnl.Warnings)
}

func TestComputeProfitAndLoss_PeriodBoundsInclusive(t *testing.T) {
	invoices := []domain.Invoice{
		{ID: uuid.New(), Date: date(2025, 1, 1), Total: "100", Status: domain.InvoiceStatusPaid},
		{ID: uuid.New(), Date: date(2025, 1, 31), Total: "200", Status: domain.InvoiceStatusPaid},
		{ID: uuid.New(), Date: date(2024, 12, 31), Total: "999", Status: domain.InvoiceStatusPaid},
		{ID: uuid.New(), Date: date(2025, 2, 1), Total: "999", Status: domain.InvoiceStatusPaid},
	}

	pnl, err := ComputeProfitAndLoss(invoices, nil, january2025(t))
	require.NoError(t, err)

	assert.True(t, pnl.Revenue.Equal(decimal.NewFromInt(300)), "only records on or within the bounds count")
}

func TestComputeProfitAndLoss_RejectedExpensesExcluded(t *testing.T) {
	expenses := []domain.Expense{
		{ID: uuid.New(), Date: date(2025, 1, 5), Amount: "300", Status: domain.ExpenseStatusPending},
		{ID: uuid.New(), Date: date(2025, 1, 6), Amount: "150", Status: domain.ExpenseStatusPaid},
		{ID: uuid.New(), Date: date(2025, 1, 7), Amount: "75", Status: domain.ExpenseStatusApproved},
		{ID: uuid.New(), Date: date(2025, 1, 8), Amount: "9999", Status: domain.ExpenseStatusRejected},
	}

	pnl, err := ComputeProfitAndLoss(nil, expenses, january2025(t))
	require.NoError(t, err)

	assert.True(t, pnl.Expenses.Equal(decimal.NewFromInt(525)), "all statuses except rejected accrue")
}

func TestComputeProfitAndLoss_MalformedAmountBecomesWarning(t *testing.T) {
	bad := uuid.New()
	invoices := []domain.Invoice{
		{ID: uuid.New(), Date: date(2025, 1, 10), Total: "$1,000.00", Status: domain.InvoiceStatusPaid},
		{ID: bad, Date: date(2025, 1, 11), Total: "abc", Status: domain.InvoiceStatusPaid},
	}

	pnl, err := ComputeProfitAndLoss(invoices, nil, january2025(t))
	require.NoError(t, err)

	assert.True(t, pnl.Revenue.Equal(decimal.NewFromInt(1000)), "unparsable record excluded from the total")
	require.Len(t, pnl.Warnings, 1)
	assert.Equal(t, bad.String(), pnl.Warnings[0].RecordID)
	assert.Equal(t, "abc", pnl.Warnings[0].Value)
}

func TestComputeProfitAndLoss_ZeroRevenueMarginGuarded(t *testing.T) {
	expenses := []domain.Expense{
		{ID: uuid.New(), Date: date(2025, 1, 5), Amount: "300", Status: domain.ExpenseStatusPaid},
	}

	pnl, err := ComputeProfitAndLoss(nil, expenses, january2025(t))
	require.NoError(t, err)

	assert.True(t, pnl.GrossMargin.IsZero(), "margin must be 0, never NaN or infinity")
	require.NotEmpty(t, pnl.Warnings)
	assert.Contains(t, pnl.Warnings[len(pnl.Warnings)-1].Reason, "denominator is zero")
}

func TestComputeProfitAndLoss_CategoriesNeverEstimated(t *testing.T) {
	invoices := []domain.Invoice{
		{ID: uuid.New(), Date: date(2025, 1, 10), Total: "600", Status: domain.InvoiceStatusPaid, Category: "Sales"},
		{ID: uuid.New(), Date: date(2025, 1, 11), Total: "400", Status: domain.InvoiceStatusPaid},
	}

	pnl, err := ComputeProfitAndLoss(invoices, nil, january2025(t))
	require.NoError(t, err)

	require.Len(t, pnl.RevenueByCategory, 2)
	assert.Equal(t, "sales", pnl.RevenueByCategory[0].Category)
	assert.True(t, pnl.RevenueByCategory[0].Amount.Equal(decimal.NewFromInt(600)))
	assert.Equal(t, Uncategorized, pnl.RevenueByCategory[1].Category)
	assert.True(t, pnl.RevenueByCategory[1].Amount.Equal(decimal.NewFromInt(400)), "uncategorized revenue lands in its own bucket, never split proportionally")
}

func TestComputeProfitAndLoss_Deterministic(t *testing.T) {
	invoices := []domain.Invoice{
		{ID: uuid.New(), Date: date(2025, 1, 10), Total: "1000", Status: domain.InvoiceStatusPaid, Category: "services"},
		{ID: uuid.New(), Date: date(2025, 1, 12), Total: "250", Status: domain.InvoiceStatusSent},
	}
	expenses := []domain.Expense{
		{ID: uuid.New(), Date: date(2025, 1, 5), Amount: "300", Status: domain.ExpenseStatusPaid, Category: "rent"},
	}
	period := january2025(t)

	first, err := ComputeProfitAndLoss(invoices, expenses, period)
	require.NoError(t, err)
	second, err := ComputeProfitAndLoss(invoices, expenses, period)
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical inputs must yield identical output")
}

func TestComputeProfitAndLoss_InvalidPeriodFailsFast(t *testing.T) {
	bad := domain.Period{Start: date(2025, 2, 1), End: date(2025, 1, 1)}
	_, err := ComputeProfitAndLoss(nil, nil, bad)
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}
