package statement

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wthriver/fiscalflow/internal/domain"
)

func TestComputeCashFlow_SignsFollowTransactionType(t *testing.T) {
	transactions := []domain.Transaction{
		{ID: uuid.New(), Date: date(2025, 1, 5), Amount: "1000", Type: domain.TransactionTypeDeposit},
		{ID: uuid.New(), Date: date(2025, 1, 10), Amount: "250", Type: domain.TransactionTypeCredit},
		{ID: uuid.New(), Date: date(2025, 1, 15), Amount: "400", Type: domain.TransactionTypeDebit},
		{ID: uuid.New(), Date: date(2025, 1, 20), Amount: "100", Type: domain.TransactionTypeWithdrawal},
	}

	cf, err := ComputeCashFlow(transactions, january2025(t))
	require.NoError(t, err)

	assert.True(t, cf.Operating.Equal(decimal.NewFromInt(750)), "1000 + 250 - 400 - 100")
	assert.True(t, cf.Investing.IsZero())
	assert.True(t, cf.Financing.IsZero())
	assert.True(t, cf.NetCashFlow.Equal(decimal.NewFromInt(750)))
}

func TestComputeCashFlow_ActivityTagsBucketTransactions(t *testing.T) {
	transactions := []domain.Transaction{
		{ID: uuid.New(), Date: date(2025, 1, 5), Amount: "900", Type: domain.TransactionTypeDeposit},
		{ID: uuid.New(), Date: date(2025, 1, 10), Amount: "300", Type: domain.TransactionTypeDebit, Activity: domain.ActivityInvesting},
		{ID: uuid.New(), Date: date(2025, 1, 12), Amount: "500", Type: domain.TransactionTypeCredit, Activity: domain.ActivityFinancing},
	}

	cf, err := ComputeCashFlow(transactions, january2025(t))
	require.NoError(t, err)

	assert.True(t, cf.Operating.Equal(decimal.NewFromInt(900)), "untagged transactions default to operating")
	assert.True(t, cf.Investing.Equal(decimal.NewFromInt(-300)))
	assert.True(t, cf.Financing.Equal(decimal.NewFromInt(500)))
	assert.True(t, cf.NetCashFlow.Equal(decimal.NewFromInt(1100)))
}

func TestComputeCashFlow_OutOfPeriodAndMalformedExcluded(t *testing.T) {
	bad := uuid.New()
	transactions := []domain.Transaction{
		{ID: uuid.New(), Date: date(2024, 12, 31), Amount: "5000", Type: domain.TransactionTypeDeposit},
		{ID: bad, Date: date(2025, 1, 10), Amount: "n/a", Type: domain.TransactionTypeDeposit},
		{ID: uuid.New(), Date: date(2025, 1, 11), Amount: "120", Type: domain.TransactionTypeDeposit},
	}

	cf, err := ComputeCashFlow(transactions, january2025(t))
	require.NoError(t, err)

	assert.True(t, cf.NetCashFlow.Equal(decimal.NewFromInt(120)))
	require.Len(t, cf.Warnings, 1)
	assert.Equal(t, bad.String(), cf.Warnings[0].RecordID)
}

func TestComputeCashFlow_InvalidPeriodFailsFast(t *testing.T) {
	bad := domain.Period{Start: date(2025, 2, 1), End: date(2025, 1, 1)}
	_, err := ComputeCashFlow(nil, bad)
	assert.ErrorIs(t, err, domain.ErrInvalidPeriod)
}
