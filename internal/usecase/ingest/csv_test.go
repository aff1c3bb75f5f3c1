package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wthriver/fiscalflow/internal/domain"
)

func TestInvoices_ReadsWellFormedRows(t *testing.T) {
	input := strings.Join([]string{
		"id,customer,date,total,status,category",
		"INV-001,Acme,2025-01-10,\"$1,000.00\",paid,sales",
		"INV-002,Globex,2025-01-15,500,draft,",
	}, "\n")

	invoices, warnings, err := Invoices(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, invoices, 2)
	assert.Empty(t, warnings)

	assert.Equal(t, "Acme", invoices[0].Customer)
	assert.Equal(t, domain.InvoiceStatusPaid, invoices[0].Status)
	assert.Equal(t, "$1,000.00", invoices[0].Total, "raw amount is preserved for the engine's tolerant parser")
	assert.Equal(t, domain.InvoiceStatusDraft, invoices[1].Status)
}

func TestInvoices_StableIDsAcrossIngests(t *testing.T) {
	input := "id,date,total,status\nINV-001,2025-01-10,100,paid\n"

	first, _, err := Invoices(strings.NewReader(input))
	require.NoError(t, err)
	second, _, err := Invoices(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, first[0].ID, second[0].ID, "non-UUID source ids must hash deterministically")
}

func TestInvoices_BadDateBecomesWarning(t *testing.T) {
	input := strings.Join([]string{
		"id,date,total,status",
		"INV-001,not-a-date,100,paid",
		"INV-002,2025-01-15,200,paid",
	}, "\n")

	invoices, warnings, err := Invoices(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, invoices, 1, "bad row skipped, good row kept")
	require.Len(t, warnings, 1)
	assert.Equal(t, "INV-001", warnings[0].RecordID)
	assert.Equal(t, "date", warnings[0].Field)
}

func TestInvoices_MissingColumnIsAnError(t *testing.T) {
	input := "id,date,status\nINV-001,2025-01-10,paid\n"

	_, _, err := Invoices(strings.NewReader(input))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "total")
}

func TestExpenses_ReadsStatusAndCategory(t *testing.T) {
	input := strings.Join([]string{
		"id,vendor,date,amount,status,category",
		"EXP-1,Landlord,2025-01-01,950,pending,rent",
		"EXP-2,Cafe,2025-01-02,12.50,rejected,meals",
	}, "\n")

	expenses, warnings, err := Expenses(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, expenses, 2)

	assert.Equal(t, domain.ExpenseStatusPending, expenses[0].Status)
	assert.Equal(t, "rent", expenses[0].Category)
	assert.Equal(t, domain.ExpenseStatusRejected, expenses[1].Status)
}

func TestTransactions_ActivityTagOptional(t *testing.T) {
	input := strings.Join([]string{
		"id,date,amount,type,activity,description",
		"TX-1,2025-01-05,1000,deposit,,client payment",
		"TX-2,2025-01-06,300,debit,investing,new laptop",
	}, "\n")

	transactions, warnings, err := Transactions(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, transactions, 2)

	assert.Equal(t, domain.Activity(""), transactions[0].Activity)
	assert.True(t, transactions[0].Inflow())
	assert.Equal(t, domain.ActivityInvesting, transactions[1].Activity)
	assert.False(t, transactions[1].Inflow())
}

func TestTransactions_FlexibleDateFormats(t *testing.T) {
	input := strings.Join([]string{
		"id,date,amount,type",
		"TX-1,2025-01-05,100,deposit",
		"TX-2,01/31/2025,200,deposit",
		"TX-3,2025-01-05 13:45:00,300,deposit",
	}, "\n")

	transactions, warnings, err := Transactions(strings.NewReader(input))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	require.Len(t, transactions, 3)

	for _, tx := range transactions {
		assert.Equal(t, 0, tx.Date.Hour(), "dates normalize to midnight UTC")
	}
}
