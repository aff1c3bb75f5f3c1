package statement

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wthriver/fiscalflow/internal/domain"
)

// CurrentAssets groups the liquid side of the balance sheet.
type CurrentAssets struct {
	Cash               decimal.Decimal `json:"cash"`
	AccountsReceivable decimal.Decimal `json:"accountsReceivable"`
}

// CurrentLiabilities groups short-term obligations.
type CurrentLiabilities struct {
	AccountsPayable decimal.Decimal `json:"accountsPayable"`
}

// BalanceSheet is the derived statement of financial position.
//
// Equity is a plug figure: assets minus liabilities. This system has no
// double-entry ledger to enforce the accounting equation, so the identity
// TotalAssets == TotalLiabilities + TotalEquity holds by construction.
type BalanceSheet struct {
	AsOf time.Time `json:"asOf"`

	Current     CurrentAssets      `json:"currentAssets"`
	FixedAssets decimal.Decimal    `json:"fixedAssets"`
	Liabilities CurrentLiabilities `json:"currentLiabilities"`

	TotalAssets      decimal.Decimal `json:"totalAssets"`
	TotalLiabilities decimal.Decimal `json:"totalLiabilities"`
	TotalEquity      decimal.Decimal `json:"totalEquity"`

	Warnings []domain.RecordWarning `json:"warnings"`
}

// ComputeBalanceSheet derives the balance sheet as of a date.
//
// Cash sums bank account balances. Receivables sum non-paid invoice totals.
// Fixed assets sum current values of active assets. Payables sum pending
// expense amounts.
func ComputeBalanceSheet(
	bankAccounts []domain.BankAccount,
	invoices []domain.Invoice,
	expenses []domain.Expense,
	fixedAssets []domain.FixedAsset,
	asOf time.Time,
) *BalanceSheet {
	bs := &BalanceSheet{
		AsOf:     asOf,
		Warnings: []domain.RecordWarning{},
	}

	for _, acct := range bankAccounts {
		bs.Current.Cash = bs.Current.Cash.Add(acct.Balance)
	}

	for _, inv := range invoices {
		if inv.Status == domain.InvoiceStatusPaid {
			continue
		}
		total, ok := parseRecordAmount(inv.ID.String(), "total", inv.Total, &bs.Warnings)
		if !ok {
			continue
		}
		bs.Current.AccountsReceivable = bs.Current.AccountsReceivable.Add(total)
	}

	for _, asset := range fixedAssets {
		if asset.Status != domain.AssetStatusActive {
			continue
		}
		bs.FixedAssets = bs.FixedAssets.Add(asset.CurrentValue())
	}

	for _, exp := range expenses {
		if exp.Status != domain.ExpenseStatusPending {
			continue
		}
		amount, ok := parseRecordAmount(exp.ID.String(), "amount", exp.Amount, &bs.Warnings)
		if !ok {
			continue
		}
		bs.Liabilities.AccountsPayable = bs.Liabilities.AccountsPayable.Add(amount)
	}

	bs.TotalAssets = bs.Current.Cash.Add(bs.Current.AccountsReceivable).Add(bs.FixedAssets)
	bs.TotalLiabilities = bs.Liabilities.AccountsPayable
	bs.TotalEquity = bs.TotalAssets.Sub(bs.TotalLiabilities)

	return bs
}
