package statement

import (
	"github.com/shopspring/decimal"

	"github.com/wthriver/fiscalflow/internal/domain"
)

// CashFlow is the derived cash-flow statement for one period. Transactions
// are bucketed by their activity tag; untagged transactions count as
// operating activity.
type CashFlow struct {
	Period      domain.Period   `json:"period"`
	Operating   decimal.Decimal `json:"operatingActivities"`
	Investing   decimal.Decimal `json:"investingActivities"`
	Financing   decimal.Decimal `json:"financingActivities"`
	NetCashFlow decimal.Decimal `json:"netCashFlow"`

	Warnings []domain.RecordWarning `json:"warnings"`
}

// ComputeCashFlow derives the cash-flow statement from bank transactions
// dated within the period, bounds inclusive. Credits and deposits contribute
// positively, debits and withdrawals negatively.
func ComputeCashFlow(transactions []domain.Transaction, period domain.Period) (*CashFlow, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}

	cf := &CashFlow{
		Period:   period,
		Warnings: []domain.RecordWarning{},
	}

	for _, tx := range transactions {
		if !dateInPeriod(tx.ID.String(), tx.Date, period, &cf.Warnings) {
			continue
		}
		amount, ok := parseRecordAmount(tx.ID.String(), "amount", tx.Amount, &cf.Warnings)
		if !ok {
			continue
		}

		signed := amount
		if !tx.Inflow() {
			signed = amount.Neg()
		}

		switch tx.Activity {
		case domain.ActivityInvesting:
			cf.Investing = cf.Investing.Add(signed)
		case domain.ActivityFinancing:
			cf.Financing = cf.Financing.Add(signed)
		default:
			cf.Operating = cf.Operating.Add(signed)
		}
	}

	cf.NetCashFlow = cf.Operating.Add(cf.Investing).Add(cf.Financing)

	return cf, nil
}
