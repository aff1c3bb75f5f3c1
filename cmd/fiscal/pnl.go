package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wthriver/fiscalflow/internal/domain"
	"github.com/wthriver/fiscalflow/internal/usecase/export"
	"github.com/wthriver/fiscalflow/internal/usecase/ingest"
	"github.com/wthriver/fiscalflow/internal/usecase/statement"
)

var (
	flagInvoices string
	flagExpenses string
)

var pnlCmd = &cobra.Command{
	Use:   "pnl",
	Short: "Derive a profit & loss statement from invoice and expense CSVs",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := period()
		if err != nil {
			return err
		}

		invoices, invoiceWarnings, err := readInvoices(flagInvoices)
		if err != nil {
			return err
		}
		expenses, expenseWarnings, err := readExpenses(flagExpenses)
		if err != nil {
			return err
		}

		pnl, err := statement.ComputeProfitAndLoss(invoices, expenses, p)
		if err != nil {
			return err
		}

		warnings := append(invoiceWarnings, expenseWarnings...)
		warnings = append(warnings, pnl.Warnings...)
		return emit(export.ProfitAndLossTable(pnl), warnings)
	},
}

func init() {
	pnlCmd.Flags().StringVar(&flagInvoices, "invoices", "", "Invoice CSV file")
	pnlCmd.Flags().StringVar(&flagExpenses, "expenses", "", "Expense CSV file")
	rootCmd.AddCommand(pnlCmd)
}

func readInvoices(path string) ([]domain.Invoice, []domain.RecordWarning, error) {
	if path == "" {
		return nil, nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open invoices: %w", err)
	}
	defer f.Close()
	return ingest.Invoices(f)
}

func readExpenses(path string) ([]domain.Expense, []domain.RecordWarning, error) {
	if path == "" {
		return nil, nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open expenses: %w", err)
	}
	defer f.Close()
	return ingest.Expenses(f)
}
