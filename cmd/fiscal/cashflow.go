package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wthriver/fiscalflow/internal/usecase/export"
	"github.com/wthriver/fiscalflow/internal/usecase/ingest"
	"github.com/wthriver/fiscalflow/internal/usecase/statement"
)

var flagTransactions string

var cashflowCmd = &cobra.Command{
	Use:   "cashflow",
	Short: "Derive a cash-flow statement from a bank transaction CSV",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := period()
		if err != nil {
			return err
		}
		if flagTransactions == "" {
			return fmt.Errorf("--transactions is required")
		}

		f, err := os.Open(flagTransactions)
		if err != nil {
			return fmt.Errorf("open transactions: %w", err)
		}
		defer f.Close()

		transactions, ingestWarnings, err := ingest.Transactions(f)
		if err != nil {
			return err
		}

		cf, err := statement.ComputeCashFlow(transactions, p)
		if err != nil {
			return err
		}

		return emit(export.CashFlowTable(cf), append(ingestWarnings, cf.Warnings...))
	},
}

func init() {
	cashflowCmd.Flags().StringVar(&flagTransactions, "transactions", "", "Transaction CSV file")
	rootCmd.AddCommand(cashflowCmd)
}
