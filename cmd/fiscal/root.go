package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/wthriver/fiscalflow/internal/domain"
	"github.com/wthriver/fiscalflow/internal/usecase/export"
)

var (
	flagFrom string
	flagTo   string
	flagCSV  string
)

var rootCmd = &cobra.Command{
	Use:   "fiscal",
	Short: "Derive financial statements from company record files",
	Long:  "Reads invoices, expenses, and bank transactions from CSV files and derives P&L, cash-flow, and depreciation reports without a server.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFrom, "from", "", "Period start (YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringVar(&flagTo, "to", "", "Period end (YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringVar(&flagCSV, "csv", "", "Write the report as CSV to this directory instead of printing")
}

func Execute() error {
	return rootCmd.Execute()
}

// period parses the --from/--to flags into a validated reporting period.
func period() (domain.Period, error) {
	start, err := parseFlagDate("from", flagFrom)
	if err != nil {
		return domain.Period{}, err
	}
	end, err := parseFlagDate("to", flagTo)
	if err != nil {
		return domain.Period{}, err
	}
	return domain.NewPeriod(start, end)
}

func parseFlagDate(name, raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, fmt.Errorf("--%s is required (YYYY-MM-DD)", name)
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s: invalid date %q, want YYYY-MM-DD", name, raw)
	}
	return t.UTC(), nil
}

// emit prints the table, or writes it as CSV into the --csv directory.
func emit(table export.Table, warnings []domain.RecordWarning) error {
	if flagCSV == "" {
		fmt.Print(export.HumanSummary(table))
	} else {
		path := filepath.Join(flagCSV, table.Filename())
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create csv file: %w", err)
		}
		defer f.Close()
		if err := export.WriteCSV(f, table); err != nil {
			return err
		}
		fmt.Println("wrote", path)
	}

	if len(warnings) > 0 {
		fmt.Fprintf(os.Stderr, "\n%d record(s) excluded or degraded:\n", len(warnings))
		for _, w := range warnings {
			fmt.Fprintln(os.Stderr, "-", w.String())
		}
	}

	return nil
}
