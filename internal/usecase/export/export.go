// Package export renders derived statements as flat CSV tables for download
// or file output. Every table is a sequence of {Category, Account, Amount}
// rows with blank rows separating sections and one subtotal row per section.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Row is one CSV line. A zero Row renders as a blank separator line.
type Row struct {
	Category string
	Account  string
	Amount   string
}

// Table is a named report ready for CSV rendering.
type Table struct {
	// Name is the report file stem, e.g. "profit-and-loss".
	Name string
	// PeriodKey identifies the reporting period in the file name.
	PeriodKey string
	Rows      []Row
}

// Filename returns the download name, pattern <report-name>_<period-key>.csv.
func (t Table) Filename() string {
	return fmt.Sprintf("%s_%s.csv", t.Name, t.PeriodKey)
}

// WriteCSV writes the table with a header row. Amounts are plain decimal
// strings without currency formatting.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Category", "Account", "Amount"}); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range t.Rows {
		if err := cw.Write([]string{row.Category, row.Account, row.Amount}); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// HumanSummary renders the table as aligned plain text for terminal output.
func HumanSummary(t Table) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (%s)\n", t.Name, t.PeriodKey)
	for _, row := range t.Rows {
		if row == (Row{}) {
			b.WriteString("\n")
			continue
		}
		fmt.Fprintf(&b, "%-20s %-28s %s\n", row.Category, row.Account, row.Amount)
	}

	return b.String()
}
