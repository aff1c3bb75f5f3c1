// Package ingest reads company records from CSV files, the shape bank and
// bookkeeping tools export. Structural problems (unreadable input, missing
// columns) are errors; bad data in a row becomes a warning and the row is
// skipped, matching the engine's degrade-don't-crash policy.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wthriver/fiscalflow/internal/domain"
)

var dateFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// Invoices reads invoice rows with headers: id,customer,date,total,status,category.
func Invoices(r io.Reader) ([]domain.Invoice, []domain.RecordWarning, error) {
	var invoices []domain.Invoice
	var warnings []domain.RecordWarning

	err := readRows(r, []string{"id", "date", "total", "status"}, func(get func(string) string) {
		id := get("id")
		date, err := parseDate(get("date"))
		if err != nil {
			warnings = append(warnings, dateWarning(id, get("date")))
			return
		}
		invoices = append(invoices, domain.Invoice{
			ID:       recordID(id),
			Customer: get("customer"),
			Date:     date,
			Total:    get("total"),
			Status:   domain.InvoiceStatus(strings.ToUpper(strings.TrimSpace(get("status")))),
			Category: get("category"),
		})
	})
	if err != nil {
		return nil, nil, err
	}

	return invoices, warnings, nil
}

// Expenses reads expense rows with headers: id,vendor,date,amount,status,category.
func Expenses(r io.Reader) ([]domain.Expense, []domain.RecordWarning, error) {
	var expenses []domain.Expense
	var warnings []domain.RecordWarning

	err := readRows(r, []string{"id", "date", "amount", "status"}, func(get func(string) string) {
		id := get("id")
		date, err := parseDate(get("date"))
		if err != nil {
			warnings = append(warnings, dateWarning(id, get("date")))
			return
		}
		expenses = append(expenses, domain.Expense{
			ID:       recordID(id),
			Vendor:   get("vendor"),
			Date:     date,
			Amount:   get("amount"),
			Status:   domain.ExpenseStatus(strings.ToUpper(strings.TrimSpace(get("status")))),
			Category: get("category"),
		})
	})
	if err != nil {
		return nil, nil, err
	}

	return expenses, warnings, nil
}

// Transactions reads bank transaction rows with headers:
// id,date,amount,type,activity,description.
func Transactions(r io.Reader) ([]domain.Transaction, []domain.RecordWarning, error) {
	var transactions []domain.Transaction
	var warnings []domain.RecordWarning

	err := readRows(r, []string{"id", "date", "amount", "type"}, func(get func(string) string) {
		id := get("id")
		date, err := parseDate(get("date"))
		if err != nil {
			warnings = append(warnings, dateWarning(id, get("date")))
			return
		}
		transactions = append(transactions, domain.Transaction{
			ID:          recordID(id),
			Date:        date,
			Amount:      get("amount"),
			Type:        domain.TransactionType(strings.ToUpper(strings.TrimSpace(get("type")))),
			Activity:    domain.Activity(strings.ToUpper(strings.TrimSpace(get("activity")))),
			Description: get("description"),
		})
	})
	if err != nil {
		return nil, nil, err
	}

	return transactions, warnings, nil
}

// readRows parses the header, checks required columns, and calls handle once
// per data row with a header-keyed accessor. Missing optional columns read
// as empty strings.
func readRows(r io.Reader, required []string, handle func(get func(string) string)) error {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	headers, err := cr.Read()
	if err != nil {
		return fmt.Errorf("read csv header: %w", err)
	}

	col := make(map[string]int, len(headers))
	for i, h := range headers {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, name := range required {
		if _, ok := col[name]; !ok {
			return fmt.Errorf("missing column %q", name)
		}
	}

	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read csv row: %w", err)
		}
		handle(func(name string) string {
			i, ok := col[name]
			if !ok || i >= len(rec) {
				return ""
			}
			return rec[i]
		})
	}

	return nil
}

// recordID maps a source row id to a UUID. Real UUIDs pass through; any
// other identifier ("INV-001") hashes to a stable name-based UUID so repeated
// ingests of the same file produce identical records.
func recordID(raw string) uuid.UUID {
	raw = strings.TrimSpace(raw)
	if id, err := uuid.Parse(raw); err == nil {
		return id
	}
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(raw))
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	var lastErr error
	for _, format := range dateFormats {
		t, err := time.Parse(format, raw)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
		lastErr = err
	}
	return time.Time{}, fmt.Errorf("date parse failed: %w", lastErr)
}

func dateWarning(id, value string) domain.RecordWarning {
	return domain.RecordWarning{
		RecordID: id,
		Field:    "date",
		Value:    value,
		Reason:   "date could not be parsed, row skipped",
	}
}
