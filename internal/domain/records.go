package domain

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceStatus represents the lifecycle state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "DRAFT"
	InvoiceStatusSent    InvoiceStatus = "SENT"
	InvoiceStatusPaid    InvoiceStatus = "PAID"
	InvoiceStatusOverdue InvoiceStatus = "OVERDUE"
)

// ExpenseStatus represents the approval state of an expense
type ExpenseStatus string

const (
	ExpenseStatusPending  ExpenseStatus = "PENDING"
	ExpenseStatusApproved ExpenseStatus = "APPROVED"
	ExpenseStatusPaid     ExpenseStatus = "PAID"
	ExpenseStatusRejected ExpenseStatus = "REJECTED"
)

// TransactionType represents the direction of a bank transaction
type TransactionType string

const (
	TransactionTypeCredit     TransactionType = "CREDIT"
	TransactionTypeDeposit    TransactionType = "DEPOSIT"
	TransactionTypeDebit      TransactionType = "DEBIT"
	TransactionTypeWithdrawal TransactionType = "WITHDRAWAL"
)

// Activity classifies a transaction for cash-flow reporting.
// Records without a tag are treated as operating activity.
type Activity string

const (
	ActivityOperating Activity = "OPERATING"
	ActivityInvesting Activity = "INVESTING"
	ActivityFinancing Activity = "FINANCING"
)

// Invoice represents an invoice record as received from the company store.
// Total is kept as the raw string the form captured; the statement engine
// parses it tolerantly and reports unparsable values as warnings.
type Invoice struct {
	ID       uuid.UUID     `json:"id"`
	Customer string        `json:"customer"`
	Date     time.Time     `json:"date"`
	Total    string        `json:"total"`
	Status   InvoiceStatus `json:"status"`
	Category string        `json:"category"`
}

// Expense represents an expense record as received from the company store.
type Expense struct {
	ID       uuid.UUID     `json:"id"`
	Vendor   string        `json:"vendor"`
	Date     time.Time     `json:"date"`
	Amount   string        `json:"amount"`
	Status   ExpenseStatus `json:"status"`
	Category string        `json:"category"`
}

// Transaction represents a bank transaction record.
type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	AccountID   uuid.UUID       `json:"accountId"`
	Date        time.Time       `json:"date"`
	Amount      string          `json:"amount"`
	Type        TransactionType `json:"type"`
	Activity    Activity        `json:"activity,omitempty"`
	Description string          `json:"description,omitempty"`
}

// Inflow reports whether the transaction increases cash.
func (t Transaction) Inflow() bool {
	return t.Type == TransactionTypeCredit || t.Type == TransactionTypeDeposit
}
