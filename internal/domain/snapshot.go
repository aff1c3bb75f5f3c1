package domain

import "github.com/google/uuid"

// Snapshot is a point-in-time copy of one company's financial records. The
// statement engine takes the collections it needs by value and never mutates
// them; mutation belongs to whatever store produced the snapshot.
type Snapshot struct {
	CompanyID        uuid.UUID        `json:"companyId"`
	Accounts         []Account        `json:"accounts"`
	BankAccounts     []BankAccount    `json:"bankAccounts"`
	Invoices         []Invoice        `json:"invoices"`
	Expenses         []Expense        `json:"expenses"`
	Transactions     []Transaction    `json:"transactions"`
	BudgetCategories []BudgetCategory `json:"budgetCategories"`
	FixedAssets      []FixedAsset     `json:"fixedAssets"`
}
