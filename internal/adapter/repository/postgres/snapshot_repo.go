package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wthriver/fiscalflow/internal/domain"
)

// snapshotRepository implements domain.SnapshotRepository
type snapshotRepository struct {
	db *DB
}

// NewSnapshotRepository creates a new snapshot repository
func NewSnapshotRepository(db *DB) domain.SnapshotRepository {
	return &snapshotRepository{db: db}
}

// Load retrieves the full financial snapshot for a company.
// Every collection is ordered by a stable key so identical data produces an
// identical snapshot.
func (r *snapshotRepository) Load(ctx context.Context, companyID uuid.UUID) (*domain.Snapshot, error) {
	var name string
	err := r.db.QueryRowContext(ctx, `SELECT name FROM companies WHERE id = $1`, companyID).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCompanyNotFound, companyID)
		}
		return nil, fmt.Errorf("failed to load company: %w", err)
	}

	snapshot := &domain.Snapshot{CompanyID: companyID}

	if snapshot.Accounts, err = r.loadAccounts(ctx, companyID); err != nil {
		return nil, err
	}
	if snapshot.BankAccounts, err = r.loadBankAccounts(ctx, companyID); err != nil {
		return nil, err
	}
	if snapshot.Invoices, err = r.loadInvoices(ctx, companyID); err != nil {
		return nil, err
	}
	if snapshot.Expenses, err = r.loadExpenses(ctx, companyID); err != nil {
		return nil, err
	}
	if snapshot.Transactions, err = r.loadTransactions(ctx, companyID); err != nil {
		return nil, err
	}
	if snapshot.BudgetCategories, err = r.loadBudgetCategories(ctx, companyID); err != nil {
		return nil, err
	}
	if snapshot.FixedAssets, err = r.loadFixedAssets(ctx, companyID); err != nil {
		return nil, err
	}

	return snapshot, nil
}

func (r *snapshotRepository) loadAccounts(ctx context.Context, companyID uuid.UUID) ([]domain.Account, error) {
	query := `
		SELECT id, name, type, balance
		FROM accounts
		WHERE company_id = $1
		ORDER BY name, id
	`

	rows, err := r.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var account domain.Account
		var balanceStr string
		if err := rows.Scan(&account.ID, &account.Name, &account.Type, &balanceStr); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		if account.Balance, err = decimal.NewFromString(balanceStr); err != nil {
			return nil, fmt.Errorf("failed to parse account balance: %w", err)
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

func (r *snapshotRepository) loadBankAccounts(ctx context.Context, companyID uuid.UUID) ([]domain.BankAccount, error) {
	query := `
		SELECT id, name, balance
		FROM bank_accounts
		WHERE company_id = $1
		ORDER BY name, id
	`

	rows, err := r.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.BankAccount
	for rows.Next() {
		var account domain.BankAccount
		var balanceStr string
		if err := rows.Scan(&account.ID, &account.Name, &balanceStr); err != nil {
			return nil, fmt.Errorf("failed to scan bank account: %w", err)
		}
		if account.Balance, err = decimal.NewFromString(balanceStr); err != nil {
			return nil, fmt.Errorf("failed to parse bank balance: %w", err)
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

func (r *snapshotRepository) loadInvoices(ctx context.Context, companyID uuid.UUID) ([]domain.Invoice, error) {
	query := `
		SELECT id, customer, date, total, status, category
		FROM invoices
		WHERE company_id = $1
		ORDER BY date, id
	`

	rows, err := r.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	var invoices []domain.Invoice
	for rows.Next() {
		var inv domain.Invoice
		if err := rows.Scan(&inv.ID, &inv.Customer, &inv.Date, &inv.Total, &inv.Status, &inv.Category); err != nil {
			return nil, fmt.Errorf("failed to scan invoice: %w", err)
		}
		invoices = append(invoices, inv)
	}

	return invoices, rows.Err()
}

func (r *snapshotRepository) loadExpenses(ctx context.Context, companyID uuid.UUID) ([]domain.Expense, error) {
	query := `
		SELECT id, vendor, date, amount, status, category
		FROM expenses
		WHERE company_id = $1
		ORDER BY date, id
	`

	rows, err := r.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		var exp domain.Expense
		if err := rows.Scan(&exp.ID, &exp.Vendor, &exp.Date, &exp.Amount, &exp.Status, &exp.Category); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, exp)
	}

	return expenses, rows.Err()
}

func (r *snapshotRepository) loadTransactions(ctx context.Context, companyID uuid.UUID) ([]domain.Transaction, error) {
	query := `
		SELECT id, account_id, date, amount, type, activity, description
		FROM transactions
		WHERE company_id = $1
		ORDER BY date, id
	`

	rows, err := r.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var tx domain.Transaction
		var accountID sql.NullString
		if err := rows.Scan(&tx.ID, &accountID, &tx.Date, &tx.Amount, &tx.Type, &tx.Activity, &tx.Description); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		if accountID.Valid {
			parsed, err := uuid.Parse(accountID.String)
			if err != nil {
				return nil, fmt.Errorf("failed to parse transaction account_id: %w", err)
			}
			tx.AccountID = parsed
		}
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}

func (r *snapshotRepository) loadBudgetCategories(ctx context.Context, companyID uuid.UUID) ([]domain.BudgetCategory, error) {
	query := `
		SELECT id, name, type, budgeted, actual
		FROM budget_categories
		WHERE company_id = $1
		ORDER BY name, id
	`

	rows, err := r.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query budget categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.BudgetCategory
	for rows.Next() {
		var cat domain.BudgetCategory
		var budgetedStr, actualStr string
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.Type, &budgetedStr, &actualStr); err != nil {
			return nil, fmt.Errorf("failed to scan budget category: %w", err)
		}
		if cat.Budgeted, err = decimal.NewFromString(budgetedStr); err != nil {
			return nil, fmt.Errorf("failed to parse budgeted amount: %w", err)
		}
		if cat.Actual, err = decimal.NewFromString(actualStr); err != nil {
			return nil, fmt.Errorf("failed to parse actual amount: %w", err)
		}
		categories = append(categories, cat)
	}

	return categories, rows.Err()
}

func (r *snapshotRepository) loadFixedAssets(ctx context.Context, companyID uuid.UUID) ([]domain.FixedAsset, error) {
	query := `
		SELECT id, name, purchase_date, purchase_price, useful_life_years, method, accumulated_depreciation, status
		FROM fixed_assets
		WHERE company_id = $1
		ORDER BY purchase_date, id
	`

	rows, err := r.db.QueryContext(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query fixed assets: %w", err)
	}
	defer rows.Close()

	var assets []domain.FixedAsset
	for rows.Next() {
		var asset domain.FixedAsset
		var priceStr, accumulatedStr string
		if err := rows.Scan(
			&asset.ID,
			&asset.Name,
			&asset.PurchaseDate,
			&priceStr,
			&asset.UsefulLifeYears,
			&asset.Method,
			&accumulatedStr,
			&asset.Status,
		); err != nil {
			return nil, fmt.Errorf("failed to scan fixed asset: %w", err)
		}
		if asset.PurchasePrice, err = decimal.NewFromString(priceStr); err != nil {
			return nil, fmt.Errorf("failed to parse purchase price: %w", err)
		}
		if asset.AccumulatedDepreciation, err = decimal.NewFromString(accumulatedStr); err != nil {
			return nil, fmt.Errorf("failed to parse accumulated depreciation: %w", err)
		}
		assets = append(assets, asset)
	}

	return assets, rows.Err()
}
