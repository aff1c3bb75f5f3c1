package postgres

import (
	"context"
	"fmt"
)

// Migrate creates the record tables if they do not exist. Raw monetary
// strings from forms are stored as TEXT so the engine's tolerant parser sees
// exactly what was captured; store-owned balances are proper DECIMALs.
func (db *DB) Migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS companies (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS accounts (
			id UUID PRIMARY KEY,
			company_id UUID NOT NULL REFERENCES companies(id),
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			balance DECIMAL NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS bank_accounts (
			id UUID PRIMARY KEY,
			company_id UUID NOT NULL REFERENCES companies(id),
			name TEXT NOT NULL,
			balance DECIMAL NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS invoices (
			id UUID PRIMARY KEY,
			company_id UUID NOT NULL REFERENCES companies(id),
			customer TEXT NOT NULL DEFAULT '',
			date DATE NOT NULL,
			total TEXT NOT NULL,
			status TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS expenses (
			id UUID PRIMARY KEY,
			company_id UUID NOT NULL REFERENCES companies(id),
			vendor TEXT NOT NULL DEFAULT '',
			date DATE NOT NULL,
			amount TEXT NOT NULL,
			status TEXT NOT NULL,
			category TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id UUID PRIMARY KEY,
			company_id UUID NOT NULL REFERENCES companies(id),
			account_id UUID,
			date DATE NOT NULL,
			amount TEXT NOT NULL,
			type TEXT NOT NULL,
			activity TEXT NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS budget_categories (
			id UUID PRIMARY KEY,
			company_id UUID NOT NULL REFERENCES companies(id),
			name TEXT NOT NULL,
			type TEXT NOT NULL,
			budgeted DECIMAL NOT NULL DEFAULT 0,
			actual DECIMAL NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS fixed_assets (
			id UUID PRIMARY KEY,
			company_id UUID NOT NULL REFERENCES companies(id),
			name TEXT NOT NULL,
			purchase_date DATE NOT NULL,
			purchase_price DECIMAL NOT NULL,
			useful_life_years INT NOT NULL,
			method TEXT NOT NULL,
			accumulated_depreciation DECIMAL NOT NULL DEFAULT 0,
			status TEXT NOT NULL DEFAULT 'ACTIVE'
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to run migration: %w", err)
		}
	}

	return nil
}
