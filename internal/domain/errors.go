package domain

import "errors"

var (
	ErrInvalidPeriod             = errors.New("reporting period start is after end")
	ErrInvalidAccountType        = errors.New("invalid account type")
	ErrInvalidBudgetType         = errors.New("invalid budget category type")
	ErrInvalidDepreciationMethod = errors.New("unknown depreciation method")
	ErrInvalidUsefulLife         = errors.New("useful life must be at least one year")
	ErrUnparsableAmount          = errors.New("amount is not a parsable decimal")
	ErrCompanyNotFound           = errors.New("company not found")
)
