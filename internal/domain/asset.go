package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DepreciationMethod represents how a fixed asset loses value over time
type DepreciationMethod string

const (
	DepreciationStraightLine     DepreciationMethod = "STRAIGHT_LINE"
	DepreciationDecliningBalance DepreciationMethod = "DECLINING_BALANCE"
	DepreciationSumOfYears       DepreciationMethod = "SUM_OF_YEARS"
)

// AssetStatus represents whether a fixed asset is still in service
type AssetStatus string

const (
	AssetStatusActive   AssetStatus = "ACTIVE"
	AssetStatusDisposed AssetStatus = "DISPOSED"
)

// FixedAsset represents a depreciable asset from the asset register.
// AccumulatedDepreciation is the stored figure from the register; the
// depreciation usecase recomputes it from the method and only falls back to
// the stored value when the method cannot be evaluated.
type FixedAsset struct {
	ID                      uuid.UUID          `json:"id"`
	Name                    string             `json:"name"`
	PurchaseDate            time.Time          `json:"purchaseDate"`
	PurchasePrice           decimal.Decimal    `json:"purchasePrice"`
	UsefulLifeYears         int                `json:"usefulLifeYears"`
	Method                  DepreciationMethod `json:"depreciationMethod"`
	AccumulatedDepreciation decimal.Decimal    `json:"accumulatedDepreciation"`
	Status                  AssetStatus        `json:"status"`
}

// CurrentValue returns purchase price minus accumulated depreciation,
// clamped so it never goes below zero.
func (a FixedAsset) CurrentValue() decimal.Decimal {
	v := a.PurchasePrice.Sub(a.AccumulatedDepreciation)
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}

// Validate ensures the asset adheres to domain rules
func (a *FixedAsset) Validate() error {
	if a.Name == "" {
		return errors.New("asset name cannot be empty")
	}
	if a.PurchasePrice.IsNegative() {
		return errors.New("purchase price cannot be negative")
	}
	if a.UsefulLifeYears < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidUsefulLife, a.UsefulLifeYears)
	}
	switch a.Method {
	case DepreciationStraightLine, DepreciationDecliningBalance, DepreciationSumOfYears:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidDepreciationMethod, a.Method)
	}
	if a.AccumulatedDepreciation.GreaterThan(a.PurchasePrice) {
		return errors.New("accumulated depreciation cannot exceed purchase price")
	}
	return nil
}
