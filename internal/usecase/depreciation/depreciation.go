// Package depreciation computes accumulated depreciation and per-year
// schedules for fixed assets. Like the statement engine it is pure: no I/O,
// no clock reads, deterministic for a given asset and as-of date.
package depreciation

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/wthriver/fiscalflow/internal/domain"
)

// decliningRate is the fixed declining-balance rate (20% per year).
var decliningRate = 0.20

// Result is the depreciation position of one asset at a point in time.
type Result struct {
	AssetID     string                    `json:"assetId"`
	Method      domain.DepreciationMethod `json:"method"`
	YearsOwned  float64                   `json:"yearsOwned"`
	Accumulated decimal.Decimal           `json:"accumulated"`
	// CurrentValue is purchase price minus accumulated, never negative.
	CurrentValue decimal.Decimal `json:"currentValue"`
}

// YearLine is one row of a full depreciation schedule.
type YearLine struct {
	Year         int             `json:"year"`
	OpeningValue decimal.Decimal `json:"openingValue"`
	Depreciation decimal.Decimal `json:"depreciation"`
	Accumulated  decimal.Decimal `json:"accumulated"`
	ClosingValue decimal.Decimal `json:"closingValue"`
}

// Compute returns the accumulated depreciation for an asset as of a date.
// Years owned is clamped to [0, usefulLifeYears] and the result is clamped so
// it never exceeds the purchase price.
//
// An asset with a non-positive useful life cannot be scheduled; for those the
// register's stored accumulated depreciation is trusted instead.
func Compute(asset domain.FixedAsset, asOf time.Time) (*Result, error) {
	res := &Result{
		AssetID: asset.ID.String(),
		Method:  asset.Method,
	}

	if asset.UsefulLifeYears < 1 {
		res.Accumulated = clamp(asset.AccumulatedDepreciation, asset.PurchasePrice)
		res.CurrentValue = asset.PurchasePrice.Sub(res.Accumulated)
		return res, nil
	}

	years := yearFraction(asset.PurchaseDate, asOf)
	if years > float64(asset.UsefulLifeYears) {
		years = float64(asset.UsefulLifeYears)
	}
	res.YearsOwned = years

	var accumulated decimal.Decimal
	switch asset.Method {
	case domain.DepreciationStraightLine:
		accumulated = straightLineAt(asset, years)
	case domain.DepreciationDecliningBalance:
		accumulated = decliningBalanceAt(asset, years)
	case domain.DepreciationSumOfYears:
		accumulated = sumOfYearsAt(asset, years)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDepreciationMethod, asset.Method)
	}

	res.Accumulated = clamp(accumulated.Round(2), asset.PurchasePrice)
	res.CurrentValue = asset.PurchasePrice.Sub(res.Accumulated)

	return res, nil
}

// Schedule returns the full per-year depreciation schedule over the asset's
// useful life. Yearly depreciation is derived from cumulative positions so
// the rows always sum to the cumulative figure without rounding drift.
func Schedule(asset domain.FixedAsset) ([]YearLine, error) {
	if asset.UsefulLifeYears < 1 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidUsefulLife, asset.UsefulLifeYears)
	}

	cumulative := func(year float64) decimal.Decimal {
		switch asset.Method {
		case domain.DepreciationStraightLine:
			return straightLineAt(asset, year)
		case domain.DepreciationDecliningBalance:
			return decliningBalanceAt(asset, year)
		default:
			return sumOfYearsAt(asset, year)
		}
	}

	switch asset.Method {
	case domain.DepreciationStraightLine, domain.DepreciationDecliningBalance, domain.DepreciationSumOfYears:
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidDepreciationMethod, asset.Method)
	}

	lines := make([]YearLine, 0, asset.UsefulLifeYears)
	prev := decimal.Zero
	for year := 1; year <= asset.UsefulLifeYears; year++ {
		acc := clamp(cumulative(float64(year)).Round(2), asset.PurchasePrice)
		lines = append(lines, YearLine{
			Year:         year,
			OpeningValue: asset.PurchasePrice.Sub(prev),
			Depreciation: acc.Sub(prev),
			Accumulated:  acc,
			ClosingValue: asset.PurchasePrice.Sub(acc),
		})
		prev = acc
	}

	return lines, nil
}

// straightLineAt allocates the purchase price evenly over the useful life.
func straightLineAt(asset domain.FixedAsset, years float64) decimal.Decimal {
	perYear := asset.PurchasePrice.Div(decimal.NewFromInt(int64(asset.UsefulLifeYears)))
	return perYear.Mul(decimal.NewFromFloat(years))
}

// decliningBalanceAt applies the fixed-rate declining balance formula
// price * (1 - (1 - rate)^years).
func decliningBalanceAt(asset domain.FixedAsset, years float64) decimal.Decimal {
	factor := 1 - math.Pow(1-decliningRate, years)
	return asset.PurchasePrice.Mul(decimal.NewFromFloat(factor))
}

// sumOfYearsAt walks the explicit digit-sum schedule: year i of life n
// depreciates price * (n-i+1) / (n(n+1)/2). Partial years pro-rate the
// current year's charge.
func sumOfYearsAt(asset domain.FixedAsset, years float64) decimal.Decimal {
	n := asset.UsefulLifeYears
	denom := decimal.NewFromInt(int64(n * (n + 1) / 2))

	full := int(math.Floor(years))
	if full > n {
		full = n
	}

	// Cumulative weight of the completed years: n + (n-1) + ... + (n-full+1).
	cumWeight := full*n - full*(full-1)/2
	accumulated := asset.PurchasePrice.Mul(decimal.NewFromInt(int64(cumWeight))).Div(denom)

	fraction := years - float64(full)
	if fraction > 0 && full < n {
		yearWeight := decimal.NewFromInt(int64(n - full))
		yearCharge := asset.PurchasePrice.Mul(yearWeight).Div(denom)
		accumulated = accumulated.Add(yearCharge.Mul(decimal.NewFromFloat(fraction)))
	}

	return accumulated
}

// yearFraction measures whole anniversary years plus the fraction of the
// year in progress, so exact anniversaries produce exact integers.
func yearFraction(from, to time.Time) float64 {
	if !to.After(from) {
		return 0
	}

	years := 0
	for !from.AddDate(years+1, 0, 0).After(to) {
		years++
	}

	anniversary := from.AddDate(years, 0, 0)
	next := from.AddDate(years+1, 0, 0)
	fraction := to.Sub(anniversary).Hours() / next.Sub(anniversary).Hours()

	return float64(years) + fraction
}

func clamp(d, max decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	if d.GreaterThan(max) {
		return max
	}
	return d
}
