package depreciation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wthriver/fiscalflow/internal/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func van(method domain.DepreciationMethod) domain.FixedAsset {
	return domain.FixedAsset{
		ID:              uuid.New(),
		Name:            "Delivery Van",
		PurchaseDate:    date(2020, 1, 1),
		PurchasePrice:   decimal.NewFromInt(10000),
		UsefulLifeYears: 10,
		Method:          method,
		Status:          domain.AssetStatusActive,
	}
}

func TestCompute_StraightLineHalfway(t *testing.T) {
	// 10000 over 10 years, evaluated 5 years in: accumulated 5000.
	res, err := Compute(van(domain.DepreciationStraightLine), date(2025, 1, 1))
	require.NoError(t, err)

	assert.InDelta(t, 5.0, res.YearsOwned, 1e-9)
	assert.True(t, res.Accumulated.Equal(decimal.NewFromInt(5000)), "got %s", res.Accumulated)
	assert.True(t, res.CurrentValue.Equal(decimal.NewFromInt(5000)))
}

func TestCompute_BeforePurchaseIsZero(t *testing.T) {
	res, err := Compute(van(domain.DepreciationStraightLine), date(2019, 6, 1))
	require.NoError(t, err)

	assert.Zero(t, res.YearsOwned)
	assert.True(t, res.Accumulated.IsZero())
	assert.True(t, res.CurrentValue.Equal(decimal.NewFromInt(10000)))
}

func TestCompute_ClampedAtEndOfUsefulLife(t *testing.T) {
	// 30 years after purchase the asset is fully depreciated, not negative.
	res, err := Compute(van(domain.DepreciationStraightLine), date(2050, 1, 1))
	require.NoError(t, err)

	assert.Equal(t, 10.0, res.YearsOwned)
	assert.True(t, res.Accumulated.Equal(decimal.NewFromInt(10000)))
	assert.True(t, res.CurrentValue.IsZero())
}

func TestCompute_DecliningBalance(t *testing.T) {
	// After 1 year at 20%: 10000 * (1 - 0.8) = 2000.
	res, err := Compute(van(domain.DepreciationDecliningBalance), date(2021, 1, 1))
	require.NoError(t, err)
	assert.True(t, res.Accumulated.Equal(decimal.NewFromInt(2000)), "got %s", res.Accumulated)

	// After 2 years: 10000 * (1 - 0.64) = 3600.
	res, err = Compute(van(domain.DepreciationDecliningBalance), date(2022, 1, 1))
	require.NoError(t, err)
	assert.True(t, res.Accumulated.Equal(decimal.NewFromInt(3600)), "got %s", res.Accumulated)
	assert.True(t, res.CurrentValue.Equal(decimal.NewFromInt(6400)))
}

func TestCompute_SumOfYearsFirstYears(t *testing.T) {
	// Life 10, digit sum 55. Year 1 charge: 10000*10/55 = 1818.18.
	res, err := Compute(van(domain.DepreciationSumOfYears), date(2021, 1, 1))
	require.NoError(t, err)
	assert.True(t, res.Accumulated.Equal(decimal.RequireFromString("1818.18")), "got %s", res.Accumulated)

	// Year 2 adds 10000*9/55: accumulated 10000*19/55 = 3454.55.
	res, err = Compute(van(domain.DepreciationSumOfYears), date(2022, 1, 1))
	require.NoError(t, err)
	assert.True(t, res.Accumulated.Equal(decimal.RequireFromString("3454.55")), "got %s", res.Accumulated)
}

func TestCompute_CurrentValueBoundsForAnyDate(t *testing.T) {
	for _, method := range []domain.DepreciationMethod{
		domain.DepreciationStraightLine,
		domain.DepreciationDecliningBalance,
		domain.DepreciationSumOfYears,
	} {
		asset := van(method)
		for year := 2020; year <= 2040; year++ {
			res, err := Compute(asset, date(year, 7, 15))
			require.NoError(t, err)
			assert.False(t, res.CurrentValue.IsNegative(), "%s in %d", method, year)
			assert.True(t, res.CurrentValue.LessThanOrEqual(asset.PurchasePrice), "%s in %d", method, year)
		}
	}
}

func TestCompute_ZeroUsefulLifeFallsBackToStoredFigure(t *testing.T) {
	asset := van(domain.DepreciationStraightLine)
	asset.UsefulLifeYears = 0
	asset.AccumulatedDepreciation = decimal.NewFromInt(4200)

	res, err := Compute(asset, date(2025, 1, 1))
	require.NoError(t, err)

	assert.True(t, res.Accumulated.Equal(decimal.NewFromInt(4200)))
	assert.True(t, res.CurrentValue.Equal(decimal.NewFromInt(5800)))
}

func TestCompute_UnknownMethodErrors(t *testing.T) {
	asset := van("MAGIC")
	_, err := Compute(asset, date(2025, 1, 1))
	assert.ErrorIs(t, err, domain.ErrInvalidDepreciationMethod)
}

func TestSchedule_StraightLineSumsToPurchasePrice(t *testing.T) {
	asset := van(domain.DepreciationStraightLine)
	asset.UsefulLifeYears = 4

	lines, err := Schedule(asset)
	require.NoError(t, err)
	require.Len(t, lines, 4)

	total := decimal.Zero
	for _, line := range lines {
		assert.True(t, line.Depreciation.Equal(decimal.NewFromInt(2500)))
		total = total.Add(line.Depreciation)
	}
	assert.True(t, total.Equal(asset.PurchasePrice))
	assert.True(t, lines[3].ClosingValue.IsZero())
}

func TestSchedule_SumOfYearsIsFrontLoaded(t *testing.T) {
	asset := van(domain.DepreciationSumOfYears)
	asset.UsefulLifeYears = 5 // digit sum 15

	lines, err := Schedule(asset)
	require.NoError(t, err)
	require.Len(t, lines, 5)

	for i := 1; i < len(lines); i++ {
		assert.True(t, lines[i].Depreciation.LessThan(lines[i-1].Depreciation),
			"year %d charge should be below year %d", i+1, i)
	}
	assert.True(t, lines[4].Accumulated.Equal(asset.PurchasePrice), "fully depreciated at end of life")
}

func TestSchedule_DecliningBalanceLeavesResidual(t *testing.T) {
	asset := van(domain.DepreciationDecliningBalance)
	asset.UsefulLifeYears = 3

	lines, err := Schedule(asset)
	require.NoError(t, err)
	require.Len(t, lines, 3)

	// 20%/yr declining balance never reaches zero book value.
	assert.True(t, lines[2].ClosingValue.IsPositive())
	assert.True(t, lines[0].Depreciation.GreaterThan(lines[2].Depreciation))
}

func TestSchedule_InvalidLifeErrors(t *testing.T) {
	asset := van(domain.DepreciationStraightLine)
	asset.UsefulLifeYears = 0
	_, err := Schedule(asset)
	assert.ErrorIs(t, err, domain.ErrInvalidUsefulLife)
}
