package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/wthriver/fiscalflow/internal/domain"
	"github.com/wthriver/fiscalflow/internal/usecase/depreciation"
	"github.com/wthriver/fiscalflow/internal/usecase/export"
)

var (
	flagAssetName string
	flagPrice     string
	flagLife      int
	flagMethod    string
	flagPurchased string
	flagAsOf      string
)

var depreciationCmd = &cobra.Command{
	Use:   "depreciation",
	Short: "Compute an asset's depreciation position and full schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		price, err := domain.ParseAmount(flagPrice)
		if err != nil {
			return fmt.Errorf("--price: %w", err)
		}
		purchased, err := parseFlagDate("purchased", flagPurchased)
		if err != nil {
			return err
		}
		asOf := time.Now().UTC()
		if flagAsOf != "" {
			if asOf, err = parseFlagDate("as-of", flagAsOf); err != nil {
				return err
			}
		}

		asset := domain.FixedAsset{
			ID:              uuid.New(),
			Name:            flagAssetName,
			PurchaseDate:    purchased,
			PurchasePrice:   price,
			UsefulLifeYears: flagLife,
			Method:          parseMethod(flagMethod),
			Status:          domain.AssetStatusActive,
		}
		if err := asset.Validate(); err != nil {
			return err
		}

		result, err := depreciation.Compute(asset, asOf)
		if err != nil {
			return err
		}
		schedule, err := depreciation.Schedule(asset)
		if err != nil {
			return err
		}

		fmt.Printf("%s: %.2f years owned, accumulated %s, current value %s\n",
			asset.Name, result.YearsOwned, result.Accumulated, result.CurrentValue)

		return emit(export.DepreciationTable(asset.Name, schedule), nil)
	},
}

func init() {
	depreciationCmd.Flags().StringVar(&flagAssetName, "name", "asset", "Asset name")
	depreciationCmd.Flags().StringVar(&flagPrice, "price", "", "Purchase price")
	depreciationCmd.Flags().IntVar(&flagLife, "life", 0, "Useful life in years")
	depreciationCmd.Flags().StringVar(&flagMethod, "method", "straight-line", "straight-line, declining-balance, or sum-of-years")
	depreciationCmd.Flags().StringVar(&flagPurchased, "purchased", "", "Purchase date (YYYY-MM-DD)")
	depreciationCmd.Flags().StringVar(&flagAsOf, "as-of", "", "Valuation date, defaults to today")
	rootCmd.AddCommand(depreciationCmd)
}

func parseMethod(raw string) domain.DepreciationMethod {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "straight-line", "straight_line", "sl":
		return domain.DepreciationStraightLine
	case "declining-balance", "declining_balance", "db":
		return domain.DepreciationDecliningBalance
	case "sum-of-years", "sum_of_years", "soy":
		return domain.DepreciationSumOfYears
	default:
		return domain.DepreciationMethod(strings.ToUpper(raw))
	}
}
