package main

import (
	"errors"
	"fmt"

	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/basket"
	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/cli"
	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/common"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "View ranked product associations",
		Long: `Display the published association set, ranked by lift, support or
confidence, with bundle tier and discount recommendations.`,
		RunE: runReport,
	}

	cmd.Flags().StringP("sort", "s", "lift", "Sort order (lift, support, confidence)")
	cmd.Flags().IntP("top", "n", 0, "Limit to the top N rows (0 = all)")
	cmd.Flags().Float64("min-lift", 0, "Use the bounded top-N view with this lift floor")

	_ = viper.BindPFlag("report.sort", cmd.Flags().Lookup("sort"))
	_ = viper.BindPFlag("report.top", cmd.Flags().Lookup("top"))
	_ = viper.BindPFlag("report.min_lift", cmd.Flags().Lookup("min-lift"))

	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	order := basket.SortOrder(viper.GetString("report.sort"))
	if !order.Valid() {
		return fmt.Errorf("invalid sort order %q (want lift, support or confidence)", order)
	}
	top := viper.GetInt("report.top")
	minLift := viper.GetFloat64("report.min_lift")

	store, err := openStorage()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	run, err := store.GetLatestRun(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			fmt.Println(cli.FormatWarning("No analysis run found. Run 'basket analyze' first."))
			return nil
		}
		return err
	}

	cfg := analysisConfig()

	if minLift > 0 {
		n := top
		if n <= 0 {
			n = cfg.TopN
		}
		rows, topErr := store.GetTopAssociations(ctx, n, minLift)
		if topErr != nil {
			return topErr
		}
		fmt.Println(cli.FormatTitle(fmt.Sprintf("Top %d associations (lift ≥ %g)", n, minLift)))
		fmt.Println(cli.RenderAssociationTable(rows, cfg.Tiers))
	} else {
		rows, listErr := store.GetAssociations(ctx, order, top)
		if listErr != nil {
			return listErr
		}
		fmt.Println(cli.FormatTitle(fmt.Sprintf("Product associations by %s", order)))
		fmt.Println(cli.RenderAssociationTable(rows, cfg.Tiers))
	}

	fmt.Println(cli.SubtleStyle.Render(fmt.Sprintf(
		"Run %s · %d orders · %d retained pairs",
		run.ID, run.TotalOrders, run.Retained)))

	return nil
}
