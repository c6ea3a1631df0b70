package main

import (
	"fmt"
	"log/slog"

	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/basket"
	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/cli"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run the association analysis pipeline",
		Long: `Run the full market-basket pipeline over the imported transactions:
build the order×product incidence relation, compute per-product support,
enumerate co-occurring product pairs, derive Support/Confidence/Lift, and
atomically publish the retained association set.`,
		RunE: runAnalyze,
	}

	cmd.Flags().Int("min-pair-count", 0, "Minimum distinct-order count for a pair (default 10)")
	cmd.Flags().Float64("min-lift", -1, "Retention lift floor, strict (default 1.0)")

	_ = viper.BindPFlag("analyze.min_pair_count", cmd.Flags().Lookup("min-pair-count"))
	_ = viper.BindPFlag("analyze.min_lift", cmd.Flags().Lookup("min-lift"))

	return cmd
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg := analysisConfig()
	if n := viper.GetInt("analyze.min_pair_count"); n > 0 {
		cfg.MinPairCount = n
	}
	if l := viper.GetFloat64("analyze.min_lift"); l >= 0 {
		cfg.MinLift = l
	}

	store, err := openStorage()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	engine, err := basket.NewEngine(store, cfg)
	if err != nil {
		return err
	}

	orders, err := store.CountValidOrders(ctx)
	if err != nil {
		return err
	}

	slog.Info(cli.FormatTitle("Mining product associations..."),
		"orders", orders,
		"min_pair_count", cfg.MinPairCount,
		"min_lift", cfg.MinLift)

	run, err := engine.Run(ctx)
	if err != nil {
		return err
	}

	content := fmt.Sprintf(`Orders analyzed:    %d
Distinct products:  %d
Pairs ≥ threshold:  %d
Retained (lift>%g): %d`,
		run.TotalOrders, run.Products, run.Pairs, cfg.MinLift, run.Retained)

	fmt.Println(cli.RenderBox("Association Analysis", content))
	return nil
}
