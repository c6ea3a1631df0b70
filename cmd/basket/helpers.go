package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/basket"
	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/model"
	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/storage"

	"github.com/spf13/viper"
)

// databasePath resolves the SQLite database path from configuration,
// falling back to the standard data directory.
func databasePath() (string, error) {
	if path := viper.GetString("database.path"); path != "" {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".local", "share", "basket", "basket.db"), nil
}

// openStorage opens the configured database.
func openStorage() (*storage.SQLiteStorage, error) {
	path, err := databasePath()
	if err != nil {
		return nil, err
	}

	store, err := storage.NewSQLiteStorage(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", path, err)
	}
	return store, nil
}

// analysisConfig builds the analysis configuration from viper, starting
// from the defaults so unset keys keep their documented values.
func analysisConfig() basket.Config {
	cfg := basket.DefaultConfig()

	if viper.IsSet("analysis.min_pair_count") {
		cfg.MinPairCount = viper.GetInt("analysis.min_pair_count")
	}
	if viper.IsSet("analysis.min_lift") {
		cfg.MinLift = viper.GetFloat64("analysis.min_lift")
	}
	if viper.IsSet("analysis.top_n") {
		cfg.TopN = viper.GetInt("analysis.top_n")
	}
	if viper.IsSet("analysis.top_n_min_lift") {
		cfg.TopNMinLift = viper.GetFloat64("analysis.top_n_min_lift")
	}
	if viper.IsSet("analysis.conversion_rate") {
		cfg.ConversionRate = viper.GetFloat64("analysis.conversion_rate")
	}
	if viper.IsSet("analysis.require_customer_id") {
		cfg.RequireCustomerID = viper.GetBool("analysis.require_customer_id")
	}

	tiers := model.DefaultTierScheme()
	if viper.IsSet("analysis.tiers.very_strong_lift") {
		tiers.VeryStrongLift = viper.GetFloat64("analysis.tiers.very_strong_lift")
	}
	if viper.IsSet("analysis.tiers.strong_lift") {
		tiers.StrongLift = viper.GetFloat64("analysis.tiers.strong_lift")
	}
	if viper.IsSet("analysis.tiers.moderate_lift") {
		tiers.ModerateLift = viper.GetFloat64("analysis.tiers.moderate_lift")
	}
	cfg.Tiers = tiers

	return cfg
}
