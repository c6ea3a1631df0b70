// Package basket implements the market-basket association analysis pipeline:
// incidence building, support calculation, pairwise co-occurrence
// enumeration, metric computation and ranking.
package basket

import (
	"fmt"

	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/common"
	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/model"
)

// Config holds the analysis thresholds. Validate rejects misconfiguration
// before a run starts; the pipeline never silently clamps values.
type Config struct {
	// MinPairCount is the minimum number of distinct orders a pair must
	// appear in to be retained. Bounds output size and enforces
	// statistical significance.
	MinPairCount int
	// MinLift is the retention floor; only pairs with lift strictly above
	// it enter the canonical result set.
	MinLift float64
	// TopN bounds the "top associations" view.
	TopN int
	// TopNMinLift further filters the top-N view.
	TopNMinLift float64
	// ConversionRate converts unit prices to the reporting currency
	// during cleaning.
	ConversionRate float64
	// RequireCustomerID invalidates rows without a customer ID during
	// cleaning. Roughly a quarter of the dataset's volume has none.
	RequireCustomerID bool
	// Tiers maps lift to bundle strength and discount recommendations.
	Tiers model.TierScheme
}

// DefaultConfig returns the standard analysis thresholds.
func DefaultConfig() Config {
	return Config{
		MinPairCount:      10,
		MinLift:           1.0,
		TopN:              100,
		TopNMinLift:       1.5,
		ConversionRate:    0.85,
		RequireCustomerID: true,
		Tiers:             model.DefaultTierScheme(),
	}
}

// Validate checks the configuration for values that would corrupt a run.
func (c Config) Validate() error {
	if c.MinPairCount < 1 {
		return fmt.Errorf("%w: min pair count must be at least 1, got %d", common.ErrInvalidConfig, c.MinPairCount)
	}
	if c.MinLift < 0 {
		return fmt.Errorf("%w: min lift cannot be negative, got %g", common.ErrInvalidConfig, c.MinLift)
	}
	if c.TopN < 1 {
		return fmt.Errorf("%w: top-N must be at least 1, got %d", common.ErrInvalidConfig, c.TopN)
	}
	if c.ConversionRate <= 0 {
		return fmt.Errorf("%w: conversion rate must be positive, got %g", common.ErrInvalidConfig, c.ConversionRate)
	}
	if c.Tiers.VeryStrongLift < c.Tiers.StrongLift || c.Tiers.StrongLift < c.Tiers.ModerateLift {
		return fmt.Errorf("%w: tier boundaries must descend (very strong ≥ strong ≥ moderate)", common.ErrInvalidConfig)
	}
	return nil
}
