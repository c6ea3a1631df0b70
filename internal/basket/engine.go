package basket

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/model"

	"github.com/google/uuid"
)

// Store is the persistence surface the engine needs: a bulk read of the
// valid transaction set and an all-or-nothing publish of the association
// result set. These are the pipeline's only suspension points.
type Store interface {
	GetValidTransactions(ctx context.Context) ([]model.TransactionRecord, error)
	ReplaceAssociations(ctx context.Context, run model.AnalysisRun, associations []model.ProductPairAssociation) error
}

// Engine runs the analysis pipeline: valid transactions → incidence →
// {support, pair counts} → metrics → retention → publish. Stages run in
// order, each fully consuming its predecessor's output.
type Engine struct {
	store Store
	cfg   Config
}

// NewEngine creates an engine after validating the configuration.
func NewEngine(store Store, cfg Config) (*Engine, error) {
	if store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{store: store, cfg: cfg}, nil
}

// Run executes one full analysis pass and atomically publishes the result
// set. Empty input is a valid outcome: the run completes and publishes
// empty results. A failed run leaves the previously published set intact.
func (e *Engine) Run(ctx context.Context) (*model.AnalysisRun, error) {
	run := model.AnalysisRun{
		ID:        uuid.New().String(),
		StartedAt: time.Now(),
	}

	records, err := e.store.GetValidTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load valid transactions: %w", err)
	}

	incidence := BuildIncidence(records)
	totalOrders := CountOrders(incidence)
	run.TotalOrders = totalOrders

	supports := ComputeSupport(incidence, totalOrders)
	run.Products = len(supports)

	pairStart := time.Now()
	pairCounts := EnumeratePairs(incidence, e.cfg.MinPairCount)
	run.Pairs = len(pairCounts)
	slog.Debug("Enumerated product pairs",
		"run_id", run.ID,
		"orders", totalOrders,
		"surviving_pairs", len(pairCounts),
		"duration", time.Since(pairStart))

	associations, err := ComputeMetrics(pairCounts, supports, totalOrders)
	if err != nil {
		return nil, err
	}

	retained := Retain(associations, e.cfg.MinLift, e.cfg.MinPairCount)
	Sort(retained, SortByLift)
	run.Retained = len(retained)
	run.CompletedAt = time.Now()

	if err := e.store.ReplaceAssociations(ctx, run, retained); err != nil {
		return nil, fmt.Errorf("failed to publish associations: %w", err)
	}

	slog.Info("Analysis run complete",
		"run_id", run.ID,
		"orders", run.TotalOrders,
		"products", run.Products,
		"retained_pairs", run.Retained,
		"duration", run.CompletedAt.Sub(run.StartedAt))

	return &run, nil
}
