package basket

import (
	"errors"
	"testing"

	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/common"
	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeMetrics_MinimalScenario(t *testing.T) {
	// Two orders, both {A, B}: one pair with full support and lift 1.
	incidence := []model.OrderProductPair{
		incidenceRow("1001", "A"),
		incidenceRow("1001", "B"),
		incidenceRow("1002", "A"),
		incidenceRow("1002", "B"),
	}
	totalOrders := CountOrders(incidence)
	supports := ComputeSupport(incidence, totalOrders)
	pairCounts := EnumeratePairs(incidence, 1)

	associations, err := ComputeMetrics(pairCounts, supports, totalOrders)
	require.NoError(t, err)
	require.Len(t, associations, 1)

	a := associations[0]
	assert.Equal(t, "A", a.StockCodeA)
	assert.Equal(t, "B", a.StockCodeB)
	assert.Equal(t, 2, a.PairCount)
	assert.InDelta(t, 1.0, a.SupportA, 1e-9)
	assert.InDelta(t, 1.0, a.SupportB, 1e-9)
	assert.InDelta(t, 1.0, a.SupportAB, 1e-9)
	assert.InDelta(t, 1.0, a.ConfidenceAToB, 1e-9)
	assert.InDelta(t, 1.0, a.ConfidenceBToA, 1e-9)
	assert.InDelta(t, 1.0, a.Lift, 1e-9)
}

func TestComputeMetrics_NoAssociation(t *testing.T) {
	// A and B never co-occur, so no pairs survive.
	incidence := []model.OrderProductPair{
		incidenceRow("1001", "A"),
		incidenceRow("1002", "B"),
	}
	totalOrders := CountOrders(incidence)
	supports := ComputeSupport(incidence, totalOrders)
	pairCounts := EnumeratePairs(incidence, 1)

	associations, err := ComputeMetrics(pairCounts, supports, totalOrders)
	require.NoError(t, err)
	assert.Empty(t, associations)
}

func TestComputeMetrics_Bounds(t *testing.T) {
	// A skewed dataset: A in 4 orders, B in 2, together in 2.
	incidence := []model.OrderProductPair{
		incidenceRow("1001", "A"), incidenceRow("1001", "B"),
		incidenceRow("1002", "A"), incidenceRow("1002", "B"),
		incidenceRow("1003", "A"),
		incidenceRow("1004", "A"),
		incidenceRow("1005", "C"),
	}
	totalOrders := CountOrders(incidence)
	supports := ComputeSupport(incidence, totalOrders)
	pairCounts := EnumeratePairs(incidence, 1)

	associations, err := ComputeMetrics(pairCounts, supports, totalOrders)
	require.NoError(t, err)
	require.Len(t, associations, 1)

	a := associations[0]
	assert.GreaterOrEqual(t, a.SupportAB, 0.0)
	assert.LessOrEqual(t, a.SupportAB, a.SupportA)
	assert.LessOrEqual(t, a.SupportAB, a.SupportB)
	assert.GreaterOrEqual(t, a.ConfidenceAToB, 0.0)
	assert.LessOrEqual(t, a.ConfidenceAToB, 1.0)
	assert.GreaterOrEqual(t, a.ConfidenceBToA, 0.0)
	assert.LessOrEqual(t, a.ConfidenceBToA, 1.0)
	assert.InDelta(t, 0.5, a.ConfidenceAToB, 1e-9)
	assert.InDelta(t, 1.0, a.ConfidenceBToA, 1e-9)
}

func TestComputeMetrics_RoundTripConsistency(t *testing.T) {
	// Confidence(A→B) × SupportA must equal SupportAB up to rounding,
	// for every pair: the ratios derive from the same integer counts.
	incidence := []model.OrderProductPair{
		incidenceRow("1", "A"), incidenceRow("1", "B"), incidenceRow("1", "C"),
		incidenceRow("2", "A"), incidenceRow("2", "B"),
		incidenceRow("3", "B"), incidenceRow("3", "C"),
		incidenceRow("4", "A"),
		incidenceRow("5", "C"),
	}
	totalOrders := CountOrders(incidence)
	supports := ComputeSupport(incidence, totalOrders)
	pairCounts := EnumeratePairs(incidence, 1)

	associations, err := ComputeMetrics(pairCounts, supports, totalOrders)
	require.NoError(t, err)
	require.NotEmpty(t, associations)

	for _, a := range associations {
		assert.InDelta(t, a.SupportAB, a.ConfidenceAToB*a.SupportA, 1e-9)
		assert.InDelta(t, a.SupportAB, a.ConfidenceBToA*a.SupportB, 1e-9)
	}
}

func TestComputeMetrics_InvariantViolations(t *testing.T) {
	pairCounts := map[PairKey]int{{A: "A", B: "B"}: 2}

	// Missing support entry.
	_, err := ComputeMetrics(pairCounts, map[string]model.ProductSupport{}, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvariantViolation))

	// Zero total orders with surviving pairs.
	supports := map[string]model.ProductSupport{
		"A": {StockCode: "A", OrderCount: 1, Support: 0.5},
		"B": {StockCode: "B", OrderCount: 1, Support: 0.5},
	}
	_, err = ComputeMetrics(pairCounts, supports, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvariantViolation))
}

func TestComputeMetrics_EmptyInput(t *testing.T) {
	associations, err := ComputeMetrics(nil, nil, 0)
	require.NoError(t, err)
	assert.Empty(t, associations)
}
