package basket

import (
	"fmt"
	"testing"

	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func incidenceRow(invoice, code string) model.OrderProductPair {
	return model.OrderProductPair{InvoiceNo: invoice, StockCode: code, Description: code}
}

func TestNewPairKey_Canonical(t *testing.T) {
	assert.Equal(t, PairKey{A: "A", B: "B"}, NewPairKey("A", "B"))
	assert.Equal(t, PairKey{A: "A", B: "B"}, NewPairKey("B", "A"))
}

func TestEnumeratePairs_CountsDistinctOrders(t *testing.T) {
	incidence := []model.OrderProductPair{
		incidenceRow("1001", "A"),
		incidenceRow("1001", "B"),
		incidenceRow("1002", "B"),
		incidenceRow("1002", "A"),
		incidenceRow("1003", "A"),
	}

	counts := EnumeratePairs(incidence, 1)
	require.Len(t, counts, 1)
	assert.Equal(t, 2, counts[PairKey{A: "A", B: "B"}])
}

func TestEnumeratePairs_NoSelfPairsCanonicalOrder(t *testing.T) {
	incidence := []model.OrderProductPair{
		incidenceRow("1001", "C"),
		incidenceRow("1001", "A"),
		incidenceRow("1001", "B"),
	}

	counts := EnumeratePairs(incidence, 1)
	require.Len(t, counts, 3)
	for key := range counts {
		assert.NotEqual(t, key.A, key.B)
		assert.Less(t, key.A, key.B)
	}
}

func TestEnumeratePairs_SmallOrdersContributeNothing(t *testing.T) {
	incidence := []model.OrderProductPair{
		incidenceRow("1001", "A"),
		incidenceRow("1002", "B"),
	}

	counts := EnumeratePairs(incidence, 1)
	assert.Empty(t, counts)
}

func TestEnumeratePairs_ThresholdFilter(t *testing.T) {
	// 9 orders contain both A and B; with a minimum of 10 the pair must
	// be discarded.
	var incidence []model.OrderProductPair
	for i := 0; i < 9; i++ {
		invoice := fmt.Sprintf("10%02d", i)
		incidence = append(incidence,
			incidenceRow(invoice, "A"),
			incidenceRow(invoice, "B"),
		)
	}

	assert.Empty(t, EnumeratePairs(incidence, 10))
	assert.Len(t, EnumeratePairs(incidence, 9), 1)
}

func TestEnumeratePairs_PairEmissionCount(t *testing.T) {
	// An order with k products emits k·(k-1)/2 pairs.
	var incidence []model.OrderProductPair
	for i := 0; i < 6; i++ {
		incidence = append(incidence, incidenceRow("1001", fmt.Sprintf("P%d", i)))
	}

	counts := EnumeratePairs(incidence, 1)
	assert.Len(t, counts, 15)
}
