package basket

import (
	"testing"

	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSupport(t *testing.T) {
	incidence := []model.OrderProductPair{
		{InvoiceNo: "1001", StockCode: "A", Description: "apples"},
		{InvoiceNo: "1001", StockCode: "B", Description: "bananas"},
		{InvoiceNo: "1002", StockCode: "A", Description: "apples"},
		{InvoiceNo: "1003", StockCode: "C", Description: "cherries"},
	}

	supports := ComputeSupport(incidence, 3)
	require.Len(t, supports, 3)

	a := supports["A"]
	assert.Equal(t, 2, a.OrderCount)
	assert.InDelta(t, 2.0/3.0, a.Support, 1e-9)
	assert.Equal(t, "apples", a.Description)

	// Every support stays within [0, 1].
	for _, s := range supports {
		assert.GreaterOrEqual(t, s.Support, 0.0)
		assert.LessOrEqual(t, s.Support, 1.0)
		assert.GreaterOrEqual(t, s.OrderCount, 1)
	}
}

func TestComputeSupport_ZeroOrders(t *testing.T) {
	supports := ComputeSupport(nil, 0)
	assert.Empty(t, supports)
}
