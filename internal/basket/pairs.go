package basket

import (
	"sort"

	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/model"
)

// PairKey identifies an unordered product pair in canonical orientation:
// A < B lexicographically, so each pair is counted exactly once and a
// product can never pair with itself.
type PairKey struct {
	A string
	B string
}

// NewPairKey canonicalizes two product codes into a PairKey.
func NewPairKey(x, y string) PairKey {
	if x < y {
		return PairKey{A: x, B: y}
	}
	return PairKey{A: y, B: x}
}

// EnumeratePairs generates every unordered pair of distinct products per
// order and tallies, across all orders, how many distinct orders contain
// each pair. Pairs below minCount are discarded.
//
// For an order with k distinct products this emits k·(k-1)/2 pairs, so the
// total work is O(Σ k²) over orders, the dominant cost of the pipeline.
// Grouping by invoice first keeps it far below a full cross-product over
// the dataset.
func EnumeratePairs(incidence []model.OrderProductPair, minCount int) map[PairKey]int {
	// Group the incidence relation by order. Incidence rows are already
	// distinct per (order, product), so each slice holds unique codes.
	byOrder := make(map[string][]string)
	for i := range incidence {
		row := &incidence[i]
		byOrder[row.InvoiceNo] = append(byOrder[row.InvoiceNo], row.StockCode)
	}

	counts := make(map[PairKey]int)
	for _, products := range byOrder {
		// Orders with 0 or 1 distinct products contribute no pairs.
		if len(products) < 2 {
			continue
		}
		sort.Strings(products)
		for i := 0; i < len(products)-1; i++ {
			for j := i + 1; j < len(products); j++ {
				// products is sorted, so (i, j) is already canonical.
				counts[PairKey{A: products[i], B: products[j]}]++
			}
		}
	}

	for key, n := range counts {
		if n < minCount {
			delete(counts, key)
		}
	}

	return counts
}
