package basket

import (
	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/model"
)

// ComputeSupport calculates per-product order frequency over the incidence
// relation. totalOrders is the shared denominator for the whole run; a
// product appears in the result only if it was observed at least once, so
// every entry has OrderCount ≥ 1.
func ComputeSupport(incidence []model.OrderProductPair, totalOrders int) map[string]model.ProductSupport {
	supports := make(map[string]model.ProductSupport)
	if totalOrders == 0 {
		return supports
	}

	for i := range incidence {
		row := &incidence[i]
		s, ok := supports[row.StockCode]
		if !ok {
			s = model.ProductSupport{
				StockCode:   row.StockCode,
				Description: row.Description,
			}
		}
		s.OrderCount++
		supports[row.StockCode] = s
	}

	for code, s := range supports {
		s.Support = float64(s.OrderCount) / float64(totalOrders)
		supports[code] = s
	}

	return supports
}
