package basket

import (
	"fmt"

	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/common"
	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/model"
)

// ComputeMetrics joins surviving pair counts against the product support
// table and derives the association metrics for each pair:
//
//	SupportAB      = pairCount / totalOrders
//	Confidence A→B = pairCount / ordersContaining(A)
//	Confidence B→A = pairCount / ordersContaining(B)
//	Lift           = SupportAB / (SupportA × SupportB)
//
// All four ratios derive from the same integer counts, so they stay
// internally consistent: Confidence(A→B) × SupportA equals SupportAB up to
// floating rounding.
//
// A pair member missing from the support table, or a zero denominator,
// cannot happen when the inputs come from the same incidence relation; it
// signals an upstream bug and is reported as an invariant violation.
func ComputeMetrics(pairCounts map[PairKey]int, supports map[string]model.ProductSupport, totalOrders int) ([]model.ProductPairAssociation, error) {
	if len(pairCounts) == 0 {
		return []model.ProductPairAssociation{}, nil
	}
	if totalOrders <= 0 {
		return nil, fmt.Errorf("%w: %d pairs with %d total orders", common.ErrInvariantViolation, len(pairCounts), totalOrders)
	}

	associations := make([]model.ProductPairAssociation, 0, len(pairCounts))
	for key, count := range pairCounts {
		supportA, okA := supports[key.A]
		supportB, okB := supports[key.B]
		if !okA || !okB {
			return nil, fmt.Errorf("%w: pair (%s, %s) references a product with no support entry", common.ErrInvariantViolation, key.A, key.B)
		}
		if supportA.OrderCount == 0 || supportB.OrderCount == 0 {
			return nil, fmt.Errorf("%w: pair (%s, %s) references a product with zero support", common.ErrInvariantViolation, key.A, key.B)
		}

		supportAB := float64(count) / float64(totalOrders)
		associations = append(associations, model.ProductPairAssociation{
			StockCodeA:     key.A,
			StockCodeB:     key.B,
			DescriptionA:   supportA.Description,
			DescriptionB:   supportB.Description,
			PairCount:      count,
			TotalOrders:    totalOrders,
			SupportA:       supportA.Support,
			SupportB:       supportB.Support,
			SupportAB:      supportAB,
			ConfidenceAToB: float64(count) / float64(supportA.OrderCount),
			ConfidenceBToA: float64(count) / float64(supportB.OrderCount),
			Lift:           supportAB / (supportA.Support * supportB.Support),
		})
	}

	return associations, nil
}
