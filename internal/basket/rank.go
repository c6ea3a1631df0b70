package basket

import (
	"sort"

	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/model"
)

// SortOrder selects one of the three read orders over the retained set.
type SortOrder string

// Supported sort orders.
const (
	SortByLift       SortOrder = "lift"
	SortBySupport    SortOrder = "support"
	SortByConfidence SortOrder = "confidence"
)

// Valid reports whether the sort order is one of the supported values.
func (o SortOrder) Valid() bool {
	switch o {
	case SortByLift, SortBySupport, SortByConfidence:
		return true
	}
	return false
}

// Retain applies the canonical retention rule: lift strictly above minLift
// and co-occurrence count at or above minCount. The returned slice is the
// production result set; every reporting view is a projection of it.
func Retain(associations []model.ProductPairAssociation, minLift float64, minCount int) []model.ProductPairAssociation {
	retained := make([]model.ProductPairAssociation, 0, len(associations))
	for i := range associations {
		a := &associations[i]
		if a.Lift > minLift && a.PairCount >= minCount {
			retained = append(retained, *a)
		}
	}
	return retained
}

// Sort orders associations in place, descending by the chosen metric.
// Ties break on the canonical pair codes so repeated runs order
// identically.
func Sort(associations []model.ProductPairAssociation, order SortOrder) {
	metric := func(a *model.ProductPairAssociation) float64 {
		switch order {
		case SortBySupport:
			return a.SupportAB
		case SortByConfidence:
			if a.ConfidenceAToB > a.ConfidenceBToA {
				return a.ConfidenceAToB
			}
			return a.ConfidenceBToA
		default:
			return a.Lift
		}
	}

	sort.Slice(associations, func(i, j int) bool {
		mi, mj := metric(&associations[i]), metric(&associations[j])
		if mi != mj {
			return mi > mj
		}
		if associations[i].StockCodeA != associations[j].StockCodeA {
			return associations[i].StockCodeA < associations[j].StockCodeA
		}
		return associations[i].StockCodeB < associations[j].StockCodeB
	})
}

// TopN returns the strongest n associations by lift, filtered to
// lift ≥ minLift. Intended for the bounded visualization view.
func TopN(associations []model.ProductPairAssociation, n int, minLift float64) []model.ProductPairAssociation {
	filtered := make([]model.ProductPairAssociation, 0, len(associations))
	for i := range associations {
		if associations[i].Lift >= minLift {
			filtered = append(filtered, associations[i])
		}
	}
	Sort(filtered, SortByLift)
	if len(filtered) > n {
		filtered = filtered[:n]
	}
	return filtered
}
