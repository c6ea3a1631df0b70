package basket

import (
	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/model"
)

// BuildIncidence reduces valid transaction records to the distinct
// (order, product) relation. A product on multiple lines of one invoice
// collapses to a single incidence; rows without a description are dropped
// because pairs must be human-describable in the business output.
// Output order carries no guarantee.
func BuildIncidence(records []model.TransactionRecord) []model.OrderProductPair {
	type key struct {
		invoice string
		product string
	}

	seen := make(map[key]struct{}, len(records))
	incidence := make([]model.OrderProductPair, 0, len(records))

	for i := range records {
		rec := &records[i]
		if !rec.IsValid {
			continue
		}
		if rec.Description == "" {
			continue
		}

		k := key{invoice: rec.InvoiceNo, product: rec.StockCode}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}

		incidence = append(incidence, model.OrderProductPair{
			InvoiceNo:   rec.InvoiceNo,
			StockCode:   rec.StockCode,
			Description: rec.Description,
		})
	}

	return incidence
}

// CountOrders returns the number of distinct orders in the incidence
// relation. Computed once per run and threaded into every downstream stage
// so all Support values share an identical denominator.
func CountOrders(incidence []model.OrderProductPair) int {
	orders := make(map[string]struct{})
	for i := range incidence {
		orders[incidence[i].InvoiceNo] = struct{}{}
	}
	return len(orders)
}
