package model

import "time"

// OrderProductPair is one row of the order×product incidence relation:
// a distinct (invoice, product) combination observed in the valid
// transaction set. A product on multiple lines of the same invoice
// collapses to a single incidence.
type OrderProductPair struct {
	InvoiceNo   string
	StockCode   string
	Description string
}

// ProductSupport holds the per-product order frequency.
// Support = OrderCount / total valid orders, always in [0, 1].
type ProductSupport struct {
	StockCode   string
	Description string
	OrderCount  int
	Support     float64
}

// ProductPairAssociation is the central analysis output: an unordered
// product pair in canonical orientation (StockCodeA < StockCodeB) with
// its co-occurrence count and association metrics.
type ProductPairAssociation struct {
	StockCodeA   string
	StockCodeB   string
	DescriptionA string
	DescriptionB string

	// PairCount is the number of distinct orders containing both products.
	PairCount   int
	TotalOrders int

	SupportA  float64
	SupportB  float64
	SupportAB float64

	ConfidenceAToB float64
	ConfidenceBToA float64
	Lift           float64
}

// AnalysisRun records one completed pipeline execution. The association
// result set is replaced wholesale by each run.
type AnalysisRun struct {
	StartedAt   time.Time
	CompletedAt time.Time
	ID          string
	TotalOrders int
	Products    int
	Pairs       int
	Retained    int
}
