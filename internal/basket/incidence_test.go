package basket

import (
	"database/sql"
	"testing"
	"time"

	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/model"

	"github.com/stretchr/testify/assert"
)

// validRecord builds a valid transaction line for tests.
func validRecord(invoice, code, desc string) model.TransactionRecord {
	return model.TransactionRecord{
		InvoiceNo:   invoice,
		StockCode:   code,
		Description: desc,
		InvoiceDate: time.Date(2011, 5, 10, 12, 0, 0, 0, time.UTC),
		Quantity:    sql.NullInt64{Int64: 1, Valid: true},
		UnitPrice:   sql.NullFloat64{Float64: 2.5, Valid: true},
		CustomerID:  sql.NullInt64{Int64: 17850, Valid: true},
		Country:     "United Kingdom",
		Year:        2011,
		Month:       5,
		Hour:        12,
		Weekday:     time.Tuesday,
		IsValid:     true,
	}
}

func TestBuildIncidence_Distinct(t *testing.T) {
	// The same product on two lines of one invoice collapses to a
	// single incidence.
	records := []model.TransactionRecord{
		validRecord("1001", "A", "apples"),
		validRecord("1001", "A", "apples"),
		validRecord("1001", "B", "bananas"),
		validRecord("1002", "A", "apples"),
	}

	incidence := BuildIncidence(records)
	assert.Len(t, incidence, 3)
	assert.Equal(t, 2, CountOrders(incidence))
}

func TestBuildIncidence_SkipsInvalidRows(t *testing.T) {
	// An invalid line must not contribute to its order's product set and
	// must not affect the order's other valid lines.
	ret := validRecord("1001", "B", "bananas")
	ret.Quantity = sql.NullInt64{Int64: -3, Valid: true}
	ret.IsValid = false

	records := []model.TransactionRecord{
		validRecord("1001", "A", "apples"),
		ret,
	}

	incidence := BuildIncidence(records)
	assert.Len(t, incidence, 1)
	assert.Equal(t, "A", incidence[0].StockCode)
}

func TestBuildIncidence_DropsEmptyDescriptions(t *testing.T) {
	records := []model.TransactionRecord{
		validRecord("1001", "A", "apples"),
		validRecord("1001", "B", ""),
	}

	incidence := BuildIncidence(records)
	assert.Len(t, incidence, 1)
}

func TestBuildIncidence_Empty(t *testing.T) {
	incidence := BuildIncidence(nil)
	assert.Empty(t, incidence)
	assert.Equal(t, 0, CountOrders(incidence))
}
