package model

import (
	"crypto/sha256"
	"database/sql"
	"fmt"
	"time"
)

// TransactionRecord represents a single cleaned line item from the retail dataset.
// It is the canonical fact record: every downstream analysis reads from these
// rows, filtered on IsValid.
type TransactionRecord struct {
	InvoiceDate time.Time
	InvoiceNo   string
	StockCode   string
	Description string
	Country     string

	Quantity     sql.NullInt64
	UnitPrice    sql.NullFloat64 // original currency (GBP)
	UnitPriceUSD sql.NullFloat64 // converted at the configured fixed rate
	LineTotal    sql.NullFloat64 // quantity × converted unit price
	CustomerID   sql.NullInt64

	// Calendar fields derived from InvoiceDate at cleaning time.
	Year    int
	Month   int
	Hour    int
	Weekday time.Weekday

	// IsValid is a pure function of the fields above; see cleaner.Clean.
	IsValid bool
}

// GenerateHash creates a unique hash for duplicate detection on re-import.
func (t *TransactionRecord) GenerateHash() string {
	data := fmt.Sprintf("%s:%s:%d:%s:%.2f:%d",
		t.InvoiceNo,
		t.StockCode,
		t.Quantity.Int64,
		t.InvoiceDate.Format("2006-01-02 15:04"),
		t.UnitPrice.Float64,
		t.CustomerID.Int64)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}
