// Package cleaner normalizes raw retail dataset rows into typed, flagged
// transaction records. Cleaning is pure per-row: no cross-row state, and
// malformed fields never abort a run.
package cleaner

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/model"
)

// ErrUnparseableDate indicates a row whose invoice date cannot be parsed.
// Such rows are excluded entirely: every retained record needs its calendar
// fields, so there is no null-like fallback for the timestamp.
var ErrUnparseableDate = errors.New("unparseable invoice date")

// RawRecord is one untyped row as read from the dataset.
type RawRecord struct {
	InvoiceNo   string
	StockCode   string
	Description string
	Quantity    string
	InvoiceDate string
	UnitPrice   string
	CustomerID  string
	Country     string
}

// Config controls cleaning policy.
type Config struct {
	// ConversionRate converts the original currency (GBP) to the normalized
	// reporting currency. A fixed scalar applied uniformly to every row.
	ConversionRate float64
	// RequireCustomerID invalidates rows without a parseable customer ID.
	// Product-only analyses can opt out of discarding that volume.
	RequireCustomerID bool
}

// Cancellation invoices are flagged with a leading 'C' in the dataset.
const cancellationPrefix = "C"

// Non-product system codes excluded from basket analysis, matched exactly.
var excludedCodes = map[string]struct{}{
	"POST":         {},
	"DOT":          {},
	"M":            {},
	"S":            {},
	"C2":           {},
	"D":            {},
	"CRUK":         {},
	"BANK CHARGES": {},
	"AMAZONFEE":    {},
	"SAMPLES":      {},
}

// Markers excluded by substring: adjustments, tests and gift vouchers carry
// variable suffixes (e.g. "gift_0001", "ADJUST2").
var excludedMarkers = []string{
	"gift_",
	"ADJUST",
	"TEST",
}

// Accepted invoice date layouts. The UCI export uses "M/D/YYYY H:MM";
// re-exports commonly normalize to ISO forms.
var dateLayouts = []string{
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

// Cleaner converts raw rows into typed transaction records.
type Cleaner struct {
	cfg Config
}

// New creates a Cleaner with the given policy.
func New(cfg Config) *Cleaner {
	return &Cleaner{cfg: cfg}
}

// Clean converts one raw row into a typed TransactionRecord. It returns
// ErrUnparseableDate when the invoice date cannot be parsed; every other
// malformed field maps to a null sentinel and IsValid=false.
func (c *Cleaner) Clean(raw RawRecord) (model.TransactionRecord, error) {
	date, err := parseDate(raw.InvoiceDate)
	if err != nil {
		return model.TransactionRecord{}, fmt.Errorf("%w: %q", ErrUnparseableDate, raw.InvoiceDate)
	}

	rec := model.TransactionRecord{
		InvoiceNo:   strings.TrimSpace(raw.InvoiceNo),
		StockCode:   strings.TrimSpace(raw.StockCode),
		Description: strings.TrimSpace(raw.Description),
		Country:     strings.TrimSpace(raw.Country),
		InvoiceDate: date,
		Quantity:    parseQuantity(raw.Quantity),
		UnitPrice:   parsePrice(raw.UnitPrice),
		CustomerID:  parseCustomerID(raw.CustomerID),
		Year:        date.Year(),
		Month:       int(date.Month()),
		Hour:        date.Hour(),
		Weekday:     date.Weekday(),
	}

	if rec.UnitPrice.Valid {
		rec.UnitPriceUSD = sql.NullFloat64{
			Float64: rec.UnitPrice.Float64 * c.cfg.ConversionRate,
			Valid:   true,
		}
	}
	if rec.Quantity.Valid && rec.UnitPriceUSD.Valid {
		rec.LineTotal = sql.NullFloat64{
			Float64: float64(rec.Quantity.Int64) * rec.UnitPriceUSD.Float64,
			Valid:   true,
		}
	}

	rec.IsValid = c.isValid(&rec)
	return rec, nil
}

// isValid applies the validity rules. All must hold:
// not a cancellation, positive integer quantity, positive price,
// customer present (when required), and a real product code.
func (c *Cleaner) isValid(rec *model.TransactionRecord) bool {
	if strings.HasPrefix(rec.InvoiceNo, cancellationPrefix) {
		return false
	}
	if !rec.Quantity.Valid || rec.Quantity.Int64 <= 0 {
		return false
	}
	if !rec.UnitPrice.Valid || rec.UnitPrice.Float64 <= 0 {
		return false
	}
	if c.cfg.RequireCustomerID && !rec.CustomerID.Valid {
		return false
	}
	if IsExcludedCode(rec.StockCode) {
		return false
	}
	return true
}

// IsExcludedCode reports whether a stock code denotes a non-product system
// code (postage, fees, adjustments, samples, gift vouchers).
func IsExcludedCode(code string) bool {
	upper := strings.ToUpper(strings.TrimSpace(code))
	if _, ok := excludedCodes[upper]; ok {
		return true
	}
	for _, marker := range excludedMarkers {
		if strings.Contains(upper, strings.ToUpper(marker)) {
			return true
		}
	}
	return false
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("no layout matched %q", s)
}

func parseQuantity(s string) sql.NullInt64 {
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: n, Valid: true}
}

func parsePrice(s string) sql.NullFloat64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: f, Valid: true}
}

func parseCustomerID(s string) sql.NullInt64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return sql.NullInt64{}
	}
	// Some exports render customer IDs as floats ("17850.0").
	if f, err := strconv.ParseFloat(s, 64); err == nil && f == float64(int64(f)) && f > 0 {
		return sql.NullInt64{Int64: int64(f), Valid: true}
	}
	return sql.NullInt64{}
}
