// Package retailcsv reads the raw retail dataset CSV into untyped records
// for the cleaner.
package retailcsv

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Expected column order in the dataset export.
const (
	colInvoiceNo = iota
	colStockCode
	colDescription
	colQuantity
	colInvoiceDate
	colUnitPrice
	colCustomerID
	colCountry
	columnCount
)

// Row is one raw CSV row, fields untyped.
type Row struct {
	InvoiceNo   string
	StockCode   string
	Description string
	Quantity    string
	InvoiceDate string
	UnitPrice   string
	CustomerID  string
	Country     string
}

// Parser reads retail CSV exports.
type Parser struct{}

// NewParser creates a new CSV parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads all rows from the reader. A header row is detected and
// skipped. Rows with the wrong column count are skipped with a warning;
// they never abort the import.
func (p *Parser) Parse(ctx context.Context, reader io.Reader) ([]Row, error) {
	r := csv.NewReader(reader)
	r.FieldsPerRecord = -1 // validated per row below
	r.LazyQuotes = true

	var rows []Row
	var skipped int
	line := 0

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV at line %d: %w", line+1, err)
		}
		line++

		if line == 1 && isHeader(record) {
			continue
		}

		if len(record) != columnCount {
			skipped++
			slog.Warn("Skipping malformed CSV row",
				"line", line,
				"fields", len(record))
			continue
		}

		rows = append(rows, Row{
			InvoiceNo:   record[colInvoiceNo],
			StockCode:   record[colStockCode],
			Description: record[colDescription],
			Quantity:    record[colQuantity],
			InvoiceDate: record[colInvoiceDate],
			UnitPrice:   record[colUnitPrice],
			CustomerID:  record[colCustomerID],
			Country:     record[colCountry],
		})
	}

	slog.Info("Parsed retail CSV",
		"rows", len(rows),
		"skipped", skipped)

	return rows, nil
}

// isHeader reports whether a record looks like the dataset header row.
func isHeader(record []string) bool {
	if len(record) == 0 {
		return false
	}
	first := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(record[0], "\ufeff")))
	return first == "invoiceno" || first == "invoice_no" || first == "invoice"
}
