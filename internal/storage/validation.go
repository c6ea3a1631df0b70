// Package storage provides the SQLite persistence layer for the basket
// analysis pipeline.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/model"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrNilParameter       = errors.New("parameter cannot be nil")
	ErrInvalidTransaction = errors.New("invalid transaction record")
	ErrInvalidAssociation = errors.New("invalid association")
	ErrInvalidRun         = errors.New("invalid analysis run")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateRecords validates a slice of transaction records.
func validateRecords(records []model.TransactionRecord) error {
	if records == nil {
		return fmt.Errorf("%w: records", ErrNilParameter)
	}
	for i := range records {
		if err := validateRecord(&records[i]); err != nil {
			return fmt.Errorf("record at index %d: %w", i, err)
		}
	}
	return nil
}

// validateRecord validates a single transaction record.
func validateRecord(rec *model.TransactionRecord) error {
	if rec == nil {
		return fmt.Errorf("%w: record", ErrNilParameter)
	}
	if rec.InvoiceNo == "" {
		return fmt.Errorf("%w: missing invoice number", ErrInvalidTransaction)
	}
	if rec.StockCode == "" {
		return fmt.Errorf("%w: missing stock code", ErrInvalidTransaction)
	}
	if rec.InvoiceDate.IsZero() {
		return fmt.Errorf("%w: missing invoice date", ErrInvalidTransaction)
	}
	return nil
}

// validateAssociations validates a slice of associations before publish.
func validateAssociations(associations []model.ProductPairAssociation) error {
	if associations == nil {
		return fmt.Errorf("%w: associations", ErrNilParameter)
	}
	for i := range associations {
		a := &associations[i]
		if a.StockCodeA == "" || a.StockCodeB == "" {
			return fmt.Errorf("%w at index %d: missing stock code", ErrInvalidAssociation, i)
		}
		if a.StockCodeA >= a.StockCodeB {
			return fmt.Errorf("%w at index %d: pair (%s, %s) is not in canonical order", ErrInvalidAssociation, i, a.StockCodeA, a.StockCodeB)
		}
		if a.PairCount < 1 {
			return fmt.Errorf("%w at index %d: pair count must be positive", ErrInvalidAssociation, i)
		}
	}
	return nil
}

// validateRun validates run metadata before publish.
func validateRun(run *model.AnalysisRun) error {
	if run == nil {
		return fmt.Errorf("%w: run", ErrNilParameter)
	}
	if run.ID == "" {
		return fmt.Errorf("%w: missing run ID", ErrInvalidRun)
	}
	return nil
}
