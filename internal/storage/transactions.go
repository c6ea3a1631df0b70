package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/model"
)

// SaveTransactions saves cleaned transaction records. Re-imports are
// idempotent: rows are deduplicated on their content hash.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, records []model.TransactionRecord) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRecords(records); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO transactions (
			hash, invoice_no, stock_code, description, quantity,
			invoice_date, unit_price, unit_price_usd, line_total,
			customer_id, country, year, month, hour, weekday, is_valid
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i := range records {
		rec := &records[i]
		_, err = stmt.ExecContext(ctx,
			rec.GenerateHash(),
			rec.InvoiceNo,
			rec.StockCode,
			rec.Description,
			rec.Quantity,
			rec.InvoiceDate,
			rec.UnitPrice,
			rec.UnitPriceUSD,
			rec.LineTotal,
			rec.CustomerID,
			rec.Country,
			rec.Year,
			rec.Month,
			rec.Hour,
			int(rec.Weekday),
			rec.IsValid,
		)
		if err != nil {
			return fmt.Errorf("failed to insert transaction %s/%s: %w", rec.InvoiceNo, rec.StockCode, err)
		}
	}

	return tx.Commit()
}

// GetValidTransactions returns the full valid transaction set from the
// valid_transactions view. This is the pipeline's bulk read.
func (s *SQLiteStorage) GetValidTransactions(ctx context.Context) ([]model.TransactionRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT invoice_no, stock_code, description, quantity,
		       invoice_date, unit_price, unit_price_usd, line_total,
		       customer_id, country, year, month, hour, weekday
		FROM valid_transactions
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query valid transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.TransactionRecord
	for rows.Next() {
		var rec model.TransactionRecord
		var description sql.NullString
		var country sql.NullString
		var weekday int

		err := rows.Scan(
			&rec.InvoiceNo,
			&rec.StockCode,
			&description,
			&rec.Quantity,
			&rec.InvoiceDate,
			&rec.UnitPrice,
			&rec.UnitPriceUSD,
			&rec.LineTotal,
			&rec.CustomerID,
			&country,
			&rec.Year,
			&rec.Month,
			&rec.Hour,
			&weekday,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		rec.Description = description.String
		rec.Country = country.String
		rec.Weekday = time.Weekday(weekday)
		rec.IsValid = true

		records = append(records, rec)
	}

	return records, rows.Err()
}

// GetTransactionCount returns the total number of stored line items.
func (s *SQLiteStorage) GetTransactionCount(ctx context.Context) (int, error) {
	return s.countWhere(ctx, "")
}

// GetValidTransactionCount returns the number of valid line items.
func (s *SQLiteStorage) GetValidTransactionCount(ctx context.Context) (int, error) {
	return s.countWhere(ctx, "WHERE is_valid = 1")
}

func (s *SQLiteStorage) countWhere(ctx context.Context, where string) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	query := "SELECT COUNT(*) FROM transactions " + where
	if err := s.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// CountValidOrders returns the number of distinct valid orders. Computed
// once per analysis run and shared so every Support value uses the same
// denominator.
func (s *SQLiteStorage) CountValidOrders(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(DISTINCT invoice_no) FROM valid_transactions
	`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count valid orders: %w", err)
	}
	return count, nil
}
