package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/basket"
	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/common"
	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/model"
)

// ReplaceAssociations atomically replaces the published association result
// set with a new run's output. Delete and insert happen inside one
// transaction, so a reader never observes a partial set and a failed run
// leaves the previous results authoritative.
func (s *SQLiteStorage) ReplaceAssociations(ctx context.Context, run model.AnalysisRun, associations []model.ProductPairAssociation) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRun(&run); err != nil {
		return err
	}
	if err := validateAssociations(associations); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM product_pairs`); err != nil {
		return fmt.Errorf("failed to clear previous associations: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO product_pairs (
			stock_code_a, stock_code_b, description_a, description_b,
			pair_count, total_orders, support_a, support_b, support_ab,
			confidence_a_to_b, confidence_b_to_a, lift, run_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i := range associations {
		a := &associations[i]
		_, err = stmt.ExecContext(ctx,
			a.StockCodeA,
			a.StockCodeB,
			a.DescriptionA,
			a.DescriptionB,
			a.PairCount,
			a.TotalOrders,
			a.SupportA,
			a.SupportB,
			a.SupportAB,
			a.ConfidenceAToB,
			a.ConfidenceBToA,
			a.Lift,
			run.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert association (%s, %s): %w", a.StockCodeA, a.StockCodeB, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO analysis_runs (id, started_at, completed_at, total_orders, products, pairs, retained)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.StartedAt, run.CompletedAt, run.TotalOrders, run.Products, run.Pairs, run.Retained)
	if err != nil {
		return fmt.Errorf("failed to record analysis run: %w", err)
	}

	return tx.Commit()
}

// GetAssociations returns the published result set in the requested sort
// order.
func (s *SQLiteStorage) GetAssociations(ctx context.Context, order basket.SortOrder, limit int) ([]model.ProductPairAssociation, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if !order.Valid() {
		return nil, fmt.Errorf("invalid sort order: %q", order)
	}

	var orderBy string
	switch order {
	case basket.SortBySupport:
		orderBy = "support_ab DESC"
	case basket.SortByConfidence:
		orderBy = "MAX(confidence_a_to_b, confidence_b_to_a) DESC"
	default:
		orderBy = "lift DESC"
	}

	query := fmt.Sprintf(`
		SELECT stock_code_a, stock_code_b, description_a, description_b,
		       pair_count, total_orders, support_a, support_b, support_ab,
		       confidence_a_to_b, confidence_b_to_a, lift
		FROM product_pairs
		ORDER BY %s, stock_code_a, stock_code_b
	`, orderBy)

	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query associations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanAssociations(rows)
}

// GetTopAssociations returns the bounded top-N view by lift, filtered to
// lift at or above minLift. Intended for visualization tooling.
func (s *SQLiteStorage) GetTopAssociations(ctx context.Context, n int, minLift float64) ([]model.ProductPairAssociation, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT stock_code_a, stock_code_b, description_a, description_b,
		       pair_count, total_orders, support_a, support_b, support_ab,
		       confidence_a_to_b, confidence_b_to_a, lift
		FROM product_pairs
		WHERE lift >= ?
		ORDER BY lift DESC, stock_code_a, stock_code_b
		LIMIT ?
	`, minLift, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query top associations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanAssociations(rows)
}

// GetLatestRun returns the most recently recorded analysis run.
func (s *SQLiteStorage) GetLatestRun(ctx context.Context) (*model.AnalysisRun, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	var run model.AnalysisRun
	err := s.db.QueryRowContext(ctx, `
		SELECT id, started_at, completed_at, total_orders, products, pairs, retained
		FROM analysis_runs
		ORDER BY started_at DESC
		LIMIT 1
	`).Scan(&run.ID, &run.StartedAt, &run.CompletedAt, &run.TotalOrders, &run.Products, &run.Pairs, &run.Retained)

	if err == sql.ErrNoRows {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest run: %w", err)
	}

	return &run, nil
}

func scanAssociations(rows *sql.Rows) ([]model.ProductPairAssociation, error) {
	var associations []model.ProductPairAssociation
	for rows.Next() {
		var a model.ProductPairAssociation
		var descA, descB sql.NullString

		err := rows.Scan(
			&a.StockCodeA,
			&a.StockCodeB,
			&descA,
			&descB,
			&a.PairCount,
			&a.TotalOrders,
			&a.SupportA,
			&a.SupportB,
			&a.SupportAB,
			&a.ConfidenceAToB,
			&a.ConfidenceBToA,
			&a.Lift,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan association: %w", err)
		}

		a.DescriptionA = descA.String
		a.DescriptionB = descB.String
		associations = append(associations, a)
	}

	return associations, rows.Err()
}
