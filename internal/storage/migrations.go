package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application
// expects. If the database cannot be migrated to this version, it's a
// fatal error.
const ExpectedSchemaVersion = 3

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Transaction fact table",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS transactions (
					id INTEGER PRIMARY KEY AUTOINCREMENT,
					hash TEXT UNIQUE NOT NULL,
					invoice_no TEXT NOT NULL,
					stock_code TEXT NOT NULL,
					description TEXT,
					quantity INTEGER,
					invoice_date DATETIME NOT NULL,
					unit_price REAL,
					unit_price_usd REAL,
					line_total REAL,
					customer_id INTEGER,
					country TEXT,
					year INTEGER NOT NULL,
					month INTEGER NOT NULL,
					hour INTEGER NOT NULL,
					weekday INTEGER NOT NULL,
					is_valid INTEGER NOT NULL DEFAULT 0,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
				`CREATE INDEX idx_transactions_invoice ON transactions(invoice_no)`,
				`CREATE INDEX idx_transactions_stock_code ON transactions(stock_code)`,
				`CREATE INDEX idx_transactions_valid ON transactions(is_valid)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Valid transaction view",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`
				CREATE VIEW IF NOT EXISTS valid_transactions AS
				SELECT invoice_no, stock_code, description, quantity,
				       invoice_date, unit_price, unit_price_usd, line_total,
				       customer_id, country, year, month, hour, weekday
				FROM transactions
				WHERE is_valid = 1
			`)
			return err
		},
	},
	{
		Version:     3,
		Description: "Association results and run history",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS product_pairs (
					stock_code_a TEXT NOT NULL,
					stock_code_b TEXT NOT NULL,
					description_a TEXT,
					description_b TEXT,
					pair_count INTEGER NOT NULL,
					total_orders INTEGER NOT NULL,
					support_a REAL NOT NULL,
					support_b REAL NOT NULL,
					support_ab REAL NOT NULL,
					confidence_a_to_b REAL NOT NULL,
					confidence_b_to_a REAL NOT NULL,
					lift REAL NOT NULL,
					run_id TEXT NOT NULL,
					PRIMARY KEY (stock_code_a, stock_code_b)
				)`,
				`CREATE INDEX idx_product_pairs_lift ON product_pairs(lift DESC)`,
				`CREATE INDEX idx_product_pairs_support ON product_pairs(support_ab DESC)`,

				`CREATE TABLE IF NOT EXISTS analysis_runs (
					id TEXT PRIMARY KEY,
					started_at DATETIME NOT NULL,
					completed_at DATETIME NOT NULL,
					total_orders INTEGER NOT NULL,
					products INTEGER NOT NULL,
					pairs INTEGER NOT NULL,
					retained INTEGER NOT NULL,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
}

// Migrate applies all pending database migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	var finalVersion int
	err = s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}

// SchemaVersion returns the current schema version of the database.
func (s *SQLiteStorage) SchemaVersion(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version); err != nil {
		return 0, fmt.Errorf("failed to get schema version: %w", err)
	}
	return version, nil
}
