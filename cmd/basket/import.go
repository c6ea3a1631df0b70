package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/cleaner"
	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/cli"
	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/common"
	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/model"
	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/retailcsv"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import raw retail transactions from a CSV export",
		Long: `Import raw transaction rows from an online-retail CSV export.

Each row is cleaned into a typed record: quantities, prices, dates and
customer IDs are parsed, prices are converted to the reporting currency,
and a validity flag is derived. Re-imports are deduplicated automatically.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().Bool("dry-run", false, "Clean and report counts without saving")

	_ = viper.BindPFlag("import.dry_run", cmd.Flags().Lookup("dry-run"))

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	path := args[0]

	file, err := os.Open(path)
	if err != nil {
		return common.NewUserError(fmt.Sprintf("cannot open %s", path), err)
	}
	defer func() { _ = file.Close() }()

	rows, err := retailcsv.NewParser().Parse(ctx, file)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	cfg := analysisConfig()
	clean := cleaner.New(cleaner.Config{
		ConversionRate:    cfg.ConversionRate,
		RequireCustomerID: cfg.RequireCustomerID,
	})

	bar := progressbar.NewOptions(len(rows),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Cleaning transactions..."),
	)

	records := make([]model.TransactionRecord, 0, len(rows))
	var valid, invalid, dateSkipped int

	for _, row := range rows {
		_ = bar.Add(1)

		rec, cleanErr := clean.Clean(cleaner.RawRecord{
			InvoiceNo:   row.InvoiceNo,
			StockCode:   row.StockCode,
			Description: row.Description,
			Quantity:    row.Quantity,
			InvoiceDate: row.InvoiceDate,
			UnitPrice:   row.UnitPrice,
			CustomerID:  row.CustomerID,
			Country:     row.Country,
		})
		if cleanErr != nil {
			if errors.Is(cleanErr, cleaner.ErrUnparseableDate) {
				dateSkipped++
				continue
			}
			return cleanErr
		}

		if rec.IsValid {
			valid++
		} else {
			invalid++
		}
		records = append(records, rec)
	}
	_ = bar.Finish()
	fmt.Fprintln(os.Stderr)

	if viper.GetBool("import.dry_run") {
		slog.Info("Dry run, nothing saved",
			"rows", len(rows),
			"valid", valid,
			"invalid", invalid,
			"date_skipped", dateSkipped)
		return nil
	}

	store, err := openStorage()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if len(records) > 0 {
		if err := store.SaveTransactions(ctx, records); err != nil {
			return fmt.Errorf("failed to save transactions: %w", err)
		}
	}

	total, err := store.GetTransactionCount(ctx)
	if err != nil {
		return err
	}
	validStored, err := store.GetValidTransactionCount(ctx)
	if err != nil {
		return err
	}

	slog.Info(cli.FormatSuccess("Import complete"),
		"imported", len(records),
		"valid", valid,
		"invalid", invalid,
		"date_skipped", dateSkipped,
		"total_stored", total,
		"valid_stored", validStored)

	return nil
}
