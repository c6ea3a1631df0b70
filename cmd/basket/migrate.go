package main

import (
	"fmt"
	"log/slog"

	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/cli"
	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/storage"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long: `Initialize or update the database schema to the latest version.

This command ensures your local database has all the required tables,
views and indexes for the application to function properly.`,
		RunE: runMigrate,
	}

	cmd.Flags().Bool("status", false, "Show current migration status without applying changes")

	return cmd
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	status, _ := cmd.Flags().GetBool("status")

	store, err := openStorage()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if status {
		version, versionErr := store.SchemaVersion(ctx)
		if versionErr != nil {
			return versionErr
		}
		if version == storage.ExpectedSchemaVersion {
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Schema up to date (version %d)", version)))
		} else {
			fmt.Println(cli.FormatWarning(fmt.Sprintf("Schema at version %d, expected %d; run 'basket migrate'", version, storage.ExpectedSchemaVersion)))
		}
		return nil
	}

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	slog.Info("Database migrated", "version", storage.ExpectedSchemaVersion)
	fmt.Println(cli.FormatSuccess("Database schema is up to date"))
	return nil
}
