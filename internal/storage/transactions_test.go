package storage_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/model"
	"github.com/daniel0310gg/Online-Retail-Market-Basket-Analysis/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(invoice, code string, valid bool) model.TransactionRecord {
	return model.TransactionRecord{
		InvoiceNo:    invoice,
		StockCode:    code,
		Description:  "PRODUCT " + code,
		InvoiceDate:  time.Date(2011, 5, 10, 12, 0, 0, 0, time.UTC),
		Quantity:     sql.NullInt64{Int64: 2, Valid: true},
		UnitPrice:    sql.NullFloat64{Float64: 2.55, Valid: true},
		UnitPriceUSD: sql.NullFloat64{Float64: 2.17, Valid: true},
		LineTotal:    sql.NullFloat64{Float64: 4.34, Valid: true},
		CustomerID:   sql.NullInt64{Int64: 17850, Valid: true},
		Country:      "United Kingdom",
		Year:         2011,
		Month:        5,
		Hour:         12,
		Weekday:      time.Tuesday,
		IsValid:      valid,
	}
}

func TestSaveTransactions_ValidView(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	records := []model.TransactionRecord{
		record("1001", "A", true),
		record("1001", "B", true),
		record("1002", "A", false),
	}
	require.NoError(t, store.SaveTransactions(ctx, records))

	total, err := store.GetTransactionCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, total)

	valid, err := store.GetValidTransactionCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, valid)

	// The valid view exposes only flagged rows, already typed.
	rows, err := store.GetValidTransactions(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, rec := range rows {
		assert.True(t, rec.IsValid)
		assert.Equal(t, "1001", rec.InvoiceNo)
		assert.Equal(t, 2011, rec.Year)
		assert.Equal(t, time.Tuesday, rec.Weekday)
	}
}

func TestSaveTransactions_Deduplicates(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	records := []model.TransactionRecord{record("1001", "A", true)}
	require.NoError(t, store.SaveTransactions(ctx, records))
	require.NoError(t, store.SaveTransactions(ctx, records))

	total, err := store.GetTransactionCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
}

func TestCountValidOrders(t *testing.T) {
	store := testutil.SetupTestDB(t)
	ctx := context.Background()

	records := []model.TransactionRecord{
		record("1001", "A", true),
		record("1001", "B", true),
		record("1002", "A", true),
		record("1003", "A", false),
	}
	require.NoError(t, store.SaveTransactions(ctx, records))

	count, err := store.CountValidOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestCountValidOrders_Empty(t *testing.T) {
	store := testutil.SetupTestDB(t)

	count, err := store.CountValidOrders(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
