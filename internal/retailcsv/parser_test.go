package retailcsv

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `InvoiceNo,StockCode,Description,Quantity,InvoiceDate,UnitPrice,CustomerID,Country
536365,85123A,WHITE HANGING HEART T-LIGHT HOLDER,6,12/1/2010 8:26,2.55,17850,United Kingdom
536365,71053,WHITE METAL LANTERN,6,12/1/2010 8:26,3.39,17850,United Kingdom
`

func TestParse_FieldMapping(t *testing.T) {
	parser := NewParser()

	rows, err := parser.Parse(context.Background(), strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, "536365", first.InvoiceNo)
	assert.Equal(t, "85123A", first.StockCode)
	assert.Equal(t, "WHITE HANGING HEART T-LIGHT HOLDER", first.Description)
	assert.Equal(t, "6", first.Quantity)
	assert.Equal(t, "12/1/2010 8:26", first.InvoiceDate)
	assert.Equal(t, "2.55", first.UnitPrice)
	assert.Equal(t, "17850", first.CustomerID)
	assert.Equal(t, "United Kingdom", first.Country)
}

func TestParse_HeaderWithBOM(t *testing.T) {
	parser := NewParser()
	input := "\ufeff" + sampleCSV

	rows, err := parser.Parse(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestParse_NoHeader(t *testing.T) {
	parser := NewParser()
	input := "536365,85123A,HOLDER,6,12/1/2010 8:26,2.55,17850,United Kingdom\n"

	rows, err := parser.Parse(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "536365", rows[0].InvoiceNo)
}

func TestParse_SkipsMalformedRows(t *testing.T) {
	parser := NewParser()
	input := sampleCSV +
		"536366,22752\n" + // too few fields
		"536367,84879,ASSORTED COLOUR BIRD ORNAMENT,32,12/1/2010 8:34,1.69,13047,United Kingdom\n"

	rows, err := parser.Parse(context.Background(), strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "536367", rows[2].InvoiceNo)
}

func TestParse_EmptyInput(t *testing.T) {
	parser := NewParser()

	rows, err := parser.Parse(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParse_ContextCancelled(t *testing.T) {
	parser := NewParser()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := parser.Parse(ctx, strings.NewReader(sampleCSV))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
