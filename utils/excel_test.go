package utils

import (
	"bytes"
	"testing"
	"time"

	"github.com/Kariqs/storefront-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"
)

func TestWriteProductsWorkbook(t *testing.T) {
	product := models.Product{
		Name:          "Notebook",
		Description:   "A5, dotted",
		Price:         models.MustMoney("12.5"),
		StockQuantity: 4,
		CategoryID:    2,
	}
	product.ID = 1
	product.CreatedAt = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	product.UpdatedAt = product.CreatedAt

	var buf bytes.Buffer
	require.NoError(t, WriteProductsWorkbook(&buf, []models.Product{product}))

	file, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)
	sheet := file.Sheets[0]
	assert.Equal(t, "Products", sheet.Name)
	require.Len(t, sheet.Rows, 2)

	assert.Equal(t, "Price", sheet.Rows[0].Cells[3].Value)
	row := sheet.Rows[1]
	assert.Equal(t, "1", row.Cells[0].Value)
	assert.Equal(t, "Notebook", row.Cells[1].Value)
	assert.Equal(t, "12.50", row.Cells[3].Value)
	assert.Equal(t, "2024-03-01 10:00:00", row.Cells[6].Value)
}
