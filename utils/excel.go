package utils

import (
	"fmt"
	"io"

	"github.com/Kariqs/storefront-api/models"
	"github.com/tealeg/xlsx"
)

const excelTimeLayout = "2006-01-02 15:04:05"

var productExportHeaders = []string{
	"ID", "Name", "Description", "Price", "StockQuantity", "CategoryID", "CreatedAt", "UpdatedAt",
}

// WriteProductsWorkbook writes products as a single "Products" sheet with a
// header row.
func WriteProductsWorkbook(w io.Writer, products []models.Product) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Products")
	if err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, h := range productExportHeaders {
		headerRow.AddCell().SetString(h)
	}

	for _, p := range products {
		row := sheet.AddRow()
		row.AddCell().SetInt(int(p.ID))
		row.AddCell().SetString(p.Name)
		row.AddCell().SetString(p.Description)
		row.AddCell().SetString(p.Price.StringFixed(2))
		row.AddCell().SetInt(int(p.StockQuantity))
		row.AddCell().SetInt(int(p.CategoryID))
		row.AddCell().SetString(p.CreatedAt.Format(excelTimeLayout))
		row.AddCell().SetString(p.UpdatedAt.Format(excelTimeLayout))
	}

	return file.Write(w)
}
