// Package excel reads and writes the product catalog as .xlsx price
// lists for the admin bulk import/export endpoints.
package excel

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/furnishfusion/storefront/internal/domain/entity"
)

// ImportProducts parses a catalog workbook. Expected columns, first
// sheet, header row skipped: Name, Description, Price, Image URL,
// Category. Rows without a name or a positive price are skipped.
func ImportProducts(r io.Reader) ([]entity.Product, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}

	var products []entity.Product
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		name := cell(row, 0)
		if name == "" {
			continue
		}
		price, err := parsePrice(cell(row, 2))
		if err != nil || price <= 0 {
			continue
		}
		products = append(products, entity.Product{
			Name:        name,
			Description: cell(row, 1),
			Price:       price,
			ImageURL:    cell(row, 3),
			Category:    cell(row, 4),
		})
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("no usable product rows in workbook")
	}
	return products, nil
}

// ExportProducts builds a catalog workbook with review aggregates.
func ExportProducts(products []entity.ProductWithRating) ([]byte, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	headers := []string{"ID", "Name", "Description", "Price", "Image URL", "Category", "Avg Rating", "Rating Count", "Created At"}
	for i, h := range headers {
		cellName, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cellName, h); err != nil {
			return nil, err
		}
	}

	for i, p := range products {
		values := []interface{}{
			p.ID,
			p.Name,
			p.Description,
			p.Price,
			p.ImageURL,
			p.Category,
			p.AvgRating,
			p.RatingCount,
			p.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		rowIdx := i + 2
		for c, v := range values {
			cellName, err := excelize.CoordinatesToCellName(c+1, rowIdx)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cellName, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parsePrice(raw string) (float64, error) {
	raw = strings.ReplaceAll(raw, ",", "")
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "₹"))
	if raw == "" {
		return 0, fmt.Errorf("empty price")
	}
	return strconv.ParseFloat(raw, 64)
}
