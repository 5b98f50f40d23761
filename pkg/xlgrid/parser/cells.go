// Package parser reads written workbooks back: cell values, merged blocks,
// used ranges and print areas.
package parser

import (
	"strconv"

	"github.com/ukaji3/xlgrid/pkg/xlgrid/models"
	"github.com/xuri/excelize/v2"
)

// ExtractCells returns the non-empty rows of a sheet.
func ExtractCells(f *excelize.File, sheetName string) ([]models.CellRow, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var result []models.CellRow
	for rowIdx, row := range rows {
		cells := make(map[string]any)
		for colIdx, value := range row {
			if value == "" {
				continue
			}
			cells[strconv.Itoa(colIdx+1)] = parseValue(value)
		}
		if len(cells) > 0 {
			result = append(result, models.CellRow{R: rowIdx + 1, C: cells})
		}
	}

	return result, nil
}

// ExtractMerged returns the merged blocks of a sheet in document order.
func ExtractMerged(f *excelize.File, sheetName string) ([]models.MergedRange, error) {
	cells, err := f.GetMergeCells(sheetName)
	if err != nil {
		return nil, err
	}

	merged := make([]models.MergedRange, 0, len(cells))
	for _, c := range cells {
		merged = append(merged, models.MergedRange{
			Ref:   c.GetStartAxis() + ":" + c.GetEndAxis(),
			Value: c.GetCellValue(),
		})
	}
	return merged, nil
}

// parseValue returns int64 for integers, float64 for decimals, or the
// original string.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
