package parser

import (
	"github.com/xuri/excelize/v2"
)

// UsedRange returns the bounding range of non-empty cells (e.g. "A1:H10"),
// or "" for an empty sheet.
func UsedRange(f *excelize.File, sheetName string) (string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return "", err
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return "", nil
	}

	start, err := excelize.CoordinatesToCellName(minCol+1, minRow+1)
	if err != nil {
		return "", err
	}
	end, err := excelize.CoordinatesToCellName(maxCol+1, maxRow+1)
	if err != nil {
		return "", err
	}
	return start + ":" + end, nil
}

// findDataBounds finds the zero-based bounding box of non-empty cells.
// All bounds are -1 when there is none.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for r, row := range rows {
		for c, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 {
				minRow = r
			}
			maxRow = r
			if minCol < 0 || c < minCol {
				minCol = c
			}
			if c > maxCol {
				maxCol = c
			}
		}
	}

	return
}
