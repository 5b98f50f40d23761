package xlgrid

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukaji3/xlgrid/pkg/xlgrid/models"
	"github.com/ukaji3/xlgrid/pkg/xlgrid/parser"
	"github.com/xuri/excelize/v2"
)

// Inspect reads a workbook back: cell values, merged blocks, used range,
// print areas and charts of every sheet.
func Inspect(path string) (*models.WorkbookData, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer zr.Close()

	wb, err := inspect(f, &zr.Reader)
	if err != nil {
		return nil, err
	}
	wb.BookName = filepath.Base(path)
	return wb, nil
}

// InspectFile reads back an open workbook, including unsaved changes.
func InspectFile(f *excelize.File) (*models.WorkbookData, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return inspect(f, zr)
}

func inspect(f *excelize.File, zr *zip.Reader) (*models.WorkbookData, error) {
	printAreas := parser.ExtractPrintAreas(f)
	charts, err := parser.ExtractCharts(zr)
	if err != nil {
		return nil, NewExtractionError("", "charts", err)
	}
	sheets := make(map[string]models.SheetData)

	for _, sheetName := range f.GetSheetList() {
		rows, err := parser.ExtractCells(f, sheetName)
		if err != nil {
			return nil, NewExtractionError(sheetName, "cells", err)
		}
		merged, err := parser.ExtractMerged(f, sheetName)
		if err != nil {
			return nil, NewExtractionError(sheetName, "merged", err)
		}
		used, err := parser.UsedRange(f, sheetName)
		if err != nil {
			return nil, NewExtractionError(sheetName, "used_range", err)
		}

		sheets[sheetName] = models.SheetData{
			Rows:       rows,
			Merged:     merged,
			UsedRange:  used,
			PrintAreas: printAreas[sheetName],
			Charts:     charts[sheetName],
		}
	}

	return &models.WorkbookData{Sheets: sheets}, nil
}
