// Package grid defines the document writer capability used by the layout
// engine and provides implementations backed by excelize and by an in-memory
// recorder.
package grid

import "github.com/ukaji3/xlgrid/pkg/xlgrid/models"

// Page is one writable sheet of a document. Rows and columns are zero-based.
// The layout engine calls into a Page and never reads back from it.
type Page interface {
	// Name returns the sheet name used in range references.
	Name() string
	// WriteCell writes a scalar value into a single cell.
	WriteCell(row, col int, value any, format *models.Format) error
	// MergeRange merges the inclusive block and writes value into it.
	MergeRange(firstRow, firstCol, lastRow, lastCol int, value any, format *models.Format) error
	// SetColumnWidth sets the width of columns firstCol..lastCol inclusive.
	SetColumnWidth(firstCol, lastCol int, width float64) error
	// InsertChart anchors chart with its top-left corner at (row, col).
	InsertChart(row, col int, chart *models.Chart) error
	// SetPrintArea sets the page's print area.
	SetPrintArea(area models.Range) error
}
