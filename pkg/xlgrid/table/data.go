package table

import (
	"errors"
	"fmt"

	"github.com/ukaji3/xlgrid/pkg/xlgrid/grid"
	"github.com/ukaji3/xlgrid/pkg/xlgrid/models"
)

// ErrMalformedFrame indicates values whose shape does not match the axes.
var ErrMalformedFrame = errors.New("malformed frame")

// Frame is the input of a table: a row index, a column axis and a row-major
// block of values with Index.Len() rows of Columns.Len() values each.
type Frame struct {
	Index   Axis
	Columns Axis
	Values  [][]any
}

// NewFrame validates the value block against both axes.
func NewFrame(index, columns Axis, values [][]any) (Frame, error) {
	if len(values) != index.Len() {
		return Frame{}, fmt.Errorf("%w: %d value rows for %d index labels", ErrMalformedFrame, len(values), index.Len())
	}
	for i, row := range values {
		if len(row) != columns.Len() {
			return Frame{}, fmt.Errorf("%w: row %d has %d values for %d columns", ErrMalformedFrame, i, len(row), columns.Len())
		}
	}
	return Frame{Index: index, Columns: columns, Values: values}, nil
}

// Rows returns the number of data rows.
func (f Frame) Rows() int { return len(f.Values) }

// Cols returns the number of data columns.
func (f Frame) Cols() int { return f.Columns.Len() }

// Data writes the value block of a table.
type Data struct {
	values  [][]any
	cols    int
	mapping models.CellMapping
}

// NewData returns a writer for values with cols columns.
func NewData(values [][]any, cols int) *Data {
	return &Data{values: values, cols: cols}
}

// Mapping returns the [row][col] coordinates recorded by Write.
func (d *Data) Mapping() models.CellMapping {
	return d.mapping
}

// Write writes value [i][j] at cur+(i, j), then moves cur one past the last
// data row and cols columns to the right.
func (d *Data) Write(page grid.Page, cur *models.Cursor, format *models.Format) error {
	d.mapping = make(models.CellMapping, 0, len(d.values))
	origin := cur.Coordinate()
	for i, values := range d.values {
		mapped := make([]models.Coordinate, 0, len(values))
		for j, v := range values {
			c := origin.Offset(i, j)
			if err := page.WriteCell(c.Row, c.Col, v, format); err != nil {
				return fmt.Errorf("write data [%d][%d]: %w", i, j, err)
			}
			mapped = append(mapped, c)
		}
		d.mapping = append(d.mapping, mapped)
	}

	cur.Row = origin.Row + len(d.values)
	cur.Col += d.cols
	return nil
}
