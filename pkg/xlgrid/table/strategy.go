package table

import (
	"github.com/ukaji3/xlgrid/pkg/xlgrid/grid"
	"github.com/ukaji3/xlgrid/pkg/xlgrid/models"
)

// TitleWriter writes a table's title band before its header. Implementations
// that write must advance cur past the rows they use.
type TitleWriter interface {
	WriteTitle(page grid.Page, cur *models.Cursor, t *Table, format *models.Format) error
}

// ColumnSizer adjusts column widths after a table is written.
type ColumnSizer interface {
	SizeColumns(page grid.Page, t *Table) error
}

// NoTitle writes nothing.
type NoTitle struct{}

func (NoTitle) WriteTitle(grid.Page, *models.Cursor, *Table, *models.Format) error { return nil }

// NoSizing leaves column widths alone.
type NoSizing struct{}

func (NoSizing) SizeColumns(grid.Page, *Table) error { return nil }

// MergedTitle writes the table name in one row merged across the index and
// data columns.
type MergedTitle struct{}

func (MergedTitle) WriteTitle(page grid.Page, cur *models.Cursor, t *Table, format *models.Format) error {
	last := cur.Col + t.Width() - 1
	var err error
	if last > cur.Col {
		err = page.MergeRange(cur.Row, cur.Col, cur.Row, last, t.Name(), format)
	} else {
		err = page.WriteCell(cur.Row, cur.Col, t.Name(), format)
	}
	if err != nil {
		return err
	}
	cur.Row++
	return nil
}

// FixedWidths sets every index column to Index and every data column to Data.
// A zero width leaves those columns alone.
type FixedWidths struct {
	Index float64
	Data  float64
}

func (w FixedWidths) SizeColumns(page grid.Page, t *Table) error {
	start := t.Start().Col
	indexCols := t.Frame().Index.Depth()
	if w.Index > 0 {
		if err := page.SetColumnWidth(start, start+indexCols-1, w.Index); err != nil {
			return err
		}
	}
	if w.Data > 0 && t.Frame().Cols() > 0 {
		first := start + indexCols
		if err := page.SetColumnWidth(first, first+t.Frame().Cols()-1, w.Data); err != nil {
			return err
		}
	}
	return nil
}
