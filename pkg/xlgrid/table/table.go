package table

import (
	"fmt"

	"github.com/ukaji3/xlgrid/pkg/xlgrid/grid"
	"github.com/ukaji3/xlgrid/pkg/xlgrid/models"
)

// Formats holds the cell formats of each block of a table.
type Formats struct {
	Title  *models.Format
	Header *models.Format
	Index  *models.Format
	Data   *models.Format
}

// DefaultFormats returns the stock table formats.
func DefaultFormats() Formats {
	header := &models.Format{Align: "center", VAlign: "vcenter", FillColor: "#D7E4BC", Border: 6}
	return Formats{
		Title:  header,
		Header: header,
		Index:  &models.Format{Align: "left", VAlign: "top", Border: 1},
		Data:   &models.Format{Align: "center", Border: 1},
	}
}

// Option configures a Table.
type Option func(*Table)

// WithName sets the table name used by title writers.
func WithName(name string) Option { return func(t *Table) { t.name = name } }

// WithTitle sets the title strategy. The default writes no title.
func WithTitle(w TitleWriter) Option { return func(t *Table) { t.title = w } }

// WithColumnSizer sets the column width strategy. The default leaves widths alone.
func WithColumnSizer(s ColumnSizer) Option { return func(t *Table) { t.sizer = s } }

// WithFormats overrides the block formats.
func WithFormats(f Formats) Option { return func(t *Table) { t.formats = f } }

// Table is a grid element made of an optional title band, a header block on
// top, an index block on the left and a data block bottom-right.
//
// A Table is written once; its mappings are read afterwards by charts.
type Table struct {
	frame   Frame
	name    string
	title   TitleWriter
	sizer   ColumnSizer
	formats Formats

	header *Mapper
	index  *Mapper
	data   *Data

	start   models.Cursor
	end     models.Cursor
	written bool
}

// New returns a table over frame.
func New(frame Frame, opts ...Option) *Table {
	t := &Table{
		frame:   frame,
		title:   NoTitle{},
		sizer:   NoSizing{},
		formats: DefaultFormats(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Write places the table with its top-left corner at cur and leaves cur one
// past the last data row and column.
//
// cur is owned by one writer at a time: the title writer advances rows, the
// header advances rows, the index advances columns and the data block moves
// cur to the bottom-right corner.
func (t *Table) Write(page grid.Page, cur *models.Cursor) error {
	t.start = *cur

	if err := t.title.WriteTitle(page, cur, t, t.formats.Title); err != nil {
		return fmt.Errorf("write title: %w", err)
	}

	t.header = NewHeader(t.frame.Columns, t.frame.Index.Names())
	if err := t.header.Write(page, cur, t.formats.Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	t.index = NewIndex(t.frame.Index)
	if err := t.index.Write(page, cur, t.formats.Index); err != nil {
		return fmt.Errorf("write index: %w", err)
	}

	t.data = NewData(t.frame.Values, t.frame.Cols())
	if err := t.data.Write(page, cur, t.formats.Data); err != nil {
		return fmt.Errorf("write data: %w", err)
	}

	t.end = *cur
	t.written = true

	if err := t.sizer.SizeColumns(page, t); err != nil {
		return fmt.Errorf("size columns: %w", err)
	}
	return nil
}

// Name returns the table name.
func (t *Table) Name() string { return t.name }

// Frame returns the table's input.
func (t *Table) Frame() Frame { return t.frame }

// Width returns the number of columns the table occupies.
func (t *Table) Width() int { return t.frame.Index.Depth() + t.frame.Cols() }

// Written reports whether Write has completed.
func (t *Table) Written() bool { return t.written }

// Start returns the cursor the table was written at.
func (t *Table) Start() models.Cursor { return t.start }

// End returns the cursor after the table was written.
func (t *Table) End() models.Cursor { return t.end }

// Header returns the header mapping, nil before Write.
func (t *Table) Header() models.CellMapping {
	if t.header == nil {
		return nil
	}
	return t.header.Mapping()
}

// Index returns the index mapping, nil before Write.
func (t *Table) Index() models.CellMapping {
	if t.index == nil {
		return nil
	}
	return t.index.Mapping()
}

// Data returns the [row][col] data mapping, nil before Write.
func (t *Table) Data() models.CellMapping {
	if t.data == nil {
		return nil
	}
	return t.data.Mapping()
}
