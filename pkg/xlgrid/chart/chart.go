// Package chart builds charts over written tables. Series reference the
// table's cells by absolute coordinate, taken from the table's header, index
// and data mappings.
package chart

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/xlgrid/pkg/xlgrid/grid"
	"github.com/ukaji3/xlgrid/pkg/xlgrid/models"
)

var (
	// ErrTableNotWritten indicates a chart over a table that has not been placed yet.
	ErrTableNotWritten = errors.New("table not written")
	// ErrOutOfRange indicates a target row or column outside the table.
	ErrOutOfRange = errors.New("target out of range")
	// ErrInvalidUnit indicates an unknown unit name.
	ErrInvalidUnit = errors.New("unit can be only percent or piece")
)

// Charts take a fixed display block regardless of their content.
const (
	RowAdvance = 14
	ColAdvance = 7
)

// Unit selects how values are labelled and stacked.
type Unit int

const (
	Percent Unit = iota + 1
	Piece
)

// ParseUnit parses "percent" or "piece". An empty string means Percent.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "percent":
		return Percent, nil
	case "piece":
		return Piece, nil
	}
	return 0, fmt.Errorf("%w, got %q", ErrInvalidUnit, s)
}

// Source is a written grid element exposing its cell mappings.
// *table.Table implements it.
type Source interface {
	Written() bool
	Header() models.CellMapping
	Index() models.CellMapping
	Data() models.CellMapping
}

// Option configures a chart.
type Option func(*base)

// WithSize sets the chart size in pixels.
func WithSize(width, height int) Option {
	return func(b *base) { b.width, b.height = width, height }
}

// WithPalette sets series colors, applied in order and repeated.
func WithPalette(colors ...string) Option {
	return func(b *base) { b.palette = colors }
}

type base struct {
	name    string
	source  Source
	width   int
	height  int
	palette []string
}

func newBase(name string, source Source, opts []Option) base {
	b := base{name: name, source: source}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

func (b *base) check() error {
	if b.source == nil || !b.source.Written() {
		return fmt.Errorf("chart %q: %w", b.name, ErrTableNotWritten)
	}
	return nil
}

func (b *base) color(i int) string {
	if len(b.palette) == 0 {
		return ""
	}
	return b.palette[i%len(b.palette)]
}

// insert writes chart at cur and advances cur by the fixed chart block.
func (b *base) insert(page grid.Page, cur *models.Cursor, chart *models.Chart) error {
	chart.SetSize(b.width, b.height)
	if err := page.InsertChart(cur.Row, cur.Col, chart); err != nil {
		return fmt.Errorf("insert chart %q: %w", b.name, err)
	}
	cur.Advance(RowAdvance, ColAdvance)
	return nil
}

func span(sheet string, cells []models.Coordinate, what string) (models.Range, error) {
	r, ok := models.SpanRange(sheet, cells)
	if !ok {
		return models.Range{}, fmt.Errorf("%w: empty %s", ErrOutOfRange, what)
	}
	return r, nil
}

func cell(sheet string, m models.CellMapping, level, pos int, what string) (*models.Range, error) {
	c, ok := m.At(level, pos)
	if !ok {
		return nil, fmt.Errorf("%w: %s %d", ErrOutOfRange, what, pos)
	}
	r := models.CellRange(sheet, c)
	return &r, nil
}

func tail(cells []models.Coordinate, skip int, what string) ([]models.Coordinate, error) {
	if skip < 0 || skip >= len(cells) {
		return nil, fmt.Errorf("%w: skipping %d of %d %s", ErrOutOfRange, skip, len(cells), what)
	}
	return cells[skip:], nil
}
