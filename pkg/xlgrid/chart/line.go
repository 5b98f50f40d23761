package chart

import (
	"fmt"

	"github.com/ukaji3/xlgrid/pkg/xlgrid/grid"
	"github.com/ukaji3/xlgrid/pkg/xlgrid/models"
)

// Line draws one series per target row, with the deepest header level as
// categories. The first skipColumns data columns are left out.
type Line struct {
	base
	targetRows  []int
	skipColumns int
}

// NewLine returns a line chart over the given rows of source.
func NewLine(name string, source Source, targetRows []int, skipColumns int, opts ...Option) *Line {
	return &Line{base: newBase(name, source, opts), targetRows: targetRows, skipColumns: skipColumns}
}

// Write inserts the chart at cur.
func (l *Line) Write(page grid.Page, cur *models.Cursor) error {
	if err := l.check(); err != nil {
		return err
	}
	if len(l.targetRows) == 0 {
		return fmt.Errorf("chart %q: %w: no target rows", l.name, ErrOutOfRange)
	}
	sheet := page.Name()

	header, err := tail(l.source.Header().Deepest(), l.skipColumns, "header columns")
	if err != nil {
		return err
	}
	categories, err := span(sheet, header, "header")
	if err != nil {
		return err
	}

	chart := models.NewChart(models.ChartLine, models.SubkindNone)
	for i, row := range l.targetRows {
		name, err := cell(sheet, l.source.Index(), -1, row, "index row")
		if err != nil {
			return err
		}
		data := l.source.Data().Level(row)
		if data == nil {
			return fmt.Errorf("%w: row %d", ErrOutOfRange, row)
		}
		cells, err := tail(data, l.skipColumns, "data columns")
		if err != nil {
			return err
		}
		values, err := span(sheet, cells, "data row")
		if err != nil {
			return err
		}
		chart.AddSeries(models.ChartSeries{
			NameRange:  name,
			Categories: categories,
			Values:     values,
			Color:      l.color(i),
		})
	}
	chart.SetTitle(l.name)
	chart.SetLegend("top")

	return l.insert(page, cur, chart)
}
