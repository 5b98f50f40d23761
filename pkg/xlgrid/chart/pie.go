package chart

import (
	"fmt"

	"github.com/ukaji3/xlgrid/pkg/xlgrid/grid"
	"github.com/ukaji3/xlgrid/pkg/xlgrid/models"
)

// Pie plots one data row against the deepest header level.
type Pie struct {
	base
	targetRow int
	unit      Unit
}

// NewPie returns a pie chart over row targetRow of source.
func NewPie(name string, source Source, targetRow int, unit Unit, opts ...Option) *Pie {
	return &Pie{base: newBase(name, source, opts), targetRow: targetRow, unit: unit}
}

// Write inserts the chart at cur.
func (p *Pie) Write(page grid.Page, cur *models.Cursor) error {
	if err := p.check(); err != nil {
		return err
	}
	sheet := page.Name()

	categories, err := span(sheet, p.source.Header().Deepest(), "header")
	if err != nil {
		return err
	}
	row := p.source.Data().Level(p.targetRow)
	if row == nil {
		return fmt.Errorf("%w: row %d", ErrOutOfRange, p.targetRow)
	}
	values, err := span(sheet, row, "data row")
	if err != nil {
		return err
	}

	labels := models.DataLabels{LeaderLines: true}
	switch p.unit {
	case Piece:
		labels.Value = true
	default:
		labels.Percentage = true
	}

	chart := models.NewChart(models.ChartPie, models.SubkindNone)
	chart.AddSeries(models.ChartSeries{
		Categories: categories,
		Values:     values,
		Labels:     labels,
	})
	chart.SetTitle(p.name)
	chart.SetLegend("top")

	return p.insert(page, cur, chart)
}
