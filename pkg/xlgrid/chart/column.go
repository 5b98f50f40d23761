package chart

import (
	"github.com/ukaji3/xlgrid/pkg/xlgrid/grid"
	"github.com/ukaji3/xlgrid/pkg/xlgrid/models"
)

// Column draws one stacked series per deepest header column, with the
// deepest index level as categories.
type Column struct {
	base
	unit Unit
}

// NewColumn returns a column chart over every column of source.
func NewColumn(name string, source Source, unit Unit, opts ...Option) *Column {
	return &Column{base: newBase(name, source, opts), unit: unit}
}

// Write inserts the chart at cur.
func (c *Column) Write(page grid.Page, cur *models.Cursor) error {
	if err := c.check(); err != nil {
		return err
	}
	sheet := page.Name()

	subkind := models.SubkindPercentStacked
	if c.unit == Piece {
		subkind = models.SubkindStacked
	}
	chart := models.NewChart(models.ChartColumn, subkind)

	categories, err := span(sheet, c.source.Index().Deepest(), "index")
	if err != nil {
		return err
	}

	header := c.source.Header()
	for i := range header.Deepest() {
		name, err := cell(sheet, header, -1, i, "header column")
		if err != nil {
			return err
		}
		values, err := span(sheet, c.source.Data().Column(i), "data column")
		if err != nil {
			return err
		}
		chart.AddSeries(models.ChartSeries{
			NameRange:  name,
			Categories: categories,
			Values:     values,
			Color:      c.color(i),
			Labels:     models.DataLabels{Value: true},
		})
	}
	chart.SetTitle(c.name)

	return c.insert(page, cur, chart)
}
