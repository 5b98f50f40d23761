package grid

import (
	"errors"
	"fmt"

	"github.com/ukaji3/xlgrid/pkg/xlgrid/models"
	"github.com/xuri/excelize/v2"
)

// ErrUnsupportedChart indicates a chart kind/subkind pair excelize cannot draw.
var ErrUnsupportedChart = errors.New("unsupported chart type")

// printAreaName is the reserved defined name Excel uses for print areas.
const printAreaName = "_xlnm.Print_Area"

// ExcelPage writes to one sheet of an excelize workbook.
type ExcelPage struct {
	file   *excelize.File
	name   string
	styles map[models.Format]int
}

// NewExcelPage returns a page writing to the named sheet of f.
// The sheet must already exist.
func NewExcelPage(f *excelize.File, name string) *ExcelPage {
	return &ExcelPage{
		file:   f,
		name:   name,
		styles: make(map[models.Format]int),
	}
}

// Name returns the sheet name.
func (p *ExcelPage) Name() string {
	return p.name
}

// WriteCell writes value into (row, col).
func (p *ExcelPage) WriteCell(row, col int, value any, format *models.Format) error {
	cell, err := cellName(row, col)
	if err != nil {
		return err
	}
	if err := p.file.SetCellValue(p.name, cell, value); err != nil {
		return fmt.Errorf("write %s!%s: %w", p.name, cell, err)
	}
	return p.applyStyle(cell, cell, format)
}

// MergeRange merges the inclusive block and writes value into its top-left cell.
func (p *ExcelPage) MergeRange(firstRow, firstCol, lastRow, lastCol int, value any, format *models.Format) error {
	topLeft, err := cellName(firstRow, firstCol)
	if err != nil {
		return err
	}
	bottomRight, err := cellName(lastRow, lastCol)
	if err != nil {
		return err
	}
	if err := p.file.MergeCell(p.name, topLeft, bottomRight); err != nil {
		return fmt.Errorf("merge %s!%s:%s: %w", p.name, topLeft, bottomRight, err)
	}
	if err := p.file.SetCellValue(p.name, topLeft, value); err != nil {
		return fmt.Errorf("write %s!%s: %w", p.name, topLeft, err)
	}
	return p.applyStyle(topLeft, bottomRight, format)
}

// SetColumnWidth sets the width of an inclusive column span.
func (p *ExcelPage) SetColumnWidth(firstCol, lastCol int, width float64) error {
	first, err := excelize.ColumnNumberToName(firstCol + 1)
	if err != nil {
		return err
	}
	last, err := excelize.ColumnNumberToName(lastCol + 1)
	if err != nil {
		return err
	}
	return p.file.SetColWidth(p.name, first, last, width)
}

// InsertChart adds chart anchored at (row, col).
func (p *ExcelPage) InsertChart(row, col int, chart *models.Chart) error {
	cell, err := cellName(row, col)
	if err != nil {
		return err
	}
	ec, err := toExcelChart(chart)
	if err != nil {
		return err
	}
	if err := p.file.AddChart(p.name, cell, ec); err != nil {
		return fmt.Errorf("add %s chart at %s!%s: %w", chart.Kind, p.name, cell, err)
	}
	return nil
}

// SetPrintArea defines the sheet-scoped print area.
func (p *ExcelPage) SetPrintArea(area models.Range) error {
	ref, err := area.Ref()
	if err != nil {
		return err
	}
	return p.file.SetDefinedName(&excelize.DefinedName{
		Name:     printAreaName,
		RefersTo: ref,
		Scope:    p.name,
	})
}

func (p *ExcelPage) applyStyle(from, to string, format *models.Format) error {
	if format == nil {
		return nil
	}
	id, ok := p.styles[*format]
	if !ok {
		var err error
		id, err = p.file.NewStyle(toExcelStyle(*format))
		if err != nil {
			return fmt.Errorf("create style: %w", err)
		}
		p.styles[*format] = id
	}
	return p.file.SetCellStyle(p.name, from, to, id)
}

func cellName(row, col int) (string, error) {
	return excelize.CoordinatesToCellName(col+1, row+1)
}

func toExcelStyle(f models.Format) *excelize.Style {
	style := &excelize.Style{}
	if f.Align != "" || f.VAlign != "" || f.Wrap {
		style.Alignment = &excelize.Alignment{
			Horizontal: f.Align,
			Vertical:   verticalAlign(f.VAlign),
			WrapText:   f.Wrap,
		}
	}
	if f.FillColor != "" {
		style.Fill = excelize.Fill{Type: "pattern", Color: []string{f.FillColor}, Pattern: 1}
	}
	if f.Border > 0 {
		for _, side := range []string{"left", "right", "top", "bottom"} {
			style.Border = append(style.Border, excelize.Border{Type: side, Color: "000000", Style: f.Border})
		}
	}
	if f.Bold {
		style.Font = &excelize.Font{Bold: true}
	}
	if f.NumFmt != "" {
		numFmt := f.NumFmt
		style.CustomNumFmt = &numFmt
	}
	return style
}

// verticalAlign accepts the "vcenter" spelling used by other writers.
func verticalAlign(v string) string {
	if v == "vcenter" {
		return "center"
	}
	return v
}

func toExcelChart(c *models.Chart) (*excelize.Chart, error) {
	typ, err := chartType(c.Kind, c.Subkind)
	if err != nil {
		return nil, err
	}

	ec := &excelize.Chart{Type: typ}
	if c.Title != "" {
		ec.Title = []excelize.RichTextRun{{Text: c.Title}}
	}
	if c.Legend != "" {
		ec.Legend = excelize.ChartLegend{Position: c.Legend}
	}
	if c.Width > 0 && c.Height > 0 {
		ec.Dimension = excelize.ChartDimension{Width: uint(c.Width), Height: uint(c.Height)}
	}

	for _, s := range c.Series {
		categories, err := s.Categories.Ref()
		if err != nil {
			return nil, err
		}
		values, err := s.Values.Ref()
		if err != nil {
			return nil, err
		}
		// excelize writes the series name as a formula, so only cell
		// references can name a series.
		var name string
		if s.NameRange != nil {
			if name, err = s.NameRange.Ref(); err != nil {
				return nil, err
			}
		}

		series := excelize.ChartSeries{
			Name:       name,
			Categories: categories,
			Values:     values,
		}
		if s.Color != "" {
			series.Fill = excelize.Fill{Type: "pattern", Color: []string{s.Color}, Pattern: 1}
		}
		ec.Series = append(ec.Series, series)

		// excelize keeps data label switches on the plot area
		ec.PlotArea.ShowVal = ec.PlotArea.ShowVal || s.Labels.Value
		ec.PlotArea.ShowPercent = ec.PlotArea.ShowPercent || s.Labels.Percentage
		ec.PlotArea.ShowLeaderLines = ec.PlotArea.ShowLeaderLines || s.Labels.LeaderLines
	}

	return ec, nil
}

func chartType(kind models.ChartKind, subkind models.ChartSubkind) (excelize.ChartType, error) {
	switch kind {
	case models.ChartPie:
		return excelize.Pie, nil
	case models.ChartLine:
		return excelize.Line, nil
	case models.ChartColumn:
		switch subkind {
		case models.SubkindNone:
			return excelize.Col, nil
		case models.SubkindStacked:
			return excelize.ColStacked, nil
		case models.SubkindPercentStacked:
			return excelize.ColPercentStacked, nil
		}
	}
	return 0, fmt.Errorf("%w: %s/%s", ErrUnsupportedChart, kind, subkind)
}
