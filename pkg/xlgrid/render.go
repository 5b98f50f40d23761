package xlgrid

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/ukaji3/xlgrid/pkg/xlgrid/chart"
	"github.com/ukaji3/xlgrid/pkg/xlgrid/grid"
	"github.com/ukaji3/xlgrid/pkg/xlgrid/layout"
	"github.com/ukaji3/xlgrid/pkg/xlgrid/models"
	"github.com/ukaji3/xlgrid/pkg/xlgrid/table"
	"github.com/xuri/excelize/v2"
)

// defaultSheet is the sheet every new excelize workbook starts with.
const defaultSheet = "Sheet1"

// Render lays out report into a new workbook.
func Render(report models.Report, opts Options) (*excelize.File, error) {
	if err := validateSheets(report); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	newPage := func(i int, name string) (grid.Page, error) {
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, name); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return nil, err
		}
		return grid.NewExcelPage(f, name), nil
	}

	if err := render(report, opts, newPage); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// RenderTo lays out report and writes the workbook to w.
func RenderTo(w io.Writer, report models.Report, opts Options) error {
	f, err := Render(report, opts)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// Plan lays out report without producing a workbook and returns the recorded
// page operations per sheet, in sheet order.
func Plan(report models.Report, opts Options) ([]*grid.Recorder, error) {
	if err := validateSheets(report); err != nil {
		return nil, err
	}

	var pages []*grid.Recorder
	newPage := func(_ int, name string) (grid.Page, error) {
		r := grid.NewRecorder(name)
		pages = append(pages, r)
		return r, nil
	}
	if err := render(report, opts, newPage); err != nil {
		return nil, err
	}
	return pages, nil
}

func validateSheets(report models.Report) error {
	if len(report.Sheets) == 0 {
		return fmt.Errorf("%w: no sheets", ErrInvalidDefinition)
	}
	seen := make(map[string]bool, len(report.Sheets))
	for _, s := range report.Sheets {
		if s.Name == "" {
			return fmt.Errorf("%w: sheet without name", ErrInvalidDefinition)
		}
		if seen[s.Name] {
			return fmt.Errorf("%w: duplicate sheet %q", ErrInvalidDefinition, s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}

type renderer struct {
	opts   Options
	logger *log.Logger
	sheet  *layout.Sheet
	tables map[string]*table.Table
}

func render(report models.Report, opts Options, newPage func(int, string) (grid.Page, error)) error {
	logger := opts.logger()
	for i, spec := range report.Sheets {
		page, err := newPage(i, spec.Name)
		if err != nil {
			return NewRenderError(spec.Name, "sheet", err)
		}

		r := &renderer{
			opts:   opts,
			logger: logger,
			sheet:  layout.NewSheet(page, layout.WithLogger(logger)),
			tables: make(map[string]*table.Table),
		}
		if err := r.renderSheet(spec); err != nil {
			return err
		}
		logger.Debug("rendered sheet", "sheet", spec.Name, "frontier", r.sheet.Frontier())
	}
	return nil
}

func (r *renderer) renderSheet(spec models.SheetSpec) error {
	for i, gs := range spec.Groups {
		side, err := layout.ParseSide(gs.Side)
		if err != nil {
			return NewRenderError(spec.Name, "group", fmt.Errorf("group %d: %w", i, err))
		}
		g, err := r.sheet.CreateGroup(side, gs.MarginRows, gs.MarginCols)
		if err != nil {
			return NewRenderError(spec.Name, "group", err)
		}
		if err := r.placeItems(g, gs.Items); err != nil {
			return err
		}
	}

	if !r.opts.ShouldIncludePrintArea(spec) {
		return nil
	}
	area, ok := r.sheet.PrintArea()
	if !ok {
		return nil
	}
	if err := r.sheet.Page().SetPrintArea(area); err != nil {
		return NewRenderError(spec.Name, "print_area", err)
	}
	return nil
}

func (r *renderer) placeItems(g *layout.Group, items []models.ItemSpec) error {
	name := r.sheet.Name()
	for i, item := range items {
		side, err := layout.ParseSide(item.Side)
		if err != nil {
			return NewRenderError(name, "group", fmt.Errorf("item %d: %w", i, err))
		}

		switch {
		case item.Table != nil && item.Chart == nil && item.Group == nil:
			tbl, err := buildTable(*item.Table)
			if err != nil {
				return NewRenderError(name, "table", err)
			}
			if err := g.Add(tbl, side, item.MarginRows, item.MarginCols); err != nil {
				return NewRenderError(name, "table", err)
			}
			if id := item.Table.ID; id != "" {
				r.tables[id] = tbl
			}

		case item.Chart != nil && item.Table == nil && item.Group == nil:
			c, err := r.buildChart(*item.Chart)
			if err != nil {
				return NewRenderError(name, "chart", err)
			}
			if err := g.Add(c, side, item.MarginRows, item.MarginCols); err != nil {
				return NewRenderError(name, "chart", err)
			}

		case item.Group != nil && item.Table == nil && item.Chart == nil:
			child, err := g.AddGroup(side, item.MarginRows, item.MarginCols)
			if err != nil {
				return NewRenderError(name, "group", err)
			}
			if err := r.placeItems(child, item.Group.Items); err != nil {
				return err
			}

		default:
			return NewRenderError(name, "group",
				fmt.Errorf("%w: item %d must set exactly one of table, chart or group", ErrInvalidDefinition, i))
		}
	}
	return nil
}

func buildTable(spec models.TableSpec) (*table.Table, error) {
	index, err := buildAxis(spec.Index)
	if err != nil {
		return nil, fmt.Errorf("index: %w", err)
	}
	columns, err := buildAxis(spec.Columns)
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}
	frame, err := table.NewFrame(index, columns, spec.Values)
	if err != nil {
		return nil, err
	}

	opts := []table.Option{table.WithName(spec.Title)}
	if spec.Title != "" {
		opts = append(opts, table.WithTitle(table.MergedTitle{}))
	}
	if spec.IndexWidth > 0 || spec.DataWidth > 0 {
		opts = append(opts, table.WithColumnSizer(table.FixedWidths{Index: spec.IndexWidth, Data: spec.DataWidth}))
	}
	return table.New(frame, opts...), nil
}

func buildAxis(spec models.AxisSpec) (table.Axis, error) {
	set := 0
	for _, present := range []bool{spec.Labels != nil, spec.Tuples != nil, spec.Product != nil} {
		if present {
			set++
		}
	}
	if set != 1 {
		return table.Axis{}, fmt.Errorf("%w: axis must set exactly one of labels, tuples or product", ErrInvalidDefinition)
	}

	switch {
	case spec.Tuples != nil:
		return table.NewMultiAxis(spec.Names, spec.Tuples...)
	case spec.Product != nil:
		return table.ProductAxis(spec.Names, spec.Product...)
	}

	if len(spec.Names) > 1 {
		return table.Axis{}, fmt.Errorf("%w: flat axis with %d names", ErrInvalidDefinition, len(spec.Names))
	}
	var name string
	if len(spec.Names) == 1 {
		name = spec.Names[0]
	}
	return table.NewFlatAxis(name, spec.Labels...), nil
}

func (r *renderer) buildChart(spec models.ChartSpec) (layout.Element, error) {
	tbl, ok := r.tables[spec.Table]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, spec.Table)
	}

	opts := []chart.Option{chart.WithPalette(r.opts.ChartPalette...)}
	if r.opts.ChartWidth > 0 && r.opts.ChartHeight > 0 {
		opts = append(opts, chart.WithSize(r.opts.ChartWidth, r.opts.ChartHeight))
	}

	switch models.ChartKind(spec.Kind) {
	case models.ChartPie:
		unit, err := chart.ParseUnit(spec.Unit)
		if err != nil {
			return nil, err
		}
		return chart.NewPie(spec.Name, tbl, spec.TargetRow, unit, opts...), nil
	case models.ChartColumn:
		unit, err := chart.ParseUnit(spec.Unit)
		if err != nil {
			return nil, err
		}
		return chart.NewColumn(spec.Name, tbl, unit, opts...), nil
	case models.ChartLine:
		rows := spec.TargetRows
		if len(rows) == 0 {
			rows = []int{spec.TargetRow}
		}
		return chart.NewLine(spec.Name, tbl, rows, spec.SkipColumns, opts...), nil
	}
	return nil, fmt.Errorf("%w: chart kind %q", ErrInvalidDefinition, spec.Kind)
}
