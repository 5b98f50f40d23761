// Package xlgrid renders declarative reports into spreadsheet workbooks using
// the layout engine, and reads written workbooks back for inspection.
package xlgrid

import (
	"github.com/charmbracelet/log"
	"github.com/ukaji3/xlgrid/pkg/xlgrid/models"
)

// Options configures rendering.
type Options struct {
	// Logger receives debug output for every placement. Nil means log.Default().
	Logger *log.Logger
	// IncludePrintAreas sets each sheet's print area to its frontier.
	// If nil, defaults to true. A sheet's own print_area setting wins.
	IncludePrintAreas *bool
	// ChartPalette colors chart series in order.
	ChartPalette []string
	// ChartWidth and ChartHeight set the chart size in pixels (0 = default).
	ChartWidth  int
	ChartHeight int
}

// DefaultOptions returns default render options.
func DefaultOptions() Options {
	return Options{}
}

// ShouldIncludePrintArea returns whether to set the print area of sheet.
func (o Options) ShouldIncludePrintArea(sheet models.SheetSpec) bool {
	if sheet.PrintArea != nil {
		return *sheet.PrintArea
	}
	if o.IncludePrintAreas != nil {
		return *o.IncludePrintAreas
	}
	return true
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.Default()
}
