package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xlgrid/pkg/xlgrid"
	"github.com/ukaji3/xlgrid/pkg/xlgrid/config"
	"github.com/ukaji3/xlgrid/pkg/xlgrid/models"
)

type renderOpts struct {
	output    string // workbook path
	format    string // definition format, overrides the extension
	dryRun    bool   // print planned operations instead of writing
	noPrint   bool   // skip print areas
	palette   string // comma-separated series colors
	chartSize []int  // width, height
}

func newRenderCmd() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [report.toml|report.yaml|report.json|-]",
		Short: "Render a report definition to an xlsx workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output workbook path (default: <report>.xlsx)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "definition format: toml, yaml or json (required when reading stdin)")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "print the planned page operations as JSON instead of writing a workbook")
	cmd.Flags().BoolVar(&opts.noPrint, "no-print-area", false, "do not set print areas")
	cmd.Flags().StringVar(&opts.palette, "palette", "", "comma-separated chart series colors, e.g. 4472C4,ED7D31")
	cmd.Flags().IntSliceVar(&opts.chartSize, "chart-size", nil, "chart width,height in pixels")
	return cmd
}

func runRender(cmd *cobra.Command, path string, opts renderOpts) error {
	logger := loggerFromContext(cmd.Context())
	start := time.Now()

	report, err := loadReport(cmd, path, opts.format)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}

	renderOptions := xlgrid.DefaultOptions()
	renderOptions.Logger = logger
	if opts.noPrint {
		off := false
		renderOptions.IncludePrintAreas = &off
	}
	if opts.palette != "" {
		renderOptions.ChartPalette = strings.Split(opts.palette, ",")
	}
	switch len(opts.chartSize) {
	case 0:
	case 2:
		renderOptions.ChartWidth, renderOptions.ChartHeight = opts.chartSize[0], opts.chartSize[1]
	default:
		return fmt.Errorf("invalid --chart-size: want width,height")
	}

	if opts.dryRun {
		pages, err := xlgrid.Plan(report, renderOptions)
		if err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(pages)
	}

	output := opts.output
	if output == "" {
		if path == "-" {
			return fmt.Errorf("--output is required when reading stdin")
		}
		output = strings.TrimSuffix(path, filepath.Ext(path)) + ".xlsx"
	}

	f, err := xlgrid.Render(report, renderOptions)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	defer f.Close()

	if err := f.SaveAs(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger.Infof("Wrote %s (%s)", output, time.Since(start).Round(time.Millisecond))
	return nil
}

// loadReport reads the definition at path, or stdin for "-". A non-empty
// format overrides the file extension.
func loadReport(cmd *cobra.Command, path, format string) (models.Report, error) {
	if format == "" {
		if path == "-" {
			return models.Report{}, fmt.Errorf("--format is required when reading stdin")
		}
		return config.Load(path)
	}

	f, err := config.ParseFormat(format)
	if err != nil {
		return models.Report{}, err
	}
	if path == "-" {
		return config.Decode(cmd.InOrStdin(), f)
	}
	file, err := os.Open(path)
	if err != nil {
		return models.Report{}, err
	}
	defer file.Close()
	return config.Decode(file, f)
}
