package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/ukaji3/xlgrid/pkg/xlgrid"
)

func newInspectCmd() *cobra.Command {
	var (
		outputPath string
		pretty     bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [input.xlsx]",
		Short: "Print cells, merged ranges and print areas of a workbook as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			wb, err := xlgrid.Inspect(args[0])
			if err != nil {
				return fmt.Errorf("inspection failed: %w", err)
			}
			logger.Debug("inspected workbook", "book", wb.BookName, "sheets", len(wb.Sheets))

			var data []byte
			if pretty {
				data, err = json.MarshalIndent(wb, "", "  ")
			} else {
				data, err = json.Marshal(wb)
			}
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			data = append(data, '\n')

			if outputPath == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(outputPath, data, 0o644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			logger.Info("Wrote " + outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	return cmd
}
