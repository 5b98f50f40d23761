package parser

import (
	"strings"

	"github.com/ukaji3/xlgrid/pkg/xlgrid/models"
	"github.com/xuri/excelize/v2"
)

const printAreaName = "_xlnm.Print_Area"

// ExtractPrintAreas returns the print areas of every sheet, keyed by sheet name.
func ExtractPrintAreas(f *excelize.File) map[string][]models.PrintArea {
	result := make(map[string][]models.PrintArea)

	for _, dn := range f.GetDefinedName() {
		if !strings.EqualFold(dn.Name, printAreaName) {
			continue
		}
		sheetName, areas := parsePrintAreaReference(dn.RefersTo)
		if sheetName == "" {
			sheetName = dn.Scope
		}
		if sheetName != "" && len(areas) > 0 {
			result[sheetName] = append(result[sheetName], areas...)
		}
	}

	return result
}

// parsePrintAreaReference parses 'Sheet Name'!$A$1:$D$10[,...].
func parsePrintAreaReference(ref string) (string, []models.PrintArea) {
	var sheetName string
	var areas []models.PrintArea

	for _, part := range strings.Split(ref, ",") {
		idx := strings.LastIndex(part, "!")
		if idx < 0 {
			continue
		}
		if sheetName == "" {
			sheetName = unquoteSheet(strings.TrimSpace(part[:idx]))
		}
		if area, ok := parseRangeToArea(part[idx+1:]); ok {
			areas = append(areas, area)
		}
	}

	return sheetName, areas
}

func unquoteSheet(name string) string {
	if len(name) >= 2 && strings.HasPrefix(name, "'") && strings.HasSuffix(name, "'") {
		name = name[1 : len(name)-1]
	}
	return strings.ReplaceAll(name, "''", "'")
}

// parseRangeToArea parses $A$1:$D$10, or a single cell, into 1-based bounds.
func parseRangeToArea(rangeStr string) (models.PrintArea, bool) {
	parts := strings.Split(strings.ReplaceAll(strings.TrimSpace(rangeStr), "$", ""), ":")
	if len(parts) == 1 {
		parts = append(parts, parts[0])
	}
	if len(parts) != 2 {
		return models.PrintArea{}, false
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return models.PrintArea{}, false
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return models.PrintArea{}, false
	}

	return models.PrintArea{R1: startRow, C1: startCol, R2: endRow, C2: endCol}, true
}
