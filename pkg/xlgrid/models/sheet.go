package models

// SheetData is the read-back view of one written sheet.
type SheetData struct {
	// Rows contains non-empty rows with their cell values.
	Rows []CellRow `json:"rows,omitempty"`
	// Merged contains merged cell blocks (header and index spans, titles).
	Merged []MergedRange `json:"merged,omitempty"`
	// UsedRange is the bounding range of non-empty cells, e.g. "A1:H10".
	UsedRange string `json:"used_range,omitempty"`
	// PrintAreas contains the sheet's print areas.
	PrintAreas []PrintArea `json:"print_areas,omitempty"`
	// Charts contains the charts drawn on the sheet, in drawing order.
	Charts []ChartInfo `json:"charts,omitempty"`
}
