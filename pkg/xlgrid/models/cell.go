package models

// CellRow is one non-empty row read back from a written sheet.
type CellRow struct {
	// R is the row index (1-based, as shown in the spreadsheet).
	R int `json:"r"`
	// C maps the 1-based column index (as a string) to the cell value.
	C map[string]any `json:"c"`
}

// MergedRange is a merged cell block read back from a written sheet.
type MergedRange struct {
	// Ref is the A1 range, e.g. "B1:D1".
	Ref string `json:"ref"`
	// Value is the text of the merged block.
	Value string `json:"value"`
}
