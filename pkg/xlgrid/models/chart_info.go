package models

// ChartInfo is a chart read back from a written sheet.
type ChartInfo struct {
	// Name is the drawing object name, e.g. "Chart 1".
	Name string `json:"name"`
	// Kind is "pie", "column", "line", "bar" or another plot type.
	Kind string `json:"kind"`
	// Subkind is "stacked" or "percent_stacked" for stacked plots.
	Subkind ChartSubkind `json:"subkind,omitempty"`
	Title   string       `json:"title,omitempty"`
	// Anchor is the top-left cell the chart is anchored at, e.g. "H1".
	Anchor string       `json:"anchor"`
	Series []SeriesInfo `json:"series"`
}

// SeriesInfo holds the references of one read-back series.
type SeriesInfo struct {
	NameRange  string `json:"name_range,omitempty"`
	Categories string `json:"categories,omitempty"`
	Values     string `json:"values,omitempty"`
}
