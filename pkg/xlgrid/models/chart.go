package models

// ChartKind is the chart family.
type ChartKind string

const (
	ChartPie    ChartKind = "pie"
	ChartColumn ChartKind = "column"
	ChartLine   ChartKind = "line"
)

// ChartSubkind refines a ChartKind (e.g. stacked columns).
type ChartSubkind string

const (
	SubkindNone           ChartSubkind = ""
	SubkindStacked        ChartSubkind = "stacked"
	SubkindPercentStacked ChartSubkind = "percent_stacked"
)

// DataLabels selects what is printed next to each data point.
type DataLabels struct {
	Value       bool `json:"value,omitempty"`
	Percentage  bool `json:"percentage,omitempty"`
	LeaderLines bool `json:"leader_lines,omitempty"`
}

// ChartSeries describes one series by absolute cell ranges.
type ChartSeries struct {
	// Name is a literal series name. It shows in plans only; workbook
	// writers name series through NameRange.
	Name string `json:"name,omitempty"`
	// NameRange points at the cell holding the series name.
	NameRange *Range `json:"name_range,omitempty"`
	// Categories is the range of category labels (X axis).
	Categories Range `json:"categories"`
	// Values is the range of series values (Y axis).
	Values Range `json:"values"`
	// Color is the solid fill color, empty for the writer's default.
	Color string `json:"color,omitempty"`
	// Labels controls data labels for the series.
	Labels DataLabels `json:"labels,omitempty"`
}

// Chart is the handle built by chart elements before insertion into a page.
type Chart struct {
	Kind    ChartKind     `json:"kind"`
	Subkind ChartSubkind  `json:"subkind,omitempty"`
	Title   string        `json:"title,omitempty"`
	Legend  string        `json:"legend,omitempty"`
	Series  []ChartSeries `json:"series"`
	// Width and Height are in pixels; zero means the writer's default.
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
}

// NewChart returns an empty chart of the given kind.
func NewChart(kind ChartKind, subkind ChartSubkind) *Chart {
	return &Chart{Kind: kind, Subkind: subkind}
}

// AddSeries appends a series.
func (c *Chart) AddSeries(s ChartSeries) {
	c.Series = append(c.Series, s)
}

// SetTitle sets the chart title.
func (c *Chart) SetTitle(title string) {
	c.Title = title
}

// SetLegend sets the legend position ("top", "bottom", "left", "right" or "none").
func (c *Chart) SetLegend(position string) {
	c.Legend = position
}

// SetSize sets the chart dimensions in pixels.
func (c *Chart) SetSize(width, height int) {
	c.Width, c.Height = width, height
}
