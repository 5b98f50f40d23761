package models

// Report is a declarative workbook definition: sheets of groups of tables and
// charts. It is the data form of a program that drives the layout engine.
type Report struct {
	Sheets []SheetSpec `json:"sheets" toml:"sheets" yaml:"sheets"`
}

// SheetSpec describes one page.
type SheetSpec struct {
	Name string `json:"name" toml:"name" yaml:"name"`
	// PrintArea overrides whether the print area is set to the sheet frontier.
	PrintArea *bool       `json:"print_area,omitempty" toml:"print_area" yaml:"print_area,omitempty"`
	Groups    []GroupSpec `json:"groups" toml:"groups" yaml:"groups"`
}

// GroupSpec describes a group of elements. Side and margins anchor the group
// against the sheet frontier; they are ignored for nested groups, which are
// anchored by the enclosing ItemSpec.
type GroupSpec struct {
	Side       string     `json:"side,omitempty" toml:"side" yaml:"side,omitempty"`
	MarginRows int        `json:"margin_rows,omitempty" toml:"margin_rows" yaml:"margin_rows,omitempty"`
	MarginCols int        `json:"margin_cols,omitempty" toml:"margin_cols" yaml:"margin_cols,omitempty"`
	Items      []ItemSpec `json:"items" toml:"items" yaml:"items"`
}

// ItemSpec places exactly one of Table, Chart or Group inside a group.
type ItemSpec struct {
	Side       string     `json:"side,omitempty" toml:"side" yaml:"side,omitempty"`
	MarginRows int        `json:"margin_rows,omitempty" toml:"margin_rows" yaml:"margin_rows,omitempty"`
	MarginCols int        `json:"margin_cols,omitempty" toml:"margin_cols" yaml:"margin_cols,omitempty"`
	Table      *TableSpec `json:"table,omitempty" toml:"table" yaml:"table,omitempty"`
	Chart      *ChartSpec `json:"chart,omitempty" toml:"chart" yaml:"chart,omitempty"`
	Group      *GroupSpec `json:"group,omitempty" toml:"group" yaml:"group,omitempty"`
}

// TableSpec describes a table and its data.
type TableSpec struct {
	// ID lets charts refer to the table. Optional.
	ID      string   `json:"id,omitempty" toml:"id" yaml:"id,omitempty"`
	Title   string   `json:"title,omitempty" toml:"title" yaml:"title,omitempty"`
	Index   AxisSpec `json:"index" toml:"index" yaml:"index"`
	Columns AxisSpec `json:"columns" toml:"columns" yaml:"columns"`
	Values  [][]any  `json:"values" toml:"values" yaml:"values"`
	// IndexWidth and DataWidth set column widths when non-zero.
	IndexWidth float64 `json:"index_width,omitempty" toml:"index_width" yaml:"index_width,omitempty"`
	DataWidth  float64 `json:"data_width,omitempty" toml:"data_width" yaml:"data_width,omitempty"`
}

// AxisSpec describes an axis. Exactly one of Labels (flat), Tuples
// (hierarchical) or Product (hierarchical, cartesian product of levels) is used.
type AxisSpec struct {
	Names   []string `json:"names,omitempty" toml:"names" yaml:"names,omitempty"`
	Labels  []any    `json:"labels,omitempty" toml:"labels" yaml:"labels,omitempty"`
	Tuples  [][]any  `json:"tuples,omitempty" toml:"tuples" yaml:"tuples,omitempty"`
	Product [][]any  `json:"product,omitempty" toml:"product" yaml:"product,omitempty"`
}

// ChartSpec describes a chart over a previously placed table.
type ChartSpec struct {
	// Kind is "pie", "column" or "line".
	Kind  string `json:"kind" toml:"kind" yaml:"kind"`
	Name  string `json:"name" toml:"name" yaml:"name"`
	Table string `json:"table" toml:"table" yaml:"table"`
	// Unit is "percent" (default) or "piece"; used by pie and column charts.
	Unit        string `json:"unit,omitempty" toml:"unit" yaml:"unit,omitempty"`
	TargetRow   int    `json:"target_row,omitempty" toml:"target_row" yaml:"target_row,omitempty"`
	TargetRows  []int  `json:"target_rows,omitempty" toml:"target_rows" yaml:"target_rows,omitempty"`
	SkipColumns int    `json:"skip_columns,omitempty" toml:"skip_columns" yaml:"skip_columns,omitempty"`
}
