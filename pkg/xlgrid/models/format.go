package models

// Format is a caller-supplied cell format descriptor. Writers translate it to
// their own style representation; nothing in the layout engine inspects it.
type Format struct {
	Align     string `json:"align,omitempty" toml:"align" yaml:"align,omitempty"`
	VAlign    string `json:"valign,omitempty" toml:"valign" yaml:"valign,omitempty"`
	FillColor string `json:"fill_color,omitempty" toml:"fill_color" yaml:"fill_color,omitempty"`
	// Border is the border line style applied on all four sides (0 = none).
	Border int    `json:"border,omitempty" toml:"border" yaml:"border,omitempty"`
	Bold   bool   `json:"bold,omitempty" toml:"bold" yaml:"bold,omitempty"`
	NumFmt string `json:"num_fmt,omitempty" toml:"num_fmt" yaml:"num_fmt,omitempty"`
	Wrap   bool   `json:"wrap,omitempty" toml:"wrap" yaml:"wrap,omitempty"`
}
