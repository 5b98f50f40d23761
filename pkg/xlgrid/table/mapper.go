package table

import (
	"fmt"
	"time"

	"github.com/ukaji3/xlgrid/pkg/xlgrid/grid"
	"github.com/ukaji3/xlgrid/pkg/xlgrid/models"
)

// Direction is the dimension an axis' labels run along.
type Direction int

const (
	// Horizontal labels run along columns and levels stack downwards (headers).
	Horizontal Direction = iota
	// Vertical labels run along rows and levels stack rightwards (indexes).
	Vertical
)

func (d Direction) String() string {
	if d == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Mapper writes an axis onto a page and records the coordinate of every
// label run at every level.
type Mapper struct {
	axis    Axis
	dir     Direction
	corner  []string
	mapping models.CellMapping
}

// NewHeader returns a mapper writing columns as a header. indexNames are the
// index level names written into the corner left of the header labels, so the
// header labels start len(indexNames) columns right of the cursor.
func NewHeader(columns Axis, indexNames []string) *Mapper {
	return &Mapper{axis: columns, dir: Horizontal, corner: indexNames}
}

// NewIndex returns a mapper writing index as a row index.
func NewIndex(index Axis) *Mapper {
	return &Mapper{axis: index, dir: Vertical}
}

// Mapping returns the per-level coordinates recorded by Write.
// For a header, coordinates point at data columns; the corner is not mapped.
func (m *Mapper) Mapping() models.CellMapping {
	return m.mapping
}

// Write writes the axis starting at cur and steps cur past the consumed
// lines: rows for a header, columns for an index. Only the perpendicular
// coordinate of cur changes.
func (m *Mapper) Write(page grid.Page, cur *models.Cursor, format *models.Format) error {
	depth := m.axis.Depth()
	line, along := cur.Row, cur.Col
	if m.dir == Vertical {
		line, along = cur.Col, cur.Row
	}

	for _, name := range m.corner {
		var err error
		if depth > 1 {
			err = page.MergeRange(line, along, line+depth-1, along, name, format)
		} else {
			err = page.WriteCell(line, along, name, format)
		}
		if err != nil {
			return fmt.Errorf("write corner %q: %w", name, err)
		}
		along++
	}

	m.mapping = make(models.CellMapping, depth)
	for level := 0; level < depth; level++ {
		pos := along
		for _, r := range m.runs(level) {
			end := pos + r.count - 1
			if err := m.writeRun(page, line+level, pos, end, r.label, format); err != nil {
				return fmt.Errorf("write %s level %d: %w", m.dir, level, err)
			}
			m.mapping[level] = append(m.mapping[level], m.coordinate(line+level, pos))
			pos = end + 1
		}
	}

	if m.dir == Vertical {
		cur.Col += depth
	} else {
		cur.Row += depth
	}
	return nil
}

// runs returns the label runs of level. Flat axes never merge.
func (m *Mapper) runs(level int) []run {
	if m.axis.Hierarchical() {
		return m.axis.runs(level)
	}
	out := make([]run, m.axis.Len())
	for i := range out {
		out[i] = run{start: i, count: 1, label: m.axis.Label(i, 0)}
	}
	return out
}

func (m *Mapper) writeRun(page grid.Page, line, from, to int, label any, format *models.Format) error {
	c := m.coordinate(line, from)
	if !m.axis.Hierarchical() {
		return page.WriteCell(c.Row, c.Col, text(label), format)
	}
	if from == to {
		return page.WriteCell(c.Row, c.Col, scalar(label), format)
	}
	last := m.coordinate(line, to)
	return page.MergeRange(c.Row, c.Col, last.Row, last.Col, text(label), format)
}

func (m *Mapper) coordinate(line, pos int) models.Coordinate {
	if m.dir == Vertical {
		return models.Coordinate{Row: pos, Col: line}
	}
	return models.Coordinate{Row: line, Col: pos}
}

// text is the display form of a label.
func text(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// scalar keeps atomic labels as they are and stringifies composite ones.
func scalar(v any) any {
	switch v.(type) {
	case nil, string, bool, time.Time,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return v
	}
	return text(v)
}
