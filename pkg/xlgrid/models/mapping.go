package models

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// CellMapping records the coordinates produced while writing an axis or a
// data block.
//
// For an axis, entry L holds one coordinate per run of equal label prefixes
// of length L+1, in source order; the deepest level is one-to-one with the
// axis positions. For a data block the mapping is shaped [row][col].
type CellMapping [][]Coordinate

// Depth returns the number of levels (rows for a data block).
func (m CellMapping) Depth() int {
	return len(m)
}

// Level returns level i, or nil when i is out of range.
// Negative values count from the deepest level, so Level(-1) is the deepest.
func (m CellMapping) Level(i int) []Coordinate {
	if i < 0 {
		i += len(m)
	}
	if i < 0 || i >= len(m) {
		return nil
	}
	return m[i]
}

// Deepest returns the last level.
func (m CellMapping) Deepest() []Coordinate {
	return m.Level(-1)
}

// At returns the coordinate at [level][pos].
func (m CellMapping) At(level, pos int) (Coordinate, bool) {
	row := m.Level(level)
	if pos < 0 {
		pos += len(row)
	}
	if pos < 0 || pos >= len(row) {
		return Coordinate{}, false
	}
	return row[pos], true
}

// Column returns the coordinates of data column j across all rows.
func (m CellMapping) Column(j int) []Coordinate {
	col := make([]Coordinate, 0, len(m))
	for _, row := range m {
		if j < 0 || j >= len(row) {
			return nil
		}
		col = append(col, row[j])
	}
	return col
}

// Range is a contiguous rectangular block of cells on a named sheet.
type Range struct {
	Sheet string     `json:"sheet"`
	From  Coordinate `json:"from"`
	To    Coordinate `json:"to"`
}

// NewRange returns the range spanning from..to on sheet.
func NewRange(sheet string, from, to Coordinate) Range {
	return Range{Sheet: sheet, From: from, To: to}
}

// CellRange returns a single-cell range.
func CellRange(sheet string, c Coordinate) Range {
	return Range{Sheet: sheet, From: c, To: c}
}

// SpanRange returns the range from the first to the last coordinate of cells.
// Mapped coordinates are written contiguously, so first..last covers the run.
func SpanRange(sheet string, cells []Coordinate) (Range, bool) {
	if len(cells) == 0 {
		return Range{}, false
	}
	return NewRange(sheet, cells[0], cells[len(cells)-1]), true
}

// Ref renders the range as an absolute A1 reference such as 'Data'!$A$1:$C$4.
func (r Range) Ref() (string, error) {
	from, err := excelize.CoordinatesToCellName(r.From.Col+1, r.From.Row+1, true)
	if err != nil {
		return "", err
	}
	ref := quoteSheet(r.Sheet) + "!" + from
	if r.From == r.To {
		return ref, nil
	}
	to, err := excelize.CoordinatesToCellName(r.To.Col+1, r.To.Row+1, true)
	if err != nil {
		return "", err
	}
	return ref + ":" + to, nil
}

func (r Range) String() string {
	ref, err := r.Ref()
	if err != nil {
		return fmt.Sprintf("%s!%s:%s", r.Sheet, r.From, r.To)
	}
	return ref
}

func quoteSheet(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}
