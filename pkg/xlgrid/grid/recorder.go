package grid

import (
	"encoding/json"
	"fmt"

	"github.com/ukaji3/xlgrid/pkg/xlgrid/models"
)

// OpKind names a recorded page operation.
type OpKind string

const (
	OpWrite     OpKind = "write"
	OpMerge     OpKind = "merge"
	OpWidth     OpKind = "width"
	OpChart     OpKind = "chart"
	OpPrintArea OpKind = "print_area"
)

// Op is one recorded call on a Recorder.
type Op struct {
	Kind    OpKind         `json:"kind"`
	Row     int            `json:"row"`
	Col     int            `json:"col"`
	LastRow int            `json:"last_row,omitempty"`
	LastCol int            `json:"last_col,omitempty"`
	Value   any            `json:"value,omitempty"`
	Width   float64        `json:"width,omitempty"`
	Format  *models.Format `json:"format,omitempty"`
	Chart   *models.Chart  `json:"chart,omitempty"`
	Area    *models.Range  `json:"area,omitempty"`
}

// Recorder is an in-memory Page that records every call in order.
// It backs dry runs and tests.
type Recorder struct {
	name string
	Ops  []Op
}

// NewRecorder returns an empty recorder for a sheet called name.
func NewRecorder(name string) *Recorder {
	return &Recorder{name: name}
}

func (r *Recorder) Name() string { return r.name }

func (r *Recorder) WriteCell(row, col int, value any, format *models.Format) error {
	if row < 0 || col < 0 {
		return fmt.Errorf("write at negative coordinate (%d, %d)", row, col)
	}
	r.Ops = append(r.Ops, Op{Kind: OpWrite, Row: row, Col: col, LastRow: row, LastCol: col, Value: value, Format: format})
	return nil
}

func (r *Recorder) MergeRange(firstRow, firstCol, lastRow, lastCol int, value any, format *models.Format) error {
	if lastRow < firstRow || lastCol < firstCol {
		return fmt.Errorf("inverted merge range (%d, %d)-(%d, %d)", firstRow, firstCol, lastRow, lastCol)
	}
	r.Ops = append(r.Ops, Op{Kind: OpMerge, Row: firstRow, Col: firstCol, LastRow: lastRow, LastCol: lastCol, Value: value, Format: format})
	return nil
}

func (r *Recorder) SetColumnWidth(firstCol, lastCol int, width float64) error {
	r.Ops = append(r.Ops, Op{Kind: OpWidth, Col: firstCol, LastCol: lastCol, Width: width})
	return nil
}

func (r *Recorder) InsertChart(row, col int, chart *models.Chart) error {
	r.Ops = append(r.Ops, Op{Kind: OpChart, Row: row, Col: col, Chart: chart})
	return nil
}

func (r *Recorder) SetPrintArea(area models.Range) error {
	r.Ops = append(r.Ops, Op{Kind: OpPrintArea, Row: area.From.Row, Col: area.From.Col, LastRow: area.To.Row, LastCol: area.To.Col, Area: &area})
	return nil
}

// Filter returns the recorded operations of the given kind.
func (r *Recorder) Filter(kind OpKind) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}
	return ops
}

// ValueAt returns the value last written to (row, col), including values
// written as the top-left cell of a merge.
func (r *Recorder) ValueAt(row, col int) (any, bool) {
	for i := len(r.Ops) - 1; i >= 0; i-- {
		op := r.Ops[i]
		if (op.Kind == OpWrite || op.Kind == OpMerge) && op.Row == row && op.Col == col {
			return op.Value, true
		}
	}
	return nil, false
}

// MarshalJSON encodes the recorder as {"sheet": name, "ops": [...]}.
func (r *Recorder) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Sheet string `json:"sheet"`
		Ops   []Op   `json:"ops"`
	}{r.name, r.Ops})
}
