package layout

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/ukaji3/xlgrid/pkg/xlgrid/grid"
	"github.com/ukaji3/xlgrid/pkg/xlgrid/models"
	"github.com/ukaji3/xlgrid/pkg/xlgrid/table"
)

// block is an element occupying a fixed rows x cols rectangle.
type block struct {
	rows, cols int
	at         models.Cursor
}

func (b *block) Write(_ grid.Page, cur *models.Cursor) error {
	b.at = *cur
	cur.Row += b.rows
	cur.Col += b.cols
	return nil
}

type failing struct{}

func (failing) Write(grid.Page, *models.Cursor) error { return errors.New("boom") }

func newTestSheet() *Sheet {
	return NewSheet(grid.NewRecorder("Test"), WithLogger(log.New(io.Discard)))
}

func newSquareTable(t *testing.T) *table.Table {
	t.Helper()
	frame, err := table.NewFrame(
		table.NewFlatAxis("", "1", "2", "3"),
		table.NewFlatAxis("", "a", "b", "c"),
		[][]any{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}},
	)
	if err != nil {
		t.Fatalf("NewFrame failed: %v", err)
	}
	return table.New(frame)
}

func mustGroup(t *testing.T, s *Sheet, side Side, marginRows, marginCols int) *Group {
	t.Helper()
	g, err := s.CreateGroup(side, marginRows, marginCols)
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	return g
}

func mustAdd(t *testing.T, g *Group, el Element, side Side, marginRows, marginCols int) {
	t.Helper()
	if err := g.Add(el, side, marginRows, marginCols); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
}

func TestWriteTable(t *testing.T) {
	sheet := newTestSheet()
	group := mustGroup(t, sheet, Right, 0, 0)
	mustAdd(t, group, newSquareTable(t), Right, 0, 0)

	_, end := group.Cursors()
	if end != (models.Cursor{Row: 4, Col: 4}) {
		t.Errorf("Expected group end (4, 4), got %s", end)
	}
	if sheet.Frontier() != (models.Cursor{Row: 4, Col: 4}) {
		t.Errorf("Expected frontier (4, 4), got %s", sheet.Frontier())
	}
}

func TestWriteTableRight(t *testing.T) {
	sheet := newTestSheet()
	group := mustGroup(t, sheet, Right, 0, 0)

	first, second := &block{rows: 4, cols: 4}, &block{rows: 4, cols: 4}
	mustAdd(t, group, first, Right, 0, 0)
	mustAdd(t, group, second, Right, 0, 0)

	if second.at.Col != 4 {
		t.Errorf("Expected second element at col 4, got %d", second.at.Col)
	}
	if end := group.End(); end != (models.Cursor{Row: 4, Col: 8}) {
		t.Errorf("Expected group end (4, 8), got %s", end)
	}
}

func TestWriteTableBottom(t *testing.T) {
	sheet := newTestSheet()
	group := mustGroup(t, sheet, Right, 0, 0)
	mustAdd(t, group, newSquareTable(t), Right, 0, 0)
	mustAdd(t, group, newSquareTable(t), Bottom, 0, 0)

	if end := group.End(); end != (models.Cursor{Row: 8, Col: 4}) {
		t.Errorf("Expected group end (8, 4), got %s", end)
	}
}

func TestMargins(t *testing.T) {
	sheet := newTestSheet()
	group := mustGroup(t, sheet, Bottom, 2, 1)
	if group.Start() != (models.Cursor{Row: 2, Col: 1}) {
		t.Fatalf("Expected group start (2, 1), got %s", group.Start())
	}

	first, second, third := &block{rows: 3, cols: 3}, &block{rows: 3, cols: 3}, &block{rows: 1, cols: 1}
	mustAdd(t, group, first, Right, 0, 0)
	mustAdd(t, group, second, Right, 1, 2)
	mustAdd(t, group, third, Bottom, 5, 0)

	if second.at != (models.Cursor{Row: 3, Col: 6}) {
		t.Errorf("Expected second at (3, 6), got %s", second.at)
	}
	if third.at != (models.Cursor{Row: 11, Col: 1}) {
		t.Errorf("Expected third at (11, 1), got %s", third.at)
	}
	if end := group.End(); end != (models.Cursor{Row: 12, Col: 9}) {
		t.Errorf("Expected group end (12, 9), got %s", end)
	}
}

func TestSmallerBottomElementKeepsExtent(t *testing.T) {
	sheet := newTestSheet()
	group := mustGroup(t, sheet, Right, 0, 0)

	wide, narrow, next := &block{rows: 4, cols: 4}, &block{rows: 2, cols: 2}, &block{rows: 1, cols: 1}
	mustAdd(t, group, wide, Right, 0, 0)
	mustAdd(t, group, narrow, Bottom, 0, 0)

	if end := group.End(); end != (models.Cursor{Row: 6, Col: 4}) {
		t.Fatalf("Expected group end (6, 4), got %s", end)
	}

	// the next right placement must clear the wide element
	mustAdd(t, group, next, Right, 0, 0)
	if next.at.Col != 4 {
		t.Errorf("Expected next element at col 4, got %d", next.at.Col)
	}
}

func TestEndIsMonotonic(t *testing.T) {
	sheet := newTestSheet()
	group := mustGroup(t, sheet, Right, 0, 0)

	placements := []struct {
		el   *block
		side Side
	}{
		{&block{rows: 5, cols: 2}, Right},
		{&block{rows: 1, cols: 1}, Bottom},
		{&block{rows: 1, cols: 7}, Right},
		{&block{rows: 2, cols: 1}, Bottom},
		{&block{rows: 1, cols: 1}, Right},
	}

	prev := group.End()
	for i, p := range placements {
		mustAdd(t, group, p.el, p.side, 0, 0)
		end := group.End()
		if end.Row < prev.Row || end.Col < prev.Col {
			t.Errorf("Placement %d shrank end from %s to %s", i, prev, end)
		}
		prev = end
	}
}

func TestSheetGroups(t *testing.T) {
	sheet := newTestSheet()

	first := mustGroup(t, sheet, Right, 0, 0)
	mustAdd(t, first, newSquareTable(t), Right, 0, 0)

	if f := sheet.Frontier(); f != (models.Cursor{Row: 4, Col: 4}) {
		t.Fatalf("Expected frontier (4, 4), got %s", f)
	}

	second := mustGroup(t, sheet, Right, 0, 0)
	if _, end := second.Cursors(); end != (models.Cursor{Row: 0, Col: 4}) {
		t.Errorf("Expected second group end (0, 4), got %s", end)
	}

	mustAdd(t, second, newSquareTable(t), Right, 0, 0)
	if f := sheet.Frontier(); f != (models.Cursor{Row: 4, Col: 8}) {
		t.Errorf("Expected frontier (4, 8), got %s", f)
	}

	mustAdd(t, second, newSquareTable(t), Bottom, 0, 0)
	if f := sheet.Frontier(); f != (models.Cursor{Row: 8, Col: 8}) {
		t.Errorf("Expected frontier (8, 8), got %s", f)
	}

	below := mustGroup(t, sheet, Bottom, 1, 0)
	if below.Start() != (models.Cursor{Row: 9, Col: 0}) {
		t.Errorf("Expected bottom group at (9, 0), got %s", below.Start())
	}
}

func TestCreateGroupIsIdempotent(t *testing.T) {
	sheet := newTestSheet()
	mustAdd(t, mustGroup(t, sheet, Right, 0, 0), &block{rows: 3, cols: 5}, Right, 0, 0)

	for _, side := range []Side{Right, Bottom} {
		a := mustGroup(t, sheet, side, 1, 1)
		b := mustGroup(t, sheet, side, 1, 1)
		if a.Start() != b.Start() {
			t.Errorf("%s: starts differ: %s vs %s", side, a.Start(), b.Start())
		}
	}
	if f := sheet.Frontier(); f != (models.Cursor{Row: 3, Col: 5}) {
		t.Errorf("Creating groups moved the frontier to %s", f)
	}
}

func TestInvalidSide(t *testing.T) {
	sheet := newTestSheet()

	if _, err := sheet.CreateGroup(Side(0), 0, 0); !errors.Is(err, ErrInvalidSide) {
		t.Errorf("CreateGroup: expected ErrInvalidSide, got %v", err)
	}

	group := mustGroup(t, sheet, Right, 0, 0)
	err := group.Add(&block{rows: 1, cols: 1}, Side(3), 0, 0)
	if !errors.Is(err, ErrInvalidSide) {
		t.Fatalf("Add: expected ErrInvalidSide, got %v", err)
	}
	var pe *PlacementError
	if !errors.As(err, &pe) || pe.SheetName != "Test" {
		t.Errorf("Expected *PlacementError for sheet Test, got %v", err)
	}
	if _, err := group.AddGroup(Side(-1), 0, 0); !errors.Is(err, ErrInvalidSide) {
		t.Errorf("AddGroup: expected ErrInvalidSide, got %v", err)
	}
	if sheet.Frontier() != (models.Cursor{}) {
		t.Errorf("Failed placements moved the frontier to %s", sheet.Frontier())
	}
}

func TestFailedWriteKeepsExtent(t *testing.T) {
	sheet := newTestSheet()
	group := mustGroup(t, sheet, Right, 0, 0)
	mustAdd(t, group, &block{rows: 2, cols: 2}, Right, 0, 0)

	if err := group.Add(failing{}, Right, 0, 0); err == nil {
		t.Fatal("Expected error from failing element")
	}
	if end := group.End(); end != (models.Cursor{Row: 2, Col: 2}) {
		t.Errorf("Expected group end (2, 2), got %s", end)
	}
}

func TestNestedGroups(t *testing.T) {
	sheet := newTestSheet()
	outer := mustGroup(t, sheet, Right, 0, 0)
	mustAdd(t, outer, &block{rows: 4, cols: 4}, Right, 0, 0)

	inner, err := outer.AddGroup(Right, 0, 1)
	if err != nil {
		t.Fatalf("AddGroup failed: %v", err)
	}
	if inner.Start() != (models.Cursor{Row: 0, Col: 5}) {
		t.Fatalf("Expected inner start (0, 5), got %s", inner.Start())
	}
	// an empty nested group does not extend its parent
	if outer.End() != (models.Cursor{Row: 4, Col: 4}) {
		t.Errorf("Empty nested group moved outer end to %s", outer.End())
	}

	mustAdd(t, inner, &block{rows: 2, cols: 3}, Bottom, 0, 0)
	mustAdd(t, inner, &block{rows: 5, cols: 1}, Bottom, 0, 0)

	if inner.End() != (models.Cursor{Row: 7, Col: 8}) {
		t.Errorf("Expected inner end (7, 8), got %s", inner.End())
	}
	if outer.End() != (models.Cursor{Row: 7, Col: 8}) {
		t.Errorf("Expected outer end (7, 8), got %s", outer.End())
	}
	if sheet.Frontier() != (models.Cursor{Row: 7, Col: 8}) {
		t.Errorf("Expected frontier (7, 8), got %s", sheet.Frontier())
	}

	next := &block{rows: 1, cols: 1}
	mustAdd(t, outer, next, Bottom, 0, 0)
	if next.at != (models.Cursor{Row: 7, Col: 0}) {
		t.Errorf("Expected next at (7, 0), got %s", next.at)
	}
}

func TestPrintArea(t *testing.T) {
	sheet := newTestSheet()
	if _, ok := sheet.PrintArea(); ok {
		t.Error("Expected no print area on an empty sheet")
	}

	mustAdd(t, mustGroup(t, sheet, Right, 0, 0), newSquareTable(t), Right, 0, 0)
	area, ok := sheet.PrintArea()
	if !ok {
		t.Fatal("Expected a print area")
	}
	if ref := area.String(); ref != "'Test'!$A$1:$D$4" {
		t.Errorf("Unexpected print area %s", ref)
	}
}

func TestParseSide(t *testing.T) {
	tests := []struct {
		input    string
		expected Side
		wantErr  bool
	}{
		{"", Right, false},
		{"right", Right, false},
		{"Bottom", Bottom, false},
		{" bottom ", Bottom, false},
		{"left", 0, true},
	}

	for _, tt := range tests {
		result, err := ParseSide(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSide(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if tt.wantErr && !errors.Is(err, ErrInvalidSide) {
			t.Errorf("ParseSide(%q) error = %v, expected ErrInvalidSide", tt.input, err)
		}
		if result != tt.expected {
			t.Errorf("ParseSide(%q) = %v, expected %v", tt.input, result, tt.expected)
		}
	}
}
