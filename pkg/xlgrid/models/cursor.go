// Package models defines the data structures shared by the xlgrid packages:
// grid coordinates, cell mappings, format descriptors, chart descriptions,
// report definitions and inspection output.
package models

import "fmt"

// Cursor is the next free cell of a write in progress.
// Rows and columns are zero-based. A single Cursor is passed by pointer
// through a write call chain so that every writer sees the space consumed
// by the writers before it.
type Cursor struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NewCursor returns a cursor positioned at (row, col).
func NewCursor(row, col int) *Cursor {
	return &Cursor{Row: row, Col: col}
}

// Coordinate returns the cell the cursor points at.
func (c Cursor) Coordinate() Coordinate {
	return Coordinate{Row: c.Row, Col: c.Col}
}

// Advance moves the cursor by (rows, cols).
func (c *Cursor) Advance(rows, cols int) {
	c.Row += rows
	c.Col += cols
}

// Max returns the component-wise maximum of c and other.
func (c Cursor) Max(other Cursor) Cursor {
	return Cursor{Row: max(c.Row, other.Row), Col: max(c.Col, other.Col)}
}

func (c Cursor) String() string {
	return fmt.Sprintf("Cursor(row=%d, col=%d)", c.Row, c.Col)
}

// Coordinate is a zero-based (row, col) cell position.
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Offset returns the coordinate shifted by (rows, cols).
func (c Coordinate) Offset(rows, cols int) Coordinate {
	return Coordinate{Row: c.Row + rows, Col: c.Col + cols}
}

func (c Coordinate) String() string {
	return fmt.Sprintf("[%d, %d]", c.Row, c.Col)
}
