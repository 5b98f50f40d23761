package layout

import (
	"fmt"

	"github.com/ukaji3/xlgrid/pkg/xlgrid/models"
)

// Group is a sequence of elements placed relative to one another.
//
// start is fixed at creation. end is the bounding corner of everything
// placed in the group so far and only grows: after every placement it is
// merged with the element's final cursor, then pushed to the parent group
// (for nested groups) and to the sheet.
type Group struct {
	sheet  *Sheet
	parent tracker
	start  models.Cursor
	end    models.Cursor
}

func newGroup(sheet *Sheet, parent tracker, start models.Cursor) *Group {
	return &Group{sheet: sheet, parent: parent, start: start, end: start}
}

// Cursors returns the group's start and end.
func (g *Group) Cursors() (start, end models.Cursor) {
	return g.start, g.end
}

// Start returns the group's anchor.
func (g *Group) Start() models.Cursor { return g.start }

// End returns the group's bounding corner (exclusive).
func (g *Group) End() models.Cursor { return g.end }

// Add writes el next to the group's current extent.
//
// Right places el at (start.Row+marginRows, end.Col+marginCols).
// Bottom places el at (end.Row+marginRows, start.Col+marginCols).
func (g *Group) Add(el Element, side Side, marginRows, marginCols int) error {
	cur, err := g.anchor(side, marginRows, marginCols)
	if err != nil {
		return err
	}

	at := cur
	if err := el.Write(g.sheet.page, &cur); err != nil {
		return fmt.Errorf("place %T at %s: %w", el, at, err)
	}

	g.update(cur)
	g.sheet.logger.Debug("placed element",
		"sheet", g.sheet.Name(), "element", fmt.Sprintf("%T", el),
		"side", side, "at", at, "end", cur, "group_end", g.end)
	return nil
}

// AddGroup returns an empty group nested in g, anchored by the same rule as
// Add. Placements in the nested group extend g as well.
func (g *Group) AddGroup(side Side, marginRows, marginCols int) (*Group, error) {
	start, err := g.anchor(side, marginRows, marginCols)
	if err != nil {
		return nil, err
	}
	return newGroup(g.sheet, g, start), nil
}

func (g *Group) anchor(side Side, marginRows, marginCols int) (models.Cursor, error) {
	switch side {
	case Right:
		return models.Cursor{Row: g.start.Row + marginRows, Col: g.end.Col + marginCols}, nil
	case Bottom:
		return models.Cursor{Row: g.end.Row + marginRows, Col: g.start.Col + marginCols}, nil
	}
	return models.Cursor{}, &PlacementError{SheetName: g.sheet.Name(), Side: side, Err: ErrInvalidSide}
}

// update merges end into the group's extent. The extent is the maximum over
// every element placed so far, not the last one.
func (g *Group) update(end models.Cursor) {
	g.end = g.end.Max(end)
	g.parent.update(g.end)
}
