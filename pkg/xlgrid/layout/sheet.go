package layout

import (
	"github.com/charmbracelet/log"
	"github.com/ukaji3/xlgrid/pkg/xlgrid/grid"
	"github.com/ukaji3/xlgrid/pkg/xlgrid/models"
)

// Element is anything that can be written at a cursor: tables, charts.
// Write must leave cur at the bottom-right corner (exclusive) of what it wrote.
type Element interface {
	Write(page grid.Page, cur *models.Cursor) error
}

// tracker receives extents from the groups below it.
type tracker interface {
	update(end models.Cursor)
}

// SheetOption configures a Sheet.
type SheetOption func(*Sheet)

// WithLogger sets the logger used for placement debug output.
func WithLogger(l *log.Logger) SheetOption { return func(s *Sheet) { s.logger = l } }

// Sheet is one output page and the root anchor for top-level groups.
type Sheet struct {
	page     grid.Page
	frontier models.Cursor
	logger   *log.Logger
}

// NewSheet returns a sheet writing to page with an empty frontier.
func NewSheet(page grid.Page, opts ...SheetOption) *Sheet {
	s := &Sheet{page: page, logger: log.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the page name.
func (s *Sheet) Name() string { return s.page.Name() }

// Page returns the underlying page.
func (s *Sheet) Page() grid.Page { return s.page }

// Frontier returns the maximum row and column used by any group.
func (s *Sheet) Frontier() models.Cursor { return s.frontier }

// CreateGroup returns an empty group anchored at the frontier.
//
// Right anchors at (marginRows, frontier.Col+marginCols); Bottom anchors at
// (frontier.Row+marginRows, marginCols). The other coordinate starts from the
// page origin because a group on a fresh side starts its own extent there.
// Creating a group does not move the frontier.
func (s *Sheet) CreateGroup(side Side, marginRows, marginCols int) (*Group, error) {
	var start models.Cursor
	switch side {
	case Right:
		start = models.Cursor{Row: marginRows, Col: s.frontier.Col + marginCols}
	case Bottom:
		start = models.Cursor{Row: s.frontier.Row + marginRows, Col: marginCols}
	default:
		return nil, &PlacementError{SheetName: s.Name(), Side: side, Err: ErrInvalidSide}
	}

	s.logger.Debug("create group", "sheet", s.Name(), "side", side, "start", start)
	return newGroup(s, s, start), nil
}

// Update merges end into the frontier, component-wise.
func (s *Sheet) Update(end models.Cursor) {
	s.frontier = s.frontier.Max(end)
}

func (s *Sheet) update(end models.Cursor) { s.Update(end) }

// PrintArea returns the range from A1 to the last used cell, and false when
// nothing has been placed.
func (s *Sheet) PrintArea() (models.Range, bool) {
	if s.frontier.Row == 0 || s.frontier.Col == 0 {
		return models.Range{}, false
	}
	last := models.Coordinate{Row: s.frontier.Row - 1, Col: s.frontier.Col - 1}
	return models.NewRange(s.Name(), models.Coordinate{}, last), true
}
