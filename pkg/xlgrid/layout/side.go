// Package layout places grid elements on a sheet relative to each other.
//
// A Sheet tracks the page-wide frontier, the bottom-right corner of
// everything placed so far. Groups are anchored at the frontier and stack
// elements (or nested groups) to the right of or below their own extent.
package layout

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSide indicates a placement side other than Right or Bottom.
var ErrInvalidSide = errors.New("side can be only right or bottom")

// Side selects where the next element goes relative to the current extent.
type Side int

const (
	// Right stacks to the right of the rightmost extent.
	Right Side = iota + 1
	// Bottom stacks below the lowest extent.
	Bottom
)

func (s Side) String() string {
	switch s {
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	}
	return fmt.Sprintf("Side(%d)", int(s))
}

// ParseSide parses "right" or "bottom". An empty string means Right.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "right":
		return Right, nil
	case "bottom":
		return Bottom, nil
	}
	return 0, fmt.Errorf("%w, got %q", ErrInvalidSide, s)
}

// PlacementError describes a failed placement.
type PlacementError struct {
	SheetName string
	Side      Side
	Err       error
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("placement error in sheet %q (%s): %v", e.SheetName, e.Side, e.Err)
}

func (e *PlacementError) Unwrap() error {
	return e.Err
}
