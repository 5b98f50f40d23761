// Package table writes tables (an index block, a header block and a data
// block) onto a grid page and records where every label and value landed.
package table

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrMalformedAxis indicates an axis whose tuples do not match its level count.
var ErrMalformedAxis = errors.New("malformed axis")

// Axis is an ordered sequence of row or column labels.
//
// A flat axis has one label per position. A hierarchical axis has one tuple
// per position, where tuple element k is the label at nesting level k.
type Axis struct {
	names  []string
	tuples [][]any
	multi  bool
}

// NewFlatAxis returns a flat axis. name is the axis title written into the
// header corner when the axis is used as an index; it may be empty.
func NewFlatAxis(name string, labels ...any) Axis {
	tuples := make([][]any, len(labels))
	for i, l := range labels {
		tuples[i] = []any{l}
	}
	return Axis{names: []string{name}, tuples: tuples}
}

// NewMultiAxis returns a hierarchical axis with one level per name.
// Every tuple must have exactly len(names) elements, and no two neighbouring
// tuples may be equal.
func NewMultiAxis(names []string, tuples ...[]any) (Axis, error) {
	if len(names) == 0 {
		return Axis{}, fmt.Errorf("%w: no levels", ErrMalformedAxis)
	}
	for i, t := range tuples {
		if len(t) != len(names) {
			return Axis{}, fmt.Errorf("%w: position %d has %d labels, want %d", ErrMalformedAxis, i, len(t), len(names))
		}
		// Equal neighbours would share one deepest-level cell.
		if i > 0 && samePrefix(tuples[i-1], t, len(names)) {
			return Axis{}, fmt.Errorf("%w: positions %d and %d repeat %v", ErrMalformedAxis, i-1, i, t)
		}
	}
	owned := make([][]any, len(tuples))
	for i, t := range tuples {
		owned[i] = append([]any(nil), t...)
	}
	return Axis{names: append([]string(nil), names...), tuples: owned, multi: true}, nil
}

// ProductAxis returns the hierarchical axis formed by the cartesian product
// of levels, the first level varying slowest.
func ProductAxis(names []string, levels ...[]any) (Axis, error) {
	if len(names) != len(levels) {
		return Axis{}, fmt.Errorf("%w: %d names for %d levels", ErrMalformedAxis, len(names), len(levels))
	}
	tuples := [][]any{{}}
	for _, level := range levels {
		next := make([][]any, 0, len(tuples)*len(level))
		for _, prefix := range tuples {
			for _, label := range level {
				t := make([]any, len(prefix), len(prefix)+1)
				copy(t, prefix)
				next = append(next, append(t, label))
			}
		}
		tuples = next
	}
	return NewMultiAxis(names, tuples...)
}

// Len returns the number of positions.
func (a Axis) Len() int {
	return len(a.tuples)
}

// Depth returns the number of levels; 1 for a flat axis.
func (a Axis) Depth() int {
	if !a.multi {
		return 1
	}
	return len(a.names)
}

// Hierarchical reports whether the axis was built with levels.
func (a Axis) Hierarchical() bool {
	return a.multi
}

// Names returns the level names.
func (a Axis) Names() []string {
	return a.names
}

// Label returns the label of position i at level.
func (a Axis) Label(i, level int) any {
	return a.tuples[i][level]
}

// run is a maximal sequence of positions sharing a label prefix.
type run struct {
	start int
	count int
	label any
}

// runs groups consecutive positions by their first level+1 labels.
func (a Axis) runs(level int) []run {
	var out []run
	for i, t := range a.tuples {
		if n := len(out); n > 0 && samePrefix(a.tuples[out[n-1].start], t, level+1) {
			out[n-1].count++
			continue
		}
		out = append(out, run{start: i, count: 1, label: t[level]})
	}
	return out
}

func samePrefix(a, b []any, n int) bool {
	for k := 0; k < n; k++ {
		if !reflect.DeepEqual(a[k], b[k]) {
			return false
		}
	}
	return true
}
