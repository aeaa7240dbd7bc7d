package tilegraph

import (
	"iter"
	"slices"
	"strings"

	"github.com/katalvlaran/tilepath/grid"
)

// Path is a route from start to goal. The cell sequence is fixed at
// construction; only the pull cursor advances.
//
// Cells, All and String present the route start→goal. The cursor consumes
// it from the other end: Next returns the destination first and walks back
// toward the start. It is single-pass: once every cell has been returned it
// keeps reporting false. All, Backward and Cells are unaffected by the
// cursor, which is not safe for concurrent consumption.
//
// A nil *Path is an empty route; every method returns zero values on it.
type Path struct {
	cells []grid.Point // start→goal
	cost  float64
	next  int // index of the next cell Next returns; -1 when exhausted
}

func newPath(cells []grid.Point, cost float64) *Path {
	return &Path{cells: cells, cost: cost, next: len(cells) - 1}
}

// Len returns the number of cells, including start and goal.
func (p *Path) Len() int {
	if p == nil {
		return 0
	}

	return len(p.cells)
}

// Cost returns the total movement cost of the route.
func (p *Path) Cost() float64 {
	if p == nil {
		return 0
	}

	return p.cost
}

// Start returns the first cell.
func (p *Path) Start() grid.Point {
	if p.Len() == 0 {
		return grid.Point{}
	}

	return p.cells[0]
}

// Destination returns the last cell.
func (p *Path) Destination() grid.Point {
	if p.Len() == 0 {
		return grid.Point{}
	}

	return p.cells[len(p.cells)-1]
}

// Contains reports whether c lies on the path.
func (p *Path) Contains(c grid.Point) bool {
	if p == nil {
		return false
	}

	return slices.Contains(p.cells, c)
}

// Cells returns a copy of the cells in start→goal order.
func (p *Path) Cells() []grid.Point {
	if p == nil {
		return nil
	}

	return slices.Clone(p.cells)
}

// All iterates the cells in start→goal order.
func (p *Path) All() iter.Seq[grid.Point] {
	return func(yield func(grid.Point) bool) {
		if p == nil {
			return
		}
		for _, c := range p.cells {
			if !yield(c) {
				return
			}
		}
	}
}

// Backward iterates the cells in goal→start order.
func (p *Path) Backward() iter.Seq[grid.Point] {
	return func(yield func(grid.Point) bool) {
		if p == nil {
			return
		}
		for i := len(p.cells) - 1; i >= 0; i-- {
			if !yield(p.cells[i]) {
				return
			}
		}
	}
}

// Next returns the next unconsumed cell, starting at the destination and
// moving toward the start, or false once the path is exhausted.
func (p *Path) Next() (grid.Point, bool) {
	if p == nil || p.next < 0 {
		return grid.Point{}, false
	}
	c := p.cells[p.next]
	p.next--

	return c, true
}

// Remaining returns the number of cells Next has not yet returned.
func (p *Path) Remaining() int {
	if p == nil {
		return 0
	}

	return p.next + 1
}

// String formats the path as "x,y -> x,y -> …".
func (p *Path) String() string {
	if p == nil {
		return ""
	}
	parts := make([]string, len(p.cells))
	for i, c := range p.cells {
		parts[i] = c.String()
	}

	return strings.Join(parts, " -> ")
}
