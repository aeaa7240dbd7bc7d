// Package grid provides an in-memory tile grid that acts as the Source for
// graph construction. It supports:
//
//   - Typed cells with a configurable movement-cost table
//   - Four- or eight-connectivity neighbor enumeration (Conn4 or Conn8)
//   - Identification of connected regions of passable cells
//   - Loading from ASCII text or YAML documents
//
// Cells with cost 0 are impassable; cells with cost > 0 are traversable.
package grid

import (
	"fmt"
	"math"
	"strings"
)

// New constructs a width×height Grid filled with Floor.
// Returns ErrEmptyGrid if either dimension is not positive and
// ErrInvalidCost if an option sets a negative, NaN or infinite cost.
func New(width, height int, opts ...Option) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	types := make([][]TileType, height)
	for y := range types {
		types[y] = make([]TileType, width)
	}

	return newGrid(types, opts)
}

// FromTypes constructs a Grid from a non-empty, rectangular 2D slice where
// types[y][x] is the tile at (x,y). The input is deep-copied.
// Complexity: O(W×H) time and memory.
func FromTypes(types [][]TileType, opts ...Option) (*Grid, error) {
	if len(types) == 0 || len(types[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(types[0])
	cells := make([][]TileType, len(types))
	for y, row := range types {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells[y] = make([]TileType, w)
		copy(cells[y], row)
	}

	return newGrid(cells, opts)
}

func newGrid(types [][]TileType, opts []Option) (*Grid, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	for t, c := range cfg.Costs {
		if math.IsNaN(c) || math.IsInf(c, 0) || c < 0 {
			return nil, fmt.Errorf("%w: %s=%g", ErrInvalidCost, t, c)
		}
	}

	return &Grid{
		width:   len(types[0]),
		height:  len(types),
		types:   types,
		costs:   cfg.Costs,
		markers: make(map[rune]Point),
	}, nil
}

// legend maps ASCII symbols to tile types. 'S' and 'G' are Floor cells that
// additionally mark the start and goal.
var legend = map[rune]TileType{
	'.': Floor,
	'S': Floor,
	'G': Floor,
	'#': Wall,
	',': Mud,
	'~': Water,
}

// Parse builds a Grid from ASCII rows, one row per line, top row first
// (y=0). Blank lines and surrounding whitespace are ignored.
// Symbols: '.' floor, '#' wall, ',' mud, '~' water, 'S' start, 'G' goal.
func Parse(text string, opts ...Option) (*Grid, error) {
	var rows []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			rows = append(rows, line)
		}
	}

	return parseRows(rows, legend, opts)
}

func parseRows(rows []string, symbols map[rune]TileType, opts []Option) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	types := make([][]TileType, len(rows))
	markers := make(map[rune]Point)
	for y, row := range rows {
		runes := []rune(row)
		types[y] = make([]TileType, len(runes))
		for x, r := range runes {
			t, ok := symbols[r]
			if !ok {
				return nil, fmt.Errorf("%w: symbol %q at %d,%d", ErrUnknownTile, r, x, y)
			}
			types[y][x] = t
			if r == 'S' || r == 'G' {
				markers[r] = Point{X: x, Y: y}
			}
		}
	}
	if len(types[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	for _, row := range types {
		if len(row) != len(types[0]) {
			return nil, ErrNonRectangular
		}
	}

	g, err := newGrid(types, opts)
	if err != nil {
		return nil, err
	}
	g.markers = markers

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// CellAt returns a snapshot of the cell at (x,y), or false if out of bounds.
// The cost is read from the cost table at call time.
func (g *Grid) CellAt(x, y int) (Cell, bool) {
	if !g.InBounds(x, y) {
		return Cell{}, false
	}
	t := g.types[y][x]

	return Cell{X: x, Y: y, Type: t, Cost: g.costs[t]}, true
}

// TypeAt returns the tile type at (x,y).
func (g *Grid) TypeAt(x, y int) (TileType, error) {
	if !g.InBounds(x, y) {
		return Floor, fmt.Errorf("%w: %d,%d", ErrOutOfBounds, x, y)
	}

	return g.types[y][x], nil
}

// SetType changes the tile type at (x,y). Graphs built over g must have
// their edges regenerated around (x,y) to observe the change.
func (g *Grid) SetType(x, y int, t TileType) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: %d,%d", ErrOutOfBounds, x, y)
	}
	if _, ok := g.costs[t]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTile, t)
	}
	g.types[y][x] = t

	return nil
}

// Start returns the cell marked 'S' when the grid was parsed or loaded.
func (g *Grid) Start() (Point, bool) {
	p, ok := g.markers['S']
	return p, ok
}

// Goal returns the cell marked 'G' when the grid was parsed or loaded.
func (g *Grid) Goal() (Point, bool) {
	p, ok := g.markers['G']
	return p, ok
}

// Neighbors returns the in-bounds neighbors of (x,y): the four cardinals
// (N, E, S, W) followed, when diagonals is true, by NE, SE, SW, NW.
// Out-of-bounds neighbors are omitted.
func (g *Grid) Neighbors(x, y int, diagonals bool) []Cell {
	return Neighbors(g, x, y, diagonals)
}

// Neighbors enumerates the neighbors of (x,y) from any Source in the same
// order as (*Grid).Neighbors. Coordinates the source does not report are
// omitted.
func Neighbors(src Source, x, y int, diagonals bool) []Cell {
	out := make([]Cell, 0, 8)
	for _, d := range Offsets(connectivityOf(diagonals)) {
		if c, ok := src.CellAt(x+d[0], y+d[1]); ok {
			out = append(out, c)
		}
	}

	return out
}

// Offsets returns a fresh copy of the neighbor offsets for the given
// connectivity in enumeration order.
func Offsets(conn Connectivity) [][2]int {
	out := make([][2]int, 0, 8)
	out = append(out, cardinalOffsets...)
	if conn == Conn8 {
		out = append(out, diagonalOffsets...)
	}

	return out
}

func connectivityOf(diagonals bool) Connectivity {
	if diagonals {
		return Conn8
	}

	return Conn4
}

// String renders the grid with the ASCII legend used by Parse.
func (g *Grid) String() string {
	symbols := map[TileType]rune{Floor: '.', Wall: '#', Mud: ',', Water: '~'}
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			r, ok := symbols[g.types[y][x]]
			if !ok {
				r = '?'
			}
			sb.WriteRune(r)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// Coordinate converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Point {
	return Point{X: idx % g.width, Y: idx / g.width}
}
