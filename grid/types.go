// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/tilepath.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrUnknownTile indicates a tile symbol or name with no TileType.
	ErrUnknownTile = errors.New("grid: unknown tile")
	// ErrReservedSymbol indicates a legend entry for the 'S' or 'G' marker.
	ErrReservedSymbol = errors.New("grid: symbol is reserved for start and goal markers")
	// ErrInvalidCost indicates a movement cost that is negative, NaN or infinite.
	ErrInvalidCost = errors.New("grid: movement cost must be a finite non-negative number")
)

// TileType is the category of a cell. The movement cost of a cell is derived
// from its TileType through the grid's cost table.
type TileType int

const (
	// Floor is plain walkable ground.
	Floor TileType = iota
	// Wall is impassable.
	Wall
	// Mud is walkable but slow.
	Mud
	// Water is walkable but very slow.
	Water
)

var tileNames = map[TileType]string{
	Floor: "floor",
	Wall:  "wall",
	Mud:   "mud",
	Water: "water",
}

// String returns the lower-case name of t.
func (t TileType) String() string {
	if name, ok := tileNames[t]; ok {
		return name
	}

	return fmt.Sprintf("TileType(%d)", int(t))
}

// ParseTileType maps a name produced by String back to its TileType.
func ParseTileType(name string) (TileType, error) {
	for t, n := range tileNames {
		if n == name {
			return t, nil
		}
	}

	return Floor, fmt.Errorf("%w: %q", ErrUnknownTile, name)
}

// Point is a grid coordinate and the identity of a Cell.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// String formats p as "x,y".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Cell is a snapshot of a single grid cell.
// Cost is the movement cost of entering the cell; 0 means impassable.
type Cell struct {
	X, Y int
	Type TileType
	Cost float64
}

// Point returns the coordinate of c.
func (c Cell) Point() Point { return Point{X: c.X, Y: c.Y} }

// Passable reports whether the cell can be entered.
func (c Cell) Passable() bool { return c.Cost > 0 }

// Source is the contract a grid provider fulfills for graph construction.
// CellAt reports false for coordinates that hold no cell.
type Source interface {
	Width() int
	Height() int
	CellAt(x, y int) (Cell, bool)
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: the four cardinals then NE, SE, SW, NW.
	Conn8
)

// Options contains tunable parameters for a Grid.
type Options struct {
	// Costs maps each TileType to its movement cost.
	Costs map[TileType]float64
}

// Option configures a Grid.
type Option func(*Options)

// WithCost overrides the movement cost of tile type t.
func WithCost(t TileType, cost float64) Option {
	return func(o *Options) {
		o.Costs[t] = cost
	}
}

// DefaultOptions returns the default cost table:
// Floor=1, Wall=0, Mud=3, Water=5.
func DefaultOptions() Options {
	return Options{
		Costs: map[TileType]float64{
			Floor: 1,
			Wall:  0,
			Mud:   3,
			Water: 5,
		},
	}
}

// Grid is a rectangular in-memory Source. types[y][x] holds the tile type of
// cell (x,y). Cell identities never change; tile types may via SetType.
// Grid is not safe for concurrent mutation.
type Grid struct {
	width, height int
	types         [][]TileType
	costs         map[TileType]float64
	markers       map[rune]Point
}

// cardinal and diagonal offsets in enumeration order.
var (
	cardinalOffsets = [][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}
	diagonalOffsets = [][2]int{{1, 1}, {1, -1}, {-1, -1}, {-1, 1}}
)
