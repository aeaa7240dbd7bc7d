// Package grid models the tile map that pathfinding runs over.
//
// What:
//
//   - Grid wraps a rectangular [][]TileType with a per-type movement cost table.
//   - Cell snapshots expose coordinate, type and cost (0 = impassable).
//   - Source is the read-only contract consumed by tilegraph.Build.
//   - Neighbors enumerates cardinal and diagonal neighbors in a fixed order.
//   - ConnectedComponents finds regions of mutually reachable passable cells.
//
// Why:
//
//   - Game maps: walls, floors and slow terrain in one typed grid.
//   - Editors: SetType flips a cell; the graph regenerates edges around it.
//   - Tooling: ASCII and YAML forms for fixtures and the command line.
//
// Complexity:
//
//   - CellAt, SetType, InBounds: O(1).
//   - ConnectedComponents:       O(W×H×d), Memory: O(W×H)  (d = 4 or 8).
//   - Parse, Load:               O(W×H).
//
// Options:
//
//   - WithCost(t, c): override the movement cost of a tile type.
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: coordinate outside the grid.
//   - ErrUnknownTile: unrecognized symbol or tile name.
//   - ErrReservedSymbol: a YAML legend redefines 'S' or 'G'.
//   - ErrInvalidCost: a cost override that is negative, NaN or infinite.
package grid
