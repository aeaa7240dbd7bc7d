package tilegraph_test

import (
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tilepath/grid"
	"github.com/katalvlaran/tilepath/tilegraph"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

// buildGraph parses an ASCII map and builds a graph over it.
func buildGraph(t testing.TB, text string, opts ...tilegraph.Option) (*grid.Grid, *tilegraph.Graph) {
	t.Helper()
	gr, err := grid.Parse(text)
	require.NoError(t, err)
	g, err := tilegraph.Build(gr, append([]tilegraph.Option{tilegraph.WithLogger(quiet)}, opts...)...)
	require.NoError(t, err)

	return gr, g
}

func pt(x, y int) grid.Point { return grid.Point{X: x, Y: y} }

// assertEdgeInvariants checks that every edge targets a passable cell and
// that no diagonal edge clips a corner.
func assertEdgeInvariants(t *testing.T, src grid.Source, g *tilegraph.Graph) {
	t.Helper()
	for _, n := range g.Nodes() {
		for _, e := range n.Edges {
			to := g.Point(e.To)
			c, ok := src.CellAt(to.X, to.Y)
			require.True(t, ok)
			assert.Greater(t, c.Cost, 0.0, "edge %s→%s targets impassable cell", n.Point, to)
			assert.Equal(t, c.Cost, e.Cost, "edge cost must equal target cost")

			dx, dy := to.X-n.Point.X, to.Y-n.Point.Y
			if dx != 0 && dy != 0 {
				a, _ := src.CellAt(to.X, n.Point.Y)
				b, _ := src.CellAt(n.Point.X, to.Y)
				assert.True(t, a.Passable() && b.Passable(), "edge %s→%s clips a corner", n.Point, to)
			}
		}
	}
}

func TestBuild_NilSource(t *testing.T) {
	g, err := tilegraph.Build(nil)
	assert.Nil(t, g)
	assert.ErrorIs(t, err, tilegraph.ErrNilSource)
}

// emptySource reports no cells at all.
type emptySource struct{}

func (emptySource) Width() int { return 0 }
func (emptySource) Height() int { return 0 }
func (emptySource) CellAt(int, int) (grid.Cell, bool) { return grid.Cell{}, false }

func TestBuild_EmptySource(t *testing.T) {
	g, err := tilegraph.Build(emptySource{}, tilegraph.WithLogger(quiet))
	require.NoError(t, err)
	assert.Equal(t, 0, g.Len())
	assert.Empty(t, g.Nodes())
	assert.False(t, g.RegenerateEdges(pt(0, 0)))
}

func TestBuild_OneNodePerCell(t *testing.T) {
	gr, g := buildGraph(t, `
		..#.
		.,~.
		#...
	`)
	assert.Equal(t, 12, g.Len())
	assert.Len(t, g.Nodes(), 12)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			assert.True(t, g.Has(pt(x, y)))
		}
	}
	assert.False(t, g.Has(pt(4, 0)))
	assert.False(t, g.Has(pt(-1, 0)))
	assertEdgeInvariants(t, gr, g)
}

func TestBuild_OpenGridDegrees(t *testing.T) {
	_, g := buildGraph(t, `
		...
		...
		...
	`)
	corner, ok := g.Edges(pt(0, 0))
	require.True(t, ok)
	assert.Len(t, corner, 3)

	side, _ := g.Edges(pt(1, 0))
	assert.Len(t, side, 5)

	center, _ := g.Edges(pt(1, 1))
	assert.Len(t, center, 8)
}

func TestBuild_Conn4(t *testing.T) {
	_, g := buildGraph(t, `
		...
		...
		...
	`, tilegraph.WithConnectivity(grid.Conn4))
	center, _ := g.Edges(pt(1, 1))
	assert.Len(t, center, 4)
	for _, e := range center {
		to := g.Point(e.To)
		assert.Equal(t, 1, abs(to.X-1)+abs(to.Y-1), "Conn4 must not admit diagonals")
	}
}

func TestBuild_EdgeCostIsTargetCost(t *testing.T) {
	_, g := buildGraph(t, `.,`)
	fromFloor, _ := g.Edges(pt(0, 0))
	require.Len(t, fromFloor, 1)
	assert.Equal(t, 3.0, fromFloor[0].Cost)

	fromMud, _ := g.Edges(pt(1, 0))
	require.Len(t, fromMud, 1)
	assert.Equal(t, 1.0, fromMud[0].Cost)
}

func TestBuild_WallsHaveNoIncomingEdges(t *testing.T) {
	_, g := buildGraph(t, `
		...
		.#.
		...
	`)
	wall, _ := g.ID(pt(1, 1))
	for _, n := range g.Nodes() {
		for _, e := range n.Edges {
			assert.NotEqual(t, wall, e.To)
		}
	}
}

// TestBuild_CornerClippingBothWalls: both orthogonal cells around the
// diagonal (0,0)↔(1,1) are walls, so the diagonal edge must be absent.
func TestBuild_CornerClippingBothWalls(t *testing.T) {
	gr, g := buildGraph(t, `
		.#.
		#..
		...
	`)
	origin, _ := g.Edges(pt(0, 0))
	assert.Empty(t, origin)

	centerID, _ := g.ID(pt(1, 1))
	originID, _ := g.ID(pt(0, 0))
	center, _ := g.Edges(pt(1, 1))
	for _, e := range center {
		assert.NotEqual(t, originID, e.To)
	}
	for _, e := range origin {
		assert.NotEqual(t, centerID, e.To)
	}
	assertEdgeInvariants(t, gr, g)
}

// TestBuild_CornerClippingOneWall: a single wall beside the diagonal is
// enough to reject it.
func TestBuild_CornerClippingOneWall(t *testing.T) {
	_, g := buildGraph(t, `
		.#.
		...
		...
	`)
	origin, _ := g.Edges(pt(0, 0))
	require.Len(t, origin, 1)
	assert.Equal(t, pt(0, 1), g.Point(origin[0].To))
}

// holeSource is a 3×3 grid with no cell at (1,0).
type holeSource struct{}

func (holeSource) Width() int { return 3 }
func (holeSource) Height() int { return 3 }
func (holeSource) CellAt(x, y int) (grid.Cell, bool) {
	if x < 0 || x >= 3 || y < 0 || y >= 3 || (x == 1 && y == 0) {
		return grid.Cell{}, false
	}

	return grid.Cell{X: x, Y: y, Type: grid.Floor, Cost: 1}, true
}

func TestBuild_MissingCellsAreOmitted(t *testing.T) {
	g, err := tilegraph.Build(holeSource{}, tilegraph.WithLogger(quiet))
	require.NoError(t, err)
	assert.Equal(t, 8, g.Len())
	assert.False(t, g.Has(pt(1, 0)))

	// (0,0)→(1,1) passes beside the missing cell and is rejected.
	origin, _ := g.Edges(pt(0, 0))
	require.Len(t, origin, 1)
	assert.Equal(t, pt(0, 1), g.Point(origin[0].To))
}

// nanSource is a 3×2 floor grid whose cell (1,0) carries a NaN cost, as a
// Source not backed by grid.Grid might report.
type nanSource struct{}

func (nanSource) Width() int { return 3 }
func (nanSource) Height() int { return 2 }
func (nanSource) CellAt(x, y int) (grid.Cell, bool) {
	if x < 0 || x >= 3 || y < 0 || y >= 2 {
		return grid.Cell{}, false
	}
	if x == 1 && y == 0 {
		return grid.Cell{X: x, Y: y, Type: grid.Mud, Cost: math.NaN()}, true
	}

	return grid.Cell{X: x, Y: y, Type: grid.Floor, Cost: 1}, true
}

// TestBuild_NaNCostIsImpassable: the graph uses Cell.Passable, so a NaN cost
// neither admits edges nor lets diagonals pass beside it.
func TestBuild_NaNCostIsImpassable(t *testing.T) {
	g, err := tilegraph.Build(nanSource{}, tilegraph.WithLogger(quiet))
	require.NoError(t, err)
	assertEdgeInvariants(t, nanSource{}, g)

	nan, _ := g.ID(pt(1, 0))
	for _, n := range g.Nodes() {
		for _, e := range n.Edges {
			assert.NotEqual(t, nan, e.To, "edge %s→1,0", n.Point)
			assert.False(t, math.IsNaN(e.Cost))
		}
	}

	origin, _ := g.Edges(pt(0, 0))
	require.Len(t, origin, 1)
	assert.Equal(t, pt(0, 1), g.Point(origin[0].To))

	path, err := g.FindPath(pt(0, 0), pt(2, 0))
	require.NoError(t, err)
	require.NotNil(t, path)
	assert.False(t, path.Contains(pt(1, 0)))
	assert.Equal(t, 4.0, path.Cost())
}

func TestRegenerateEdges_UnknownCell(t *testing.T) {
	_, g := buildGraph(t, `..`)
	assert.False(t, g.RegenerateEdges(pt(5, 5)))
	assert.False(t, g.RegenerateEdges(pt(-1, 0)))
}

func TestRegenerateEdges_MatchesFreshBuild(t *testing.T) {
	gr, g := buildGraph(t, `
		....
		....
		....
	`)
	require.NoError(t, gr.SetType(1, 0, grid.Wall))
	require.True(t, g.RegenerateEdges(pt(1, 0)))

	fresh, err := tilegraph.Build(gr, tilegraph.WithLogger(quiet))
	require.NoError(t, err)
	assert.Equal(t, fresh.Nodes(), g.Nodes())

	origin, _ := g.Edges(pt(0, 0))
	require.Len(t, origin, 1, "wall at (1,0) removes both the edge into it and the diagonal beside it")
	assert.Equal(t, pt(0, 1), g.Point(origin[0].To))
	assertEdgeInvariants(t, gr, g)

	// Opening the wall again restores the original topology.
	require.NoError(t, gr.SetType(1, 0, grid.Floor))
	require.True(t, g.RegenerateEdges(pt(1, 0)))
	origin, _ = g.Edges(pt(0, 0))
	assert.Len(t, origin, 3)
}

func TestRegenerateEdges_Idempotent(t *testing.T) {
	gr, g := buildGraph(t, `
		.....
		.,#..
		...~.
	`)
	require.NoError(t, gr.SetType(2, 2, grid.Wall))

	require.True(t, g.RegenerateEdges(pt(2, 2)))
	first := g.Nodes()
	require.True(t, g.RegenerateEdges(pt(2, 2)))
	assert.Equal(t, first, g.Nodes())
}

func TestFindPath_ScenarioDiagonal(t *testing.T) {
	_, g := buildGraph(t, `
		...
		...
		...
	`)
	path, err := g.FindPath(pt(0, 0), pt(2, 2))
	require.NoError(t, err)
	require.NotNil(t, path)
	assert.Equal(t, []grid.Point{pt(0, 0), pt(1, 1), pt(2, 2)}, path.Cells())
	assert.Equal(t, 3, path.Len())
	assert.InDelta(t, 2*math.Sqrt2, path.Cost(), 1e-9)
}

func TestFindPath_SameCell(t *testing.T) {
	_, g := buildGraph(t, `
		...
		.,.
	`)
	for _, p := range []grid.Point{pt(0, 0), pt(1, 1), pt(2, 1)} {
		path, err := g.FindPath(p, p)
		require.NoError(t, err)
		require.NotNil(t, path)
		assert.Equal(t, 1, path.Len())
		assert.Equal(t, p, path.Start())
		assert.Equal(t, p, path.Destination())
		assert.Zero(t, path.Cost())
	}
}

func TestFindPath_UnknownCell(t *testing.T) {
	_, g := buildGraph(t, `...`)

	path, err := g.FindPath(pt(9, 9), pt(0, 0))
	assert.Nil(t, path)
	assert.ErrorIs(t, err, tilegraph.ErrUnknownCell)

	path, err = g.FindPath(pt(0, 0), pt(0, 7))
	assert.Nil(t, path)
	assert.ErrorIs(t, err, tilegraph.ErrUnknownCell)
}

func TestFindPath_CornerBlocked(t *testing.T) {
	_, g := buildGraph(t, `
		.#.
		#..
		...
	`)
	path, err := g.FindPath(pt(0, 0), pt(2, 2))
	require.NoError(t, err)
	assert.Nil(t, path)
}

func TestFindPath_AvoidsExpensiveTerrain(t *testing.T) {
	_, g := buildGraph(t, `
		S,G
		...
	`)
	path, err := g.FindPath(pt(0, 0), pt(2, 0))
	require.NoError(t, err)
	require.NotNil(t, path)
	assert.Equal(t, []grid.Point{pt(0, 0), pt(1, 1), pt(2, 0)}, path.Cells())
	assert.InDelta(t, 2*math.Sqrt2, path.Cost(), 1e-9)
	assert.False(t, path.Contains(pt(1, 0)))
}

func TestFindPath_Conn4(t *testing.T) {
	_, g := buildGraph(t, `
		...
		...
		...
	`, tilegraph.WithConnectivity(grid.Conn4))
	path, err := g.FindPath(pt(0, 0), pt(2, 2))
	require.NoError(t, err)
	require.NotNil(t, path)
	assert.Equal(t, 5, path.Len())
	assert.InDelta(t, 4.0, path.Cost(), 1e-9)
}

func TestFindPath_AroundWall(t *testing.T) {
	gr, g := buildGraph(t, `
		S.#..
		..#..
		..#.G
		.....
	`)
	path, err := g.FindPath(pt(0, 0), pt(4, 2))
	require.NoError(t, err)
	require.NotNil(t, path)
	assert.Equal(t, pt(0, 0), path.Start())
	assert.Equal(t, pt(4, 2), path.Destination())
	assert.True(t, path.Contains(pt(2, 3)), "must pass below the wall")

	// Consecutive cells are neighbors and never walls.
	cells := path.Cells()
	for i, c := range cells {
		cell, ok := gr.CellAt(c.X, c.Y)
		require.True(t, ok)
		assert.True(t, cell.Passable(), "path enters wall at %s", c)
		if i > 0 {
			assert.LessOrEqual(t, abs(c.X-cells[i-1].X), 1)
			assert.LessOrEqual(t, abs(c.Y-cells[i-1].Y), 1)
		}
	}
	// (1,3)→(2,3)→(3,3) is forced: diagonals beside the wall foot clip.
	assert.InDelta(t, 4+2*math.Sqrt2, path.Cost(), 1e-9)
}

func TestFindPath_AfterRegeneration(t *testing.T) {
	gr, g := buildGraph(t, `
		...
		...
		...
	`)
	require.NoError(t, gr.SetType(1, 1, grid.Wall))
	require.True(t, g.RegenerateEdges(pt(1, 1)))

	path, err := g.FindPath(pt(0, 0), pt(2, 2))
	require.NoError(t, err)
	require.NotNil(t, path)
	assert.False(t, path.Contains(pt(1, 1)))
	assert.Equal(t, 5, path.Len())
	assert.InDelta(t, 4.0, path.Cost(), 1e-9)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
