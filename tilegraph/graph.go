package tilegraph

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/katalvlaran/tilepath/grid"
)

// Graph holds one Node per cell of a grid.Source, addressed by NodeID.
//
// Edge lists are guarded by an RWMutex: any number of Pathfinders may read
// the graph concurrently, and RegenerateEdges excludes them while it swaps
// edge lists. A search that straddles a regeneration sees the old edges for
// nodes it already expanded; callers that edit the grid should discard
// running searches.
type Graph struct {
	mu     sync.RWMutex
	src    grid.Source
	width  int
	height int
	nodes  []*Node // row-major; nil where the source reports no cell
	count  int
	opts   Options
	log    *slog.Logger
}

// Build constructs one Node per cell reported by src and generates the
// edge list of every node.
//
// A source with zero cells yields an empty graph and no error.
// Returns ErrNilSource if src is nil.
//
// Complexity: O(W·H·d) time, O(W·H·d) memory (d = 4 or 8).
func Build(src grid.Source, opts ...Option) (*Graph, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	w, h := max(src.Width(), 0), max(src.Height(), 0)
	g := &Graph{
		src:    src,
		width:  w,
		height: h,
		nodes:  make([]*Node, w*h),
		opts:   cfg,
		log:    cfg.Logger,
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if _, ok := src.CellAt(x, y); !ok {
				continue
			}
			id := NodeID(y*w + x)
			g.nodes[id] = &Node{ID: id, Point: grid.Point{X: x, Y: y}}
			g.count++
		}
	}
	for _, n := range g.nodes {
		if n != nil {
			n.Edges = g.generateEdges(n.Point)
		}
	}
	g.log.Debug("tilegraph: graph built", "width", w, "height", h, "nodes", g.count)

	return g, nil
}

// RegenerateEdges recomputes the edge list of the node at p and of each of
// its eight neighbors, since a change in passability at p can open or close
// diagonal moves that pass beside it. It reports false, doing nothing, when
// p has no node.
func (g *Graph) RegenerateEdges(p grid.Point) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := g.nodeAt(p.X, p.Y)
	if n == nil {
		return false
	}
	n.Edges = g.generateEdges(p)
	for _, d := range grid.Offsets(grid.Conn8) {
		if nb := g.nodeAt(p.X+d[0], p.Y+d[1]); nb != nil {
			nb.Edges = g.generateEdges(nb.Point)
		}
	}
	g.log.Debug("tilegraph: edges regenerated", "cell", p)

	return true
}

// FindPath runs a fresh Pathfinder from start to goal until it terminates.
//
// Returns:
//
//   - (path, nil) when a route exists.
//   - (nil, nil)  when the goal is unreachable.
//   - (nil, err)  wrapping ErrUnknownCell when start or goal has no node.
func (g *Graph) FindPath(start, goal grid.Point) (*Path, error) {
	pf, err := NewPathfinder(g, start, goal)
	if err != nil {
		g.log.Error("tilegraph: find path rejected", "start", start, "goal", goal, "err", err)
		return nil, err
	}

	return pf.Run()
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return g.count }

// Width returns the width of the source grid at build time.
func (g *Graph) Width() int { return g.width }

// Height returns the height of the source grid at build time.
func (g *Graph) Height() int { return g.height }

// Has reports whether p has a node.
func (g *Graph) Has(p grid.Point) bool {
	_, ok := g.ID(p)
	return ok
}

// ID returns the NodeID of p.
func (g *Graph) ID(p grid.Point) (NodeID, bool) {
	n := g.nodeAt(p.X, p.Y)
	if n == nil {
		return 0, false
	}

	return n.ID, true
}

// Point returns the coordinate of id. It does not check that id has a node.
func (g *Graph) Point(id NodeID) grid.Point {
	return grid.Point{X: int(id) % g.width, Y: int(id) / g.width}
}

// Node returns a copy of the node at p. The Edges slice is shared and must
// not be modified.
func (g *Graph) Node(p grid.Point) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n := g.nodeAt(p.X, p.Y)
	if n == nil {
		return Node{}, false
	}

	return *n, true
}

// Edges returns the current edge list of p.
func (g *Graph) Edges(p grid.Point) ([]Edge, bool) {
	n, ok := g.Node(p)
	if !ok {
		return nil, false
	}

	return n.Edges, true
}

// Nodes returns copies of all nodes in NodeID order.
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, 0, g.count)
	for _, n := range g.nodes {
		if n != nil {
			out = append(out, *n)
		}
	}

	return out
}

// edgesOf returns the published edge list of id.
func (g *Graph) edgesOf(id NodeID) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.nodes[id].Edges
}

func (g *Graph) nodeAt(x, y int) *Node {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return nil
	}

	return g.nodes[y*g.width+x]
}

// generateEdges builds a fresh edge list for the cell at p. A neighbor is
// admitted iff it has a node, its movement cost is positive, and the move
// does not clip a corner. Passability is grid.Cell.Passable, the same rule
// the grid uses for its regions.
func (g *Graph) generateEdges(p grid.Point) []Edge {
	offsets := grid.Offsets(g.opts.Connectivity)
	edges := make([]Edge, 0, len(offsets))
	for _, d := range offsets {
		c, ok := g.src.CellAt(p.X+d[0], p.Y+d[1])
		if !ok || !c.Passable() {
			continue
		}
		target := g.nodeAt(c.X, c.Y)
		if target == nil {
			continue
		}
		if g.clipsCorner(p, c.Point()) {
			continue
		}
		edges = append(edges, Edge{Cost: c.Cost, To: target.ID})
	}

	return edges
}

// clipsCorner reports whether the diagonal move from→to passes between two
// cells where at least one is impassable or missing. Non-diagonal moves
// never clip.
func (g *Graph) clipsCorner(from, to grid.Point) bool {
	dx, dy := to.X-from.X, to.Y-from.Y
	if abs(dx) != 1 || abs(dy) != 1 {
		return false
	}
	if c, ok := g.src.CellAt(to.X, from.Y); !ok || !c.Passable() {
		return true
	}
	c, ok := g.src.CellAt(from.X, to.Y)

	return !ok || !c.Passable()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// String summarizes the graph dimensions.
func (g *Graph) String() string {
	return fmt.Sprintf("tilegraph.Graph{%dx%d, nodes=%d}", g.width, g.height, g.count)
}
