package tilegraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tilepath/grid"
	"github.com/katalvlaran/tilepath/pqueue"
)

// Pathfinder is a resumable A* search between two nodes of a Graph.
//
// Step expands exactly one node, so callers can interleave the search with
// other work and inspect the frontier between steps. All bookkeeping (open
// queue, closed set, predecessors and G/H/F costs) lives in the Pathfinder,
// never on the Graph, so independent Pathfinders may share one Graph.
//
// State machine:
//
//	Initialized ──Step──▶ Stepping ──Step──▶ … ──▶ Found | Exhausted
//
// A Pathfinder is not safe for concurrent use.
type Pathfinder struct {
	g     *Graph
	start NodeID
	goal  NodeID

	open        *pqueue.Queue[NodeID]
	closed      map[NodeID]struct{}
	closedOrder []NodeID
	cameFrom    map[NodeID]NodeID
	costs       map[NodeID]Costs

	state      State
	current    NodeID
	hasCurrent bool
	steps      int
	path       *Path
}

// NewPathfinder prepares a search from start to goal. The frontier is
// seeded with start at priority 0; start gets G=0 and H=distance to goal.
//
// Returns ErrNilGraph for a nil graph and an error wrapping ErrUnknownCell
// when start or goal has no node.
func NewPathfinder(g *Graph, start, goal grid.Point) (*Pathfinder, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	startID, ok := g.ID(start)
	if !ok {
		return nil, fmt.Errorf("%w: start %s", ErrUnknownCell, start)
	}
	goalID, ok := g.ID(goal)
	if !ok {
		return nil, fmt.Errorf("%w: goal %s", ErrUnknownCell, goal)
	}

	pf := &Pathfinder{
		g:        g,
		start:    startID,
		goal:     goalID,
		closed:   make(map[NodeID]struct{}),
		cameFrom: make(map[NodeID]NodeID),
		costs:    make(map[NodeID]Costs),
		state:    Initialized,
	}
	// Equal F: prefer the node closer to the goal, then FIFO.
	pf.open = pqueue.New(pqueue.WithTieBreak(func(a, b NodeID) bool {
		return pf.costs[a].H < pf.costs[b].H
	}))

	h := pf.heuristic(startID)
	pf.costs[startID] = Costs{G: 0, H: h, F: h}
	pf.open.Enqueue(startID, 0)

	return pf, nil
}

// Step performs one expansion and returns the resulting state.
//
//  1. Dequeue the lowest-F node (current).
//  2. If current is the goal, reconstruct the path and enter Found.
//  3. Otherwise close current and relax each edge to a node that is not
//     closed: tentativeG = G(current) + edge.Cost·distance(current, neighbor).
//     A neighbor already open is only updated on a strict improvement.
//  4. If the frontier is now empty, enter Exhausted.
//
// Calling Step in a terminal state is a no-op.
func (pf *Pathfinder) Step() (State, error) {
	if pf.state.Terminal() {
		return pf.state, nil
	}
	if pf.open.Len() == 0 {
		pf.state = Exhausted
		return pf.state, nil
	}

	current, err := pf.open.Dequeue()
	if err != nil {
		return pf.state, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	pf.steps++
	pf.current, pf.hasCurrent = current, true
	pf.state = Stepping

	if current == pf.goal {
		pf.path = pf.reconstruct()
		pf.state = Found
		pf.g.log.Debug("tilegraph: path found",
			"start", pf.g.Point(pf.start), "goal", pf.g.Point(pf.goal),
			"steps", pf.steps, "length", pf.path.Len(), "cost", pf.path.Cost())
		return pf.state, nil
	}

	pf.closed[current] = struct{}{}
	pf.closedOrder = append(pf.closedOrder, current)

	g := pf.costs[current].G
	for _, e := range pf.g.edgesOf(current) {
		nb := e.To
		if _, done := pf.closed[nb]; done {
			continue
		}
		tentative := g + e.Cost*pf.distance(current, nb)
		if pf.open.Contains(nb) && tentative >= pf.costs[nb].G {
			continue
		}
		pf.cameFrom[nb] = current
		h := pf.heuristic(nb)
		pf.costs[nb] = Costs{G: tentative, H: h, F: tentative + h}
		pf.open.EnqueueOrUpdate(nb, tentative+h)
	}

	if pf.open.Len() == 0 {
		pf.state = Exhausted
		pf.g.log.Debug("tilegraph: frontier exhausted",
			"start", pf.g.Point(pf.start), "goal", pf.g.Point(pf.goal), "steps", pf.steps)
	}

	return pf.state, nil
}

// Run steps until the search terminates and returns the path, or nil when
// the goal is unreachable.
func (pf *Pathfinder) Run() (*Path, error) {
	for !pf.state.Terminal() {
		if _, err := pf.Step(); err != nil {
			return nil, err
		}
	}

	return pf.path, nil
}

// reconstruct walks the predecessor chain back from the goal.
func (pf *Pathfinder) reconstruct() *Path {
	cells := []grid.Point{pf.g.Point(pf.goal)}
	for at := pf.goal; ; {
		prev, ok := pf.cameFrom[at]
		if !ok {
			break
		}
		cells = append(cells, pf.g.Point(prev))
		at = prev
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}

	return newPath(cells, pf.costs[pf.goal].G)
}

// heuristic is the straight-line distance from id to the goal.
func (pf *Pathfinder) heuristic(id NodeID) float64 {
	a, b := pf.g.Point(id), pf.g.Point(pf.goal)
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// distance is 1 between orthogonal neighbors, √2 between diagonal
// neighbors, and the Euclidean distance otherwise.
func (pf *Pathfinder) distance(a, b NodeID) float64 {
	pa, pb := pf.g.Point(a), pf.g.Point(b)
	dx, dy := abs(pa.X-pb.X), abs(pa.Y-pb.Y)
	switch {
	case dx+dy == 1:
		return 1
	case dx == 1 && dy == 1:
		return math.Sqrt2
	}

	return math.Hypot(float64(dx), float64(dy))
}

// State returns the current lifecycle state.
func (pf *Pathfinder) State() State { return pf.state }

// Done reports whether the search reached a terminal state.
func (pf *Pathfinder) Done() bool { return pf.state.Terminal() }

// Found reports whether a path was found.
func (pf *Pathfinder) Found() bool { return pf.state == Found }

// Path returns the reconstructed path, or nil before Found.
func (pf *Pathfinder) Path() *Path { return pf.path }

// Steps returns the number of expansions performed so far.
func (pf *Pathfinder) Steps() int { return pf.steps }

// Start returns the start coordinate.
func (pf *Pathfinder) Start() grid.Point { return pf.g.Point(pf.start) }

// Goal returns the goal coordinate.
func (pf *Pathfinder) Goal() grid.Point { return pf.g.Point(pf.goal) }

// Current returns the node dequeued by the latest step.
func (pf *Pathfinder) Current() (grid.Point, bool) {
	if !pf.hasCurrent {
		return grid.Point{}, false
	}

	return pf.g.Point(pf.current), true
}

// OpenSet returns the frontier in dequeue order.
func (pf *Pathfinder) OpenSet() []grid.Point {
	ids := pf.open.Items()
	out := make([]grid.Point, len(ids))
	for i, id := range ids {
		out[i] = pf.g.Point(id)
	}

	return out
}

// ClosedSet returns the expanded nodes in expansion order.
func (pf *Pathfinder) ClosedSet() []grid.Point {
	out := make([]grid.Point, len(pf.closedOrder))
	for i, id := range pf.closedOrder {
		out[i] = pf.g.Point(id)
	}

	return out
}

// IsOpen reports whether p is on the frontier.
func (pf *Pathfinder) IsOpen(p grid.Point) bool {
	id, ok := pf.g.ID(p)
	return ok && pf.open.Contains(id)
}

// IsClosed reports whether p has been expanded.
func (pf *Pathfinder) IsClosed(p grid.Point) bool {
	id, ok := pf.g.ID(p)
	if !ok {
		return false
	}
	_, closed := pf.closed[id]

	return closed
}

// CostsOf returns the G/H/F costs recorded for p. It reports false for
// nodes the search has not discovered.
func (pf *Pathfinder) CostsOf(p grid.Point) (Costs, bool) {
	id, ok := pf.g.ID(p)
	if !ok {
		return Costs{}, false
	}
	c, ok := pf.costs[id]

	return c, ok
}

// NodeCosts pairs a coordinate with its search costs.
type NodeCosts struct {
	Point grid.Point `json:"point"`
	Costs Costs      `json:"costs"`
}

// Snapshot is a copy of the observable search state after a step.
type Snapshot struct {
	Step    int          `json:"step"`
	State   string       `json:"state"`
	Current *grid.Point  `json:"current,omitempty"`
	Open    []NodeCosts  `json:"open"`
	Closed  []grid.Point `json:"closed"`
	Path    []grid.Point `json:"path,omitempty"`
}

// Snapshot copies the observable state. It does not touch the path cursor.
func (pf *Pathfinder) Snapshot() Snapshot {
	s := Snapshot{
		Step:   pf.steps,
		State:  pf.state.String(),
		Closed: pf.ClosedSet(),
	}
	if p, ok := pf.Current(); ok {
		s.Current = &p
	}
	for _, p := range pf.OpenSet() {
		c, _ := pf.CostsOf(p)
		s.Open = append(s.Open, NodeCosts{Point: p, Costs: c})
	}
	if pf.path != nil {
		s.Path = pf.path.Cells()
	}

	return s
}
