// Package tilegraph builds a weighted graph over a tile grid and runs a
// resumable A* search on it.
//
// What
//
//   - Build creates one Node per grid cell, addressed by a stable NodeID,
//     and an edge list per node to every passable neighbor that does not
//     clip a wall corner.
//   - RegenerateEdges refreshes a cell and its eight neighbors after the grid
//     changes, without rebuilding the graph.
//   - Pathfinder runs A* one expansion at a time (Step) or to completion
//     (Run), exposing the open set, closed set and per-node G/H/F costs
//     between steps.
//   - Path is the resulting start→goal route with a single-pass cursor
//     that consumes it from the destination back to the start.
//   - FindPaths answers independent queries in parallel.
//
// Edge costs
//
//	An edge's cost is the movement cost of the cell it enters. Moving from
//	u to v costs edge.Cost × distance(u, v), where distance is 1 for
//	orthogonal and √2 for diagonal neighbors. The heuristic is the
//	straight-line distance to the goal, which is admissible while every
//	passable cell costs at least 1.
//
// Corner clipping
//
//	   . #        A diagonal step between a and b is rejected when either
//	   a .  ─╳─▶  cell that touches both (here '#') is impassable:
//	   # b        paths never squeeze between two wall corners.
//
// Determinism
//
//	Frontier ties on F are broken by lower H, then by insertion order, so a
//	stepped search always expands the same sequence of nodes. Stepping N
//	times and then M times is identical to stepping N+M times.
//
// Concurrency
//
//	A Pathfinder owns all of its search state. Several Pathfinders may run
//	in parallel over one Graph as long as the graph is not regenerated
//	meanwhile. Path cursors must not be shared between goroutines.
//
// Complexity (V = cells, E ≤ 8V)
//
//   - Build:           O(V)
//   - RegenerateEdges: O(1)
//   - Run:             O(E log V)
package tilegraph
