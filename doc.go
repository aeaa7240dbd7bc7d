// Package tilepath is an incremental A* pathfinding engine for tile grids,
// built to drive interactive visualizations one expansion at a time.
//
// 🚀 What is tilepath?
//
//	A small, deterministic library that brings together:
//		• Grids: typed cells with a movement-cost table, ASCII and YAML loaders
//		• Graphs: one node per cell, edges that respect corner clipping
//		• Search: a resumable A* Pathfinder with an inspectable frontier
//		• Paths: start→goal routes with iterators and a pull cursor
//
// ✨ Why choose tilepath?
//
//   - Step-wise: Step() expands exactly one node, so a renderer can show
//     the open and closed sets between frames
//   - Local edits: toggling a cell regenerates only its neighborhood
//   - Shareable: search state lives in the Pathfinder, so many searches
//     may run over one Graph at once
//
// Under the hood, everything is organized under three subpackages:
//
//	grid/       Grid, Cell, TileType, Source contract, connected regions
//	pqueue/     generic min-priority queue with decrease-key and tie-breaks
//	tilegraph/  Graph, Pathfinder, Path and parallel FindPaths
//
// A command-line driver lives in cmd/tilepath.
//
// Quick start:
//
//	gr, _ := grid.Parse(`
//		S.#
//		..G
//	`)
//	g, _ := tilegraph.Build(gr)
//	start, _ := gr.Start()
//	goal, _ := gr.Goal()
//	path, _ := g.FindPath(start, goal)
//	fmt.Println(path) // 0,0 -> 1,1 -> 2,1
package tilepath
