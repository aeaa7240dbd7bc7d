package grid

// ConnectedComponents finds all contiguous regions of passable cells
// (cost > 0) under the given connectivity. Each region is a slice of
// points in BFS discovery order; regions are ordered by their first cell
// in row-major order.
//
// Diagonal steps follow the same corner rule as graph edges: a diagonal
// between two passable cells only connects them if both shared orthogonal
// cells are passable.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents(conn Connectivity) [][]Point {
	seen := make([]bool, g.width*g.height)
	var comps [][]Point
	offsets := Offsets(conn)

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.passable(x, y) {
				continue
			}
			i0 := g.index(x, y)
			if seen[i0] {
				continue
			}
			queue := []Point{{X: x, Y: y}}
			seen[i0] = true

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range offsets {
					vx, vy := u.X+d[0], u.Y+d[1]
					if !g.passable(vx, vy) {
						continue
					}
					if d[0] != 0 && d[1] != 0 && (!g.passable(vx, u.Y) || !g.passable(u.X, vy)) {
						continue
					}
					vi := g.index(vx, vy)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, Point{X: vx, Y: vy})
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}

// RegionOf returns the connected region containing p, or nil if p is out of
// bounds or impassable.
func (g *Grid) RegionOf(p Point, conn Connectivity) []Point {
	if !g.passable(p.X, p.Y) {
		return nil
	}
	for _, comp := range g.ConnectedComponents(conn) {
		for _, q := range comp {
			if q == p {
				return comp
			}
		}
	}

	return nil
}

func (g *Grid) passable(x, y int) bool {
	c, ok := g.CellAt(x, y)
	return ok && c.Passable()
}
