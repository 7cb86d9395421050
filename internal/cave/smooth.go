package cave

// wallMajority is the neighbour count at which a cell keeps its current tile
const wallMajority = 4

// Smooth applies one cellular automaton pass and returns the new grid.
// Every cell is computed from the unmodified input grid.
func Smooth(g *Grid) *Grid {
	next := &Grid{width: g.width, height: g.height, cells: make([]Tile, len(g.cells))}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			walls := SurroundingWallCount(g, x, y)
			i := g.index(x, y)
			switch {
			case walls > wallMajority:
				next.cells[i] = Wall
			case walls < wallMajority:
				next.cells[i] = Floor
			default:
				next.cells[i] = g.cells[i]
			}
		}
	}
	return next
}

// SmoothN applies n smoothing passes
func SmoothN(g *Grid, n int) *Grid {
	for i := 0; i < n; i++ {
		g = Smooth(g)
	}
	return g
}

// SurroundingWallCount counts walls among the 8 neighbours of (x, y).
// Neighbours outside the grid count as walls.
func SurroundingWallCount(g *Grid, x, y int) int {
	count := 0
	for nx := x - 1; nx <= x+1; nx++ {
		for ny := y - 1; ny <= y+1; ny++ {
			if nx == x && ny == y {
				continue
			}
			if g.IsWall(nx, ny) {
				count++
			}
		}
	}
	return count
}
