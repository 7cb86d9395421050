package cave

// Region is a maximal 4-connected set of cells sharing one tile type
type Region []Coord

// Regions partitions every cell holding tile into 4-connected regions.
// Cells are scanned column by column, so the order of the result depends only
// on the grid contents.
func Regions(g *Grid, tile Tile) []Region {
	seen := make([]bool, len(g.cells))
	var regions []Region

	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			i := g.index(x, y)
			if seen[i] || g.cells[i] != tile {
				continue
			}
			regions = append(regions, floodFill(g, x, y, seen))
		}
	}
	return regions
}

// floodFill collects the region containing (startX, startY) breadth-first,
// marking every collected cell in seen.
func floodFill(g *Grid, startX, startY int, seen []bool) Region {
	tile := g.cells[g.index(startX, startY)]
	queue := []Coord{{startX, startY}}
	seen[g.index(startX, startY)] = true

	for qi := 0; qi < len(queue); qi++ {
		c := queue[qi]
		for _, d := range cardinalOffsets {
			nx, ny := c.X+d.X, c.Y+d.Y
			if !g.InBounds(nx, ny) {
				continue
			}
			ni := g.index(nx, ny)
			if seen[ni] || g.cells[ni] != tile {
				continue
			}
			seen[ni] = true
			queue = append(queue, Coord{nx, ny})
		}
	}
	return Region(queue)
}

// touchesFrame reports whether any cell of the region lies on the grid frame
func (r Region) touchesFrame(g *Grid) bool {
	for _, c := range r {
		if g.OnFrame(c.X, c.Y) {
			return true
		}
	}
	return false
}
