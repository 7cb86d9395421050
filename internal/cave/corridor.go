package cave

import "fmt"

// Line rasterizes the segment from a to b, both endpoints included.
// When the vertical delta exceeds the horizontal one the axes are swapped so
// every octant steps one cell along its major axis at a time.
func Line(a, b Coord) []Coord {
	x, y := a.X, a.Y
	dx, dy := b.X-a.X, b.Y-a.Y

	inverted := false
	step := sign(dx)
	gradientStep := sign(dy)
	longest := abs(dx)
	shortest := abs(dy)

	if longest < shortest {
		inverted = true
		longest, shortest = shortest, longest
		step, gradientStep = gradientStep, step
	}

	line := make([]Coord, 0, longest+1)
	accumulation := longest / 2
	for i := 0; i <= longest; i++ {
		line = append(line, Coord{x, y})
		if inverted {
			y += step
		} else {
			x += step
		}
		accumulation += shortest
		if accumulation >= longest {
			if inverted {
				x += gradientStep
			} else {
				y += gradientStep
			}
			accumulation -= longest
		}
	}
	return line
}

// Carve turns every cell within radius of the line from a to b into floor.
// A cell is inside the brush when its squared offset from a line point is at
// most radius squared, so radius 0 carves the bare line and radius r leaves a
// passage at least 2r+1 cells wide. The brush never touches the grid frame.
func Carve(g *Grid, a, b Coord, radius int) error {
	if radius < 0 {
		return fmt.Errorf("%w: corridor radius %d", ErrInvalidParameter, radius)
	}
	if !g.InBounds(a.X, a.Y) {
		return fmt.Errorf("%w: corridor start %s", ErrOutOfBounds, a)
	}
	if !g.InBounds(b.X, b.Y) {
		return fmt.Errorf("%w: corridor end %s", ErrOutOfBounds, b)
	}

	for _, p := range Line(a, b) {
		carveDisk(g, p, radius)
	}
	return nil
}

func carveDisk(g *Grid, center Coord, radius int) {
	r2 := radius * radius
	for dx := -radius; dx <= radius; dx++ {
		for dy := -radius; dy <= radius; dy++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			x, y := center.X+dx, center.Y+dy
			if !g.InBounds(x, y) || g.OnFrame(x, y) {
				continue
			}
			g.cells[g.index(x, y)] = Floor
		}
	}
}

func sign(n int) int {
	if n < 0 {
		return -1
	}
	return 1
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
