package cave

import "fmt"

// Fill creates a width x height grid whose frame is wall and whose interior
// cells are wall with probability fillPercent/100.
func Fill(width, height int, src Source, fillPercent int) (*Grid, error) {
	if fillPercent < 0 || fillPercent > 100 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidFillPercent, fillPercent)
	}
	g, err := NewGrid(width, height, Floor)
	if err != nil {
		return nil, err
	}

	// Column-major draw order keeps maps stable for a given seed.
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			if g.OnFrame(x, y) {
				g.cells[g.index(x, y)] = Wall
				continue
			}
			if src.Range(0, 100) < fillPercent {
				g.cells[g.index(x, y)] = Wall
			}
		}
	}
	return g, nil
}
