package cave

import (
	"fmt"
	"strings"
)

// Tile is the value of a single grid cell
type Tile uint8

const (
	Floor Tile = 0
	Wall  Tile = 1
)

// String returns the string representation of a Tile
func (t Tile) String() string {
	switch t {
	case Floor:
		return "floor"
	case Wall:
		return "wall"
	default:
		return "unknown"
	}
}

// Opposite returns the other tile type
func (t Tile) Opposite() Tile {
	if t == Wall {
		return Floor
	}
	return Wall
}

// Coord identifies a cell by column (X) and row (Y)
type Coord struct {
	X, Y int
}

// String returns the coordinate as "x,y"
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// DistanceSquared returns the squared Euclidean distance between two coordinates
func (c Coord) DistanceSquared(o Coord) int {
	dx := c.X - o.X
	dy := c.Y - o.Y
	return dx*dx + dy*dy
}

// cardinalOffsets are the 4-connected neighbour offsets (N, E, S, W)
var cardinalOffsets = [4]Coord{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Grid is a fixed-size rectangle of tiles stored row-major.
type Grid struct {
	width, height int
	cells         []Tile
}

// NewGrid creates a grid of the given size with every cell set to fill
func NewGrid(width, height int, fill Tile) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]Tile, width*height),
	}
	if fill != Floor {
		for i := range g.cells {
			g.cells[i] = fill
		}
	}
	return g, nil
}

// ParseGrid builds a grid from rows of '#' (wall) and '.' (floor) characters.
// All rows must have the same length.
func ParseGrid(rows ...string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidDimensions)
	}
	g, err := NewGrid(len(rows[0]), len(rows), Floor)
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != g.width {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrInvalidDimensions, y, len(row), g.width)
		}
		for x, ch := range row {
			switch ch {
			case '#':
				g.cells[g.index(x, y)] = Wall
			case '.':
				g.cells[g.index(x, y)] = Floor
			default:
				return nil, fmt.Errorf("cave: invalid tile %q at %d,%d", ch, x, y)
			}
		}
	}
	return g, nil
}

// Width returns the number of columns
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows
func (g *Grid) Height() int { return g.height }

func (g *Grid) index(x, y int) int {
	return y*g.width + x
}

// InBounds reports whether (x, y) lies inside the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// OnFrame reports whether (x, y) is one of the outermost cells
func (g *Grid) OnFrame(x, y int) bool {
	return x == 0 || y == 0 || x == g.width-1 || y == g.height-1
}

// At returns the tile at (x, y)
func (g *Grid) At(x, y int) (Tile, error) {
	if !g.InBounds(x, y) {
		return Wall, fmt.Errorf("%w: %d,%d in %dx%d", ErrOutOfBounds, x, y, g.width, g.height)
	}
	return g.cells[g.index(x, y)], nil
}

// Set stores a tile at (x, y)
func (g *Grid) Set(x, y int, t Tile) error {
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: %d,%d in %dx%d", ErrOutOfBounds, x, y, g.width, g.height)
	}
	g.cells[g.index(x, y)] = t
	return nil
}

// IsWall reports whether (x, y) is a wall. Cells outside the grid count as
// wall, which gives every stage an implicit infinite wall border.
func (g *Grid) IsWall(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.cells[g.index(x, y)] == Wall
}

// Count returns the number of cells holding t
func (g *Grid) Count(t Tile) int {
	n := 0
	for _, c := range g.cells {
		if c == t {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	cells := make([]Tile, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, height: g.height, cells: cells}
}

// Equal reports whether both grids have the same size and contents
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.width != o.width || g.height != o.height {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Rows exports the grid as rows[y][x] holding 0 (floor) or 1 (wall).
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.height)
	for y := 0; y < g.height; y++ {
		rows[y] = make([]int, g.width)
		for x := 0; x < g.width; x++ {
			rows[y][x] = int(g.cells[g.index(x, y)])
		}
	}
	return rows
}

// Bordered returns a new grid padded by size wall cells on every side.
func (g *Grid) Bordered(size int) (*Grid, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: border size %d", ErrInvalidParameter, size)
	}
	out, err := NewGrid(g.width+2*size, g.height+2*size, Wall)
	if err != nil {
		return nil, err
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			out.cells[out.index(x+size, y+size)] = g.cells[g.index(x, y)]
		}
	}
	return out, nil
}

// Render draws the grid one line per row using the given glyphs
func (g *Grid) Render(wall, floor rune) string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[g.index(x, y)] == Wall {
				b.WriteRune(wall)
			} else {
				b.WriteRune(floor)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String renders the grid with '#' for walls and '.' for floors
func (g *Grid) String() string {
	return g.Render('#', '.')
}
