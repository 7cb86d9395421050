package cave

import (
	"fmt"
	"time"

	"github.com/lawnchairsociety/cavegen/internal/logger"
)

// WorldHeight is the constant height used when mapping tiles to world space
const WorldHeight = 2.0

// Params contains the inputs of a generation run
type Params struct {
	Width               int    // Interior width in tiles
	Height              int    // Interior height in tiles
	Seed                string // Ignored when UseRandomSeed is set
	UseRandomSeed       bool
	FillPercent         int // Chance (0-100) that an interior cell starts as wall
	SmoothingIterations int
	BorderSize          int // Wall margin added around the finished map
	WallRegionThreshold int // Wall regions smaller than this become floor
	RoomRegionThreshold int // Floor regions smaller than this become wall
	CorridorRadius      int
}

// DefaultParams returns reasonable defaults for a cave
func DefaultParams() Params {
	return Params{
		Width:               60,
		Height:              80,
		Seed:                "cave",
		UseRandomSeed:       false,
		FillPercent:         45,
		SmoothingIterations: 5,
		BorderSize:          5,
		WallRegionThreshold: 50,
		RoomRegionThreshold: 50,
		CorridorRadius:      1,
	}
}

// Validate checks the parameters before any work is done
func (p Params) Validate() error {
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, p.Width, p.Height)
	}
	if p.FillPercent < 0 || p.FillPercent > 100 {
		return fmt.Errorf("%w: got %d", ErrInvalidFillPercent, p.FillPercent)
	}
	checks := []struct {
		name  string
		value int
	}{
		{"smoothing iterations", p.SmoothingIterations},
		{"border size", p.BorderSize},
		{"wall region threshold", p.WallRegionThreshold},
		{"room region threshold", p.RoomRegionThreshold},
		{"corridor radius", p.CorridorRadius},
	}
	for _, c := range checks {
		if c.value < 0 {
			return fmt.Errorf("%w: %s is %d", ErrInvalidParameter, c.name, c.value)
		}
	}
	return nil
}

// Map is the output of a generation run
type Map struct {
	Grid        *Grid // Bordered grid handed to renderers
	Width       int   // Interior width
	Height      int   // Interior height
	BorderSize  int
	Seed        string // Seed actually used, also when it was picked at random
	Rooms       []*Room
	Connections []Connection
}

// WorldPoint is a position in renderer world space
type WorldPoint struct {
	X, Y, Z float64
}

// CoordToWorld maps an interior tile coordinate to the world-space centre of
// that tile.
func (m *Map) CoordToWorld(c Coord) WorldPoint {
	return WorldPoint{
		X: -float64(m.Width)/2 + 0.5 + float64(c.X),
		Y: WorldHeight,
		Z: -float64(m.Height)/2 + 0.5 + float64(c.Y),
	}
}

// MainRoom returns the largest room
func (m *Map) MainRoom() *Room {
	for _, r := range m.Rooms {
		if r.IsMainRoom {
			return r
		}
	}
	return nil
}

// Generator runs the cave pipeline for one set of parameters
type Generator struct {
	params    Params
	now       func() time.Time
	newSource func(seed string) Source
}

// NewGenerator creates a new cave generator
func NewGenerator(params Params) *Generator {
	return &Generator{
		params:    params,
		now:       time.Now,
		newSource: NewSource,
	}
}

// Generate creates a cave map with the default generator
func Generate(params Params) (*Map, error) {
	return NewGenerator(params).Generate()
}

// Generate runs fill, smoothing, pruning, room connection and border padding.
func (gen *Generator) Generate() (*Map, error) {
	p := gen.params
	if err := p.Validate(); err != nil {
		return nil, err
	}

	seed := p.Seed
	if p.UseRandomSeed {
		seed = gen.now().Format(time.RFC3339Nano)
		logger.Info("Cave seed selected", "seed", seed, "random", true)
	}

	grid, err := Fill(p.Width, p.Height, gen.newSource(seed), p.FillPercent)
	if err != nil {
		return nil, err
	}
	grid = SmoothN(grid, p.SmoothingIterations)
	logger.Debug("Smoothed cave", "iterations", p.SmoothingIterations, "walls", grid.Count(Wall))

	regions := pruneRegions(grid, p.WallRegionThreshold, p.RoomRegionThreshold)
	if len(regions) == 0 {
		return nil, fmt.Errorf("%w: seed %q, fill %d%%", ErrEmptyRoomSet, seed, p.FillPercent)
	}

	rooms := make([]*Room, len(regions))
	for i, region := range regions {
		rooms[i] = NewRoom(i, region, grid)
	}

	connector := Connector{Radius: p.CorridorRadius}
	graph, connections, err := connector.Connect(grid, rooms)
	if err != nil {
		return nil, err
	}

	bordered, err := grid.Bordered(p.BorderSize)
	if err != nil {
		return nil, err
	}

	logger.Info("Cave generated",
		"seed", seed,
		"width", bordered.Width(),
		"height", bordered.Height(),
		"rooms", graph.Len(),
		"connections", len(connections))

	return &Map{
		Grid:        bordered,
		Width:       p.Width,
		Height:      p.Height,
		BorderSize:  p.BorderSize,
		Seed:        seed,
		Rooms:       graph.Rooms(),
		Connections: connections,
	}, nil
}
