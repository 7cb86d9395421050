package cave

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallParams(seed string) Params {
	p := DefaultParams()
	p.Width = 20
	p.Height = 20
	p.Seed = seed
	p.BorderSize = 2
	return p
}

func TestParamsValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Params)
		want   error
	}{
		{"defaults", func(p *Params) {}, nil},
		{"zero width", func(p *Params) { p.Width = 0 }, ErrInvalidDimensions},
		{"negative height", func(p *Params) { p.Height = -3 }, ErrInvalidDimensions},
		{"fill below range", func(p *Params) { p.FillPercent = -1 }, ErrInvalidFillPercent},
		{"fill above range", func(p *Params) { p.FillPercent = 101 }, ErrInvalidFillPercent},
		{"negative smoothing", func(p *Params) { p.SmoothingIterations = -1 }, ErrInvalidParameter},
		{"negative border", func(p *Params) { p.BorderSize = -1 }, ErrInvalidParameter},
		{"negative wall threshold", func(p *Params) { p.WallRegionThreshold = -1 }, ErrInvalidParameter},
		{"negative room threshold", func(p *Params) { p.RoomRegionThreshold = -1 }, ErrInvalidParameter},
		{"negative radius", func(p *Params) { p.CorridorRadius = -1 }, ErrInvalidParameter},
		{"fill bounds are inclusive", func(p *Params) { p.FillPercent = 100 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultParams()
			tt.modify(&p)
			err := p.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.want), "Validate() = %v, want %v", err, tt.want)

			_, genErr := Generate(p)
			assert.True(t, errors.Is(genErr, tt.want), "Generate() = %v, want %v", genErr, tt.want)
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	first, err := Generate(smallParams("test"))
	require.NoError(t, err)
	second, err := Generate(smallParams("test"))
	require.NoError(t, err)

	assert.True(t, first.Grid.Equal(second.Grid), "same seed produced different maps")
	assert.Equal(t, first.Connections, second.Connections)
	assert.Equal(t, "test", first.Seed)

	other, err := Generate(smallParams("test2"))
	require.NoError(t, err)
	assert.False(t, first.Grid.Equal(other.Grid), "different seeds produced the same map")
}

func TestGenerateOutputShape(t *testing.T) {
	m, err := Generate(smallParams("test"))
	require.NoError(t, err)

	rows := m.Grid.Rows()
	require.Len(t, rows, 24)
	for y, row := range rows {
		require.Len(t, row, 24, "row %d", y)
		for x, v := range row {
			if v != 0 && v != 1 {
				t.Fatalf("rows[%d][%d] = %d, want 0 or 1", y, x, v)
			}
		}
	}
}

func TestGenerateBorder(t *testing.T) {
	p := smallParams("test")
	m, err := Generate(p)
	require.NoError(t, err)

	b := p.BorderSize
	g := m.Grid
	for x := 0; x < g.Width(); x++ {
		for y := 0; y < g.Height(); y++ {
			// The margin plus the frame of the unpadded grid are wall.
			inner := x > b && x < b+p.Width-1 && y > b && y < b+p.Height-1
			if !inner {
				assert.True(t, g.IsWall(x, y), "cell %d,%d should be wall", x, y)
			}
		}
	}
}

// reachableRooms walks Connections from the main room without using RoomGraph
func reachableRooms(m *Map) map[int]bool {
	adj := make(map[int][]int)
	for _, c := range m.Connections {
		adj[c.RoomA] = append(adj[c.RoomA], c.RoomB)
		adj[c.RoomB] = append(adj[c.RoomB], c.RoomA)
	}
	main := m.MainRoom()
	seen := map[int]bool{main.Index: true}
	queue := []int{main.Index}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range adj[cur] {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return seen
}

func TestGenerateConnectivity(t *testing.T) {
	p := DefaultParams()
	p.FillPercent = 50
	p.Seed = "test"
	m, err := Generate(p)
	require.NoError(t, err)
	require.Greater(t, len(m.Rooms), 1, "want a map with several rooms")

	seen := reachableRooms(m)
	for _, r := range m.Rooms {
		assert.True(t, seen[r.Index], "room %d is not reachable through connections", r.Index)
		assert.True(t, r.IsAccessibleFromMainRoom, "room %d not marked accessible", r.Index)
	}
	assert.GreaterOrEqual(t, len(m.Connections), len(m.Rooms)-1)

	floors := Regions(m.Grid, Floor)
	assert.Len(t, floors, 1, "floor should form one connected region")
}

func TestGenerateMainRoom(t *testing.T) {
	p := DefaultParams()
	p.FillPercent = 50
	p.Seed = "42"
	m, err := Generate(p)
	require.NoError(t, err)

	mains := 0
	largest := 0
	for _, r := range m.Rooms {
		if r.IsMainRoom {
			mains++
		}
		largest = max(largest, r.Size)
		assert.GreaterOrEqual(t, r.Size, p.RoomRegionThreshold, "room %d survived pruning", r.Index)
	}
	assert.Equal(t, 1, mains)
	require.NotNil(t, m.MainRoom())
	assert.Equal(t, 0, m.MainRoom().Index)
	assert.Equal(t, largest, m.MainRoom().Size)
}

func TestGenerateOpenCave(t *testing.T) {
	p := smallParams("open")
	p.FillPercent = 0
	m, err := Generate(p)
	require.NoError(t, err)

	assert.Len(t, m.Rooms, 1)
	assert.Empty(t, m.Connections)
	assert.True(t, m.Rooms[0].IsMainRoom)
}

func TestGenerateSolidCave(t *testing.T) {
	p := smallParams("solid")
	p.FillPercent = 100
	_, err := Generate(p)
	assert.True(t, errors.Is(err, ErrEmptyRoomSet), "got %v", err)
}

func TestGenerateRandomSeed(t *testing.T) {
	p := smallParams("ignored")
	p.UseRandomSeed = true

	when := time.Date(2024, 3, 9, 12, 30, 0, 123456789, time.UTC)
	gen := NewGenerator(p)
	gen.now = func() time.Time { return when }

	m, err := gen.Generate()
	require.NoError(t, err)
	assert.Equal(t, when.Format(time.RFC3339Nano), m.Seed)

	// The recorded seed reproduces the map.
	p.UseRandomSeed = false
	p.Seed = m.Seed
	again, err := Generate(p)
	require.NoError(t, err)
	assert.True(t, m.Grid.Equal(again.Grid))
}

type constantSource int

func (c constantSource) Range(lo, hi int) int {
	return min(max(int(c), lo), hi-1)
}

func TestGenerateInjectedSource(t *testing.T) {
	gen := NewGenerator(smallParams("any"))
	var seeds []string
	gen.newSource = func(seed string) Source {
		seeds = append(seeds, seed)
		return constantSource(99)
	}

	m, err := gen.Generate()
	require.NoError(t, err)
	assert.Equal(t, []string{"any"}, seeds)
	assert.Len(t, m.Rooms, 1, "no interior cell starts as wall")
}
