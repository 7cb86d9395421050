package cave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoomEdgeTiles(t *testing.T) {
	g, err := ParseGrid(
		"#####",
		"#...#",
		"#...#",
		"#...#",
		"#####",
	)
	require.NoError(t, err)

	regions := Regions(g, Floor)
	require.Len(t, regions, 1)

	room := NewRoom(0, regions[0], g)
	assert.Equal(t, 9, room.Size)
	assert.Len(t, room.EdgeTiles, 8)
	assert.NotContains(t, room.EdgeTiles, Coord{2, 2})
	assert.False(t, room.IsMainRoom)
	assert.False(t, room.IsAccessibleFromMainRoom)
}

func TestNewRoomWithoutWallNeighbours(t *testing.T) {
	g, err := ParseGrid(
		"...",
		"...",
		"...",
	)
	require.NoError(t, err)

	// Only the centre tile, surrounded by floor, becomes the room.
	room := NewRoom(0, Region{{1, 1}}, g)
	assert.Equal(t, 1, room.Size)
	assert.Empty(t, room.EdgeTiles)
}

func newTestGraph(n int) *RoomGraph {
	rooms := make([]*Room, n)
	for i := range rooms {
		rooms[i] = &Room{Index: -1, Size: n - i}
	}
	rg := NewRoomGraph(rooms)
	rg.Room(0).IsMainRoom = true
	rg.Room(0).IsAccessibleFromMainRoom = true
	return rg
}

func TestRoomGraphConnectPropagatesAccess(t *testing.T) {
	rg := newTestGraph(4)
	for i, r := range rg.Rooms() {
		assert.Equal(t, i, r.Index)
	}

	require.NoError(t, rg.ConnectRooms(1, 2))
	require.NoError(t, rg.ConnectRooms(2, 3))
	assert.False(t, rg.Room(1).IsAccessibleFromMainRoom)
	assert.False(t, rg.Room(3).IsAccessibleFromMainRoom)
	assert.False(t, rg.AllAccessible())

	require.NoError(t, rg.ConnectRooms(3, 0))
	assert.True(t, rg.AllAccessible())

	assert.True(t, rg.IsConnected(2, 1))
	assert.True(t, rg.IsConnected(1, 2))
	assert.False(t, rg.IsConnected(0, 1))
	assert.Equal(t, []int{1, 3}, rg.Connected(2))
	assert.Equal(t, []int{3}, rg.Connected(0))
}

func TestRoomGraphConnectInvalid(t *testing.T) {
	rg := newTestGraph(2)

	assert.Error(t, rg.ConnectRooms(1, 1))
	assert.Error(t, rg.ConnectRooms(0, 2))
	assert.Error(t, rg.ConnectRooms(-1, 0))
	assert.False(t, rg.IsConnected(0, 5))
	assert.Nil(t, rg.Connected(7))
}

func TestRoomGraphConnectTwice(t *testing.T) {
	rg := newTestGraph(2)

	require.NoError(t, rg.ConnectRooms(0, 1))
	require.NoError(t, rg.ConnectRooms(1, 0))
	assert.Equal(t, []int{1}, rg.Connected(0))
	assert.Equal(t, []int{0}, rg.Connected(1))
}

func TestSetAccessibleLongChain(t *testing.T) {
	const n = 20000
	rg := newTestGraph(n)
	rg.Room(0).IsAccessibleFromMainRoom = false

	for i := 1; i < n; i++ {
		require.NoError(t, rg.ConnectRooms(i-1, i))
	}
	assert.False(t, rg.Room(n-1).IsAccessibleFromMainRoom)

	rg.SetAccessibleFromMainRoom(0)
	assert.True(t, rg.AllAccessible())
}
