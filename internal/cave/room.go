package cave

import (
	"fmt"
	"sort"

	"github.com/zyedidia/generic/mapset"
)

// Room is a floor region that survived pruning
type Room struct {
	Index                    int
	Tiles                    []Coord
	EdgeTiles                []Coord // Tiles with a wall to the N, E, S or W
	Size                     int
	IsMainRoom               bool
	IsAccessibleFromMainRoom bool
}

// NewRoom builds a room from a floor region of g
func NewRoom(index int, region Region, g *Grid) *Room {
	room := &Room{
		Index: index,
		Tiles: region,
		Size:  len(region),
	}
	for _, c := range region {
		for _, d := range cardinalOffsets {
			if g.IsWall(c.X+d.X, c.Y+d.Y) {
				room.EdgeTiles = append(room.EdgeTiles, c)
				break
			}
		}
	}
	return room
}

// RoomGraph is the undirected connection graph between rooms. Edges are
// stored as index sets so rooms never reference each other directly.
type RoomGraph struct {
	rooms []*Room
	adj   []mapset.Set[int]
}

// NewRoomGraph creates a graph over rooms with no connections. Room indices
// are reassigned to match their position in the slice.
func NewRoomGraph(rooms []*Room) *RoomGraph {
	rg := &RoomGraph{
		rooms: rooms,
		adj:   make([]mapset.Set[int], len(rooms)),
	}
	for i, r := range rooms {
		r.Index = i
		rg.adj[i] = mapset.New[int]()
	}
	return rg
}

// Rooms returns the rooms in index order
func (rg *RoomGraph) Rooms() []*Room {
	return rg.rooms
}

// Len returns the number of rooms
func (rg *RoomGraph) Len() int {
	return len(rg.rooms)
}

// Room returns the room at index i
func (rg *RoomGraph) Room(i int) *Room {
	return rg.rooms[i]
}

func (rg *RoomGraph) check(i int) error {
	if i < 0 || i >= len(rg.rooms) {
		return fmt.Errorf("cave: room index %d out of range [0, %d)", i, len(rg.rooms))
	}
	return nil
}

// ConnectRooms adds an edge between rooms a and b. If either side is
// accessible from the main room, the other side and everything already
// connected to it become accessible too.
func (rg *RoomGraph) ConnectRooms(a, b int) error {
	if err := rg.check(a); err != nil {
		return err
	}
	if err := rg.check(b); err != nil {
		return err
	}
	if a == b {
		return fmt.Errorf("cave: cannot connect room %d to itself", a)
	}

	if rg.rooms[a].IsAccessibleFromMainRoom {
		rg.SetAccessibleFromMainRoom(b)
	} else if rg.rooms[b].IsAccessibleFromMainRoom {
		rg.SetAccessibleFromMainRoom(a)
	}
	rg.adj[a].Put(b)
	rg.adj[b].Put(a)
	return nil
}

// IsConnected reports whether a and b share an edge
func (rg *RoomGraph) IsConnected(a, b int) bool {
	if rg.check(a) != nil || rg.check(b) != nil {
		return false
	}
	return rg.adj[a].Has(b)
}

// HasConnections reports whether room i has at least one edge
func (rg *RoomGraph) HasConnections(i int) bool {
	return rg.adj[i].Size() > 0
}

// Connected returns the indices of the rooms connected to i in ascending order
func (rg *RoomGraph) Connected(i int) []int {
	if rg.check(i) != nil {
		return nil
	}
	out := make([]int, 0, rg.adj[i].Size())
	rg.adj[i].Each(func(j int) {
		out = append(out, j)
	})
	sort.Ints(out)
	return out
}

// SetAccessibleFromMainRoom marks room i and every room reachable from it as
// accessible. The walk uses an explicit stack.
func (rg *RoomGraph) SetAccessibleFromMainRoom(i int) {
	if rg.check(i) != nil || rg.rooms[i].IsAccessibleFromMainRoom {
		return
	}
	rg.rooms[i].IsAccessibleFromMainRoom = true
	stack := []int{i}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range rg.Connected(cur) {
			if rg.rooms[next].IsAccessibleFromMainRoom {
				continue
			}
			rg.rooms[next].IsAccessibleFromMainRoom = true
			stack = append(stack, next)
		}
	}
}

// AllAccessible reports whether every room is accessible from the main room
func (rg *RoomGraph) AllAccessible() bool {
	for _, r := range rg.rooms {
		if !r.IsAccessibleFromMainRoom {
			return false
		}
	}
	return true
}
