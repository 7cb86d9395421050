package cave

import (
	"fmt"
	"sort"

	"github.com/lawnchairsociety/cavegen/internal/logger"
)

// Connection records a corridor carved between two rooms
type Connection struct {
	RoomA, RoomB int
	TileA, TileB Coord
	Forced       bool // Added to reach the main room rather than by the nearest-neighbour pass
}

// Connector links rooms together and carves the corridors between them
type Connector struct {
	Radius int
}

// candidate is the closest pair of edge tiles found by a search
type candidate struct {
	roomA, roomB int
	tileA, tileB Coord
	distance     int
}

// Connect sorts rooms by size, makes the largest the main room and connects
// every room to it, carving each accepted connection into g.
//
// A nearest-neighbour pass first gives every isolated room one connection.
// That can leave clusters with no path to the main room, so forced passes
// then repeatedly join the closest inaccessible/accessible pair until every
// room is reachable.
func (c Connector) Connect(g *Grid, rooms []*Room) (*RoomGraph, []Connection, error) {
	if len(rooms) == 0 {
		return nil, nil, ErrEmptyRoomSet
	}

	sorted := make([]*Room, len(rooms))
	copy(sorted, rooms)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Size > sorted[j].Size
	})

	rg := NewRoomGraph(sorted)
	main := rg.Room(0)
	main.IsMainRoom = true
	main.IsAccessibleFromMainRoom = true

	all := make([]int, rg.Len())
	for i := range all {
		all[i] = i
	}

	var connections []Connection
	for a := range all {
		if rg.HasConnections(a) {
			continue
		}
		best, ok := rg.nearest([]int{a}, all)
		if !ok {
			continue
		}
		conn, err := c.link(g, rg, best, false)
		if err != nil {
			return nil, nil, err
		}
		connections = append(connections, conn)
	}

	for !rg.AllAccessible() {
		var unreached, reached []int
		for _, r := range rg.Rooms() {
			if r.IsAccessibleFromMainRoom {
				reached = append(reached, r.Index)
			} else {
				unreached = append(unreached, r.Index)
			}
		}
		best, ok := rg.nearest(unreached, reached)
		if !ok {
			return nil, nil, fmt.Errorf("%w: %d rooms have no usable edge tiles", ErrUnreachableRoom, len(unreached))
		}
		conn, err := c.link(g, rg, best, true)
		if err != nil {
			return nil, nil, err
		}
		connections = append(connections, conn)
	}

	return rg, connections, nil
}

// nearest finds the closest pair of edge tiles between a room in as and a
// different, not yet connected room in bs. Ties keep the first pair found.
func (rg *RoomGraph) nearest(as, bs []int) (candidate, bool) {
	var best candidate
	found := false
	for _, a := range as {
		roomA := rg.Room(a)
		for _, b := range bs {
			if a == b || rg.IsConnected(a, b) {
				continue
			}
			roomB := rg.Room(b)
			for _, tileA := range roomA.EdgeTiles {
				for _, tileB := range roomB.EdgeTiles {
					d := tileA.DistanceSquared(tileB)
					if found && d >= best.distance {
						continue
					}
					best = candidate{roomA: a, roomB: b, tileA: tileA, tileB: tileB, distance: d}
					found = true
				}
			}
		}
	}
	return best, found
}

// link connects the candidate rooms in the graph and carves their corridor
func (c Connector) link(g *Grid, rg *RoomGraph, best candidate, forced bool) (Connection, error) {
	if err := rg.ConnectRooms(best.roomA, best.roomB); err != nil {
		return Connection{}, err
	}
	if err := Carve(g, best.tileA, best.tileB, c.Radius); err != nil {
		return Connection{}, fmt.Errorf("carving corridor between rooms %d and %d: %w", best.roomA, best.roomB, err)
	}
	logger.Debug("Connected rooms",
		"room_a", best.roomA, "room_b", best.roomB,
		"tile_a", best.tileA.String(), "tile_b", best.tileB.String(),
		"distance_sq", best.distance, "forced", forced)

	return Connection{
		RoomA:  best.roomA,
		RoomB:  best.roomB,
		TileA:  best.tileA,
		TileB:  best.tileB,
		Forced: forced,
	}, nil
}
