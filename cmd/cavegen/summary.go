package main

import (
	"fmt"
	"strings"

	"github.com/lawnchairsociety/cavegen/internal/cave"
)

// renderSummary lists the rooms and corridors of a generated map
func renderSummary(output *strings.Builder, m *cave.Map) {
	output.WriteString(fmt.Sprintf("Cave Map (Seed: %s, %dx%d, border %d)\n",
		m.Seed, m.Width, m.Height, m.BorderSize))
	output.WriteString(strings.Repeat("=", 60) + "\n")

	output.WriteString(fmt.Sprintf("Rooms: %d\n", len(m.Rooms)))
	for _, r := range m.Rooms {
		marker := ""
		if r.IsMainRoom {
			marker = " (main)"
		}
		output.WriteString(fmt.Sprintf("  [%d]%s size=%d edge_tiles=%d\n",
			r.Index, marker, r.Size, len(r.EdgeTiles)))
	}

	output.WriteString(fmt.Sprintf("Connections: %d\n", len(m.Connections)))
	for _, c := range m.Connections {
		kind := "nearest"
		if c.Forced {
			kind = "forced"
		}
		a := m.CoordToWorld(c.TileA)
		b := m.CoordToWorld(c.TileB)
		output.WriteString(fmt.Sprintf("  [%d] %s -> [%d] %s (%s) world (%.1f, %.1f) -> (%.1f, %.1f)\n",
			c.RoomA, c.TileA, c.RoomB, c.TileB, kind, a.X, a.Z, b.X, b.Z))
	}
}
