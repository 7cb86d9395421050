package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/lawnchairsociety/cavegen/internal/cave"
)

// MapYAML is the YAML export of a generated cave
type MapYAML struct {
	Seed        string           `yaml:"seed"`
	Width       int              `yaml:"width"`
	Height      int              `yaml:"height"`
	BorderSize  int              `yaml:"border_size"`
	Rows        []string         `yaml:"rows"`
	Rooms       []RoomYAML       `yaml:"rooms"`
	Connections []ConnectionYAML `yaml:"connections,omitempty"`
}

// RoomYAML describes one room of the export
type RoomYAML struct {
	Index     int    `yaml:"index"`
	Size      int    `yaml:"size"`
	EdgeTiles int    `yaml:"edge_tiles"`
	Main      bool   `yaml:"main,omitempty"`
	Origin    string `yaml:"origin"` // First tile found by the region scan
}

// ConnectionYAML describes one corridor of the export
type ConnectionYAML struct {
	From   int    `yaml:"from"`
	To     int    `yaml:"to"`
	TileA  string `yaml:"tile_a"`
	TileB  string `yaml:"tile_b"`
	Forced bool   `yaml:"forced,omitempty"`
}

// newMapYAML converts a generated map into its export form
func newMapYAML(m *cave.Map, wall, floor rune) *MapYAML {
	out := &MapYAML{
		Seed:       m.Seed,
		Width:      m.Width,
		Height:     m.Height,
		BorderSize: m.BorderSize,
	}

	for _, row := range m.Grid.Rows() {
		line := make([]rune, len(row))
		for x, v := range row {
			if cave.Tile(v) == cave.Wall {
				line[x] = wall
			} else {
				line[x] = floor
			}
		}
		out.Rows = append(out.Rows, string(line))
	}

	for _, r := range m.Rooms {
		origin := ""
		if len(r.Tiles) > 0 {
			origin = r.Tiles[0].String()
		}
		out.Rooms = append(out.Rooms, RoomYAML{
			Index:     r.Index,
			Size:      r.Size,
			EdgeTiles: len(r.EdgeTiles),
			Main:      r.IsMainRoom,
			Origin:    origin,
		})
	}

	for _, c := range m.Connections {
		out.Connections = append(out.Connections, ConnectionYAML{
			From:   c.RoomA,
			To:     c.RoomB,
			TileA:  c.TileA.String(),
			TileB:  c.TileB.String(),
			Forced: c.Forced,
		})
	}
	return out
}

// writeMapYAML writes a generated map as a YAML document
func writeMapYAML(w io.Writer, m *cave.Map, wall, floor rune) error {
	fmt.Fprintf(w, "# Cave map - seed %s\n", m.Seed)
	fmt.Fprintf(w, "# Room count: %d\n\n", len(m.Rooms))

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(newMapYAML(m, wall, floor)); err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	return encoder.Close()
}
