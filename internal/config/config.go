package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lawnchairsociety/cavegen/internal/cave"
)

// Config holds the cave generation settings read from YAML.
type Config struct {
	Map      MapConfig      `yaml:"map"`
	Rooms    RoomsConfig    `yaml:"rooms"`
	Corridor CorridorConfig `yaml:"corridor"`
}

// MapConfig holds the size, seed and noise settings.
type MapConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Seed is any string; base-10 integers are used directly.
	Seed string `yaml:"seed"`

	// UseRandomSeed ignores Seed and derives one from the current time.
	UseRandomSeed bool `yaml:"use_random_seed"`

	// FillPercent is the chance (0-100) that an interior cell starts as wall.
	FillPercent int `yaml:"fill_percent"`

	SmoothingIterations int `yaml:"smoothing_iterations"`

	// BorderSize is the wall margin added around the finished map.
	BorderSize int `yaml:"border_size"`
}

// RoomsConfig holds the region pruning thresholds.
type RoomsConfig struct {
	// WallThreshold removes wall regions with fewer tiles.
	WallThreshold int `yaml:"wall_threshold"`

	// RoomThreshold removes floor regions with fewer tiles.
	RoomThreshold int `yaml:"room_threshold"`
}

// CorridorConfig holds corridor carving settings.
type CorridorConfig struct {
	Radius int `yaml:"radius"`
}

// DefaultConfig returns a Config matching cave.DefaultParams.
func DefaultConfig() *Config {
	p := cave.DefaultParams()
	return &Config{
		Map: MapConfig{
			Width:               p.Width,
			Height:              p.Height,
			Seed:                p.Seed,
			UseRandomSeed:       p.UseRandomSeed,
			FillPercent:         p.FillPercent,
			SmoothingIterations: p.SmoothingIterations,
			BorderSize:          p.BorderSize,
		},
		Rooms: RoomsConfig{
			WallThreshold: p.WallRegionThreshold,
			RoomThreshold: p.RoomRegionThreshold,
		},
		Corridor: CorridorConfig{
			Radius: p.CorridorRadius,
		},
	}
}

// LoadConfig loads generation settings from a YAML file.
// If the file doesn't exist the defaults are returned; if it can't be
// parsed the defaults are returned along with the error.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), err
	}

	return config, nil
}

// Params converts the configuration into generator parameters.
func (c *Config) Params() cave.Params {
	return cave.Params{
		Width:               c.Map.Width,
		Height:              c.Map.Height,
		Seed:                c.Map.Seed,
		UseRandomSeed:       c.Map.UseRandomSeed,
		FillPercent:         c.Map.FillPercent,
		SmoothingIterations: c.Map.SmoothingIterations,
		BorderSize:          c.Map.BorderSize,
		WallRegionThreshold: c.Rooms.WallThreshold,
		RoomRegionThreshold: c.Rooms.RoomThreshold,
		CorridorRadius:      c.Corridor.Radius,
	}
}
