package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lawnchairsociety/cavegen/internal/cave"
	"github.com/lawnchairsociety/cavegen/internal/config"
	"github.com/lawnchairsociety/cavegen/internal/logger"
)

// options holds the command line settings
type options struct {
	configFile  string
	loggingFile string
	outputFile  string
	wallGlyph   string
	floorGlyph  string
	format      string
	summary     bool
}

func main() {
	opts := options{}
	flag.StringVar(&opts.configFile, "config", "data/cave.yaml", "Path to cave generation config YAML file")
	flag.StringVar(&opts.loggingFile, "logging", "data/logging.yaml", "Path to logging config YAML file")
	flag.StringVar(&opts.outputFile, "output", "", "Output file (empty for stdout)")
	flag.StringVar(&opts.wallGlyph, "wall", "#", "Character used for wall tiles")
	flag.StringVar(&opts.floorGlyph, "floor", ".", "Character used for floor tiles")
	flag.StringVar(&opts.format, "format", "ascii", "Output format: ascii or yaml")
	flag.BoolVar(&opts.summary, "summary", false, "Append a room and connection summary (ascii only)")

	seed := flag.String("seed", "", "Seed string (integers are used directly)")
	random := flag.Bool("random", false, "Pick a seed from the current time")
	width := flag.Int("width", 0, "Map width in tiles")
	height := flag.Int("height", 0, "Map height in tiles")
	fill := flag.Int("fill", 0, "Initial wall fill percent (0-100)")
	smooth := flag.Int("smooth", 0, "Smoothing iterations")
	border := flag.Int("border", 0, "Border size in tiles")
	radius := flag.Int("radius", 0, "Corridor radius in tiles")
	flag.Parse()

	logConfig, err := logger.LoadConfig(opts.loggingFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if err := logger.Initialize(logConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	cfg, err := config.LoadConfig(opts.configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	params := cfg.Params()

	// Only flags given on the command line override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			params.Seed = *seed
			params.UseRandomSeed = false
		case "random":
			params.UseRandomSeed = *random
		case "width":
			params.Width = *width
		case "height":
			params.Height = *height
		case "fill":
			params.FillPercent = *fill
		case "smooth":
			params.SmoothingIterations = *smooth
		case "border":
			params.BorderSize = *border
		case "radius":
			params.CorridorRadius = *radius
		}
	})

	if err := run(params, opts); err != nil {
		logger.Error("Cave generation failed", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Close()
		os.Exit(1)
	}
}

func run(params cave.Params, opts options) error {
	wall, err := glyph(opts.wallGlyph)
	if err != nil {
		return fmt.Errorf("wall glyph: %w", err)
	}
	floor, err := glyph(opts.floorGlyph)
	if err != nil {
		return fmt.Errorf("floor glyph: %w", err)
	}

	if opts.format == "" {
		opts.format = "ascii"
	}
	if opts.format != "ascii" && opts.format != "yaml" {
		return fmt.Errorf("unknown output format %q", opts.format)
	}

	m, err := cave.Generate(params)
	if err != nil {
		return err
	}

	var output strings.Builder
	switch opts.format {
	case "yaml":
		if err := writeMapYAML(&output, m, wall, floor); err != nil {
			return err
		}
	default:
		output.WriteString(m.Grid.Render(wall, floor))
		if opts.summary {
			output.WriteString("\n")
			renderSummary(&output, m)
		}
	}

	if opts.outputFile == "" {
		fmt.Print(output.String())
		return nil
	}
	if err := os.WriteFile(opts.outputFile, []byte(output.String()), 0644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	logger.Info("Map written", "path", opts.outputFile)
	return nil
}

// glyph returns the single rune in s
func glyph(s string) (rune, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("want exactly one character, got %q", s)
	}
	return runes[0], nil
}
